package field

import (
	"errors"
	"fmt"

	"github.com/osuosl/climesync/internal/prompt"
)

// Ask prompts for a single field and coerces the response, re-prompting
// until the input is valid. present is false when an optional field was
// left empty. The returned error is an I/O error, never a validation one.
func Ask(p *prompt.Prompter, f Field) (value any, present bool, err error) {
	label := decorate(f)

	for {
		var raw string
		if f.Kind == Secret {
			raw, err = p.Secret(label)
		} else {
			raw, err = p.Line(label)
		}
		if err != nil {
			return nil, false, err
		}

		value, present, err = f.Coerce(raw)
		if err == nil {
			return value, present, nil
		}

		p.Say("Please submit a valid input")
	}
}

// Collect prompts for each field in order and assembles the payload.
// Optional fields left empty are omitted entirely.
func Collect(p *prompt.Prompter, fields []Field) (Payload, error) {
	payload := make(Payload)

	for _, f := range fields {
		value, present, err := Ask(p, f)
		if err != nil {
			return nil, err
		}
		if present {
			payload[f.Name] = value
		}
	}

	return payload, nil
}

// FromArgs assembles a payload from pre-supplied raw values, keyed by field
// name. There is no prompting: a missing or empty required field is an
// error, and so is a value that does not coerce.
func FromArgs(fields []Field, args map[string]string) (Payload, error) {
	payload := make(Payload)

	for _, f := range fields {
		raw := args[f.Name]
		value, present, err := f.coerceArg(raw)
		if err != nil {
			if errors.Is(err, ErrRequired) {
				return nil, fmt.Errorf("missing required field %q", f.Name)
			}
			return nil, fmt.Errorf("invalid value %q for field %q", raw, f.Name)
		}
		if present {
			payload[f.Name] = value
		}
	}

	return payload, nil
}

// decorate prepends the optionality and type hints the original CLI has
// always shown, e.g. "(Optional) (y/N) Include deleted?: ".
func decorate(f Field) string {
	label := ""

	if f.Optional {
		label += "(Optional) "
	}

	switch f.Kind {
	case Bool:
		label += "(y/N) "
	case Int:
		label += "(Integer) "
	case List:
		label += "(Comma delimited) "
	}

	return label + f.Prompt + ": "
}
