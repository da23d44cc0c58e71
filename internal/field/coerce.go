package field

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalid reports input that does not parse as the field's kind. The
// interactive collector re-prompts on it; the scripted collector turns it
// into a usage error.
var ErrInvalid = errors.New("invalid input")

// ErrRequired reports an empty response to a required field.
var ErrRequired = errors.New("required field left empty")

// Coerce parses a single raw input according to the field's kind.
//
// An empty input on an optional field reports present == false: the field is
// to be omitted from the payload. An empty input on a required field is
// ErrRequired. An unrecognized kind coerces to absent rather than failing;
// a bad field declaration must not take the whole command down.
func (f Field) Coerce(raw string) (value any, present bool, err error) {
	if raw == "" {
		if f.Optional {
			return nil, false, nil
		}
		return nil, false, ErrRequired
	}

	switch f.Kind {
	case String, Secret, Duration:
		return raw, true, nil

	case Bool:
		b, err := parseYesNo(raw)
		if err != nil {
			return nil, false, err
		}
		return b, true, nil

	case Int:
		for _, r := range raw {
			if r < '0' || r > '9' {
				return nil, false, ErrInvalid
			}
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false, ErrInvalid
		}
		return n, true, nil

	case List:
		parts := strings.Split(raw, ",")
		items := make([]string, 0, len(parts))
		for _, part := range parts {
			items = append(items, strings.TrimSpace(part))
		}
		return items, true, nil

	default:
		return nil, false, nil
	}
}

// coerceArg is the scripted-mode variant of Coerce. It applies the same
// rules except that booleans additionally accept True/False spellings, which
// is how flag values like --site-admin=True have always been written.
func (f Field) coerceArg(raw string) (any, bool, error) {
	if f.Kind == Bool && raw != "" {
		switch strings.ToUpper(raw) {
		case "TRUE":
			return true, true, nil
		case "FALSE":
			return false, true, nil
		}
	}
	return f.Coerce(raw)
}

func parseYesNo(raw string) (bool, error) {
	switch strings.ToUpper(raw) {
	case "Y", "YES":
		return true, nil
	case "N", "NO":
		return false, nil
	}
	return false, ErrInvalid
}
