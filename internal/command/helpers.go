package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/osuosl/climesync/internal/field"
	"github.com/osuosl/climesync/internal/render"
)

const errNotConnected = "Not connected to TimeSync server"

// requireSession is every handler's precondition: without a session the
// command returns a structured error and performs no external call.
func (a *App) requireSession() *Result {
	if a.Session == nil {
		r := Errf(ErrSession, errNotConnected)
		return &r
	}
	return nil
}

// gather produces the command payload: interactively by prompting for each
// field, or from pre-supplied argument values in scripted mode.
func (a *App) gather(inv Invocation, fields []field.Field) (field.Payload, *Result) {
	if inv.Interactive {
		payload, err := field.Collect(a.Prompt, fields)
		if err != nil {
			r := Errf(ErrValidation, "reading input: %v", err)
			return nil, &r
		}
		return payload, nil
	}

	payload, err := field.FromArgs(fields, inv.Args)
	if err != nil {
		r := Errf(ErrValidation, "%v", err)
		return nil, &r
	}
	return payload, nil
}

// selectorValue resolves the command's target identifier (uuid, slug,
// username). Scripted invocations supply it directly; interactive ones
// prompt for it.
func (a *App) selectorValue(inv Invocation, f field.Field) (string, *Result) {
	if !inv.Interactive {
		if inv.Target == "" {
			r := Errf(ErrValidation, "missing required argument %q", f.Name)
			return "", &r
		}
		return inv.Target, nil
	}

	value, _, err := field.Ask(a.Prompt, f)
	if err != nil {
		r := Errf(ErrValidation, "reading input: %v", err)
		return "", &r
	}
	return value.(string), nil
}

// askYesNo asks a single strict y/N question.
func (a *App) askYesNo(promptText string) (bool, error) {
	value, _, err := field.Ask(a.Prompt, field.Field{
		Name:   "confirm",
		Prompt: promptText,
		Kind:   field.Bool,
	})
	if err != nil {
		return false, err
	}
	return value.(bool), nil
}

// confirmDelete asks before a destructive call. Scripted invocations that
// already named their target skip confirmation and delete immediately.
func (a *App) confirmDelete(inv Invocation, target string) (bool, *Result) {
	if !inv.Interactive {
		return true, nil
	}

	really, err := a.askYesNo(fmt.Sprintf("Do you really want to delete %s?", target))
	if err != nil {
		r := Errf(ErrValidation, "reading input: %v", err)
		return false, &r
	}
	return really, nil
}

// finishGet applies the shared tail of the four get-* commands: the
// interactive "no results" note, the interactive CSV offer, and scripted
// CSV emission to standard output (which suppresses the printed records).
func (a *App) finishGet(inv Invocation, entity string, records []Record) Result {
	if inv.Interactive {
		if len(records) == 0 {
			return Notef("No %s were returned", pluralEntity(entity))
		}

		if r := a.offerCSV(entity, records); r != nil {
			return *r
		}
		return OkAll(records)
	}

	if inv.CSV {
		if err := render.WriteCSV(a.Out, entity, records); err != nil {
			return Errf(ErrValidation, "writing CSV: %v", err)
		}
		return Empty()
	}

	return OkAll(records)
}

// offerCSV asks whether to also write the displayed results to a CSV file.
func (a *App) offerCSV(entity string, records []Record) *Result {
	write, err := a.askYesNo("Write the results to a CSV file?")
	if err != nil || !write {
		return nil
	}

	path, pathErr := a.Prompt.Line("Path to CSV file: ")
	if pathErr != nil || path == "" {
		return nil
	}

	if err := writeCSVFile(path, entity, records); err != nil {
		r := Errf(ErrValidation, "writing CSV: %v", err)
		return &r
	}
	return nil
}

func writeCSVFile(path, entity string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := render.WriteCSV(f, entity, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func pluralEntity(entity string) string {
	if strings.HasSuffix(entity, "y") {
		return entity[:len(entity)-1] + "ies"
	}
	return entity + "s"
}

// singletonList coerces a lone string into a one-element list for the
// multi-valued keys the API expects as arrays.
func singletonList(payload field.Payload, key string) {
	if s, ok := payload[key].(string); ok {
		payload[key] = []string{s}
	}
}

// isErrorRecord reports whether a record is error-shaped.
func isErrorRecord(record Record) bool {
	_, ok := record["error"]
	return ok
}

// remoteErr wraps a transport-level client failure.
func remoteErr(err error) Result {
	return Errf(ErrRemote, "%v", err)
}
