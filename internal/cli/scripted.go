package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osuosl/climesync/internal/command"
	"github.com/osuosl/climesync/internal/render"
)

// runScripted bootstraps a session from flags and the rc file, runs one
// command, and prints the result. Validation failures surface as usage
// errors (non-zero exit); everything else, remote errors included, is
// printed and exits 0.
func runScripted(name string, inv command.Invocation) error {
	if res := command.Connect(appInstance, connectURL, false); res.Err != nil {
		printResult(res)
		return nil
	}
	if res := command.SignIn(appInstance, username, password, false); res.Err != nil {
		printResult(res)
		return nil
	}

	d, ok := command.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}

	res := command.Execute(appInstance, d, inv)
	if res.Err != nil && res.Err.Kind == command.ErrValidation {
		return errors.New(res.Err.Message)
	}

	printResult(res)
	return nil
}

func printResult(res command.Result) {
	switch {
	case res.Err != nil:
		render.Error(appInstance.Out, res.Err.Label(), res.Err.Message)
	case res.Note != "":
		render.Note(appInstance.Out, res.Note)
	case len(res.Records) > 0:
		render.Records(appInstance.Out, res.Records)
	}
}

// setArg records a flag value that was actually supplied.
func setArg(args map[string]string, name, value string) {
	if value != "" {
		args[name] = value
	}
}

// listArg accepts both the comma-delimited form and the historical
// bracketed space-delimited form ("[userone usertwo]") for list values.
func listArg(v string) string {
	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
		v = strings.TrimSuffix(strings.TrimPrefix(v, "["), "]")
		return strings.Join(strings.Fields(v), ",")
	}
	return v
}

// accessPairs splits trailing (<username> <access_mode>) argument pairs.
func accessPairs(args []string) (map[string]string, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("expected (username access_mode) pairs, got %d trailing arguments", len(args))
	}

	codes := make(map[string]string, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		codes[args[i]] = args[i+1]
	}
	return codes, nil
}
