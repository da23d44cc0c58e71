package command

import "fmt"

// ErrKind classifies a failed command. The dispatcher only ever switches on
// this closed set; nothing probes result maps for magic keys.
type ErrKind int

const (
	// ErrSession: no active connection. The command no-ops.
	ErrSession ErrKind = iota
	// ErrAuth: missing or incomplete credentials on the climesync side,
	// distinct from a server-origin failure.
	ErrAuth
	// ErrValidation: malformed scripted input (bad integer, bad access
	// code). Surfaced as a usage error at the CLI boundary.
	ErrValidation
	// ErrRemote: the TimeSync call itself failed.
	ErrRemote
)

// Error is a failed command outcome. It is a value, not a panic: handlers
// return it and the dispatcher prints it.
type Error struct {
	Kind    ErrKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Label is the prefix used when printing the error. Client-side failures
// are visibly distinct from whatever the server said.
func (e *Error) Label() string {
	if e.Kind == ErrAuth || e.Kind == ErrValidation {
		return "climesync error"
	}
	return "error"
}

// Result is the tagged outcome of one command invocation: records to
// print, an informational note, an error, or nothing at all.
type Result struct {
	Records []Record
	Note    string
	Err     *Error
}

// Ok wraps server records, which may be error-shaped; they are passed
// through for printing either way.
func Ok(records ...Record) Result {
	return Result{Records: records}
}

// OkAll wraps a record slice as returned by the client.
func OkAll(records []Record) Result {
	return Result{Records: records}
}

// Empty is a successful result with nothing to print.
func Empty() Result {
	return Result{}
}

// Notef builds an informational result, e.g. "No times were returned".
func Notef(format string, args ...any) Result {
	return Result{Note: fmt.Sprintf(format, args...)}
}

// Errf builds an error result of the given kind.
func Errf(kind ErrKind, format string, args ...any) Result {
	return Result{Err: &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}}
}

// IsEmpty reports whether there is nothing to print.
func (r Result) IsEmpty() bool {
	return len(r.Records) == 0 && r.Note == "" && r.Err == nil
}
