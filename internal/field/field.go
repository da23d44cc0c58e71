// Package field declares the typed input fields that make up a command's
// request payload and turns raw textual input into coerced values.
//
// Every climesync command describes its inputs as an ordered list of Fields.
// The same declaration drives interactive prompting and scripted argument
// parsing, so the two modes cannot drift apart.
package field

// Kind is the input type of a field.
type Kind int

const (
	String Kind = iota
	// Secret is a string that must never be echoed, logged, or written to
	// the configuration file without explicit confirmation.
	Secret
	Int
	Bool
	List
	// Duration is a free-form duration string such as "1h30m" or a number
	// of seconds. It is passed to the server as-is.
	Duration
)

// Field is a single named input.
type Field struct {
	// Name is the payload key the coerced value is stored under.
	Name string
	// Prompt is the text shown when asking for the field interactively.
	Prompt string
	Kind   Kind
	// Optional fields may be left empty; they are then omitted from the
	// payload entirely rather than sent as an empty value.
	Optional bool
}

// Payload is the normalized request body assembled from coerced field
// values. Fields the user left empty are absent, not present-but-empty.
type Payload map[string]any
