// Package prompt provides line-oriented terminal prompting with optional
// no-echo entry for secrets. Readers and writers are injectable so command
// handlers can be exercised against scripted input in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads user responses one line at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// stdinFD is the file descriptor used for no-echo password entry.
	// It is -1 when the input is not a terminal (pipes, tests), in which
	// case secrets fall back to plain line reads.
	stdinFD int
}

// New creates a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		stdinFD: -1,
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.stdinFD = int(f.Fd())
	}

	return p
}

// Line displays label and returns the next line of input with surrounding
// whitespace trimmed.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Secret displays label and reads a line without echoing it back to the
// terminal. When input is not a terminal the value is read like any other
// line.
func (p *Prompter) Secret(label string) (string, error) {
	if p.stdinFD < 0 {
		return p.Line(label)
	}

	fmt.Fprint(p.out, label)
	raw, err := term.ReadPassword(p.stdinFD)
	fmt.Fprintln(p.out) // ReadPassword swallows the newline
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}

// Say writes a formatted message followed by a newline.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
