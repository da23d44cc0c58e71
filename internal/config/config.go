// Package config reads and writes the ~/.climesyncrc configuration file.
//
// The file is plain "key = value" lines with #-prefixed comments. It is
// shared with other climesync builds, so the format is fixed: any line that
// is neither a comment nor a key/value pair marks the whole file invalid
// and it is treated as empty configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Recognized keys. Unknown keys are preserved on rewrite but ignored.
const (
	KeyURL      = "timesync_url"
	KeyUsername = "username"
	KeyPassword = "password"
)

var (
	commentLine = regexp.MustCompile(`^#.*`)
	configLine  = regexp.MustCompile(`^[^=]+ = [^=]+`)
)

// Config is the parsed key/value contents of the rc file.
type Config map[string]string

// DefaultPath returns ~/.climesyncrc.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory if home is unavailable.
		return ".climesyncrc"
	}
	return filepath.Join(homeDir, ".climesyncrc")
}

// Validate checks that every line of the file at path is either a comment
// or a key/value pair. A missing file is invalid.
func Validate(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	for _, line := range splitLines(data) {
		if !commentLine.MatchString(line) && !configLine.MatchString(line) {
			return false
		}
	}

	return true
}

// Load reads the file at path. A missing or invalid file yields an empty
// configuration, never an error: climesync works without an rc file.
func Load(path string) Config {
	cfg := make(Config)

	if !Validate(path) {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	for _, line := range splitLines(data) {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		cfg[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return cfg
}

// Set writes a key/value pair to the file at path, preserving the other
// pairs. A newly created file is readable by the owner only.
func Set(path, key, value string) error {
	existing := Load(path)
	isNew := len(existing) == 0

	var b strings.Builder
	b.WriteString("# Climesync configuration file\n")

	keys := make([]string, 0, len(existing))
	for k := range existing {
		if k != key {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&b, "%s = %s\n", k, existing[k])
	}
	fmt.Fprintf(&b, "%s = %s\n", key, value)

	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if isNew {
		if err := os.Chmod(path, 0o600); err != nil {
			return fmt.Errorf("failed to restrict config permissions: %w", err)
		}
	}

	return nil
}

// splitLines breaks file contents into lines, dropping only a trailing
// newline. Interior blank lines are preserved so Validate sees them.
func splitLines(data []byte) []string {
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
