package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuosl/climesync/internal/timesync"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{3721, "1h 2m 1s"},
		{0, "0h 0m 0s"},
		{59, "0h 0m 59s"},
		{3600, "1h 0m 0s"},
		{7325, "2h 2m 5s"},
	}

	for _, c := range cases {
		if got := FormatDuration(c.seconds); got != c.want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestDurationSeconds(t *testing.T) {
	if n, ok := DurationSeconds(float64(3661)); !ok || n != 3661 {
		t.Fatalf("DurationSeconds(float64) = (%d, %v)", n, ok)
	}
	if _, ok := DurationSeconds("1h 0m 0s"); ok {
		t.Fatalf("a string is not a numeric duration")
	}
}

func TestRecords(t *testing.T) {
	var out bytes.Buffer
	Records(&out, []timesync.Record{
		{"project": []any{"px"}, "duration": float64(12), "user": "userone"},
	})

	text := out.String()
	for _, want := range []string{"duration: 12", "project: px", "user: userone"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output %q missing %q", text, want)
		}
	}

	// Keys are sorted for stable output.
	if strings.Index(text, "duration:") > strings.Index(text, "project:") {
		t.Fatalf("keys not sorted: %q", text)
	}
}

func TestWriteCSV(t *testing.T) {
	var out bytes.Buffer
	err := WriteCSV(&out, "time", []timesync.Record{
		{
			"uuid":       "u-1",
			"user":       "userone",
			"project":    []any{"px", "projectx"},
			"activities": []any{"dev"},
			"duration":   float64(3600),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "uuid,user,project,activities,duration") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "px;projectx") {
		t.Fatalf("list cell not joined with ';': %q", lines[1])
	}
}

func TestWriteCSVZeroRecordsHeaderOnly(t *testing.T) {
	var out bytes.Buffer
	if err := WriteCSV(&out, "user", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "username,") {
		t.Fatalf("expected header-only output, got %q", out.String())
	}
}

func TestWriteCSVUnknownEntity(t *testing.T) {
	if err := WriteCSV(&bytes.Buffer{}, "invoice", nil); err == nil {
		t.Fatalf("expected error for unknown entity")
	}
}
