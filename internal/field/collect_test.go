package field

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/osuosl/climesync/internal/prompt"
)

func promptFrom(input string) (*prompt.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return prompt.New(strings.NewReader(input), &out), &out
}

func TestCollectOmitsEmptyOptionals(t *testing.T) {
	p, _ := promptFrom("projectx\n\n\n")

	payload, err := Collect(p, []Field{
		{Name: "project", Prompt: "Project slug", Kind: String},
		{Name: "issue_uri", Prompt: "Issue URI", Kind: String, Optional: true},
		{Name: "notes", Prompt: "Notes", Kind: String, Optional: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Payload{"project": "projectx"}
	if !reflect.DeepEqual(payload, want) {
		t.Fatalf("payload = %v, want %v", payload, want)
	}
	if _, ok := payload["notes"]; ok {
		t.Fatalf("empty optional field must be absent, not empty")
	}
}

func TestCollectRepromptsUntilValid(t *testing.T) {
	// Two bad answers before a good one.
	p, out := promptFrom("perhaps\n12\nyes\n")

	payload, err := Collect(p, []Field{
		{Name: "include_deleted", Prompt: "Include deleted?", Kind: Bool},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload["include_deleted"] != true {
		t.Fatalf("payload = %v, want include_deleted=true", payload)
	}
	if n := strings.Count(out.String(), "Please submit a valid input"); n != 2 {
		t.Fatalf("expected 2 re-prompt notices, got %d", n)
	}
}

func TestCollectRepromptsEmptyRequired(t *testing.T) {
	p, _ := promptFrom("\n\ncoding\n")

	payload, err := Collect(p, []Field{
		{Name: "slug", Prompt: "Activity slug", Kind: String},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload["slug"] != "coding" {
		t.Fatalf("payload = %v, want slug=coding", payload)
	}
}

func TestCollectDecoratesPrompts(t *testing.T) {
	p, out := promptFrom("5\ny\na,b\n")

	_, err := Collect(p, []Field{
		{Name: "duration", Prompt: "Duration in seconds", Kind: Int},
		{Name: "active", Prompt: "Active?", Kind: Bool, Optional: true},
		{Name: "slugs", Prompt: "Slugs", Kind: List},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"(Integer) Duration in seconds: ",
		"(Optional) (y/N) Active?: ",
		"(Comma delimited) Slugs: ",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("prompt output %q missing %q", text, want)
		}
	}
}

func TestFromArgs(t *testing.T) {
	fields := []Field{
		{Name: "name", Prompt: "Project name", Kind: String},
		{Name: "slugs", Prompt: "Project slugs", Kind: List},
		{Name: "uri", Prompt: "Project URI", Kind: String, Optional: true},
	}

	payload, err := FromArgs(fields, map[string]string{
		"name":  "Project X",
		"slugs": "px, projectx",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Payload{
		"name":  "Project X",
		"slugs": []string{"px", "projectx"},
	}
	if !reflect.DeepEqual(payload, want) {
		t.Fatalf("payload = %v, want %v", payload, want)
	}
}

func TestFromArgsMissingRequired(t *testing.T) {
	fields := []Field{{Name: "name", Prompt: "Name", Kind: String}}

	if _, err := FromArgs(fields, map[string]string{}); err == nil {
		t.Fatalf("expected error for missing required field")
	}
}

func TestFromArgsInvalidValue(t *testing.T) {
	fields := []Field{{Name: "active", Prompt: "Active?", Kind: Bool, Optional: true}}

	if _, err := FromArgs(fields, map[string]string{"active": "banana"}); err == nil {
		t.Fatalf("expected error for invalid boolean")
	}
}
