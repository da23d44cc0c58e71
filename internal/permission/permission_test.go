package permission

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuosl/climesync/internal/prompt"
)

func TestParseCode(t *testing.T) {
	perms, err := ParseCode("101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Permissions{Member: true, Spectator: false, Manager: true}
	if perms != want {
		t.Fatalf("ParseCode(101) = %+v, want %+v", perms, want)
	}
}

func TestParseCodeRejectsDecimalForm(t *testing.T) {
	// "101" binary equals decimal 5, but only the 3-character binary
	// string is a valid code.
	if _, err := ParseCode("5"); err == nil {
		t.Fatalf("ParseCode(5) should fail: decimal form is not a code")
	}
}

func TestParseCodeInvalid(t *testing.T) {
	for _, code := range []string{"", "10", "1011", "10a", "abc", "  1"} {
		if _, err := ParseCode(code); err == nil {
			t.Fatalf("ParseCode(%q) should fail", code)
		}
	}
}

func TestCodeRoundTrip(t *testing.T) {
	for i := 0; i < 8; i++ {
		perms := Permissions{
			Member:    i&4 != 0,
			Spectator: i&2 != 0,
			Manager:   i&1 != 0,
		}

		decoded, err := ParseCode(perms.Code())
		if err != nil {
			t.Fatalf("round trip %+v: %v", perms, err)
		}
		if decoded != perms {
			t.Fatalf("round trip %+v came back as %+v", perms, decoded)
		}
	}
}

func TestParseCodes(t *testing.T) {
	users, err := ParseCodes(map[string]string{
		"userone": "100",
		"usertwo": "111",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if users["userone"] != (Permissions{Member: true}) {
		t.Fatalf("userone = %+v", users["userone"])
	}
	if users["usertwo"] != (Permissions{Member: true, Spectator: true, Manager: true}) {
		t.Fatalf("usertwo = %+v", users["usertwo"])
	}

	if _, err := ParseCodes(map[string]string{"bad": "7"}); err == nil {
		t.Fatalf("expected error for non-binary code")
	}
}

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("y\nn\ny\n"), &out)

	users, err := Ask(p, []string{"userone"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Permissions{Member: true, Spectator: false, Manager: true}
	if users["userone"] != want {
		t.Fatalf("Ask = %+v, want %+v", users["userone"], want)
	}
	if !strings.Contains(out.String(), "Is userone a project member?") {
		t.Fatalf("missing member question in %q", out.String())
	}
}
