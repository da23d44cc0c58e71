package cli

import "testing"

func TestListArg(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"docs", "docs"},
		{"docs,dev", "docs,dev"},
		{"[userone usertwo]", "userone,usertwo"},
		{"[px]", "px"},
		{"", ""},
	}
	for _, c := range cases {
		if got := listArg(c.in); got != c.want {
			t.Fatalf("listArg(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAccessPairs(t *testing.T) {
	codes, err := accessPairs([]string{"userone", "101", "usertwo", "111"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if codes["userone"] != "101" || codes["usertwo"] != "111" {
		t.Fatalf("codes = %v", codes)
	}

	if _, err := accessPairs([]string{"userone"}); err == nil {
		t.Fatal("odd trailing arguments must be rejected")
	}

	if codes, err := accessPairs(nil); err != nil || len(codes) != 0 {
		t.Fatalf("no pairs: codes = %v err = %v", codes, err)
	}
}

func TestSetArg(t *testing.T) {
	args := map[string]string{}
	setArg(args, "notes", "")
	setArg(args, "project", "px")

	if _, ok := args["notes"]; ok {
		t.Fatal("empty values must not be recorded")
	}
	if args["project"] != "px" {
		t.Fatalf("args = %v", args)
	}
}
