package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name    string
		wantErr bool
	}{
		{"goodname", false},
		{"Good Name", false},
		{"açaí", false},
		{"nirin one", false},
		{"", true},
		{"   ", true},
		{"!!!", true},
		{strings.Repeat("x", 101), true},
	}

	for _, tc := range cases {
		err := validateName(tc.name)
		if tc.wantErr && err == nil {
			t.Fatalf("expected error for %q", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.name, err)
		}
	}
}

func TestResolveNamesFromPositionals(t *testing.T) {
	names, err := resolveNames([]string{" Acme ", "", "Nirin One"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if names[0] != "Acme" || names[1] != "Nirin One" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestResolveNamesRejectsMixedInput(t *testing.T) {
	if _, err := resolveNames([]string{"acme"}, "names.txt"); err == nil {
		t.Fatal("expected error when combining positional names with --names-file")
	}
}

func TestResolveNamesRejectsEmptyInput(t *testing.T) {
	if _, err := resolveNames(nil, ""); err == nil {
		t.Fatal("expected error when no names are given")
	}
}

func TestReadNamesFileSkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	content := "# candidates\nAcme\n\nNirin One\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write names file: %v", err)
	}

	names, err := readNamesFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d: %v", len(names), names)
	}
	if names[1] != "Nirin One" {
		t.Fatalf("unexpected second name: %q", names[1])
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"Nirin One":  "nirin-one",
		"  acme  ":   "acme",
		"pipe|test?": "pipe-test",
		"!!!":        "output",
	}

	for input, want := range cases {
		if got := sanitizeFilename(input); got != want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", input, got, want)
		}
	}
}
