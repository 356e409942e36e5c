package game

import (
	"strings"
	"testing"
)

func TestRandomCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := randomCode()
		if len(code) != codeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), codeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q, not in the unambiguous alphabet", code, r)
			}
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abcd", "ABCD"},
		{" aBcD ", "ABCD"},
		{"XYZ2", "XYZ2"},
	}
	for _, tt := range tests {
		if got := normalizeCode(tt.in); got != tt.want {
			t.Errorf("normalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAlphabetOmitsAmbiguousCharacters(t *testing.T) {
	for _, r := range "0O1IL" {
		if strings.ContainsRune(codeAlphabet, r) {
			t.Errorf("alphabet contains ambiguous character %q", r)
		}
	}
}
