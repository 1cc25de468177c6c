package utils

import (
	"strings"
	"testing"
)

func TestGenerateShareIDLength(t *testing.T) {
	shareID, err := GenerateShareID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(shareID) != 10 {
		t.Errorf("expected share ID of length 10, got %d (%q)", len(shareID), shareID)
	}
}

func TestGenerateShareIDAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		shareID, err := GenerateShareID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, c := range shareID {
			if !strings.ContainsRune(shareIDAlphabet, c) {
				t.Fatalf("share ID %q contains %q outside the alphabet", shareID, c)
			}
		}
	}
}

func TestGenerateShareIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		shareID, err := GenerateShareID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if seen[shareID] {
			t.Fatalf("duplicate share ID %q after %d generations", shareID, i)
		}
		seen[shareID] = true
	}
}
