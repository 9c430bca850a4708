package statpolicy_test

import (
	"errors"
	"testing"

	"github.com/krau/assetlist/pkg/enums/statpolicy"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected statpolicy.Policy
	}{
		{input: "", expected: statpolicy.Skip},
		{input: "skip", expected: statpolicy.Skip},
		{input: " SKIP ", expected: statpolicy.Skip},
		{input: "Fail", expected: statpolicy.Fail},
	}
	for _, tc := range tests {
		got, err := statpolicy.Parse(tc.input)
		if err != nil || got != tc.expected {
			t.Errorf("Parse(%q) = %q, %v; want %q", tc.input, got, err, tc.expected)
		}
	}

	if _, err := statpolicy.Parse("ignore"); !errors.Is(err, statpolicy.ErrInvalidPolicy) {
		t.Fatalf("expected ErrInvalidPolicy, got %v", err)
	}
	if statpolicy.Policy("ignore").IsValid() {
		t.Fatal("ignore should not be valid")
	}
}

func TestPolicy_FlagValue(t *testing.T) {
	var p statpolicy.Policy
	if err := p.Set("FAIL"); err != nil || p != statpolicy.Fail {
		t.Fatalf("Set(FAIL) = %q, %v", p, err)
	}
	if err := p.Set("retry"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
