package format_test

import (
	"errors"
	"testing"

	"github.com/krau/assetlist/pkg/enums/format"
)

func TestFromPath(t *testing.T) {
	tests := []struct {
		input    string
		expected format.Format
		wantErr  bool
	}{
		{input: "_data/filelist.json", expected: format.JSON},
		{input: "data/assets.YAML", expected: format.YAML},
		{input: "data/assets.yml", expected: format.YAML},
		{input: "data/assets.toml", expected: format.TOML},
		{input: "data/assets", wantErr: true},
		{input: "data/assets.xml", wantErr: true},
	}

	for _, tc := range tests {
		got, err := format.FromPath(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("FromPath(%q) expected error, got %q", tc.input, got)
			}
			continue
		}
		if err != nil || got != tc.expected {
			t.Errorf("FromPath(%q) = %q, %v; want %q", tc.input, got, err, tc.expected)
		}
	}
}

func TestParseFormat_Invalid(t *testing.T) {
	if _, err := format.ParseFormat("csv"); !errors.Is(err, format.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestParse_Alias(t *testing.T) {
	for _, name := range []string{"yml", " YML ", "yaml"} {
		if got, err := format.Parse(name); err != nil || got != format.YAML {
			t.Errorf("Parse(%q) = %q, %v; want yaml", name, got, err)
		}
	}
	if _, err := format.ParseFormat("yml"); err == nil {
		t.Error("ParseFormat should only accept declared names")
	}
}
