package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

//go:generate go-enum --values --names --noprefix --flag --nocase

// Format is the encoding of a generated data file.
/* ENUM(
json, yaml, toml
) */
type Format string

// Ext returns the file extension conventionally used for f.
func (x Format) Ext() string {
	return "." + string(x)
}

// Parse is ParseFormat with surrounding space ignored and "yml" accepted for YAML.
func Parse(name string) (Format, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "yml") {
		return YAML, nil
	}
	return ParseFormat(name)
}

// FromPath infers the format from the file extension of p.
func FromPath(p string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(p), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %q: no extension", p)
	}
	return Parse(ext)
}
