package cmd_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/krau/assetlist/cmd"
	"github.com/krau/assetlist/lister"
	"github.com/krau/assetlist/pkg/assettypes"
	"github.com/spf13/viper"
)

// newSite creates a site root with assets/a.txt (5 bytes) and assets/b.png (1024 bytes)
// and makes it the working directory.
func newSite(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	root := t.TempDir()
	dir := filepath.Join(root, "assets")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.png"), bytes.Repeat([]byte{0}, 1024), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(root)
	return root
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListJSON(t *testing.T) {
	newSite(t)

	out, err := run(t, "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var descs []assettypes.FileDescriptor
	if err := json.Unmarshal([]byte(out), &descs); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	want := []assettypes.FileDescriptor{
		{Path: "assets/a.txt", Name: "a.txt", Size: 5},
		{Path: "assets/b.png", Name: "b.png", Size: 1024},
	}
	if len(descs) != len(want) || descs[0] != want[0] || descs[1] != want[1] {
		t.Fatalf("list --json = %+v; want %+v", descs, want)
	}
}

func TestListTable(t *testing.T) {
	newSite(t)

	out, err := run(t, "ls")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	for _, s := range []string{"a.txt", "assets/b.png", "1.0 KiB", "2 assets"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestListMissingDirectory(t *testing.T) {
	newSite(t)

	_, err := run(t, "list", "--dir", "nope")
	if !errors.Is(err, lister.ErrDirectoryAccess) {
		t.Fatalf("expected ErrDirectoryAccess, got %v", err)
	}
}

func TestGenerateYAML(t *testing.T) {
	root := newSite(t)

	if _, err := run(t, "generate", "-o", "data/assets.yml"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "data", "assets.yml"))
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	var descs []assettypes.FileDescriptor
	if err := yaml.Unmarshal(data, &descs); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if len(descs) != 2 || descs[1].Size != 1024 {
		t.Fatalf("unexpected data file content: %+v", descs)
	}
}

func TestGenerateDefaultPath(t *testing.T) {
	root := newSite(t)

	if _, err := run(t, "gen", "--root", root); err != nil {
		t.Fatalf("gen: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "_data", "filelist.json")); err != nil {
		t.Fatalf("default data file not written: %v", err)
	}
}

func TestGenerateUnknownExtension(t *testing.T) {
	newSite(t)

	if _, err := run(t, "generate", "-o", "data/assets.xml"); err == nil {
		t.Fatal("expected error for unknown output format")
	}
}

func TestVersion(t *testing.T) {
	newSite(t)

	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "assetlist version: dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}
