package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/goccy/go-yaml"
	"github.com/krau/assetlist/pkg/assettypes"
	"github.com/krau/assetlist/pkg/enums/format"
	"github.com/pelletier/go-toml/v2"
)

// TOMLKey holds the listing in TOML output, which has no top-level arrays.
const TOMLKey = "files"

type tomlDocument struct {
	Files []assettypes.FileDescriptor `toml:"files"`
}

// Encode writes descs to w in the given format.
func Encode(w io.Writer, f format.Format, descs []assettypes.FileDescriptor) error {
	if descs == nil {
		descs = []assettypes.FileDescriptor{}
	}
	switch f {
	case format.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(descs)
	case format.YAML:
		return yaml.NewEncoder(w).Encode(descs)
	case format.TOML:
		return toml.NewEncoder(w).Encode(tomlDocument{Files: descs})
	default:
		return fmt.Errorf("output: %w", format.ErrInvalidFormat)
	}
}

// WriteFile encodes descs into path, creating parent directories as needed.
// The file is replaced atomically.
func WriteFile(path string, f format.Format, descs []assettypes.FileDescriptor) error {
	var buf bytes.Buffer
	if err := Encode(&buf, f, descs); err != nil {
		return err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)
	if err := fileutil.CreateDir(dir); err != nil {
		return fmt.Errorf("output: failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(absPath)+".*")
	if err != nil {
		return fmt.Errorf("output: failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("output: failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, absPath)
}
