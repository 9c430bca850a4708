package lister

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/krau/assetlist/pkg/assettypes"
	"github.com/krau/assetlist/pkg/enums/statpolicy"
	"golang.org/x/sync/errgroup"
)

// DefaultDir is the asset directory used when Config.Dir is empty.
const DefaultDir = "assets"

type Config struct {
	// Dir is the asset directory, relative to the root of the filesystem.
	Dir string
	// Policy applies to entries whose size cannot be read. Empty means skip.
	Policy statpolicy.Policy
	// Workers bounds concurrent stat calls. 0 and 1 both mean sequential.
	Workers int
}

// Lister enumerates one directory and describes each of its entries.
type Lister struct {
	fsys    fs.FS
	dir     string
	policy  statpolicy.Policy
	workers int
}

func New(fsys fs.FS, cfg Config) (*Lister, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: nil filesystem", ErrInvalidConfig)
	}
	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	dir = path.Clean(filepath.ToSlash(dir))
	if !fs.ValidPath(dir) {
		return nil, fmt.Errorf("%w: dir %q must be relative and must not escape the root", ErrInvalidConfig, cfg.Dir)
	}
	// descriptor paths are "<dir>/<name>", so the root itself would yield "./name"
	if dir == "." {
		return nil, fmt.Errorf("%w: dir %q names the root, use a subdirectory", ErrInvalidConfig, cfg.Dir)
	}
	policy, err := statpolicy.Parse(string(cfg.Policy))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, cfg.Workers)
	}
	return &Lister{
		fsys:    fsys,
		dir:     dir,
		policy:  policy,
		workers: cfg.Workers,
	}, nil
}

// NewOS returns a Lister reading cfg.Dir under root on the local disk.
func NewOS(root string, cfg Config) (*Lister, error) {
	if root == "" {
		root = "."
	}
	return New(os.DirFS(root), cfg)
}

// ListAssets lists the "assets" directory of the working directory.
func ListAssets(ctx context.Context) ([]assettypes.FileDescriptor, error) {
	l, err := NewOS(".", Config{})
	if err != nil {
		return nil, err
	}
	return l.List(ctx)
}

func (l *Lister) Dir() string {
	return l.dir
}

func (l *Lister) Policy() statpolicy.Policy {
	return l.policy
}

// List reads the directory and stats every entry before returning.
// The result is in enumeration order and is never nil on success.
func (l *Lister) List(ctx context.Context) ([]assettypes.FileDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := log.FromContext(ctx).WithPrefix("lister")

	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryAccess, l.dir, err)
	}

	var descs []assettypes.FileDescriptor
	if l.workers > 1 && len(entries) > 1 {
		descs, err = l.listConcurrent(ctx, logger, entries)
	} else {
		descs, err = l.listSequential(ctx, logger, entries)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("listed assets", "dir", l.dir, "count", len(descs), "skipped", len(entries)-len(descs))
	return descs, nil
}

func (l *Lister) listSequential(ctx context.Context, logger *log.Logger, entries []fs.DirEntry) ([]assettypes.FileDescriptor, error) {
	descs := make([]assettypes.FileDescriptor, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		desc, err := l.describe(entry.Name())
		if err != nil {
			if l.policy == statpolicy.Fail {
				return nil, err
			}
			logger.Warn("skipping asset", "name", entry.Name(), "error", err)
			continue
		}
		descs = append(descs, desc)
	}
	return descs, nil
}

type slot struct {
	desc assettypes.FileDescriptor
	ok   bool
}

func (l *Lister) listConcurrent(ctx context.Context, logger *log.Logger, entries []fs.DirEntry) ([]assettypes.FileDescriptor, error) {
	slots := make([]slot, len(entries))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(l.workers)
	for i, entry := range entries {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			desc, err := l.describe(entry.Name())
			if err != nil {
				if l.policy == statpolicy.Fail {
					return err
				}
				logger.Warn("skipping asset", "name", entry.Name(), "error", err)
				return nil
			}
			slots[i] = slot{desc: desc, ok: true}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	descs := make([]assettypes.FileDescriptor, 0, len(entries))
	for _, s := range slots {
		if s.ok {
			descs = append(descs, s.desc)
		}
	}
	return descs, nil
}

// describe stats the entry, following symlinks.
func (l *Lister) describe(name string) (assettypes.FileDescriptor, error) {
	info, err := fs.Stat(l.fsys, path.Join(l.dir, name))
	if err != nil {
		return assettypes.FileDescriptor{}, fmt.Errorf("%w: %s: %w", ErrEntryStat, name, err)
	}
	return assettypes.FileDescriptor{
		Path: l.dir + "/" + name,
		Name: name,
		Size: info.Size(),
	}, nil
}
