package lister

import "errors"

var (
	ErrDirectoryAccess = errors.New("lister: cannot read asset directory")
	ErrEntryStat       = errors.New("lister: cannot stat asset entry")
	ErrInvalidConfig   = errors.New("lister: invalid config")
)
