package genfs

import (
	"errors"
	"io/fs"

	"github.com/matthewmueller/glob"
)

// ErrOwnOutput is returned when a generator tries to read the file it's
// generating
var ErrOwnOutput = errors.New("genfs: source and destination are the same file")

// FS is the view of the source filesystem that generators read from
type FS interface {
	fs.FS
	fs.GlobFS
}

type scopedFS struct {
	fsys fs.FS
	from string // generator path
}

var _ FS = (*scopedFS)(nil)

// Open implements fs.FS
func (f *scopedFS) Open(name string) (fs.File, error) {
	if name == f.from {
		return nil, &fs.PathError{Op: "open", Path: name, Err: ErrOwnOutput}
	}
	return f.fsys.Open(name)
}

// Glob implements fs.GlobFS
func (f *scopedFS) Glob(pattern string) ([]string, error) {
	matches, err := glob.MatchFS(f.fsys, pattern)
	if err != nil {
		return nil, err
	}
	return matches, nil
}
