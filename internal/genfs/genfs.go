package genfs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/matthewmueller/virt"
)

// New generator filesystem layered over fsys. Generators read their inputs
// from fsys and any path without a generator falls through to it.
func New(fsys fs.FS) *FileSystem {
	return &FileSystem{fsys, newTree()}
}

type FileSystem struct {
	fsys fs.FS
	tree *tree
}

var _ fs.FS = (*FileSystem)(nil)

// FileGenerator registers generator at relpath, replacing any generator
// already there.
func (f *FileSystem) FileGenerator(relpath string, generator FileGenerator) error {
	if !fs.ValidPath(relpath) {
		return formatError(fs.ErrInvalid, "invalid generator path %q", relpath)
	}
	return f.tree.Insert(relpath, &fileGenerator{relpath, fmt.Sprintf("%T", generator), generator.GenerateFile})
}

func (f *FileSystem) Open(target string) (fs.File, error) {
	// Check that target is valid
	if !fs.ValidPath(target) {
		return nil, &fs.PathError{
			Op:   "open",
			Path: target,
			Err:  fs.ErrInvalid,
		}
	}
	// First look for an exact matching generator
	match, found := f.tree.Find(target)
	if found && match.Mode.IsGen() {
		vfile, err := match.generator.Generate(f.fsys)
		if err != nil {
			return nil, formatError(err, "generate %q", target)
		}
		return virt.Open(vfile), nil
	}
	// Next try opening the file from the fallback filesystem
	if file, err := f.fsys.Open(target); err == nil {
		return file, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, formatError(err, "open %q", target)
	}
	// Lastly, the target may be a filler directory leading to a generator
	if found && match.Mode.IsDir() {
		return virt.Open(&virt.File{
			Path: target,
			Mode: match.Mode.FileMode(),
		}), nil
	}
	return nil, formatError(fs.ErrNotExist, "open %q", target)
}

// Generated returns the paths of every registered generator in sorted order
func (f *FileSystem) Generated() (paths []string) {
	for _, node := range f.tree.Generators() {
		paths = append(paths, node.Path)
	}
	return paths
}

// Print the generator tree
func (f *FileSystem) Print() string {
	return f.tree.Print()
}

func formatError(err error, format string, args ...interface{}) error {
	return fmt.Errorf("genfs: %s. %w", fmt.Sprintf(format, args...), err)
}
