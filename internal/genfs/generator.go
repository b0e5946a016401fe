package genfs

import (
	"bytes"
	"io/fs"

	"github.com/matthewmueller/virt"
)

type FileGenerator interface {
	GenerateFile(fsys FS, file *File) error
}

type fileGenerator struct {
	path  string
	label string
	fn    func(fsys FS, file *File) error
}

// Generate runs the generator against fsys. Nothing is cached, every call
// produces the file from scratch.
func (g *fileGenerator) Generate(fsys fs.FS) (*virt.File, error) {
	file := &File{fs.FileMode(0), &bytes.Buffer{}}
	if err := g.fn(&scopedFS{fsys, g.path}, file); err != nil {
		return nil, err
	}
	return &virt.File{
		Path: g.path,
		Mode: file.Mode(),
		Data: file.data.Bytes(),
	}, nil
}

func (g *fileGenerator) String() string {
	return g.label
}
