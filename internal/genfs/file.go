package genfs

import (
	"bytes"
	"io/fs"
)

// File is the file handed to a generator. Anything written to it becomes the
// contents of the generated file.
type File struct {
	mode fs.FileMode
	data *bytes.Buffer
}

func (f *File) Mode() fs.FileMode {
	return f.mode
}

func (f *File) Write(p []byte) (n int, err error) {
	return f.data.Write(p)
}
