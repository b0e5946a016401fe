package genfs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/spf13/afero"
)

// WriteError is returned when a generated file can't be written to the
// destination filesystem.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("genfs: unable to write %q. %s", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ReadError is returned when an existing file on the destination filesystem
// can't be read back for comparison.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("genfs: unable to read %q. %s", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Sync generates every registered file and writes it into dst. Generation
// errors are returned as-is, write errors as *WriteError. Sync stops at the
// first failure.
func Sync(gfs *FileSystem, dst afero.Fs) error {
	for _, relpath := range gfs.Generated() {
		data, err := fs.ReadFile(gfs, relpath)
		if err != nil {
			return err
		}
		if err := WriteFile(dst, relpath, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// Stale returns the generated paths whose contents in dst are missing or
// differ from what would be generated.
func Stale(gfs *FileSystem, dst afero.Fs) (stale []string, err error) {
	for _, relpath := range gfs.Generated() {
		data, err := fs.ReadFile(gfs, relpath)
		if err != nil {
			return nil, err
		}
		existing, err := afero.ReadFile(dst, relpath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				stale = append(stale, relpath)
				continue
			}
			return nil, &ReadError{relpath, err}
		}
		if !bytes.Equal(existing, data) {
			stale = append(stale, relpath)
		}
	}
	return stale, nil
}

// WriteFile replaces name in dst with data. Parent directories are created
// as needed. The data is first written to a temporary file in the same
// directory and then renamed over name, so readers never observe a partial
// file and a failed write leaves the previous contents in place.
func WriteFile(dst afero.Fs, name string, data []byte, perm fs.FileMode) error {
	dir := path.Dir(name)
	if err := dst.MkdirAll(dir, 0755); err != nil {
		return &WriteError{name, err}
	}
	tmp, err := afero.TempFile(dst, dir, "."+path.Base(name)+".*")
	if err != nil {
		return &WriteError{name, err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		dst.Remove(tmpName)
		return &WriteError{name, err}
	}
	if err := tmp.Close(); err != nil {
		dst.Remove(tmpName)
		return &WriteError{name, err}
	}
	if err := dst.Chmod(tmpName, perm); err != nil {
		dst.Remove(tmpName)
		return &WriteError{name, err}
	}
	if err := dst.Rename(tmpName, name); err != nil {
		dst.Remove(tmpName)
		return &WriteError{name, err}
	}
	return nil
}
