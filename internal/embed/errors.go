package embed

import (
	"errors"
	"fmt"

	"github.com/gzqccnu/MiniOS/internal/genfs"
)

// ErrStale is returned by Check when the destination doesn't match the
// source document.
var ErrStale = errors.New("embed: generated file is out of date")

// ErrAmbiguousSource is returned when a source pattern matches more than one
// file.
var ErrAmbiguousSource = errors.New("embed: source pattern matches more than one file")

// SourceReadError is returned when the source document can't be opened, read
// or decoded.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("embed: unable to read source %q: %s", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// DestinationWriteError is returned when the generated file or one of its
// parent directories can't be written.
type DestinationWriteError struct {
	Path string
	Err  error
}

func (e *DestinationWriteError) Error() string {
	return fmt.Sprintf("embed: unable to write destination %q: %s", e.Path, e.Err)
}

func (e *DestinationWriteError) Unwrap() error {
	return e.Err
}

// DestinationReadError is returned by Check when an existing generated file
// can't be read back.
type DestinationReadError struct {
	Path string
	Err  error
}

func (e *DestinationReadError) Error() string {
	return fmt.Sprintf("embed: unable to read destination %q: %s", e.Path, e.Err)
}

func (e *DestinationReadError) Unwrap() error {
	return e.Err
}

// classify maps generator filesystem errors onto the embed error types
func classify(err error) error {
	var serr *SourceReadError
	if errors.As(err, &serr) {
		return serr
	}
	var werr *genfs.WriteError
	if errors.As(err, &werr) {
		return &DestinationWriteError{werr.Path, werr.Err}
	}
	var rerr *genfs.ReadError
	if errors.As(err, &rerr) {
		return &DestinationReadError{rerr.Path, rerr.Err}
	}
	return err
}
