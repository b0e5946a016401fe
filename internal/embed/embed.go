// Package embed turns a text document into a C source file that compiles the
// document into the kernel image as a byte array and a size constant.
package embed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gzqccnu/MiniOS/internal/genfs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Embed generates a C source file embedding the Source document. Source may
// be a glob pattern, in which case it must match exactly one file.
type Embed struct {
	Source  string
	Symbol  string   // defaults to Symbol(Source)
	License []string // defaults to License
}

var _ genfs.FileGenerator = (*Embed)(nil)

func (e *Embed) GenerateFile(fsys genfs.FS, file *genfs.File) error {
	if e.Symbol != "" && !ValidSymbol(e.Symbol) {
		return fmt.Errorf("%w %q", ErrInvalidSymbol, e.Symbol)
	}
	source, err := resolve(fsys, e.Source)
	if err != nil {
		return &SourceReadError{e.Source, err}
	}
	content, err := fs.ReadFile(fsys, source)
	if err != nil {
		return &SourceReadError{source, err}
	}
	data, err := Encode(content)
	if err != nil {
		return &SourceReadError{source, err}
	}
	symbol := e.Symbol
	if symbol == "" {
		symbol = Symbol(source)
	}
	artifact := &Artifact{
		License: e.License,
		Source:  path.Base(source),
		Symbol:  symbol,
		Data:    data,
	}
	_, err = artifact.WriteTo(file)
	return err
}

// resolve expands a source pattern into the single file it matches
func resolve(fsys genfs.FS, source string) (string, error) {
	if !strings.ContainsAny(source, "*?[{") {
		return source, nil
	}
	matches, err := fsys.Glob(source)
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no files match %q. %w", source, fs.ErrNotExist)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %s", ErrAmbiguousSource, source, strings.Join(matches, ", "))
	}
}

// Embedder reads documents from Source and writes generated files to Dest.
// Paths are slash-separated and relative to both filesystems.
type Embedder struct {
	Source  fs.FS
	Dest    afero.Fs
	Symbol  string
	License []string
	Log     *zap.SugaredLogger
}

// New embedder rooted at dir on the OS filesystem
func New(dir string, log *zap.SugaredLogger) *Embedder {
	// afero's base path filesystem needs an absolute base
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Embedder{
		Source: os.DirFS(dir),
		Dest:   afero.NewBasePathFs(afero.NewOsFs(), dir),
		Log:    log,
	}
}

// Generate embeds sourcePath into a C source file at destPath, creating any
// missing parent directories and replacing an existing file.
func (e *Embedder) Generate(sourcePath, destPath string) error {
	gfs, err := e.load(sourcePath, destPath)
	if err != nil {
		return err
	}
	if err := genfs.Sync(gfs, e.Dest); err != nil {
		return classify(err)
	}
	e.log().Infof("embed: generated %s from %s", clean(destPath), clean(sourcePath))
	return nil
}

// Check reports whether destPath is up to date with sourcePath without
// writing anything. A missing or outdated file returns an error wrapping
// ErrStale.
func (e *Embedder) Check(sourcePath, destPath string) error {
	gfs, err := e.load(sourcePath, destPath)
	if err != nil {
		return err
	}
	stale, err := genfs.Stale(gfs, e.Dest)
	if err != nil {
		return classify(err)
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %q", ErrStale, stale[0])
	}
	e.log().Debugf("embed: %s is up to date", clean(destPath))
	return nil
}

func (e *Embedder) load(sourcePath, destPath string) (*genfs.FileSystem, error) {
	if e.Symbol != "" && !ValidSymbol(e.Symbol) {
		return nil, fmt.Errorf("%w %q", ErrInvalidSymbol, e.Symbol)
	}
	gfs := genfs.New(e.Source)
	err := gfs.FileGenerator(clean(destPath), &Embed{
		Source:  clean(sourcePath),
		Symbol:  e.Symbol,
		License: e.License,
	})
	if err != nil {
		return nil, &DestinationWriteError{destPath, err}
	}
	e.log().Debugf("embed: generators\n%s", gfs.Print())
	return gfs, nil
}

func (e *Embedder) log() *zap.SugaredLogger {
	if e.Log == nil {
		return zap.NewNop().Sugar()
	}
	return e.Log
}

// Generate embeds the document at sourcePath into a C source file at
// destPath. Both paths are OS paths, either absolute or relative to the
// working directory.
func Generate(sourcePath, destPath string) error {
	root, src, err := Split(sourcePath)
	if err != nil {
		return &SourceReadError{sourcePath, err}
	}
	destRoot, dst, err := Split(destPath)
	if err != nil {
		return &DestinationWriteError{destPath, err}
	}
	if destRoot != root {
		return &DestinationWriteError{destPath, fmt.Errorf("not on the same volume as %q", sourcePath)}
	}
	err = New(root, nil).Generate(src, dst)
	// Report the paths the caller used
	var serr *SourceReadError
	var derr *DestinationWriteError
	switch {
	case errors.As(err, &serr):
		serr.Path = sourcePath
	case errors.As(err, &derr):
		derr.Path = destPath
	}
	return err
}

// Split an OS path into its volume root and a slash-separated path relative
// to that root
func Split(fpath string) (root, rel string, err error) {
	abs, err := filepath.Abs(fpath)
	if err != nil {
		return "", "", err
	}
	root = filepath.VolumeName(abs) + string(filepath.Separator)
	rel, err = filepath.Rel(root, abs)
	if err != nil {
		return "", "", err
	}
	return root, filepath.ToSlash(rel), nil
}

func clean(fpath string) string {
	return path.Clean(filepath.ToSlash(fpath))
}
