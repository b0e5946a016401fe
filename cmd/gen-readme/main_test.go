package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gzqccnu/MiniOS/internal/embed"
	"github.com/matryer/is"
)

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	stderr := new(bytes.Buffer)
	return newApp(stderr).Run(append([]string{"gen-readme"}, args...))
}

func TestDefaults(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Lrix\n"), 0644))
	is.NoErr(runApp(t, "--root", dir))
	code, err := os.ReadFile(filepath.Join(dir, "kernel", "fs", "README.c"))
	is.NoErr(err)
	expect := &embed.Artifact{Source: "README.md", Symbol: "README_MD", Data: []byte("# Lrix\n")}
	is.Equal(string(code), string(expect.Bytes()))
}

func TestFlags(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.MkdirAll(filepath.Join(dir, "docs"), 0755))
	is.NoErr(os.WriteFile(filepath.Join(dir, "docs", "HELP.txt"), []byte("help"), 0644))
	is.NoErr(runApp(t, "--root", dir, "--source", "docs/HELP.txt", "--output", "gen/help.c", "--symbol", "HELP"))
	code, err := os.ReadFile(filepath.Join(dir, "gen", "help.c"))
	is.NoErr(err)
	is.True(strings.Contains(string(code), "const unsigned int HELP_SIZE = 4;\n"))
}

func TestEnv(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.WriteFile(filepath.Join(dir, "README.md"), []byte("env"), 0644))
	t.Setenv("GEN_README_ROOT", dir)
	t.Setenv("GEN_README_OUTPUT", "out/readme.c")
	is.NoErr(runApp(t))
	_, err := os.Stat(filepath.Join(dir, "out", "readme.c"))
	is.NoErr(err)
}

func TestCheck(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.WriteFile(filepath.Join(dir, "README.md"), []byte("check"), 0644))
	err := runApp(t, "--root", dir, "--check")
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "out of date"))
	is.NoErr(runApp(t, "--root", dir))
	is.NoErr(runApp(t, "--root", dir, "--check"))
}

func TestMissingSource(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	err := runApp(t, "--root", dir)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), `unable to read source "README.md"`))
}

func TestUnexpectedArgs(t *testing.T) {
	is := is.New(t)
	err := runApp(t, "--root", t.TempDir(), "extra")
	is.True(err != nil)
}

func TestInvalidSymbol(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.WriteFile(filepath.Join(dir, "README.md"), []byte("ABC"), 0644))
	err := runApp(t, "--root", dir, "--symbol", "a b")
	is.True(errors.Is(err, embed.ErrInvalidSymbol))
	is.True(strings.HasPrefix(err.Error(), "--symbol:"))
	_, err = os.Stat(filepath.Join(dir, "kernel", "fs", "README.c"))
	is.True(errors.Is(err, fs.ErrNotExist))
}

func TestAbsolutePaths(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "README.md")
	output := filepath.Join(dir, "out", "README.c")
	is.NoErr(os.WriteFile(source, []byte("ABC"), 0644))
	is.NoErr(runApp(t, "--source", source, "--output", output))
	code, err := os.ReadFile(output)
	is.NoErr(err)
	expect := &embed.Artifact{Source: "README.md", Symbol: "README_MD", Data: []byte("ABC")}
	is.Equal(string(code), string(expect.Bytes()))
	is.NoErr(runApp(t, "--source", source, "--output", output, "--check"))
}

func TestAbsoluteSourceRelativeOutput(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	docs := t.TempDir()
	source := filepath.Join(docs, "README.md")
	is.NoErr(os.WriteFile(source, []byte("ABC"), 0644))
	is.NoErr(runApp(t, "--root", dir, "--source", source))
	_, err := os.Stat(filepath.Join(dir, "kernel", "fs", "README.c"))
	is.NoErr(err)
}

func TestSourcePattern(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.WriteFile(filepath.Join(dir, "README.md"), []byte("ABC"), 0644))
	is.NoErr(runApp(t, "--root", dir, "--source", "*.md"))
	code, err := os.ReadFile(filepath.Join(dir, "kernel", "fs", "README.c"))
	is.NoErr(err)
	is.True(strings.Contains(string(code), "const unsigned int README_MD_SIZE = 3;\n"))
	is.NoErr(os.WriteFile(filepath.Join(dir, "INSTALL.md"), []byte("install"), 0644))
	err = runApp(t, "--root", dir, "--source", "*.md")
	is.True(errors.Is(err, embed.ErrAmbiguousSource))
}
