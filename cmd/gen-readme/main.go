// Command gen-readme embeds the project README into the kernel image source
// tree. Run it from the repository root:
//
//	gen-readme
//
// It reads README.md and writes kernel/fs/README.c, which declares
// README_MD_SIZE and README_MD[]. Rebuild the kernel afterwards to pick up the
// new file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gzqccnu/MiniOS/internal/embed"
	"github.com/gzqccnu/MiniOS/internal/logger"
	"github.com/urfave/cli/v2"
)

const (
	defaultRoot   = "."
	defaultSource = "README.md"
	defaultOutput = "kernel/fs/README.c"
)

func main() {
	if err := newApp(os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gen-readme:", err)
		os.Exit(1)
	}
}

func newApp(stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "gen-readme",
		Usage:     "embed README.md into the kernel as a C byte array",
		ErrWriter: stderr,
		Writer:    stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Usage:   "directory the source and output paths are relative to",
				Value:   defaultRoot,
				EnvVars: []string{"GEN_README_ROOT"},
			},
			&cli.StringFlag{
				Name:    "source",
				Usage:   "document to embed",
				Value:   defaultSource,
				EnvVars: []string{"GEN_README_SOURCE"},
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "C source file to generate",
				Value:   defaultOutput,
				EnvVars: []string{"GEN_README_OUTPUT"},
			},
			&cli.StringFlag{
				Name:    "symbol",
				Usage:   "array name, derived from the source name when empty",
				EnvVars: []string{"GEN_README_SYMBOL"},
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "fail if the output is missing or out of date instead of writing it",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "show debug information",
				EnvVars: []string{"GEN_README_DEBUG"},
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.Args().Present() {
		return fmt.Errorf("unexpected arguments %q", c.Args().Slice())
	}
	log, err := logger.New(c.Bool("debug"))
	if err != nil {
		return err
	}
	defer log.Sync()
	symbol := c.String("symbol")
	if symbol != "" && !embed.ValidSymbol(symbol) {
		return fmt.Errorf("--symbol: %w %q", embed.ErrInvalidSymbol, symbol)
	}
	root, source, output, err := resolve(c.String("root"), c.String("source"), c.String("output"))
	if err != nil {
		return err
	}
	e := embed.New(root, log)
	e.Symbol = symbol
	if c.Bool("check") {
		if err := e.Check(source, output); err != nil {
			if errors.Is(err, embed.ErrStale) {
				return fmt.Errorf("%w, run gen-readme to regenerate it", err)
			}
			return err
		}
		return nil
	}
	return e.Generate(source, output)
}

// resolve the --source and --output values against root. When either one is
// absolute, both are rebased onto the volume root so they stay reachable.
func resolve(root, source, output string) (string, string, string, error) {
	if !filepath.IsAbs(source) && !filepath.IsAbs(output) {
		return root, source, output, nil
	}
	if !filepath.IsAbs(source) {
		source = filepath.Join(root, source)
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}
	srcRoot, src, err := embed.Split(source)
	if err != nil {
		return "", "", "", fmt.Errorf("--source: %w", err)
	}
	outRoot, out, err := embed.Split(output)
	if err != nil {
		return "", "", "", fmt.Errorf("--output: %w", err)
	}
	if srcRoot != outRoot {
		return "", "", "", fmt.Errorf("--output: %q is not on the same volume as %q", output, source)
	}
	return srcRoot, src, out, nil
}
