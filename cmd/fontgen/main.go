// Command fontgen converts a TrueType or OpenType font into a bitmap font
// atlas.
//
// Usage:
//
//	fontgen -i font.ttf -o font.bmfa [--slot-glyph-size 64] [-p 0] [--origin bottom-left]
//
// The atlas covers the code points 33 through 255 on a 16x16 grid, plus
// fixed metadata for the space character. The output always gets the .bmfa
// extension and is never overwritten.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/bmfa"
	"github.com/gogpu/fontatlas/rasterizer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

type config struct {
	input         string
	output        string
	slotGlyphSize int
	padding       int
	origin        string
	backend       string
	charset       string
	png           bool
	textMetadata  bool
	verbose       bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var c config
	fs := flag.NewFlagSet("fontgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "fontgen converts TrueType or OpenType fonts into bitmap font atlases.")
		fmt.Fprintln(stderr, "\nUsage: fontgen -i <font> -o <atlas> [flags]")
		fs.PrintDefaults()
	}

	fs.StringVar(&c.input, "input", "", "path to the input font file")
	fs.StringVar(&c.input, "i", "", "shorthand for --input")
	fs.StringVar(&c.output, "output", "", "path to the output atlas (the .bmfa extension is forced)")
	fs.StringVar(&c.output, "o", "", "shorthand for --output")
	fs.IntVar(&c.slotGlyphSize, "slot-glyph-size", 64, "size in pixels of a glyph slot, padding included")
	fs.IntVar(&c.padding, "padding", 0, "glyph slot padding in pixels")
	fs.IntVar(&c.padding, "p", 0, "shorthand for --padding")
	fs.StringVar(&c.origin, "origin", fontatlas.BottomLeft.String(), "image coordinate origin: bottom-left or top-left")
	fs.StringVar(&c.backend, "backend", rasterizer.DefaultBackend,
		"rasterizer backend: "+strings.Join(rasterizer.Backends(), ", "))
	fs.StringVar(&c.charset, "charset", "", "single-byte code page for the slots, e.g. windows-1252 (default latin1)")
	fs.BoolVar(&c.png, "png", false, "also write the atlas image as a PNG next to the atlas")
	fs.BoolVar(&c.textMetadata, "text-metadata", false, "also write the glyph metadata as text next to the atlas")
	fs.BoolVar(&c.verbose, "verbose", false, "log every sampled glyph")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if c.input == "" || c.output == "" {
		fs.Usage()
		return nil, errors.New("both --input and --output are required")
	}
	return &c, nil
}

// job is a verified configuration ready to run.
type job struct {
	input    string
	atlas    string
	png      string
	text     string
	spec     fontatlas.AtlasSpec
	opts     []fontatlas.Option
	charset  fontatlas.Charset
	logLevel slog.Level
}

// withExtension replaces the extension of path with ext.
func withExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func mustNotExist(field, path string) error {
	if _, err := os.Stat(path); err == nil {
		return &fontatlas.ConfigError{Field: field, Value: path, Reason: "a file already exists in that location"}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// verify checks every option before any font data is read.
func verify(c *config) (*job, error) {
	info, err := os.Stat(c.input)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, &fontatlas.ConfigError{Field: "input", Value: c.input, Reason: "the font file could not be found"}
	case err != nil:
		return nil, err
	case !info.Mode().IsRegular():
		return nil, &fontatlas.ConfigError{Field: "input", Value: c.input, Reason: "the path is not a file"}
	}

	j := &job{
		input:    c.input,
		atlas:    withExtension(c.output, bmfa.Extension),
		logLevel: slog.LevelWarn,
	}
	if c.verbose {
		j.logLevel = slog.LevelDebug
	}
	if err := mustNotExist("output", c.output); err != nil {
		return nil, err
	}
	if err := mustNotExist("output", j.atlas); err != nil {
		return nil, err
	}
	if c.png {
		j.png = withExtension(c.output, ".png")
		if err := mustNotExist("png output", j.png); err != nil {
			return nil, err
		}
	}
	if c.textMetadata {
		j.text = withExtension(c.output, ".txt")
		if err := mustNotExist("text output", j.text); err != nil {
			return nil, err
		}
	}

	origin, err := fontatlas.ParseOrigin(c.origin)
	if err != nil {
		return nil, err
	}
	if j.spec, err = fontatlas.NewAtlasSpec(origin, c.slotGlyphSize, c.padding); err != nil {
		return nil, err
	}
	if j.charset, err = fontatlas.LookupCharset(c.charset); err != nil {
		return nil, err
	}
	j.opts = []fontatlas.Option{
		fontatlas.WithBackend(c.backend),
		fontatlas.WithCharset(j.charset),
	}
	return j, nil
}

// run generates the atlas and writes the container and any sidecars. If
// any write fails, the files already written are removed.
func (j *job) run() (err error) {
	atlas, err := fontatlas.GenerateFromFile(j.input, j.spec, j.opts...)
	if err != nil {
		return fmt.Errorf("could not create bitmap font: %w", err)
	}
	if err := bmfa.WriteFile(j.atlas, atlas); err != nil {
		return err
	}

	written := []string{j.atlas}
	defer func() {
		if err != nil {
			for _, path := range written {
				_ = os.Remove(path)
			}
		}
	}()
	if j.png != "" {
		if err := atlas.Image.SavePNG(j.png); err != nil {
			return fmt.Errorf("could not write atlas image %s: %w", j.png, err)
		}
		written = append(written, j.png)
	}
	if j.text != "" {
		if err := writeText(j.text, atlas); err != nil {
			return fmt.Errorf("could not write text metadata %s: %w", j.text, err)
		}
	}
	return nil
}

func writeText(path string, atlas *fontatlas.Atlas) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := bmfa.WriteText(f, atlas.Metadata.Glyphs); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// run executes fontgen and returns the process exit code: 0 on success, 2
// for malformed flags and 1 for any other failure.
func run(args []string, stderr io.Writer) int {
	c, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "fontgen:", err)
		return 2
	}

	j, err := verify(c)
	if err != nil {
		fmt.Fprintln(stderr, "fontgen:", err)
		return 1
	}

	fontatlas.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: j.logLevel})))
	defer fontatlas.SetLogger(nil)

	if err := j.run(); err != nil {
		fmt.Fprintln(stderr, "fontgen:", err)
		return 1
	}
	return 0
}
