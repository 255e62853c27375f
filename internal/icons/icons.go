// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icons generates web application icons from a single source image.

# Icons

By default Generate writes these files into the destination directory:

	pwa-192x192.png       192×192  PNG
	pwa-512x512.png       512×512  PNG
	apple-touch-icon.png  180×180  PNG
	favicon.ico           64×64    ICO

The output format is inferred from the file extension. Files ending in
".ico" are written as ICO containers, everything else is encoded with
[imaging.Encode].

The source image is decoded once and resized for each icon with the Lanczos
filter unless another one is configured. Generation stops at the first error.
*/
package icons

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/icons/internal/logger"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/webp"
)

// Possible errors. Errors returned by Generate wrap one of these.
var (
	ErrInvalidSpec   = errors.New("invalid icon spec")
	ErrUnknownFilter = errors.New("unknown resampling filter")
	ErrMissingSource = errors.New("source image not found")
	ErrDecode        = errors.New("failed to decode source image")
	ErrResizeOrSave  = errors.New("failed to resize or save icon")
)

// Spec describes one icon to generate.
type Spec struct {
	// Name is the file name of the icon inside the destination directory.
	// Its extension determines the output format.
	Name string
	// Width and Height are the exact pixel dimensions of the icon.
	Width, Height int
}

func (s Spec) String() string { return fmt.Sprintf("%s (%dx%d)", s.Name, s.Width, s.Height) }

// DefaultSpecs are the icons a progressive web app needs. They are generated
// in this order.
var DefaultSpecs = []Spec{
	{Name: "pwa-192x192.png", Width: 192, Height: 192},
	{Name: "pwa-512x512.png", Width: 512, Height: 512},
	{Name: "apple-touch-icon.png", Width: 180, Height: 180},
	{Name: "favicon.ico", Width: 64, Height: 64},
}

// Filters maps filter names accepted in [Config] to resampling filters.
var Filters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"mitchell":   imaging.MitchellNetravali,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
}

// DefaultFilter is the name of the filter used when none is configured.
const DefaultFilter = "lanczos"

// Config represents a generation configuration.
type Config struct {
	// Src is the path of the source image.
	Src string
	// Dst is the directory where icons are written. It must exist.
	Dst string
	// Specs is a list of icons to generate. If nil, DefaultSpecs is used.
	Specs []Spec
	// Filter is the name of the resampling filter, one of the keys of
	// Filters. If empty, DefaultFilter is used.
	Filter string
	// Logf is a logger to use. If nil, log.Printf is used.
	Logf logger.Logf
}

func (c *Config) setDefaults() {
	if c.Specs == nil {
		c.Specs = DefaultSpecs
	}
	if c.Filter == "" {
		c.Filter = DefaultFilter
	}
	if c.Logf == nil {
		c.Logf = logger.Logf(log.Printf)
	}
}

// Generate decodes the source image and writes every configured icon into the
// destination directory, overwriting existing files. It returns on the first
// failure; icons that come after the failed one are not written.
func Generate(ctx context.Context, c *Config) error {
	c.setDefaults()

	filter, ok := Filters[c.Filter]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownFilter, c.Filter)
	}
	if err := ValidateSpecs(c.Specs); err != nil {
		return err
	}

	src, err := load(c.Src)
	if err != nil {
		return err
	}

	for _, s := range c.Specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := save(src, s, c.Dst, filter); err != nil {
			return fmt.Errorf("%w %s: %w", ErrResizeOrSave, s.Name, err)
		}
		c.Logf("Created %s", s.Name)
	}

	return nil
}

// ValidateSpecs checks that every spec can be generated and that no two specs
// write to the same file.
func ValidateSpecs(specs []Spec) error {
	if len(specs) == 0 {
		return fmt.Errorf("%w: no icons to generate", ErrInvalidSpec)
	}

	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if s.Name == "" || s.Name != filepath.Base(s.Name) || s.Name == "." || s.Name == ".." {
			return fmt.Errorf("%w: %q is not a file name", ErrInvalidSpec, s.Name)
		}
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: %s has non-positive dimensions", ErrInvalidSpec, s)
		}
		if !supported(s.Name) {
			return fmt.Errorf("%w: %s has unsupported extension %q", ErrInvalidSpec, s.Name, filepath.Ext(s.Name))
		}
		if isICO(s.Name) && (s.Width > 256 || s.Height > 256) {
			return fmt.Errorf("%w: %s is larger than 256x256, which ICO can't hold", ErrInvalidSpec, s)
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return fmt.Errorf("%w: %s is listed more than once", ErrInvalidSpec, s.Name)
		}
		seen[key] = true
	}

	return nil
}

func load(path string) (image.Image, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
	} else if err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	return img, nil
}

// save resizes src according to s and writes the result into dir. The icon is
// encoded into memory first, so a failed encoding leaves no file behind.
func save(src image.Image, s Spec, dir string, filter imaging.ResampleFilter) error {
	dst := imaging.Resize(src, s.Width, s.Height, filter)

	var buf bytes.Buffer
	if err := encode(&buf, dst, s.Name); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, s.Name), buf.Bytes(), 0o644)
}

func encode(w io.Writer, img image.Image, name string) error {
	if isICO(name) {
		return ico.Encode(w, img)
	}
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, format)
}

func isICO(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".ico")
}

func supported(name string) bool {
	if isICO(name) {
		return true
	}
	_, err := imaging.FormatFromFilename(name)
	return err == nil
}
