// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/icons/internal/devtools"
	"go.astrophena.name/icons/internal/icons"
	"go.astrophena.name/icons/internal/logger"
)

func main() { cli.Main(new(app)) }

var defaultDst = filepath.Join(".", "public")

type app struct {
	dst          string
	filter       string
	watch        bool
	manifest     bool
	manifestBase string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.dst, "dst", "", "Write icons to `dir` instead of the public directory.")
	fs.StringVar(&a.filter, "filter", icons.DefaultFilter, "Resampling filter (lanczos, catmullrom, mitchell, linear, box or nearest).")
	fs.BoolVar(&a.watch, "watch", false, "Regenerate icons when the input image changes.")
	fs.BoolVar(&a.manifest, "manifest", false, "Print the icons member of a web app manifest.")
	fs.StringVar(&a.manifestBase, "manifest-base", "/", "URL `path` the icons are served from, used with -manifest.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	return a.run(ctx, env.Args, env.Stdout)
}

func (a *app) run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: want exactly one input image", cli.ErrInvalidArgs)
	}

	dst := a.dst
	if dst == "" {
		if err := devtools.EnsureRoot(); err != nil {
			return err
		}
		dst = defaultDst
	}

	c := &icons.Config{
		Src:    args[0],
		Dst:    dst,
		Filter: a.filter,
		Logf:   logger.Lines(stdout),
	}

	if a.watch {
		if err := a.printManifest(stdout); err != nil {
			return err
		}
		return icons.Watch(ctx, c)
	}

	if err := icons.Generate(ctx, c); err != nil {
		return err
	}
	return a.printManifest(stdout)
}

func (a *app) printManifest(w io.Writer) error {
	if !a.manifest {
		return nil
	}
	b, err := icons.Manifest(icons.DefaultSpecs, a.manifestBase)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
