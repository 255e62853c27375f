// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Generate-icons generates web application icons from a single image.

# Usage

	$ go tool generate-icons [flags] <input_image_file>

This tool resizes the provided input image with the Lanczos filter and saves
the results in the "public" directory:

	pwa-192x192.png       192×192
	pwa-512x512.png       512×512
	apple-touch-icon.png  180×180
	favicon.ico           64×64

The destination directory must already exist. Existing icons are
overwritten. Unless -dst is passed, the tool must be run from the repository
root.

With -watch, the icons are regenerated each time the input image changes,
until the tool is interrupted.

With -manifest, the "icons" member of a web app manifest that references
the generated files is printed after generation.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
