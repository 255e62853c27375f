// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

// ManifestIcon is an entry of the "icons" member of a web app manifest.
//
// See https://developer.mozilla.org/en-US/docs/Web/Manifest/icons.
type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

var mediaTypes = map[string]string{
	".png":  "image/png",
	".ico":  "image/x-icon",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".bmp":  "image/bmp",
}

// ManifestIcons returns manifest entries for specs, in order. The src of each
// entry is the icon name under base, which is a URL path.
func ManifestIcons(specs []Spec, base string) ([]ManifestIcon, error) {
	if err := ValidateSpecs(specs); err != nil {
		return nil, err
	}

	icons := make([]ManifestIcon, 0, len(specs))
	for _, s := range specs {
		typ, ok := mediaTypes[strings.ToLower(filepath.Ext(s.Name))]
		if !ok {
			return nil, fmt.Errorf("%w: no media type for %s", ErrInvalidSpec, s.Name)
		}
		icons = append(icons, ManifestIcon{
			Src:   path.Join("/", base, s.Name),
			Sizes: fmt.Sprintf("%dx%d", s.Width, s.Height),
			Type:  typ,
		})
	}
	return icons, nil
}

// Manifest renders a minified web app manifest fragment that contains only
// the "icons" member.
func Manifest(specs []Spec, base string) ([]byte, error) {
	icons, err := ManifestIcons(specs, base)
	if err != nil {
		return nil, err
	}

	b, err := json.MarshalIndent(struct {
		Icons []ManifestIcon `json:"icons"`
	}{icons}, "", "  ")
	if err != nil {
		return nil, err
	}

	m := minify.New()
	m.AddFunc("application/json", mjson.Minify)
	return m.Bytes("application/json", b)
}
