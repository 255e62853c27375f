// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestManifest(t *testing.T) {
	got, err := Manifest(DefaultSpecs, "")
	if err != nil {
		t.Fatal(err)
	}

	const want = `{"icons":[` +
		`{"src":"/pwa-192x192.png","sizes":"192x192","type":"image/png"},` +
		`{"src":"/pwa-512x512.png","sizes":"512x512","type":"image/png"},` +
		`{"src":"/apple-touch-icon.png","sizes":"180x180","type":"image/png"},` +
		`{"src":"/favicon.ico","sizes":"64x64","type":"image/x-icon"}` +
		`]}`
	testutil.AssertEqual(t, string(got), want)

	// Still valid JSON after minification.
	var m struct {
		Icons []ManifestIcon `json:"icons"`
	}
	if err := json.Unmarshal(got, &m); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(m.Icons), len(DefaultSpecs))
}

func TestManifestIcons(t *testing.T) {
	cases := map[string]struct {
		specs   []Spec
		base    string
		want    []ManifestIcon
		wantErr error
	}{
		"base path": {
			specs: []Spec{{Name: "icon.png", Width: 48, Height: 48}},
			base:  "/static/icons/",
			want:  []ManifestIcon{{Src: "/static/icons/icon.png", Sizes: "48x48", Type: "image/png"}},
		},
		"relative base": {
			specs: []Spec{{Name: "photo.JPEG", Width: 300, Height: 200}},
			base:  "img",
			want:  []ManifestIcon{{Src: "/img/photo.JPEG", Sizes: "300x200", Type: "image/jpeg"}},
		},
		"other formats": {
			specs: []Spec{
				{Name: "a.gif", Width: 1, Height: 2},
				{Name: "b.tif", Width: 3, Height: 4},
				{Name: "c.bmp", Width: 5, Height: 6},
			},
			want: []ManifestIcon{
				{Src: "/a.gif", Sizes: "1x2", Type: "image/gif"},
				{Src: "/b.tif", Sizes: "3x4", Type: "image/tiff"},
				{Src: "/c.bmp", Sizes: "5x6", Type: "image/bmp"},
			},
		},
		"invalid specs": {
			specs:   []Spec{{Name: "a.png", Width: 0, Height: 0}},
			wantErr: ErrInvalidSpec,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ManifestIcons(tc.specs, tc.base)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("want %+v, got %+v", tc.want, got)
			}
		})
	}
}
