// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.astrophena.name/base/unwrap"
)

// ErrNotRoot is returned by EnsureRoot when the working directory is not the
// repository root.
var ErrNotRoot = errors.New("not at the repository root")

// EnsureRoot checks that the current working directory is at the repository
// root, that is, contains a go.mod file.
func EnsureRoot() error {
	wd := unwrap.Value(os.Getwd())
	if _, err := os.Stat(filepath.Join(wd, "go.mod")); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s has no go.mod", ErrNotRoot, wd)
	} else if err != nil {
		return err
	}
	return nil
}
