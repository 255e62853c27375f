// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

// Used in tests.
var (
	watchReadyHook      func()      // called when Watch started watching the source
	regenerateStartHook func()      // called before each regeneration
	regenerateHook      func(error) // called after each regeneration
)

var watchDebounceDur = 250 * time.Millisecond // overridden in tests

// Watch generates icons and then regenerates them each time the source image
// changes, until ctx is canceled. Generation failures are logged and don't
// stop watching.
func Watch(ctx context.Context, c *Config) error {
	c.setDefaults()

	logger.Info(ctx, "performing an initial generation")
	if err := Generate(ctx, c); err != nil {
		logger.Error(ctx, "initial generation failed", slog.Any("err", err))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	src, err := filepath.Abs(c.Src)
	if err != nil {
		return err
	}
	// Editors often replace files instead of writing them in place, so
	// watch the directory rather than the file itself.
	if err := watcher.Add(filepath.Dir(src)); err != nil {
		return err
	}

	// Regeneration runs on the debouncer's timer goroutine. Watch doesn't
	// return while one is in progress.
	var (
		mu      sync.Mutex
		stopped bool
	)
	regenerate := func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped || ctx.Err() != nil {
			return
		}
		if regenerateStartHook != nil {
			regenerateStartHook()
		}
		logger.Info(ctx, "triggering generation")
		err := Generate(ctx, c)
		if err != nil {
			logger.Error(ctx, "failed to regenerate icons", slog.Any("err", err))
		}
		if regenerateHook != nil {
			regenerateHook(err)
		}
	}
	debouncer := newDebouncer(watchDebounceDur, regenerate)
	defer func() {
		debouncer.Stop()
		mu.Lock()
		stopped = true
		mu.Unlock()
	}()

	logger.Info(ctx, "started watching for changes", slog.String("src", src))
	if watchReadyHook != nil {
		watchReadyHook()
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldRegenerate(src, event.Name, event.Op) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling generation",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			debouncer.Do()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		case <-ctx.Done():
			logger.Info(ctx, "stopped watching")
			return nil
		}
	}
}

// shouldRegenerate reports whether an event on path affects the source image
// at src.
func shouldRegenerate(src, path string, op fsnotify.Op) bool {
	if filepath.Clean(path) != src {
		return false
	}
	// Removal is followed by a create when the file is replaced.
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Write)
}

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Stop cancels a pending execution, if any.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
}
