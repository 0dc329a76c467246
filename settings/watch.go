// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch calls fun with freshly opened settings each time the given file
// is written, created or renamed into place, until ctx is done. It
// watches the directory of the file so that editors that replace the
// file are seen. fun is called on the watcher goroutine, so hosts must
// hand the settings to their UI thread before applying them.
func Watch(ctx context.Context, filename string, fun func(s *Settings, err error)) error {
	fnm, err := homedir.Expand(filename)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	fnm, err = filepath.Abs(fnm)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if _, err := FormatOf(fnm); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := watcher.Add(filepath.Dir(fnm)); err != nil {
		watcher.Close()
		return fmt.Errorf("settings: watching %s: %w", fnm, err)
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != fnm {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				slog.Debug("settings: reloading", "file", fnm, "op", event.Op.String())
				s, err := Open(fnm)
				fun(s, err)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fun(nil, fmt.Errorf("settings: watching %s: %w", fnm, err))
			}
		}
	}()
	return nil
}
