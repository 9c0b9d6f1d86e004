// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch reloads catalog files in dir when they are written or created, until
// ctx is done. onReload, if not nil, runs after each successful reload.
func (c *Catalog) Watch(ctx context.Context, dir string, log zerolog.Logger, onReload func(code string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if !isCatalogFile(ev.Name) {
					continue
				}
				if err := c.LoadFile(ev.Name); err != nil {
					log.Warn().Err(err).Str("file", ev.Name).Msg("catalog reload failed")
					continue
				}
				code := codeFromFile(filepath.Base(ev.Name))
				log.Info().Str("language", code).Msg("catalog reloaded")
				if onReload != nil {
					onReload(code)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("catalog watcher error")
			}
		}
	}()
	return nil
}
