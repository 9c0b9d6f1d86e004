// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lifecycle

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/tebeka/atexit"
)

// ExitHooks registers funcs to run when the process exits.
type ExitHooks interface {
	Register(fn func()) (cancel func())
}

// ExitRegistry runs registered hooks once, newest first.
type ExitRegistry struct {
	mu     sync.Mutex
	hooks  map[int]func()
	order  []int
	nextID int
	ran    bool
	log    zerolog.Logger
}

// NewExitRegistry creates an empty registry.
func NewExitRegistry(log zerolog.Logger) *ExitRegistry {
	return &ExitRegistry{hooks: make(map[int]func()), log: log}
}

// Register adds fn. Hooks registered after Run are ignored.
func (r *ExitRegistry) Register(fn func()) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ran || fn == nil {
		return func() {}
	}
	id := r.nextID
	r.nextID++
	r.hooks[id] = fn
	r.order = append(r.order, id)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.hooks, id)
	}
}

// Run executes the live hooks once. Later calls do nothing.
func (r *ExitRegistry) Run() {
	r.mu.Lock()
	if r.ran {
		r.mu.Unlock()
		return
	}
	r.ran = true
	var fns []func()
	for i := len(r.order) - 1; i >= 0; i-- {
		if fn, ok := r.hooks[r.order[i]]; ok {
			fns = append(fns, fn)
		}
	}
	r.hooks = nil
	r.order = nil
	r.mu.Unlock()

	for _, fn := range fns {
		r.run(fn)
	}
}

func (r *ExitRegistry) run(fn func()) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Error().Interface("panic", p).Msg("exit hook panicked")
		}
	}()
	fn()
}

// Pending returns the number of hooks that would run.
func (r *ExitRegistry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.hooks)
}

// InstallAtExit runs the registry from atexit handlers, so atexit.Exit and
// atexit.Fatal trigger it. The returned func uninstalls it.
func (r *ExitRegistry) InstallAtExit() (uninstall func()) {
	id := atexit.Register(r.Run)
	return func() {
		if err := id.Cancel(); err != nil {
			r.log.Debug().Err(err).Msg("atexit handler already removed")
		}
	}
}
