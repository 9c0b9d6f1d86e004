// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/swapwatch/internal/loop"
)

// DefaultQueueSize is the executor queue capacity used when NewExecutor gets
// a non-positive size.
const DefaultQueueSize = 256

// runMsg carries a posted func into Update.
type runMsg struct{ fn func() }

// Executor runs posted funcs inside the bubbletea Update loop.
type Executor struct {
	queue chan func()
	done  chan struct{}
	log   zerolog.Logger

	stopOnce sync.Once
	timers   sync.WaitGroup
	dropped  atomic.Int64
}

// NewExecutor creates an executor with the given queue capacity.
func NewExecutor(size int, log zerolog.Logger) *Executor {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Executor{
		queue: make(chan func(), size),
		done:  make(chan struct{}),
		log:   log,
	}
}

// Post enqueues fn without blocking. Update itself posts, so a full queue
// drops fn and returns false.
func (e *Executor) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-e.done:
		return false
	default:
	}
	select {
	case e.queue <- fn:
		return true
	default:
		e.dropped.Add(1)
		e.log.Warn().Int("capacity", cap(e.queue)).Msg("executor queue full, dropping callback")
		return false
	}
}

// Every posts fn every period until stop is called or the executor stops. A
// tick already queued when stop is called is dropped.
func (e *Executor) Every(period time.Duration, fn func()) (stop func()) {
	return loop.Ticks(period, e.Post, e.done, &e.timers, fn)
}

// Next returns a command that waits for the next posted func. Update runs
// the func and asks for Next again.
func (e *Executor) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-e.queue:
			return runMsg{fn: fn}
		case <-e.done:
			return nil
		}
	}
}

// run executes fn, logging a panic instead of taking the program down.
func (e *Executor) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Msg("executor: recovered from panic in posted func")
		}
	}()
	fn()
}

// Drain runs every queued func on the caller's goroutine. Used after the
// program has exited to flush teardown work.
func (e *Executor) Drain() int {
	n := 0
	for {
		select {
		case fn := <-e.queue:
			e.run(fn)
			n++
		default:
			return n
		}
	}
}

// Stop ends every timer and unblocks Next.
func (e *Executor) Stop() {
	e.stopOnce.Do(func() {
		close(e.done)
	})
	e.timers.Wait()
}

// Dropped returns how many posts were rejected because the queue was full.
func (e *Executor) Dropped() int64 {
	return e.dropped.Load()
}
