// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package loop provides a serial executor: one goroutine drains a queue of
// funcs so every callback posted to it runs without overlapping another.
package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DefaultQueueSize is the queue capacity used when New gets a non-positive size.
const DefaultQueueSize = 256

// ErrStopped is returned by Run when the loop was already stopped.
var ErrStopped = errors.New("loop: stopped")

// Loop is a single-consumer work queue.
type Loop struct {
	queue chan func()
	done  chan struct{}
	log   zerolog.Logger

	stopOnce sync.Once
	running  atomic.Bool
	timers   sync.WaitGroup
}

// New creates a loop with the given queue capacity.
func New(size int, log zerolog.Logger) *Loop {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Loop{
		queue: make(chan func(), size),
		done:  make(chan struct{}),
		log:   log,
	}
}

// Post enqueues fn. It blocks while the queue is full and returns false once
// the loop is stopped.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Every posts fn every period until the returned stop func is called or the
// loop stops. A tick already queued when stop is called is dropped.
func (l *Loop) Every(period time.Duration, fn func()) (stop func()) {
	return Ticks(period, l.Post, l.done, &l.timers, fn)
}

// Ticks hands fn to post every period until stop is called or done is
// closed. The posted wrapper checks the stop flag, so a tick still queued
// when stop runs does nothing. wg tracks the ticker goroutine.
func Ticks(period time.Duration, post func(func()) bool, done <-chan struct{}, wg *sync.WaitGroup, fn func()) (stop func()) {
	var stopped atomic.Bool
	quit := make(chan struct{})
	ticker := time.NewTicker(period)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				post(func() {
					if stopped.Load() {
						return
					}
					fn()
				})
			case <-quit:
				return
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stopped.Store(true)
			close(quit)
		})
	}
}

// Run drains the queue until ctx is done or Stop is called. Panics raised by a
// posted func are logged and the loop keeps running.
func (l *Loop) Run(ctx context.Context) error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}
	l.running.Store(true)
	defer l.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.queue:
			l.exec(fn)
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().Interface("panic", r).Msg("loop: recovered from panic in posted func")
		}
	}()
	fn()
}

// Stop ends Run and every timer created with Every. Queued funcs are dropped.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
	l.timers.Wait()
}

// Running reports whether Run is active.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Sync posts fn and waits until it has run. It returns false if the loop
// stopped first.
func (l *Loop) Sync(fn func()) bool {
	ran := make(chan struct{})
	if !l.Post(func() {
		defer close(ran)
		fn()
	}) {
		return false
	}
	select {
	case <-ran:
		return true
	case <-l.done:
		return false
	}
}
