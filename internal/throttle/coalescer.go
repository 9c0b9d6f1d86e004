// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package throttle bounds how often a handler runs under high-frequency input.
//
// The policy is fixed leading-edge: the first call after a quiet period passes
// immediately and every call until lastFire+cooldown is dropped. Suppressed
// calls are never replayed.
package throttle

import "time"

// DefaultCooldown is the activity coalescing window.
const DefaultCooldown = 5 * time.Second

// Coalescer gates calls using an explicit lastFire + cooldown window.
//
// A Coalescer is not safe for concurrent use. Callers serialize on their
// executor, which is the only place activity callbacks run.
type Coalescer struct {
	cooldown time.Duration
	now      func() time.Time

	lastFire time.Time
	fired    bool

	passed     int
	suppressed int
}

// New creates a Coalescer. A nil clock uses time.Now and a non-positive
// cooldown lets every call through.
func New(cooldown time.Duration, now func() time.Time) *Coalescer {
	if now == nil {
		now = time.Now
	}
	return &Coalescer{cooldown: cooldown, now: now}
}

// Allow reports whether the current call opens a new window.
func (c *Coalescer) Allow() bool {
	t := c.now()
	if c.fired && c.cooldown > 0 && t.Before(c.lastFire.Add(c.cooldown)) {
		c.suppressed++
		return false
	}
	c.lastFire = t
	c.fired = true
	c.passed++
	return true
}

// Wrap returns fn gated by Allow.
func (c *Coalescer) Wrap(fn func()) func() {
	return func() {
		if c.Allow() {
			fn()
		}
	}
}

// NextWindow returns when the next call will be let through. The zero time
// means the gate is open now.
func (c *Coalescer) NextWindow() time.Time {
	if !c.fired {
		return time.Time{}
	}
	next := c.lastFire.Add(c.cooldown)
	if !c.now().Before(next) {
		return time.Time{}
	}
	return next
}

// Reset reopens the gate so the next call passes. Counters are kept.
func (c *Coalescer) Reset() {
	c.lastFire = time.Time{}
	c.fired = false
}

// Stats returns how many calls passed and how many were dropped.
func (c *Coalescer) Stats() (passed, suppressed int) {
	return c.passed, c.suppressed
}

// Cooldown returns the configured window length.
func (c *Coalescer) Cooldown() time.Duration {
	return c.cooldown
}
