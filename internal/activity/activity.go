// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package activity captures user input signals and turns bursts of them into a
// single idle reset.
package activity

import "sync"

// Kind classifies an input signal.
type Kind int

const (
	KindLoad Kind = iota
	KindPointerMove
	KindPointerDown
	KindTouchStart
	KindClick
	KindScroll
	KindKeyPress
)

var kindNames = map[Kind]string{
	KindLoad:        "load",
	KindPointerMove: "pointer_move",
	KindPointerDown: "pointer_down",
	KindTouchStart:  "touch_start",
	KindClick:       "click",
	KindScroll:      "scroll",
	KindKeyPress:    "key_press",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Kinds returns every signal the listener reacts to.
func Kinds() []Kind {
	return []Kind{KindLoad, KindPointerMove, KindPointerDown, KindTouchStart, KindClick, KindScroll, KindKeyPress}
}

// Handler receives one input signal.
type Handler func(Kind)

// Source is anything that can deliver input signals. Subscribe returns a func
// that detaches the handler; calling it more than once is a no-op.
type Source interface {
	Subscribe(h Handler) (unsubscribe func())
}

// =============================================================================
// HUB
// =============================================================================

// Hub is a fan-out Source. Hosts push raw input with Emit; every subscribed
// handler receives it in subscription order. Emit must be called on the
// executor that owns the subscribers.
type Hub struct {
	mu       sync.Mutex
	nextID   int
	order    []int
	handlers map[int]Handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{handlers: make(map[int]Handler)}
}

// Subscribe registers h and returns its detach func.
func (h *Hub) Subscribe(fn Handler) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.handlers[id] = fn
	h.order = append(h.order, id)
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.handlers, id)
			for i, v := range h.order {
				if v == id {
					h.order = append(h.order[:i], h.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Emit delivers k to every current subscriber.
func (h *Hub) Emit(k Kind) {
	h.mu.Lock()
	targets := make([]Handler, 0, len(h.order))
	for _, id := range h.order {
		targets = append(targets, h.handlers[id])
	}
	h.mu.Unlock()

	for _, fn := range targets {
		fn(k)
	}
}

// Len returns the number of attached handlers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers)
}
