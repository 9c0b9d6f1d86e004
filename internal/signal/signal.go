// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package signal is the optional process-wide publish/subscribe channel that
// other parts of the client use to nudge the swap layout.
//
// The channel may be absent. Consumers ask for it with Default and treat
// ErrNoChannel as "feature unavailable".
package signal

import (
	"errors"
	"sync"

	evbus "github.com/asaskevich/EventBus"
	"github.com/rs/zerolog"
)

// TopicSwitchTheme asks the layout to flip its theme. It carries no payload.
const TopicSwitchTheme = "swap.switch_theme"

// ErrNoChannel is returned by Default when no channel is installed.
var ErrNoChannel = errors.New("signal: no channel installed")

// Handler receives a published payload.
type Handler func(payload any)

// Bus is a topic based channel.
type Bus interface {
	Publish(topic string, payload any)
	Subscribe(topic string, h Handler) (unsubscribe func(), err error)
}

// EventBus adapts asaskevich/EventBus to Bus.
//
// Each topic gets one bridge callback on the underlying bus. Handlers are kept
// here, so unsubscribing one closure never removes another. Handlers run
// synchronously on the publisher's goroutine and must not publish to the same
// bus.
type EventBus struct {
	bus evbus.Bus
	log zerolog.Logger

	mu     sync.Mutex
	topics map[string]*topic
	nextID int
}

type topic struct {
	handlers map[int]Handler
	order    []int
}

// NewEventBus creates an empty bus.
func NewEventBus(log zerolog.Logger) *EventBus {
	return &EventBus{
		bus:    evbus.New(),
		log:    log,
		topics: make(map[string]*topic),
	}
}

// Subscribe registers h for name.
func (b *EventBus) Subscribe(name string, h Handler) (func(), error) {
	if h == nil {
		return nil, errors.New("signal: nil handler")
	}

	b.mu.Lock()
	t, ok := b.topics[name]
	if !ok {
		t = &topic{handlers: make(map[int]Handler)}
		b.topics[name] = t
	}
	id := b.nextID
	b.nextID++
	t.handlers[id] = h
	t.order = append(t.order, id)
	b.mu.Unlock()

	if !ok {
		if err := b.bus.Subscribe(name, b.bridge(name)); err != nil {
			b.remove(name, id)
			return nil, err
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(name, id) })
	}, nil
}

func (b *EventBus) remove(name string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.topics[name]
	if !ok {
		return
	}
	delete(t.handlers, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// bridge returns the single callback installed on the underlying bus for name.
func (b *EventBus) bridge(name string) func(payload any) {
	return func(payload any) {
		b.mu.Lock()
		t := b.topics[name]
		hs := make([]Handler, 0, len(t.order))
		for _, id := range t.order {
			hs = append(hs, t.handlers[id])
		}
		b.mu.Unlock()

		for _, h := range hs {
			b.call(name, h, payload)
		}
	}
}

func (b *EventBus) call(name string, h Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Str("topic", name).Interface("panic", r).Msg("signal handler panicked")
		}
	}()
	h(payload)
}

// Publish delivers payload to every handler of name.
func (b *EventBus) Publish(name string, payload any) {
	b.bus.Publish(name, payload)
}

// Subscribers returns the number of live handlers for name.
func (b *EventBus) Subscribers(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.topics[name]; ok {
		return len(t.handlers)
	}
	return 0
}

// =============================================================================
// PROCESS CHANNEL
// =============================================================================

var (
	defaultMu  sync.RWMutex
	defaultBus Bus
)

// Install makes b the process channel. A nil b removes it.
func Install(b Bus) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultBus = b
}

// Default returns the process channel or ErrNoChannel.
func Default() (Bus, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultBus == nil {
		return nil, ErrNoChannel
	}
	return defaultBus, nil
}
