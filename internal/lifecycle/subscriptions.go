// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lifecycle

import "sync"

// Subscriptions is a group of release funcs freed together, last added first.
type Subscriptions struct {
	mu       sync.Mutex
	names    []string
	release  []func()
	released bool
}

// Add appends a named release func. Adding to a released group runs fn at once.
func (s *Subscriptions) Add(name string, fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		fn()
		return
	}
	s.names = append(s.names, name)
	s.release = append(s.release, fn)
	s.mu.Unlock()
}

// Release runs every release func once, in reverse order.
func (s *Subscriptions) Release() {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	s.released = true
	fns := s.release
	s.release = nil
	s.names = nil
	s.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// Names lists the held subscriptions in acquisition order.
func (s *Subscriptions) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.names...)
}

// Len returns the number of held subscriptions.
func (s *Subscriptions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.release)
}
