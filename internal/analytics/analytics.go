// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Well-known event names.
const (
	EventAccessSwap = "trackAccessToSwap"
	EventExitSwap   = "exitSwap"
)

const (
	// DefaultQueueSize is the event queue capacity.
	DefaultQueueSize = 128

	// sendTimeout bounds one delivery to one worker.
	sendTimeout = 5 * time.Second
)

var (
	// ErrNoWorkers is returned when none of the requested workers could be built.
	ErrNoWorkers = errors.New("analytics: no usable workers")

	// ErrUnknownWorker is returned by Registry.Build for an unregistered name.
	ErrUnknownWorker = errors.New("analytics: unknown worker")
)

// Options selects the workers and tags events with a network.
type Options struct {
	Workers []string
	Network string
}

// Event is one tracked occurrence.
type Event struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Network string    `json:"network"`
	Time    time.Time `json:"time"`
}

// Worker delivers events to one backend.
//
//go:generate mockgen -destination=mock_worker_test.go -package=analytics . Worker
type Worker interface {
	Name() string
	Send(ctx context.Context, ev Event) error
	Close() error
}

// Tracker records a named event. Implementations must not block.
type Tracker interface {
	Track(name string)
}

// Stats counts events by outcome.
type Stats struct {
	Queued    int
	Delivered int
	Dropped   int
	Failed    int
}

// Client fans tracked events out to its workers.
type Client struct {
	network string
	workers []Worker
	log     zerolog.Logger

	queue chan Event
	done  chan struct{}

	mu     sync.Mutex
	closed bool
	stats  Stats
}

// New builds the workers named in opts and starts delivery. Duplicate names
// are built once. Workers that fail to build are logged and skipped.
func New(opts Options, reg *Registry, queueSize int, log zerolog.Logger) (*Client, error) {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	var workers []Worker
	for _, name := range dedupe(opts.Workers) {
		w, err := reg.Build(name)
		if err != nil {
			log.Warn().Err(err).Str("worker", name).Msg("analytics worker unavailable")
			continue
		}
		workers = append(workers, w)
	}
	if len(workers) == 0 {
		return nil, fmt.Errorf("%w: requested %v", ErrNoWorkers, opts.Workers)
	}

	return NewWithWorkers(opts.Network, queueSize, log, workers...), nil
}

// NewWithWorkers starts a client over already built workers.
func NewWithWorkers(network string, queueSize int, log zerolog.Logger, workers ...Worker) *Client {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	c := &Client{
		network: network,
		workers: workers,
		log:     log,
		queue:   make(chan Event, queueSize),
		done:    make(chan struct{}),
	}
	go c.deliver()
	return c
}

// Track enqueues name. It drops the event when the queue is full or the
// client is closed.
func (c *Client) Track(name string) {
	ev := Event{
		ID:      uuid.New().String(),
		Name:    name,
		Network: c.network,
		Time:    time.Now().UTC(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		c.stats.Dropped++
		return
	}
	select {
	case c.queue <- ev:
		c.stats.Queued++
	default:
		c.stats.Dropped++
		c.log.Warn().Str("event_name", name).Msg("analytics queue full, event dropped")
	}
}

func (c *Client) deliver() {
	defer close(c.done)
	for ev := range c.queue {
		for _, w := range c.workers {
			ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
			err := w.Send(ctx, ev)
			cancel()

			c.mu.Lock()
			if err != nil {
				c.stats.Failed++
			} else {
				c.stats.Delivered++
			}
			c.mu.Unlock()

			if err != nil {
				c.log.Warn().Err(err).Str("worker", w.Name()).Str("event_name", ev.Name).Msg("analytics delivery failed")
			}
		}
	}
}

// Close stops accepting events, drains the queue and closes every worker.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.queue)
	c.mu.Unlock()

	<-c.done

	var errs []error
	for _, w := range c.workers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", w.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Network returns the network events are tagged with.
func (c *Client) Network() string { return c.network }

// WorkerNames lists the active workers.
func (c *Client) WorkerNames() []string {
	names := make([]string, 0, len(c.workers))
	for _, w := range c.workers {
		names = append(names, w.Name())
	}
	return names
}

// Stats returns delivery counters.
func (c *Client) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// =============================================================================
// REGISTRY
// =============================================================================

// Settings carries backend parameters shared by the built-in workers.
type Settings struct {
	Endpoint      string
	Token         string
	RatePerSecond float64
	LedgerPath    string
}

// Factory builds a worker.
type Factory func() (Worker, error)

// Registry maps worker names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry with the built-in workers.
func NewRegistry(s Settings, log zerolog.Logger) *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(MixWorkerName, func() (Worker, error) {
		return NewMixWorker(s.Endpoint, s.Token, s.RatePerSecond, log), nil
	})
	r.Register(LedgerWorkerName, func() (Worker, error) {
		return OpenLedger(s.LedgerPath)
	})
	r.Register(LogWorkerName, func() (Worker, error) {
		return NewLogWorker(log), nil
	})
	return r
}

// Register adds or replaces a factory.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Build constructs the named worker.
func (r *Registry) Build(name string) (Worker, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorker, name)
	}
	return f()
}

// Names returns the registered worker names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
