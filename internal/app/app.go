// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app wires the swapwatch components together for the TUI and the
// console front ends.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jeranaias/swapwatch/internal/activity"
	"github.com/jeranaias/swapwatch/internal/analytics"
	"github.com/jeranaias/swapwatch/internal/config"
	"github.com/jeranaias/swapwatch/internal/connection"
	"github.com/jeranaias/swapwatch/internal/device"
	"github.com/jeranaias/swapwatch/internal/i18n"
	"github.com/jeranaias/swapwatch/internal/lifecycle"
	"github.com/jeranaias/swapwatch/internal/signal"
	"github.com/jeranaias/swapwatch/internal/store"
	"github.com/jeranaias/swapwatch/internal/ui/styles"
)

// LedgerFile is the default analytics ledger name inside the config directory.
const LedgerFile = "events.db"

// Options tune New. Zero values use production collaborators.
type Options struct {
	// Device overrides host detection.
	Device device.Detector
	// Workers adds or replaces analytics worker factories.
	Workers map[string]analytics.Factory
	// SkipAtExit leaves the exit registry out of atexit.
	SkipAtExit bool
}

// App holds every long-lived component.
type App struct {
	cfg *config.Config
	log zerolog.Logger

	Catalog      *i18n.Catalog
	Store        *store.Store
	Hub          *activity.Hub
	Bus          *signal.EventBus
	Exit         *lifecycle.ExitRegistry
	Conn         *connection.Manager
	Registry     *analytics.Registry
	Orchestrator *lifecycle.Orchestrator

	mu       sync.Mutex
	client   *analytics.Client
	shutdown sync.Once
}

// New builds the component graph. exec is the thread every lifecycle callback
// runs on; nothing is mounted yet.
func New(cfg *config.Config, exec lifecycle.Executor, log zerolog.Logger, opts Options) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{cfg: cfg, log: log}

	cat, err := i18n.New()
	if err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	if cfg.Locale.Dir != "" {
		if err := cat.LoadDir(cfg.Locale.Dir); err != nil {
			log.Warn().Err(err).Str("dir", cfg.Locale.Dir).Msg("catalog overrides not loaded")
		}
	}
	initial := cfg.Locale.Default
	if err := cat.SetActive(initial); err != nil {
		log.Warn().Err(err).Msg("falling back to default language")
		initial = i18n.DefaultLanguage
		_ = cat.SetActive(initial)
	}
	a.Catalog = cat

	langs := make([]store.Language, 0)
	for _, li := range cat.Languages() {
		langs = append(langs, store.Language{Code: li.Code, Name: li.Name, Active: li.Code == initial})
	}

	a.Conn = connection.NewManager(cfg.Connection.NodeURL, cfg.Connection.DialTimeout, log)
	a.Store = store.New(store.Options{
		Theme:     styles.DetectTheme(cfg.UI.Theme),
		Languages: langs,
		Connector: a.Conn,
		OnLanguage: func(code string) {
			if err := cat.SetActive(code); err != nil {
				log.Warn().Err(err).Msg("no catalog for language, keeping previous messages")
			}
		},
		Logger: log,
	})

	a.Hub = activity.NewHub()
	a.Bus = signal.NewEventBus(log)
	signal.Install(a.Bus)
	a.Exit = lifecycle.NewExitRegistry(log)
	if !opts.SkipAtExit {
		// Stays installed: atexit.Exit after Shutdown finds nothing left to run.
		a.Exit.InstallAtExit()
	}

	ledger := cfg.Analytics.LedgerPath
	if ledger == "" {
		if dir, err := config.ConfigDir(); err == nil {
			ledger = filepath.Join(dir, LedgerFile)
		}
	}
	a.Registry = analytics.NewRegistry(analytics.Settings{
		Endpoint:      cfg.Analytics.Endpoint,
		Token:         cfg.Analytics.Token,
		RatePerSecond: cfg.Analytics.RatePerSecond,
		LedgerPath:    ledger,
	}, log)
	for name, f := range opts.Workers {
		a.Registry.Register(name, f)
	}

	det := opts.Device
	if det == nil {
		det = device.HostDetector{}
	}

	orch, err := lifecycle.New(lifecycle.Config{
		IdleTimeout:      cfg.Session.IdleTimeout(),
		TickPeriod:       cfg.Session.TickPeriod,
		ActivityCooldown: cfg.Session.ActivityCooldown,
		Workers:          cfg.Analytics.Workers,
		Network:          cfg.Analytics.Network,
	}, lifecycle.Deps{
		Executor:     exec,
		Store:        a.Store,
		Activity:     []activity.Source{a.Hub},
		Bus:          a.Bus,
		Device:       det,
		Exit:         a.Exit,
		NewAnalytics: a.newAnalytics,
		Translator:   cat,
		Logger:       log,
	})
	if err != nil {
		return nil, err
	}
	a.Orchestrator = orch
	return a, nil
}

// newAnalytics is the orchestrator's analytics factory. The client is kept
// so Shutdown can drain it.
func (a *App) newAnalytics(opts analytics.Options) (analytics.Tracker, error) {
	c, err := analytics.New(opts, a.Registry, a.cfg.Analytics.QueueSize, a.log)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	prev := a.client
	a.client = c
	a.mu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	return c, nil
}

// Analytics returns the live analytics client, or nil before mount.
func (a *App) Analytics() *analytics.Client {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.client
}

// WatchCatalogs reloads catalog overrides while ctx is live. changed runs on
// the watcher goroutine after each reload.
func (a *App) WatchCatalogs(ctx context.Context, changed func()) error {
	if !a.cfg.Locale.Watch || a.cfg.Locale.Dir == "" {
		return nil
	}
	return a.Catalog.Watch(ctx, a.cfg.Locale.Dir, a.log, func(string) {
		if changed != nil {
			changed()
		}
	})
}

// Shutdown runs the exit hooks while the layout is still mounted, unmounts
// it, then releases analytics and the connection. Call it once the executor
// no longer runs callbacks. Safe to call more than once.
func (a *App) Shutdown() error {
	var errs []error
	a.shutdown.Do(func() {
		a.Exit.Run()
		a.Orchestrator.Unmount()
		if c := a.Analytics(); c != nil {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close analytics: %w", err))
			}
		}
		if err := a.Conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
		a.log.Info().Msg("shutdown complete")
	})
	return errors.Join(errs...)
}
