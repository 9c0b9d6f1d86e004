// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jeranaias/swapwatch/internal/activity"
	"github.com/jeranaias/swapwatch/internal/analytics"
	"github.com/jeranaias/swapwatch/internal/connection"
	"github.com/jeranaias/swapwatch/internal/device"
	"github.com/jeranaias/swapwatch/internal/signal"
	"github.com/jeranaias/swapwatch/internal/store"
	"github.com/jeranaias/swapwatch/internal/terminator"
	"github.com/jeranaias/swapwatch/internal/throttle"
	"github.com/jeranaias/swapwatch/internal/watchdog"
)

// EnvChainName supplies the analytics network when Config.Network is empty.
const EnvChainName = "SWAPWATCH_CHAIN_NAME"

// DefaultIdleTimeout is used when Config.IdleTimeout is zero.
const DefaultIdleTimeout = 15 * time.Minute

var (
	// ErrAlreadyMounted is returned by Mount on a mounted orchestrator.
	ErrAlreadyMounted = errors.New("lifecycle: already mounted")

	errNoExecutor = errors.New("lifecycle: executor is required")
	errNoStore    = errors.New("lifecycle: store is required")
)

// Executor runs callbacks one at a time.
type Executor interface {
	Post(fn func()) bool
	Every(period time.Duration, fn func()) (stop func())
}

// Store is the shared state the orchestrator reads and dispatches to.
//
//go:generate mockgen -destination=mock_store_test.go -package=lifecycle . Store
type Store interface {
	store.Dispatcher
	HasAccount() bool
	NoticeOpen() bool
	Theme() store.Theme
	Locale() store.Locale
	Connection() connection.Identity
}

// AnalyticsFactory builds the analytics client at mount.
type AnalyticsFactory func(opts analytics.Options) (analytics.Tracker, error)

// Config holds the timing and analytics parameters.
type Config struct {
	IdleTimeout      time.Duration
	TickPeriod       time.Duration
	ActivityCooldown time.Duration
	Workers          []string
	Network          string
}

// Deps are the orchestrator's collaborators. Executor and Store are required.
type Deps struct {
	Executor     Executor
	Store        Store
	Activity     []activity.Source
	Bus          signal.Bus
	Device       device.Detector
	Exit         ExitHooks
	NewAnalytics AnalyticsFactory
	Translator   terminator.Translator
	Now          func() time.Time
	Logger       zerolog.Logger
}

// Orchestrator owns the mount/unmount span of the layout.
type Orchestrator struct {
	cfg  Config
	deps Deps
	log  zerolog.Logger

	wd       *watchdog.Watchdog
	term     *terminator.Terminator
	listener *activity.Listener

	subs    *Subscriptions
	mounted bool
	tracker analytics.Tracker
}

// New validates deps and builds the watchdog, terminator and listener.
func New(cfg Config, deps Deps) (*Orchestrator, error) {
	if deps.Executor == nil {
		return nil, errNoExecutor
	}
	if deps.Store == nil {
		return nil, errNoStore
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = watchdog.DefaultTickPeriod
	}
	if cfg.ActivityCooldown <= 0 {
		cfg.ActivityCooldown = throttle.DefaultCooldown
	}

	o := &Orchestrator{cfg: cfg, deps: deps, log: deps.Logger}
	o.term = terminator.New(deps.Translator, deps.Store, cfg.IdleTimeout, deps.Logger)
	o.wd = watchdog.New(deps.Store, o.term, watchdog.ThresholdFor(cfg.IdleTimeout, cfg.TickPeriod), deps.Logger)
	o.listener = activity.NewListener(o.wd.Reset, cfg.ActivityCooldown, deps.Now, deps.Logger, deps.Activity...)
	return o, nil
}

// Mount acquires every subscription. When ctx is cancelled the orchestrator
// unmounts itself on the executor.
func (o *Orchestrator) Mount(ctx context.Context) error {
	if o.mounted {
		return ErrAlreadyMounted
	}
	subs := &Subscriptions{}
	o.wd.Reset()
	o.listener.Gate().Reset()

	// (a) activity listeners
	subs.Add("activity", o.listener.Attach())

	// (b) idle tick timer
	subs.Add("tick", o.deps.Executor.Every(o.cfg.TickPeriod, o.tick))

	// (c) connection instance
	o.deps.Store.RequestNewConnectionInstance()

	// (d) analytics client
	o.tracker = o.buildAnalytics()
	if o.tracker != nil {
		o.deps.Store.RegisterAnalyticsClient(o.tracker)
		// (e) access event
		o.tracker.Track(analytics.EventAccessSwap)
	}

	if o.deps.Device != nil {
		if class := o.deps.Device.Detect(); class.Restricted() {
			o.log.Info().Stringer("device", class).Msg("restricted device, mobile layout only")
			o.deps.Store.MarkRestrictedDevice()
		}
	}

	if o.deps.Exit != nil {
		tracker := o.tracker
		subs.Add("exit", o.deps.Exit.Register(func() {
			if tracker != nil {
				tracker.Track(analytics.EventExitSwap)
			}
		}))
	}

	if unsub := o.subscribeThemeSignal(); unsub != nil {
		subs.Add("signal", unsub)
	}

	if ctx != nil && ctx.Done() != nil {
		stop := context.AfterFunc(ctx, func() {
			o.deps.Executor.Post(o.Unmount)
		})
		subs.Add("context", func() { stop() })
	}

	o.subs = subs
	o.mounted = true
	o.log.Info().
		Strs("subscriptions", subs.Names()).
		Int("threshold", o.wd.Threshold()).
		Dur("tick_period", o.cfg.TickPeriod).
		Msg("layout mounted")
	return nil
}

func (o *Orchestrator) buildAnalytics() analytics.Tracker {
	if o.deps.NewAnalytics == nil {
		return nil
	}
	network := o.cfg.Network
	if network == "" {
		network = os.Getenv(EnvChainName)
	}
	tr, err := o.deps.NewAnalytics(analytics.Options{Workers: o.cfg.Workers, Network: network})
	if err != nil {
		o.log.Warn().Err(err).Msg("analytics unavailable")
		return nil
	}
	return tr
}

func (o *Orchestrator) subscribeThemeSignal() func() {
	bus := o.deps.Bus
	if bus == nil {
		b, err := signal.Default()
		if err != nil {
			o.log.Debug().Msg("no signal channel, theme switch signal disabled")
			return nil
		}
		bus = b
	}
	unsub, err := bus.Subscribe(signal.TopicSwitchTheme, func(any) {
		o.deps.Executor.Post(func() {
			if o.mounted {
				o.ToggleTheme()
			}
		})
	})
	if err != nil {
		o.log.Warn().Err(err).Msg("theme signal subscription failed")
		return nil
	}
	return unsub
}

func (o *Orchestrator) tick() {
	if !o.mounted {
		return
	}
	o.wd.Tick()
}

// Unmount releases every subscription. It is safe to call more than once.
func (o *Orchestrator) Unmount() {
	if !o.mounted {
		return
	}
	o.mounted = false
	o.subs.Release()
	o.log.Info().Msg("layout unmounted")
}

// Mounted reports whether the layout is mounted.
func (o *Orchestrator) Mounted() bool { return o.mounted }

// ToggleTheme dispatches the complement of the stored theme.
func (o *Orchestrator) ToggleTheme() {
	next := o.deps.Store.Theme().Opposite()
	o.deps.Store.SetTheme(next)
}

// SetActiveLanguage dispatches a language change. The code is not validated.
func (o *Orchestrator) SetActiveLanguage(code string) {
	o.deps.Store.ChangeLanguage(o.deps.Store.Connection(), code, o.deps.Store.Locale())
}

// PresentationClass returns the class string for the layout root.
func (o *Orchestrator) PresentationClass() string {
	return PresentationClass(o.deps.Store.Locale().ActiveCode(), o.deps.Store.Theme())
}

// Watchdog exposes the idle watchdog for status display.
func (o *Orchestrator) Watchdog() *watchdog.Watchdog { return o.wd }

// Listener exposes the activity listener for status display.
func (o *Orchestrator) Listener() *activity.Listener { return o.listener }

// Terminator exposes the session terminator.
func (o *Orchestrator) Terminator() *terminator.Terminator { return o.term }

// Subscriptions returns the names of the held subscriptions.
func (o *Orchestrator) Subscriptions() []string {
	if o.subs == nil || !o.mounted {
		return nil
	}
	return o.subs.Names()
}

// =============================================================================
// LANGUAGE CLASSES
// =============================================================================

var languageClasses = map[string]string{
	"en": "swap-en",
	"cn": "swap-cn",
	"kr": "swap-kr",
	"ru": "swap-ru",
	"vi": "swap-vi",
}

// LanguageClass maps a language code to its layout class. Unknown codes map
// to "".
func LanguageClass(code string) string {
	return languageClasses[code]
}

// PresentationClass combines the language class and theme.
func PresentationClass(code string, theme store.Theme) string {
	return fmt.Sprintf("%s theme theme--%s", LanguageClass(code), theme)
}
