// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jeranaias/swapwatch/internal/analytics"
	"github.com/jeranaias/swapwatch/internal/connection"
	"github.com/jeranaias/swapwatch/internal/session"
)

// Dispatcher is the set of actions the layout dispatches.
type Dispatcher interface {
	ClearSession()
	ChangeLanguage(conn connection.Identity, code string, locale Locale)
	MarkRestrictedDevice()
	RegisterAnalyticsClient(client analytics.Tracker)
	SetTheme(theme Theme)
	RequestNewConnectionInstance()
	ShowNotice(title, body string)
}

// Reader exposes read-only queries.
type Reader interface {
	HasAccount() bool
	NoticeOpen() bool
	Theme() Theme
	Locale() Locale
	Connection() connection.Identity
	Analytics() analytics.Tracker
}

// Connector creates connection instances.
//
//go:generate mockgen -destination=mock_connector_test.go -package=store . Connector
type Connector interface {
	NewInstance(onReady func(connection.Identity))
}

// Options configures a Store.
type Options struct {
	Theme     Theme
	Languages []Language
	Connector Connector
	// OnLanguage runs after the active language changed.
	OnLanguage func(code string)
	Now        func() time.Time
	Logger     zerolog.Logger
}

// Store is the shared state container.
type Store struct {
	mu sync.RWMutex

	session    *session.Manager
	notice     Notice
	theme      Theme
	locale     Locale
	language   string
	conn       connection.Identity
	restricted bool
	tracker    analytics.Tracker

	connector  Connector
	onLanguage func(string)
	now        func() time.Time
	log        zerolog.Logger

	watchMu  sync.Mutex
	watchers map[int]func(Change)
	nextID   int
}

// New creates a store.
func New(opts Options) *Store {
	theme := opts.Theme
	if theme == "" {
		theme = ThemeLight
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &Store{
		session:    session.NewManager(opts.Logger),
		theme:      theme,
		locale:     Locale{Languages: append([]Language(nil), opts.Languages...)},
		connector:  opts.Connector,
		onLanguage: opts.OnLanguage,
		now:        now,
		log:        opts.Logger,
		watchers:   make(map[int]func(Change)),
	}
	s.language = s.locale.ActiveCode()
	return s
}

// Watch registers fn for change notifications. fn runs on the goroutine that
// made the change and must not block.
func (s *Store) Watch(fn func(Change)) (cancel func()) {
	s.watchMu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.watchMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.watchMu.Lock()
			delete(s.watchers, id)
			s.watchMu.Unlock()
		})
	}
}

func (s *Store) notify(c Change) {
	s.watchMu.Lock()
	fns := make([]func(Change), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.watchMu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

// =============================================================================
// DISPATCHER
// =============================================================================

// ClearSession drops account and token state.
func (s *Store) ClearSession() {
	if s.session.Clear("idle_timeout") {
		s.notify(ChangeSession)
	}
}

// ChangeLanguage makes code the active language. The code is not validated:
// an unknown code leaves no entry active.
func (s *Store) ChangeLanguage(conn connection.Identity, code string, locale Locale) {
	s.mu.Lock()
	next := locale.clone()
	if len(next.Languages) == 0 {
		next = s.locale.clone()
	}
	for i := range next.Languages {
		next.Languages[i].Active = next.Languages[i].Code == code
	}
	s.locale = next
	s.language = code
	hook := s.onLanguage
	s.mu.Unlock()

	s.log.Info().Str("language", code).Str("instance", conn.InstanceID).Msg("language changed")
	if hook != nil {
		hook(code)
	}
	s.notify(ChangeLocale)
}

// MarkRestrictedDevice flags the host as mobile-only.
func (s *Store) MarkRestrictedDevice() {
	s.mu.Lock()
	changed := !s.restricted
	s.restricted = true
	s.mu.Unlock()
	if changed {
		s.notify(ChangeDevice)
	}
}

// RegisterAnalyticsClient stores client as the shared tracker.
func (s *Store) RegisterAnalyticsClient(client analytics.Tracker) {
	s.mu.Lock()
	s.tracker = client
	s.mu.Unlock()
	s.notify(ChangeAnalytics)
}

// SetTheme switches the theme.
func (s *Store) SetTheme(theme Theme) {
	s.mu.Lock()
	changed := s.theme != theme
	s.theme = theme
	s.mu.Unlock()
	if changed {
		s.log.Debug().Str("theme", string(theme)).Msg("theme changed")
		s.notify(ChangeTheme)
	}
}

// RequestNewConnectionInstance asks the connector for a fresh instance. The
// identity is stored when it is ready.
func (s *Store) RequestNewConnectionInstance() {
	if s.connector == nil {
		s.log.Warn().Msg("no connector configured, connection request ignored")
		return
	}
	s.connector.NewInstance(func(id connection.Identity) {
		s.mu.Lock()
		s.conn = id
		s.mu.Unlock()
		s.notify(ChangeConnection)
	})
}

// ShowNotice opens the blocking notice.
func (s *Store) ShowNotice(title, body string) {
	s.mu.Lock()
	s.notice = Notice{Open: true, Title: title, Body: body, Shown: s.now()}
	s.mu.Unlock()
	s.notify(ChangeNotice)
}

// =============================================================================
// READER
// =============================================================================

// HasAccount reports whether an account is signed in.
func (s *Store) HasAccount() bool { return s.session.HasAccount() }

// NoticeOpen reports whether the blocking notice is shown.
func (s *Store) NoticeOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notice.Open
}

// Theme returns the current theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Locale returns a copy of the language list.
func (s *Store) Locale() Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale.clone()
}

// Language returns the last code passed to ChangeLanguage, or the initial
// active code.
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// Connection returns the current connection identity.
func (s *Store) Connection() connection.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn
}

// Analytics returns the registered tracker or nil.
func (s *Store) Analytics() analytics.Tracker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker
}

// =============================================================================
// EXTRAS
// =============================================================================

// Notice returns the current notice.
func (s *Store) Notice() Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notice
}

// CloseNotice dismisses the notice.
func (s *Store) CloseNotice() {
	s.mu.Lock()
	wasOpen := s.notice.Open
	s.notice = Notice{}
	s.mu.Unlock()
	if wasOpen {
		s.notify(ChangeNotice)
	}
}

// Restricted reports whether the device was marked mobile-only.
func (s *Store) Restricted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restricted
}

// SignIn starts an account session.
func (s *Store) SignIn(acc session.Account) error {
	if _, err := s.session.Start(acc); err != nil {
		return err
	}
	s.notify(ChangeSession)
	return nil
}

// Session returns the session manager.
func (s *Store) Session() *session.Manager { return s.session }
