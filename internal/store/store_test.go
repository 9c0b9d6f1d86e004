// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jeranaias/swapwatch/internal/connection"
	"github.com/jeranaias/swapwatch/internal/session"
)

var testLanguages = []Language{
	{Code: "en", Name: "English", Active: true},
	{Code: "vi", Name: "Tiếng Việt"},
	{Code: "kr", Name: "한국어"},
}

func newTestStore(t *testing.T, opts Options) *Store {
	t.Helper()
	opts.Logger = zerolog.Nop()
	if opts.Languages == nil {
		opts.Languages = testLanguages
	}
	return New(opts)
}

func TestTheme_Opposite(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Opposite())
	assert.Equal(t, ThemeLight, ThemeDark.Opposite())
	assert.Equal(t, ThemeLight, ThemeLight.Opposite().Opposite())

	th, ok := ParseTheme(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, th)
	_, ok = ParseTheme("solarized")
	assert.False(t, ok)
}

func TestLocale_ActiveCode(t *testing.T) {
	assert.Equal(t, "en", Locale{}.ActiveCode())
	assert.Equal(t, "vi", Locale{Languages: []Language{{Code: "vi"}, {Code: "en"}}}.ActiveCode())
	assert.Equal(t, "kr", Locale{Languages: []Language{{Code: "vi"}, {Code: "kr", Active: true}}}.ActiveCode())
}

func TestStore_SessionAndNotice(t *testing.T) {
	s := newTestStore(t, Options{})
	var changes []Change
	cancel := s.Watch(func(c Change) { changes = append(changes, c) })

	assert.False(t, s.HasAccount())
	require.NoError(t, s.SignIn(session.Account{Address: "0xabc"}))
	assert.True(t, s.HasAccount())

	s.ShowNotice("Time out", "cleared")
	assert.True(t, s.NoticeOpen())
	assert.Equal(t, "Time out", s.Notice().Title)

	s.ClearSession()
	assert.False(t, s.HasAccount())
	s.ClearSession()

	s.CloseNotice()
	assert.False(t, s.NoticeOpen())

	cancel()
	s.ShowNotice("x", "y")

	assert.Equal(t, []Change{ChangeSession, ChangeNotice, ChangeSession, ChangeNotice}, changes)
}

func TestStore_Theme(t *testing.T) {
	s := newTestStore(t, Options{})
	assert.Equal(t, ThemeLight, s.Theme())

	n := 0
	s.Watch(func(c Change) {
		if c == ChangeTheme {
			n++
		}
	})
	s.SetTheme(ThemeDark)
	s.SetTheme(ThemeDark)
	assert.Equal(t, ThemeDark, s.Theme())
	assert.Equal(t, 1, n, "setting the same theme is not a change")
}

func TestStore_ChangeLanguage(t *testing.T) {
	var hooked string
	s := newTestStore(t, Options{OnLanguage: func(code string) { hooked = code }})
	assert.Equal(t, "en", s.Language())

	conn := connection.Identity{InstanceID: "abc"}
	s.ChangeLanguage(conn, "vi", s.Locale())

	assert.Equal(t, "vi", s.Locale().ActiveCode())
	assert.Equal(t, "vi", s.Language())
	assert.Equal(t, "vi", hooked)

	// Not validated: an unknown code is recorded and nothing is active.
	s.ChangeLanguage(conn, "xx", Locale{})
	assert.Equal(t, "xx", s.Language())
	for _, l := range s.Locale().Languages {
		assert.False(t, l.Active)
	}
}

func TestStore_LocaleIsCopied(t *testing.T) {
	s := newTestStore(t, Options{})
	loc := s.Locale()
	loc.Languages[0].Code = "zz"
	assert.Equal(t, "en", s.Locale().Languages[0].Code)
}

func TestStore_RequestNewConnectionInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := NewMockConnector(ctrl)

	want := connection.Identity{InstanceID: "d0", Live: true, NetworkVersion: "1", ConnectedAt: time.Unix(1, 0)}
	conn.EXPECT().NewInstance(gomock.Any()).DoAndReturn(func(onReady func(connection.Identity)) {
		onReady(want)
	})

	s := newTestStore(t, Options{Connector: conn})
	got := make(chan Change, 1)
	s.Watch(func(c Change) { got <- c })

	s.RequestNewConnectionInstance()
	assert.Equal(t, ChangeConnection, <-got)
	assert.Equal(t, want, s.Connection())
}

func TestStore_NoConnector(t *testing.T) {
	s := newTestStore(t, Options{})
	s.RequestNewConnectionInstance()
	assert.Empty(t, s.Connection().InstanceID)
}

type countTracker struct{ names []string }

func (c *countTracker) Track(name string) { c.names = append(c.names, name) }

func TestStore_AnalyticsAndDevice(t *testing.T) {
	s := newTestStore(t, Options{})
	assert.Nil(t, s.Analytics())

	tr := &countTracker{}
	s.RegisterAnalyticsClient(tr)
	s.Analytics().Track("x")
	assert.Equal(t, []string{"x"}, tr.names)

	assert.False(t, s.Restricted())
	s.MarkRestrictedDevice()
	assert.True(t, s.Restricted())
}

func TestChange_String(t *testing.T) {
	assert.Equal(t, "connection", ChangeConnection.String())
	assert.Equal(t, "unknown", Change(99).String())
}
