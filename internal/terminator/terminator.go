// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminator ends an idle session: it shows one localized notice and
// then clears the session.
package terminator

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Translation keys and their English fallbacks.
const (
	KeyTitle = "error.time_out"
	KeyBody  = "error.clear_data_timeout"

	DefaultTitle = "Time out"
	DefaultBody  = "We've cleared all your data because your session is timed out ${time} minutes"
)

// Translator looks up a message. ok is false when the key is missing.
type Translator interface {
	Translate(key string, params map[string]string) (msg string, ok bool)
}

// Dispatcher is the part of the store the terminator acts on.
//
//go:generate mockgen -destination=mock_dispatcher_test.go -package=terminator . Dispatcher
type Dispatcher interface {
	ShowNotice(title, body string)
	ClearSession()
}

// Terminator composes the timeout notice and clears the session.
type Terminator struct {
	tr          Translator
	d           Dispatcher
	idleTimeout time.Duration
	log         zerolog.Logger
}

// New creates a terminator. A nil translator always uses the fallbacks.
func New(tr Translator, d Dispatcher, idleTimeout time.Duration, log zerolog.Logger) *Terminator {
	return &Terminator{tr: tr, d: d, idleTimeout: idleTimeout, log: log}
}

// Terminate opens the notice and then clears the session.
func (t *Terminator) Terminate() {
	title, body := t.Notice()
	t.d.ShowNotice(title, body)
	t.d.ClearSession()
	t.log.Info().
		Str("event", "SESSION_CLEARED").
		Str("minutes", Minutes(t.idleTimeout)).
		Msg("session cleared after idle timeout")
}

// Notice returns the localized title and body.
func (t *Terminator) Notice() (title, body string) {
	params := map[string]string{"time": Minutes(t.idleTimeout)}

	title = DefaultTitle
	body = Expand(DefaultBody, params)
	if t.tr == nil {
		return title, body
	}
	if msg, ok := t.tr.Translate(KeyTitle, nil); ok && msg != "" {
		title = msg
	}
	if msg, ok := t.tr.Translate(KeyBody, params); ok && msg != "" {
		body = msg
	}
	return title, body
}

// Minutes formats d in minutes without trailing zeros: 600s is "10", 90s is "1.5".
func Minutes(d time.Duration) string {
	return strconv.FormatFloat(d.Minutes(), 'f', -1, 64)
}

// Expand replaces ${name} placeholders with params. Unknown placeholders are
// left as they are.
func Expand(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "${") {
		return s
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "${"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
