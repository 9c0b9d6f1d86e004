// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"strings"
	"time"
)

// Theme is the color scheme name.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Opposite returns the complement. Anything that is not dark maps to dark.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

// Notice is the blocking modal.
type Notice struct {
	Open  bool
	Title string
	Body  string
	Shown time.Time
}

// Language is one entry of the language list.
type Language struct {
	Code   string
	Name   string
	Active bool
}

// Locale is the language list with its active flag.
type Locale struct {
	Languages []Language
}

// DefaultLanguage is used when the list is empty.
const DefaultLanguage = "en"

// ActiveCode returns the first active code, the first code when none is
// active, or DefaultLanguage for an empty list.
func (l Locale) ActiveCode() string {
	for _, lang := range l.Languages {
		if lang.Active {
			return lang.Code
		}
	}
	if len(l.Languages) > 0 {
		return l.Languages[0].Code
	}
	return DefaultLanguage
}

// Codes lists the language codes in order.
func (l Locale) Codes() []string {
	out := make([]string, 0, len(l.Languages))
	for _, lang := range l.Languages {
		out = append(out, lang.Code)
	}
	return out
}

// clone returns a deep copy.
func (l Locale) clone() Locale {
	return Locale{Languages: append([]Language(nil), l.Languages...)}
}

// Change names the slice of state that changed.
type Change int

const (
	ChangeSession Change = iota
	ChangeNotice
	ChangeTheme
	ChangeLocale
	ChangeConnection
	ChangeDevice
	ChangeAnalytics
)

func (c Change) String() string {
	switch c {
	case ChangeSession:
		return "session"
	case ChangeNotice:
		return "notice"
	case ChangeTheme:
		return "theme"
	case ChangeLocale:
		return "locale"
	case ChangeConnection:
		return "connection"
	case ChangeDevice:
		return "device"
	case ChangeAnalytics:
		return "analytics"
	default:
		return "unknown"
	}
}
