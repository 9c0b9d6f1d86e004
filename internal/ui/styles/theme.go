// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/swapwatch/internal/store"
)

// Theme holds the styled components for one application theme.
type Theme struct {
	Name         store.Theme
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App         lipgloss.Style
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderClass lipgloss.Style
	Body        lipgloss.Style
	Muted       lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	StatusValue  lipgloss.Style
	Live         lipgloss.Style
	Offline      lipgloss.Style
	SignedIn     lipgloss.Style
	IdleOK       lipgloss.Style
	IdleWarn     lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// NOTICE OVERLAY STYLES
	// ==========================================================================

	NoticeBox   lipgloss.Style
	NoticeTitle lipgloss.Style
	NoticeBody  lipgloss.Style
	NoticeHint  lipgloss.Style
}

// DetectTheme maps a configured theme name to a Theme. Empty or unknown names
// follow the terminal background.
func DetectTheme(configured string) store.Theme {
	if t, ok := store.ParseTheme(strings.ToLower(configured)); ok {
		return t
	}
	if termenv.HasDarkBackground() {
		return store.ThemeDark
	}
	return store.ThemeLight
}

// NewTheme creates a theme with all styles resolved for name.
func NewTheme(name store.Theme) *Theme {
	t := &Theme{
		Name:         name,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	c := func(p Pair) lipgloss.Color { return p.For(t.Name) }

	t.App = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Background(c(Surface))

	t.Header = lipgloss.NewStyle().
		Bold(true).
		Background(c(SurfaceDim)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c(Purple)).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Purple))

	t.HeaderClass = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Italic(true)

	t.Body = lipgloss.NewStyle().
		Foreground(c(TextPrimary)).
		Padding(1, 2)

	t.Muted = lipgloss.NewStyle().Foreground(c(TextMuted))

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(c(TextSecondary)).
		Background(c(SurfaceDim)).
		Padding(0, 1)

	t.StatusKey = lipgloss.NewStyle().Foreground(c(TextMuted))
	t.StatusValue = lipgloss.NewStyle().Foreground(c(TextPrimary))
	t.Live = lipgloss.NewStyle().Foreground(c(Cyan)).Bold(true)
	t.Offline = lipgloss.NewStyle().Foreground(c(Rose))
	t.SignedIn = lipgloss.NewStyle().Foreground(c(Emerald)).Bold(true)
	t.IdleOK = lipgloss.NewStyle().Foreground(c(Emerald))
	t.IdleWarn = lipgloss.NewStyle().Foreground(c(Amber))

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(c(Cyan)).
		Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().Foreground(c(TextMuted))

	// Notice overlay
	t.NoticeBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(c(Rose)).
		Background(c(Surface)).
		Padding(1, 3).
		Align(lipgloss.Center)

	t.NoticeTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(Rose))

	t.NoticeBody = lipgloss.NewStyle().Foreground(c(TextPrimary))

	t.NoticeHint = lipgloss.NewStyle().
		Foreground(c(TextMuted)).
		Italic(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
