// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swapwatch/internal/store"
	"github.com/jeranaias/swapwatch/internal/ui/styles"
)

// =============================================================================
// NOTICE OVERLAY
// =============================================================================

// NoticeOverlay renders the store's notice surface.
type NoticeOverlay struct {
	notice store.Notice
	hint   string
	theme  *styles.Theme

	width  int
	height int

	// rendered body cache, keyed by body, width and theme
	cacheKey string
	cached   string
}

// NewNoticeOverlay creates an overlay drawn with theme.
func NewNoticeOverlay(theme *styles.Theme) *NoticeOverlay {
	return &NoticeOverlay{theme: theme}
}

// SetSize sets the overlay dimensions.
func (o *NoticeOverlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// SetTheme switches the palette.
func (o *NoticeOverlay) SetTheme(theme *styles.Theme) {
	o.theme = theme
}

// SetNotice copies the notice to display.
func (o *NoticeOverlay) SetNotice(n store.Notice) {
	o.notice = n
}

// SetHint sets the dismiss hint shown under the body.
func (o *NoticeOverlay) SetHint(hint string) {
	o.hint = hint
}

// IsVisible reports whether the notice is open.
func (o *NoticeOverlay) IsVisible() bool {
	return o.notice.Open
}

// View renders the overlay centered in its area, or "" when closed.
func (o *NoticeOverlay) View() string {
	if !o.notice.Open {
		return ""
	}
	width, height := o.width, o.height
	if width == 0 {
		width = 60
	}
	if height == 0 {
		height = 24
	}

	maxWidth := width - 8
	if maxWidth < 30 {
		maxWidth = 30
	}
	if maxWidth > 60 {
		maxWidth = 60
	}

	parts := []string{
		o.theme.NoticeTitle.Render("x " + o.notice.Title),
		"",
		o.renderBody(maxWidth - 6),
	}
	if o.hint != "" {
		parts = append(parts, "", o.theme.NoticeHint.Render(o.hint))
	}

	box := o.theme.NoticeBox.
		Width(maxWidth).
		Render(lipgloss.JoinVertical(lipgloss.Center, parts...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (o *NoticeOverlay) renderBody(wrap int) string {
	if wrap < 10 {
		wrap = 10
	}
	key := fmt.Sprintf("%s|%d|%s", o.theme.Name, wrap, o.notice.Body)
	if key == o.cacheKey {
		return o.cached
	}
	out, err := RenderMarkdown(o.notice.Body, wrap, o.theme.Name)
	if err != nil {
		out = o.theme.NoticeBody.Width(wrap).Render(o.notice.Body)
	}
	o.cacheKey = key
	o.cached = out
	return out
}

// RenderMarkdown renders md with the glamour style matching theme, trimmed of
// the renderer's surrounding blank lines.
func RenderMarkdown(md string, wrap int, theme store.Theme) (string, error) {
	style := "light"
	if theme == store.ThemeDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
