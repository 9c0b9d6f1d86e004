// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swapwatch/internal/ui/styles"
	"github.com/jeranaias/swapwatch/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Shortcut is a key hint shown at the right of the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom line of the layout. Labels arrive already
// translated.
type StatusBar struct {
	SessionLabel string // "signed out" or the signed-in address line
	SignedIn     bool
	IdleLabel    string
	Idle         int
	Threshold    int
	ConnLabel    string
	Live         bool
	Language     string
	Restricted   string // non-empty on restricted devices
	Shortcuts    []Shortcut
	Width        int

	theme *styles.Theme
}

// NewStatusBar creates a status bar drawn with theme.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetTheme switches the palette.
func (s *StatusBar) SetTheme(theme *styles.Theme) {
	s.theme = theme
}

// SetWidth sets the available width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// segment is plain text plus the style it is drawn with. Text is measured
// before styling so ANSI codes never count toward width.
type segment struct {
	text  string
	style lipgloss.Style
}

// View renders the bar. Segments are dropped from the right until the bar
// fits, then the last one left is truncated.
func (s *StatusBar) View() string {
	width := s.Width
	if width <= 0 {
		width = 80
	}
	inner := width - 2 // StatusBar padding

	segs := s.segments()
	const sep = " | "
	for len(segs) > 1 && plainWidth(segs, sep) > inner {
		segs = segs[:len(segs)-1]
	}
	if len(segs) == 1 {
		segs[0].text = util.TruncateWidth(segs[0].text, inner)
	}

	if pad := inner - plainWidth(segs, sep); pad > 0 && len(segs) > 0 {
		last := &segs[len(segs)-1]
		last.text = util.PadWidth(last.text, util.StringWidth(last.text)+pad)
	}

	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		parts = append(parts, seg.style.Render(seg.text))
	}
	return s.theme.StatusBar.Render(strings.Join(parts, s.theme.StatusKey.Render(sep)))
}

func (s *StatusBar) segments() []segment {
	t := s.theme
	var segs []segment

	sessionStyle := t.StatusValue
	if s.SignedIn {
		sessionStyle = t.SignedIn
	}
	segs = append(segs, segment{s.SessionLabel, sessionStyle})

	if s.SignedIn && s.Threshold > 0 {
		idleStyle := t.IdleOK
		if s.Idle*2 >= s.Threshold {
			idleStyle = t.IdleWarn
		}
		text := s.IdleLabel
		if t.GetLayoutMode() != styles.LayoutNarrow {
			pct := float64(s.Idle) / float64(s.Threshold) * 100
			text = fmt.Sprintf("%s [%s]", text, styles.RenderProgressBar(10, pct))
		}
		segs = append(segs, segment{text, idleStyle})
	}

	if s.ConnLabel != "" {
		connStyle := t.Offline
		if s.Live {
			connStyle = t.Live
		}
		segs = append(segs, segment{s.ConnLabel, connStyle})
	}

	if s.Language != "" {
		segs = append(segs, segment{strings.ToUpper(s.Language), t.StatusKey})
	}
	if s.Restricted != "" {
		segs = append(segs, segment{s.Restricted, t.IdleWarn})
	}

	if len(s.Shortcuts) > 0 {
		hints := make([]string, 0, len(s.Shortcuts))
		for _, sc := range s.Shortcuts {
			hints = append(hints, sc.Key+" "+sc.Desc)
		}
		segs = append(segs, segment{strings.Join(hints, "  "), t.ShortcutDesc})
	}
	return segs
}

func plainWidth(segs []segment, sep string) int {
	w := 0
	for i, seg := range segs {
		if i > 0 {
			w += util.StringWidth(sep)
		}
		w += util.StringWidth(seg.text)
	}
	return w
}
