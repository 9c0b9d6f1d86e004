// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/swapwatch/internal/store"
)

// Pair is a color with a light and a dark variant.
type Pair struct {
	Light lipgloss.Color
	Dark  lipgloss.Color
}

// For resolves the pair against theme.
func (p Pair) For(theme store.Theme) lipgloss.Color {
	if theme == store.ThemeDark {
		return p.Dark
	}
	return p.Light
}

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Purple - brand, headers, focused borders
var Purple = Pair{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - keys, links, live connection
var Cyan = Pair{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - signed-in state
var Emerald = Pair{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - timeout notice, offline
var Rose = Pair{Light: "#E11D48", Dark: "#FB7185"}

// Amber - idle meter past half
var Amber = Pair{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACES AND TEXT
// =============================================================================

var Surface = Pair{Light: "#FFFFFF", Dark: "#1E1E2E"}
var SurfaceDim = Pair{Light: "#F5F5F5", Dark: "#181825"}
var Overlay = Pair{Light: "#E5E5E5", Dark: "#313244"}

var TextPrimary = Pair{Light: "#1F2937", Dark: "#CDD6F4"}
var TextSecondary = Pair{Light: "#6B7280", Dark: "#A6ADC8"}
var TextMuted = Pair{Light: "#9CA3AF", Dark: "#6C7086"}
