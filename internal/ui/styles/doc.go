// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the swapwatch TUI.

Colors come in light/dark pairs. Unlike lipgloss.AdaptiveColor, the pair is
resolved against the application theme rather than the terminal background,
so toggling the theme re-skins the whole screen.

# Theme

	theme := styles.NewTheme(store.ThemeDark)
	header := theme.Header.Render("swapwatch")

DetectTheme picks the initial theme from the terminal background when the
configuration leaves it empty.

# Progress

RenderProgressBar draws the idle meter in the status bar:

	bar := styles.RenderProgressBar(20, 45)
*/
package styles
