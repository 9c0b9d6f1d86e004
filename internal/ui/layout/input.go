// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swapwatch/internal/activity"
)

// activityFor maps a terminal input message to the activity kind it counts
// as. ok is false for messages that are not user input.
func activityFor(msg tea.Msg) (k activity.Kind, ok bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return activity.KindKeyPress, true
	case tea.MouseMsg:
		if tea.MouseEvent(msg).IsWheel() {
			return activity.KindScroll, true
		}
		switch msg.Action {
		case tea.MouseActionMotion:
			return activity.KindPointerMove, true
		case tea.MouseActionPress:
			return activity.KindPointerDown, true
		case tea.MouseActionRelease:
			return activity.KindClick, true
		}
	}
	return 0, false
}
