// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package layout is the bubbletea host for the swapwatch layout.

The Model owns the terminal; the Executor turns bubbletea's Update loop into
the single thread every lifecycle callback runs on. Posted funcs are
delivered back to Update as messages, so the orchestrator, the watchdog and
the activity hub never see two callbacks at once.

# Input

Every key press and mouse event is mapped to an activity.Kind and emitted on
the hub before any binding is handled:

	key press      -> keypress
	mouse motion   -> pointermove
	mouse press    -> pointerdown (wheel -> scroll)
	mouse release  -> click

# Key bindings

	t        switch theme (through the signal channel)
	l        next language
	s        sign in a demo wallet
	enter    dismiss the timeout notice
	?        toggle help
	q, C-c   quit
*/
package layout
