// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual building blocks of the swapwatch TUI.

# Components

  - NoticeOverlay: the centered box that reports a cleared session. The body
    is rendered as Markdown with glamour.
  - StatusBar: one line with the session, the idle meter, the node
    connection and the key hints. It degrades by terminal width.

Components hold no application state of their own; the layout copies values
from the store into them before each render.
*/
package components
