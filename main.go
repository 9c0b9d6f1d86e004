// swapwatch - swap layout host with an idle-session watchdog.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import "github.com/jeranaias/swapwatch/internal/cli"

func main() {
	cli.Execute()
}
