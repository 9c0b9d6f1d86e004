// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the swapwatch command line.
//
// Commands:
//
//	swapwatch                 full-screen layout (needs a terminal)
//	swapwatch console         line-driven layout with history
//	swapwatch config show     print the effective configuration
//	swapwatch config get KEY  print one value
//	swapwatch config set KEY VALUE
//	swapwatch config path     print the config file location
//	swapwatch version
//
// Global flags:
//
//	--config PATH     config file (default ~/.swapwatch/config.toml)
//	--log-level LVL   override log.level
//	--verbose         log to stderr instead of the log file (console only)
package cli
