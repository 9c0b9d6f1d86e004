// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for swapwatch.
//
// Configuration is read from ~/.swapwatch/config.toml on top of built-in
// defaults. A .env file in the working directory or the config directory is
// loaded into the environment, then SWAPWATCH_* variables override file
// values.
//
// # Sections
//
//   - session: idle timeout, tick period and activity cooldown
//   - analytics: workers, collector endpoint, ledger path
//   - connection: node endpoint and dial timeout
//   - locale: default language and catalog override directory
//   - ui: theme and mouse support
//   - log: level and file
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	timeout := cfg.Session.IdleTimeout()
//
// Values can be read and written by dotted key:
//
//	v, _ := cfg.Get("session.idle_timeout_seconds")
//	_ = cfg.Set("ui.theme", "dark")
package config
