// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watchdog enforces the idle-timeout policy for an authenticated
// session.
//
// The watchdog owns a single idle-tick counter. A periodic timer calls Tick,
// activity calls Reset, and when the counter reaches the threshold the
// configured Terminator runs exactly once for that accumulation cycle.
//
// # Key Types
//
//   - Watchdog: idle counter plus the expiry decision
//   - Session: read-only view of the shared session state
//   - Terminator: invoked when the session expires
//
// # Usage
//
//	threshold := watchdog.ThresholdFor(600*time.Second, 10*time.Second) // 60
//	w := watchdog.New(store, term, threshold, logger)
//	stop := exec.Every(10*time.Second, func() { w.Tick() })
//	defer stop()
//
// Tick and Reset are not synchronized. Both must run on the same executor.
package watchdog
