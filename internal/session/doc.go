// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the authenticated account slice of the shared state.
//
// The manager does not decide when a session ends. The idle watchdog does
// that and calls Clear through the store.
//
// # Key Types
//
//   - Manager: current account, session id and audit logging
//   - Account: the signed-in wallet
//   - Status: snapshot for display
//
// # Usage
//
//	mgr := session.NewManager(logger)
//	if _, err := mgr.Start(session.Account{Address: "0xabc", Wallet: "keystore"}); err != nil {
//		return err
//	}
//	defer mgr.Clear("logout")
package session
