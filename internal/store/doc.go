// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store is the in-process global state shared by the swap layout.
//
// The store holds the account session, the blocking notice, theme, locale,
// connection identity, device restriction and the registered analytics
// client. Components change it only through the Dispatcher methods and read
// it through Reader. Watchers are told which slice changed.
//
// # Key Types
//
//   - Store: the state container, safe for concurrent use
//   - Dispatcher: the outbound actions the layout may take
//   - Reader: read-only queries
//   - Connector: creates connection instances on request
package store
