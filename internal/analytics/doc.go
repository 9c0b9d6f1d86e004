// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package analytics delivers named usage events to one or more workers.
//
// A Client is built from Options{Workers, Network}. Track never blocks: events
// go into a bounded queue drained by a single goroutine, and a full queue drops
// the event. Worker errors are logged and never reach the caller.
//
// # Workers
//
//   - mix: posts JSON events to an HTTP collector, rate limited
//   - ledger: appends events to a local SQLite file
//   - log: writes events to the structured log
//
// # Usage
//
//	reg := analytics.NewRegistry(analytics.Settings{Endpoint: url}, logger)
//	client, err := analytics.New(analytics.Options{Workers: []string{"mix"}, Network: "mainnet"}, reg, 0, logger)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//	client.Track("trackAccessToSwap")
package analytics
