// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lifecycle mounts and unmounts the swap layout's session machinery.
//
// Mount wires, in order: activity listeners, the idle tick timer, a new
// connection instance, the analytics client and the access event. It then
// flags restricted devices, registers the exit hook and, when a signal channel
// exists, subscribes to theme switches. Everything acquired is held in one
// Subscriptions group and released together by Unmount.
//
// # Concurrency
//
// Every callback (tick, activity, signal) runs on the Executor. The
// orchestrator itself is not locked: Mount, Unmount and the toggles must also
// be called from the executor.
//
// # Usage
//
//	o, err := lifecycle.New(cfg, lifecycle.Deps{Executor: loop, Store: st, ...})
//	if err != nil {
//		return err
//	}
//	exec.Post(func() { _ = o.Mount(ctx) })
//	defer exec.Post(o.Unmount)
package lifecycle
