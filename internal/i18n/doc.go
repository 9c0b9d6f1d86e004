// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n provides the message catalogs used by the swap layout.
//
// Catalogs are YAML documents keyed by language code. Nested maps are
// flattened into dotted keys ("error.time_out"). Built-in catalogs are
// embedded; a directory of <code>.yaml files can override or add languages,
// and Watch reloads it when the files change.
//
// Translate looks only in the active language. A missing key is reported to
// the caller, which supplies its own fallback text.
package i18n
