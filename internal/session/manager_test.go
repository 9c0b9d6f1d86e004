// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_StartAndClear(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(zerolog.New(&buf))

	assert.False(t, m.HasAccount())

	id, err := m.Start(Account{Address: "0x1234567890abcdef", Wallet: "keystore"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "sess_"))
	assert.Len(t, id, len("sess_")+32)
	assert.True(t, m.HasAccount())
	assert.Equal(t, id, m.SessionID())

	acc, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "keystore", acc.Wallet)

	assert.True(t, m.Clear("idle_timeout"))
	assert.False(t, m.HasAccount())
	assert.Empty(t, m.SessionID())
	assert.False(t, m.Clear("again"), "second clear is a no-op")

	logs := buf.String()
	assert.Contains(t, logs, "SESSION_STARTED")
	assert.Contains(t, logs, "SESSION_CLEARED")
	assert.Contains(t, logs, "reason=idle_timeout")
}

func TestManager_StartRejects(t *testing.T) {
	m := NewManager(zerolog.Nop())

	_, err := m.Start(Account{})
	assert.ErrorIs(t, err, ErrNoAccount)

	_, err = m.Start(Account{Address: "0xa"})
	require.NoError(t, err)
	_, err = m.Start(Account{Address: "0xb"})
	assert.ErrorIs(t, err, ErrSessionActive)
}

func TestManager_Duration(t *testing.T) {
	m := NewManager(zerolog.Nop())
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	m.SetClock(func() time.Time { return now })

	assert.Zero(t, m.Duration())
	_, err := m.Start(Account{Address: "0xa"})
	require.NoError(t, err)

	now = base.Add(90 * time.Second)
	assert.Equal(t, 90*time.Second, m.Duration())

	st := m.GetStatus()
	assert.True(t, st.Active)
	assert.Equal(t, "0xa", st.Address)

	m.Clear("test")
	assert.Equal(t, 1, m.GetStatus().Cleared)
}

func TestAccount_Short(t *testing.T) {
	assert.Equal(t, "0xabc", Account{Address: "0xabc"}.Short())
	assert.Equal(t, "0x1234…cdef", Account{Address: "0x1234567890abcdef"}.Short())
}
