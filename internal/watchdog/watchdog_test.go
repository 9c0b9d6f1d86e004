// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watchdog

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession is a settable Session.
type fakeSession struct {
	account bool
	notice  bool
}

func (f *fakeSession) HasAccount() bool { return f.account }
func (f *fakeSession) NoticeOpen() bool { return f.notice }

func TestThresholdFor(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		period  time.Duration
		want    int
	}{
		{"ten minutes", 600 * time.Second, 10 * time.Second, 60},
		{"fifteen minutes", 15 * time.Minute, 10 * time.Second, 90},
		{"rounds down", 65 * time.Second, 10 * time.Second, 6},
		{"at least one", 3 * time.Second, 10 * time.Second, 1},
		{"zero period uses default", 100 * time.Second, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThresholdFor(tt.timeout, tt.period))
		})
	}
}

func TestWatchdog_NoSessionNeverCounts(t *testing.T) {
	sess := &fakeSession{}
	fired := 0
	w := New(sess, TerminatorFunc(func() { fired++ }), 3, zerolog.Nop())

	for i := 0; i < 100; i++ {
		assert.False(t, w.Tick())
	}
	assert.Equal(t, 0, w.Idle())
	assert.Equal(t, 0, fired)
	assert.Equal(t, 100, w.Snapshot().Skipped)
}

func TestWatchdog_ExpiresOnSixtiethTick(t *testing.T) {
	sess := &fakeSession{account: true}
	fired := 0
	threshold := ThresholdFor(600*time.Second, 10*time.Second)
	w := New(sess, TerminatorFunc(func() {
		fired++
		// The terminator clears the session like the real store does.
		sess.account = false
	}), threshold, zerolog.Nop())

	for i := 1; i < 60; i++ {
		require.False(t, w.Tick(), "tick %d must not expire", i)
		require.Equal(t, i, w.Idle())
	}
	assert.Equal(t, 0, fired)

	assert.True(t, w.Tick(), "tick 60 must expire")
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, w.Idle())
	assert.Equal(t, Accumulating, w.State())

	// Session is gone: further ticks are no-ops.
	for i := 0; i < 200; i++ {
		w.Tick()
	}
	assert.Equal(t, 1, fired)
}

func TestWatchdog_StateDuringTermination(t *testing.T) {
	sess := &fakeSession{account: true}
	var during State
	var w *Watchdog
	w = New(sess, TerminatorFunc(func() { during = w.State() }), 1, zerolog.Nop())

	assert.True(t, w.Tick())
	assert.Equal(t, Expired, during)
	assert.Equal(t, Accumulating, w.State())
}

func TestWatchdog_NoticeOpenBlocks(t *testing.T) {
	sess := &fakeSession{account: true}
	fired := 0
	w := New(sess, TerminatorFunc(func() { fired++ }), 2, zerolog.Nop())

	w.Tick()
	assert.Equal(t, 1, w.Idle())

	sess.notice = true
	for i := 0; i < 10; i++ {
		assert.False(t, w.Tick())
	}
	assert.Equal(t, 1, w.Idle(), "counter frozen while notice is open")
	assert.Equal(t, 0, fired)

	sess.notice = false
	assert.True(t, w.Tick())
	assert.Equal(t, 1, fired)
}

func TestWatchdog_ResetRestartsCycle(t *testing.T) {
	sess := &fakeSession{account: true}
	fired := 0
	w := New(sess, TerminatorFunc(func() { fired++ }), 5, zerolog.Nop())

	for i := 0; i < 4; i++ {
		w.Tick()
	}
	assert.Equal(t, 1, w.Remaining())

	w.Reset()
	assert.Equal(t, 0, w.Idle())
	assert.Equal(t, 5, w.Remaining())

	for i := 0; i < 4; i++ {
		assert.False(t, w.Tick())
	}
	assert.True(t, w.Tick())
	assert.Equal(t, 1, fired)
}

func TestWatchdog_SecondCycleMatchesFirst(t *testing.T) {
	sess := &fakeSession{account: true}
	var expiredAt []int
	tick := 0
	w := New(sess, TerminatorFunc(func() { expiredAt = append(expiredAt, tick) }), 6, zerolog.Nop())

	for tick = 1; tick <= 12; tick++ {
		w.Tick()
	}
	assert.Equal(t, []int{6, 12}, expiredAt)
	assert.Equal(t, 2, w.Snapshot().Expirations)
}

func TestWatchdog_NeverExceedsThreshold(t *testing.T) {
	sess := &fakeSession{account: true}
	w := New(sess, nil, 7, zerolog.Nop())
	for i := 0; i < 1000; i++ {
		w.Tick()
		require.LessOrEqual(t, w.Idle(), w.Threshold())
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "ACCUMULATING", Accumulating.String())
	assert.Equal(t, "EXPIRED", Expired.String())
	assert.Equal(t, "UNKNOWN", State(9).String())
}
