// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrSessionActive is returned by Start while an account is signed in.
	ErrSessionActive = errors.New("session already active; clear current session first")

	// ErrNoAccount is returned by Start when the account has no address.
	ErrNoAccount = errors.New("account address is required")
)

// =============================================================================
// TYPES
// =============================================================================

// Account is the signed-in wallet.
type Account struct {
	Address string
	Wallet  string
}

// Short returns the address shortened for display.
func (a Account) Short() string {
	if len(a.Address) <= 12 {
		return a.Address
	}
	return a.Address[:6] + "…" + a.Address[len(a.Address)-4:]
}

// Manager tracks the current account session.
type Manager struct {
	mu sync.RWMutex

	account   *Account
	sessionID string
	startTime time.Time
	cleared   int

	now func() time.Time
	log zerolog.Logger
}

// NewManager creates a manager with no active session.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{now: time.Now, log: log}
}

// SetClock replaces the time source. Used by tests.
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Start signs in acc and returns the new session id.
func (m *Manager) Start(acc Account) (string, error) {
	if acc.Address == "" {
		return "", ErrNoAccount
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.account != nil {
		return "", ErrSessionActive
	}

	id, err := newSessionID()
	if err != nil {
		m.logSessionEvent("SESSION_CREATE_FAILED", "unknown", err.Error())
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}

	a := acc
	m.account = &a
	m.sessionID = id
	m.startTime = m.now()

	m.logSessionEvent("SESSION_STARTED", id, "wallet="+acc.Wallet)
	return id, nil
}

// Clear drops the account and token state. It reports whether a session was
// active.
func (m *Manager) Clear(reason string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.account == nil {
		return false
	}

	m.logSessionEvent("SESSION_CLEARED", m.sessionID,
		fmt.Sprintf("reason=%s duration=%v", reason, m.now().Sub(m.startTime).Round(time.Second)))

	m.account = nil
	m.sessionID = ""
	m.startTime = time.Time{}
	m.cleared++
	return true
}

// HasAccount reports whether an account is signed in.
func (m *Manager) HasAccount() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.account != nil
}

// Current returns a copy of the signed-in account.
func (m *Manager) Current() (Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.account == nil {
		return Account{}, false
	}
	return *m.account, true
}

// SessionID returns the active session id or "".
func (m *Manager) SessionID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessionID
}

// Duration returns how long the current session has been active.
func (m *Manager) Duration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.account == nil {
		return 0
	}
	return m.now().Sub(m.startTime)
}

// Status is a snapshot of the session slice.
type Status struct {
	Active    bool
	SessionID string
	Address   string
	Duration  time.Duration
	Cleared   int
}

// GetStatus returns the current status.
func (m *Manager) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := Status{Active: m.account != nil, SessionID: m.sessionID, Cleared: m.cleared}
	if m.account != nil {
		st.Address = m.account.Address
		st.Duration = m.now().Sub(m.startTime)
	}
	return st
}

// =============================================================================
// HELPERS
// =============================================================================

// newSessionID returns "sess_" followed by 128 random bits in hex.
func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("cryptographic random generation failed: %w", err)
	}
	return "sess_" + hex.EncodeToString(b), nil
}

func (m *Manager) logSessionEvent(event, sessionID, details string) {
	m.log.Info().
		Str("event", event).
		Str("session_id", sessionID).
		Msg(details)
}
