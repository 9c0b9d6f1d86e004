// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package connection creates node connection instances for the swap layout.
//
// Every call to NewInstance produces a fresh instance id and, when a node
// endpoint is configured, opens a websocket to it and probes net_version.
// Requests are fire-and-forget: the result is delivered through a callback
// and failures only degrade the identity to offline.
package connection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// DefaultDialTimeout bounds the dial and the version probe together.
const DefaultDialTimeout = 10 * time.Second

// Identity describes one connection instance.
type Identity struct {
	InstanceID     string
	Endpoint       string
	NetworkVersion string
	Live           bool
	ConnectedAt    time.Time
	Err            string
}

// String returns a short human readable form.
func (id Identity) String() string {
	if id.InstanceID == "" {
		return "none"
	}
	if !id.Live {
		return id.InstanceID + " (offline)"
	}
	return fmt.Sprintf("%s net=%s", id.InstanceID, id.NetworkVersion)
}

// Manager owns the current connection instance.
type Manager struct {
	endpoint string
	timeout  time.Duration
	dialer   *websocket.Dialer
	log      zerolog.Logger

	mu      sync.Mutex
	gen     uint64
	current Identity
	conn    *websocket.Conn
	closed  bool
	wg      sync.WaitGroup
}

// NewManager creates a manager for endpoint. An empty endpoint yields offline
// instances.
func NewManager(endpoint string, timeout time.Duration, log zerolog.Logger) *Manager {
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}
	return &Manager{
		endpoint: endpoint,
		timeout:  timeout,
		dialer:   &websocket.Dialer{HandshakeTimeout: timeout},
		log:      log,
	}
}

// NewInstance starts building a new instance in the background. onReady, if
// not nil, receives the resulting identity unless a newer request superseded
// this one.
func (m *Manager) NewInstance(onReady func(Identity)) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.gen++
	gen := m.gen
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		id, conn := m.open()

		m.mu.Lock()
		if gen != m.gen || m.closed {
			m.mu.Unlock()
			if conn != nil {
				conn.Close()
			}
			return
		}
		if m.conn != nil {
			m.conn.Close()
		}
		m.conn = conn
		m.current = id
		m.mu.Unlock()

		if id.Live {
			m.log.Info().Str("instance", id.InstanceID).Str("network", id.NetworkVersion).Msg("connection instance ready")
		} else {
			m.log.Warn().Str("instance", id.InstanceID).Str("error", id.Err).Msg("connection instance offline")
		}
		if onReady != nil {
			onReady(id)
		}
	}()
}

func (m *Manager) open() (Identity, *websocket.Conn) {
	id := Identity{InstanceID: xid.New().String(), Endpoint: m.endpoint}
	if m.endpoint == "" {
		id.Err = "no endpoint configured"
		return id, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	conn, _, err := m.dialer.DialContext(ctx, m.endpoint, nil)
	if err != nil {
		id.Err = err.Error()
		return id, nil
	}

	version, err := probeNetVersion(conn, time.Now().Add(m.timeout))
	if err != nil {
		conn.Close()
		id.Err = err.Error()
		return id, nil
	}

	id.Live = true
	id.NetworkVersion = version
	id.ConnectedAt = time.Now()
	return id, conn
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func probeNetVersion(conn *websocket.Conn, deadline time.Time) (string, error) {
	conn.SetWriteDeadline(deadline)
	if err := conn.WriteJSON(rpcRequest{JSONRPC: "2.0", ID: 1, Method: "net_version", Params: []any{}}); err != nil {
		return "", fmt.Errorf("write net_version: %w", err)
	}

	conn.SetReadDeadline(deadline)
	var resp rpcResponse
	if err := conn.ReadJSON(&resp); err != nil {
		return "", fmt.Errorf("read net_version: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("net_version: %s (%d)", resp.Error.Message, resp.Error.Code)
	}

	var version string
	if err := json.Unmarshal(resp.Result, &version); err != nil {
		return "", fmt.Errorf("decode net_version: %w", err)
	}
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	return version, nil
}

// Current returns the latest ready identity.
func (m *Manager) Current() Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Close drops the live connection and ignores pending requests.
func (m *Manager) Close() error {
	m.mu.Lock()
	m.closed = true
	conn := m.conn
	m.conn = nil
	m.mu.Unlock()

	m.wg.Wait()
	if conn == nil {
		return nil
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return conn.Close()
}
