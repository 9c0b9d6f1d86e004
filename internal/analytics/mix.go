// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// MixWorkerName is the registry name of the HTTP collector worker.
const MixWorkerName = "mix"

// DefaultRatePerSecond limits posts to the collector.
const DefaultRatePerSecond = 5

// MixWorker posts events to an HTTP collector. Without an endpoint it only
// logs at debug level.
type MixWorker struct {
	endpoint string
	token    string
	client   *http.Client
	limiter  *rate.Limiter
	log      zerolog.Logger
}

// NewMixWorker creates the worker. A non-positive rate uses the default.
func NewMixWorker(endpoint, token string, perSecond float64, log zerolog.Logger) *MixWorker {
	if perSecond <= 0 {
		perSecond = DefaultRatePerSecond
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return &MixWorker{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: 10 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		log:      log,
	}
}

// Name implements Worker.
func (w *MixWorker) Name() string { return MixWorkerName }

// Send implements Worker.
func (w *MixWorker) Send(ctx context.Context, ev Event) error {
	if w.endpoint == "" {
		w.log.Debug().Str("event_name", ev.Name).Msg("mix: no endpoint, event not sent")
		return nil
	}
	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mix: rate limit: %w", err)
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("mix: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mix: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.token != "" {
		req.Header.Set("Authorization", "Bearer "+w.token)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("mix: post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mix: collector returned %s", resp.Status)
	}
	return nil
}

// Close implements Worker.
func (w *MixWorker) Close() error {
	w.client.CloseIdleConnections()
	return nil
}
