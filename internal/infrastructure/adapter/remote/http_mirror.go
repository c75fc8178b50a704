package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/dto"
)

// SyncPath is the mirror endpoint accepting device snapshots
const SyncPath = "/sync"

// maxResponseBytes caps how much of a mirror response is read
const maxResponseBytes = 8 << 20

// HTTPMirror submits snapshots to a mirror service over HTTP
type HTTPMirror struct {
	baseURL string
	client  *http.Client
	logger  coreport.Logger
}

// NewHTTPMirror creates a client for the mirror at baseURL.
// timeout bounds the transport; the sync engine applies its own deadline on top.
func NewHTTPMirror(baseURL string, timeout time.Duration, logger coreport.Logger) *HTTPMirror {
	return &HTTPMirror{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Submit posts the snapshot and decodes the mirror's answer
func (m *HTTPMirror) Submit(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+SyncPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build sync request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach mirror: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read mirror response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(payload, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("mirror returned %d: %s (code %d)", resp.StatusCode, apiErr.Message, apiErr.Code)
		}
		return nil, fmt.Errorf("mirror returned %d", resp.StatusCode)
	}

	var result entity.SyncResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to parse mirror response: %w", err)
	}

	m.logger.Debug("Mirror accepted snapshot", map[string]any{
		"deviceId":     req.DeviceID,
		"transactions": len(result.Transactions),
		"contacts":     len(result.Contacts),
	})

	return &result, nil
}
