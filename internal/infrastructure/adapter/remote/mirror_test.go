package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/payledger/mocks/port/core"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func snapshot(t *testing.T) *entity.SyncRequest {
	txn, err := entity.NewTransaction(1710417600000, "Alice", "alice@bank", 300, entity.DirectionSent, now)
	require.NoError(t, err)
	return &entity.SyncRequest{
		Transactions: []entity.Transaction{*txn},
		Contacts:     []entity.Contact{*entity.NewContactFromTransaction(txn.ID+1, txn)},
		Balance:      700,
		DeviceID:     "device-1",
	}
}

func TestHTTPMirror_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("should post the snapshot and decode the answer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, SyncPath, r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req entity.SyncRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "device-1", req.DeviceID)

			balance := req.Balance
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(entity.SyncResponse{
				Transactions: req.Transactions,
				Contacts:     req.Contacts,
				Balance:      &balance,
				LastSynced:   &now,
			})
		}))
		defer server.Close()

		client := NewHTTPMirror(server.URL+"/", time.Second, logger.NewNoopLogger())

		resp, err := client.Submit(ctx, snapshot(t))

		require.NoError(t, err)
		assert.Equal(t, int64(700), *resp.Balance)
		assert.True(t, now.Equal(*resp.LastSynced))
		assert.Equal(t, []int64{1710417600000}, resp.TransactionIDs())
	})

	t.Run("should surface mirror errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: 4220, Message: "invalid sync payload"})
		}))
		defer server.Close()

		client := NewHTTPMirror(server.URL, time.Second, logger.NewNoopLogger())

		_, err := client.Submit(ctx, snapshot(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid sync payload")
	})

	t.Run("should reject undecodable bodies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>gateway</html>"))
		}))
		defer server.Close()

		client := NewHTTPMirror(server.URL, time.Second, logger.NewNoopLogger())

		_, err := client.Submit(ctx, snapshot(t))

		assert.ErrorContains(t, err, "failed to parse mirror response")
	})

	t.Run("should honor context cancellation", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		// runs before Close so a handler still parked on the open connection returns
		defer close(release)

		client := NewHTTPMirror(server.URL, 5*time.Second, logger.NewNoopLogger())
		short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		_, err := client.Submit(short, snapshot(t))

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestEchoMirror_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("should echo the snapshot as synced", func(t *testing.T) {
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(now).Once()
		req := snapshot(t)

		resp, err := NewEchoMirror(clock, 0).Submit(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(700), *resp.Balance)
		assert.Equal(t, now, *resp.LastSynced)
		assert.Equal(t, entity.SyncSynced, resp.Transactions[0].SyncState)
		assert.Equal(t, entity.SyncSynced, resp.Contacts[0].SyncState)
		assert.Equal(t, entity.SyncPending, req.Transactions[0].SyncState)
	})

	t.Run("should stop waiting when the context ends", func(t *testing.T) {
		clock := coremocks.NewMockTimeProvider(t)
		short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		_, err := NewEchoMirror(clock, time.Second).Submit(short, snapshot(t))

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
