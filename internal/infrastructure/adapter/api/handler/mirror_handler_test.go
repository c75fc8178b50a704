package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/payledger/mocks/port/usecase"
)

func newMirrorRouter(t *testing.T, ping handler.PingFunc) (*gin.Engine, *usecasemocks.MockMirrorUseCase) {
	gin.SetMode(gin.TestMode)
	mirror := usecasemocks.NewMockMirrorUseCase(t)
	router := gin.New()
	routes.SetupMirrorRoutes(router, handler.NewMirrorHandler(mirror, ping, logger.NewNoopLogger()))
	return router, mirror
}

func TestMirrorHandler_Sync(t *testing.T) {
	t.Run("should apply the device snapshot", func(t *testing.T) {
		router, mirror := newMirrorRouter(t, nil)
		balance := int64(700)
		mirror.EXPECT().Apply(mock.Anything, mock.MatchedBy(func(req *entity.SyncRequest) bool {
			return req.DeviceID == "device-1" && req.Balance == 700 && len(req.Transactions) == 1
		})).Return(&entity.SyncResponse{
			Transactions: []entity.Transaction{*sentTransaction()},
			Balance:      &balance,
			LastSynced:   &createdAt,
		}, nil).Once()

		body := `{"deviceId":"device-1","balance":700,"transactions":[{"id":1741948200000,"counterpartyName":"Asha",` +
			`"counterpartyAddress":"asha@okaxis","amount":300,"direction":"sent","syncState":"pending"}],"contacts":[]}`
		rec := serve(router, http.MethodPost, "/sync", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"balance":700`)
	})

	t.Run("should reject undecodable bodies", func(t *testing.T) {
		router, mirror := newMirrorRouter(t, nil)

		rec := serve(router, http.MethodPost, "/sync", `{"deviceId":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mirror.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
	})

	t.Run("should answer invalid snapshots as unprocessable", func(t *testing.T) {
		router, mirror := newMirrorRouter(t, nil)
		mirror.EXPECT().Apply(mock.Anything, mock.Anything).Return(nil,
			errs.NewValidationError("request", "", errs.ErrInvalidSyncPayload)).Once()

		rec := serve(router, http.MethodPost, "/sync", `{"balance":-1}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, errs.CodeInvalidSyncPayload, decodeError(t, rec).Code)
	})
}

func TestMirrorHandler_Health(t *testing.T) {
	t.Run("should report a healthy database", func(t *testing.T) {
		router, _ := newMirrorRouter(t, func(context.Context) error { return nil })

		rec := serve(router, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())
	})

	t.Run("should report an unreachable database", func(t *testing.T) {
		router, _ := newMirrorRouter(t, func(context.Context) error { return errors.New("dial tcp: refused") })

		rec := serve(router, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
