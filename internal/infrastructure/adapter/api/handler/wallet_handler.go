package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/payledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/api/dto"
)

// WalletHandler handles wallet HTTP requests
type WalletHandler struct {
	wallet usecase.WalletUseCase
	logger coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(wallet usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		wallet: wallet,
		logger: logger,
	}
}

// GetBalance handles GET /wallet/balance
func (h *WalletHandler) GetBalance(c *gin.Context) {
	view, err := h.wallet.GetBalanceDisplay(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "get_balance", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBalanceResponse(*view))
}

// Pay handles POST /wallet/pay
func (h *WalletHandler) Pay(c *gin.Context) {
	h.payment(c, "pay", h.wallet.Pay)
}

// Receive handles POST /wallet/receive
func (h *WalletHandler) Receive(c *gin.Context) {
	h.payment(c, "receive", h.wallet.Receive)
}

// TopUp handles POST /wallet/topup
func (h *WalletHandler) TopUp(c *gin.Context) {
	h.bankTransfer(c, "topup", h.wallet.TopUp)
}

// Withdraw handles POST /wallet/withdraw
func (h *WalletHandler) Withdraw(c *gin.Context) {
	h.bankTransfer(c, "withdraw", h.wallet.Withdraw)
}

type paymentFunc func(ctx context.Context, req usecase.PaymentRequest) (*usecase.PaymentResult, error)

type transferFunc func(ctx context.Context, amount int64) (*usecase.PaymentResult, error)

func (h *WalletHandler) payment(c *gin.Context, op string, fn paymentFunc) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		writeError(c, h.logger, op, err)
		return
	}

	result, err := fn(c.Request.Context(), usecase.PaymentRequest{
		Name:    req.Name,
		Address: req.Address,
		Amount:  amount,
	})
	if err != nil {
		writeError(c, h.logger, op, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPaymentResponse(result))
}

func (h *WalletHandler) bankTransfer(c *gin.Context, op string, fn transferFunc) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		writeError(c, h.logger, op, err)
		return
	}

	result, err := fn(c.Request.Context(), amount)
	if err != nil {
		writeError(c, h.logger, op, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPaymentResponse(result))
}

// ListTransactions handles GET /wallet/transactions?direction=sent|received
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	var filter *entity.TransactionFilter
	if raw := c.Query("direction"); raw != "" {
		direction, err := entity.ParseDirection(raw)
		if err != nil {
			writeError(c, h.logger, "list_transactions", err)
			return
		}
		filter = &entity.TransactionFilter{Direction: direction}
	}

	txns, err := h.wallet.GetHistory(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, "list_transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(txns))
}

// ListContacts handles GET /wallet/contacts
func (h *WalletHandler) ListContacts(c *gin.Context) {
	contacts, err := h.wallet.Contacts(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "list_contacts", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewContactListResponse(contacts))
}

// RemoveContact handles DELETE /wallet/contacts/:id
func (h *WalletHandler) RemoveContact(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid contact ID format")
		return
	}

	if err := h.wallet.RemoveContact(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, "remove_contact", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SyncNow handles POST /wallet/sync
func (h *WalletHandler) SyncNow(c *gin.Context) {
	result, err := h.wallet.SyncNow(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "sync_now", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SyncStatus handles GET /wallet/sync/status
func (h *WalletHandler) SyncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.wallet.SyncStatus())
}
