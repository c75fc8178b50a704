package dto

import "github.com/amirhossein-jamali/payledger/internal/domain/port/usecase"

// BalanceResponse represents the API response for the wallet balance
type BalanceResponse struct {
	Amount  int64  `json:"amount"`
	Display string `json:"display"`
}

// NewBalanceResponse maps a balance view to its API response
func NewBalanceResponse(view usecase.BalanceView) BalanceResponse {
	return BalanceResponse{Amount: view.Amount, Display: view.Display}
}
