package dto

import "github.com/amirhossein-jamali/payledger/internal/domain/port/usecase"

// PaymentRequest represents the API request for a payment to or from a counterparty.
// Amount accepts plain digits or a display string such as "₹1,500".
type PaymentRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

// AmountRequest represents the API request for a top-up or withdrawal
type AmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// PaymentResponse represents the API response for a recorded payment
type PaymentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Balance     BalanceResponse     `json:"balance"`
}

// NewPaymentResponse maps a payment result to its API response
func NewPaymentResponse(result *usecase.PaymentResult) PaymentResponse {
	return PaymentResponse{
		Transaction: NewTransactionResponse(*result.Transaction),
		Balance:     NewBalanceResponse(result.Balance),
	}
}
