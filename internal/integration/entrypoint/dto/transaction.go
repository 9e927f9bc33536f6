package dto

import (
	"time"

	"github.com/centavo/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Kind        string  `json:"kind" binding:"required,oneof=income expense"`
	Date        string  `json:"date" binding:"required"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=100"`
	AccountID   string  `json:"account_id" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Kind        string    `json:"kind"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	AccountID   string    `json:"account_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		Description: txn.Description,
		Amount:      txn.Amount.StringFixed(2),
		Kind:        string(txn.Kind),
		Date:        txn.Date.Format("2006-01-02"),
		Category:    string(txn.Category),
		AccountID:   txn.AccountID.String(),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts transactions to a TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{Transactions: responses}
}
