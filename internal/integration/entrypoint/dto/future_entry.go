package dto

import (
	"time"

	"github.com/centavo/backend/internal/domain/entity"
)

// CreateFutureEntryRequest represents the request body for future entry creation.
type CreateFutureEntryRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Kind        string  `json:"kind" binding:"required,oneof=receivable payable"`
	DueDate     string  `json:"due_date" binding:"required"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=100"`
	AccountID   *string `json:"account_id,omitempty"`
}

// PayFutureEntryRequest represents the request body for settling a future entry.
type PayFutureEntryRequest struct {
	PaymentAccountID *string `json:"payment_account_id,omitempty"`
	PaymentDate      *string `json:"payment_date,omitempty"`
}

// FutureEntryResponse represents a single future entry in API responses.
type FutureEntryResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Kind        string    `json:"kind"`
	DueDate     string    `json:"due_date"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	AccountID   *string   `json:"account_id,omitempty"`
	PurchaseID  *string   `json:"purchase_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FutureEntryListResponse represents the response for listing future entries.
type FutureEntryListResponse struct {
	Entries []FutureEntryResponse `json:"entries"`
}

// PayFutureEntryResponse represents the response for settling a future entry.
type PayFutureEntryResponse struct {
	Entry       FutureEntryResponse `json:"entry"`
	Transaction TransactionResponse `json:"transaction"`
}

// DeleteFutureEntryResponse represents the response for future entry deletion.
// When the entry belonged to an installment purchase, the whole group is
// removed and purchase_deleted reports it.
type DeleteFutureEntryResponse struct {
	PurchaseDeleted bool  `json:"purchase_deleted"`
	EntriesDeleted  int64 `json:"entries_deleted"`
}

// ToFutureEntryResponse converts a FutureEntry entity to a FutureEntryResponse DTO.
func ToFutureEntryResponse(entry *entity.FutureEntry) FutureEntryResponse {
	response := FutureEntryResponse{
		ID:          entry.ID.String(),
		Description: entry.Description,
		Amount:      entry.Amount.StringFixed(2),
		Kind:        string(entry.Kind),
		DueDate:     entry.DueDate.Format("2006-01-02"),
		Status:      string(entry.Status),
		Category:    string(entry.Category),
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}

	if entry.AccountID != nil {
		accountID := entry.AccountID.String()
		response.AccountID = &accountID
	}
	if entry.PurchaseID != nil {
		purchaseID := entry.PurchaseID.String()
		response.PurchaseID = &purchaseID
	}

	return response
}

// ToFutureEntryListResponse converts future entries to a FutureEntryListResponse.
func ToFutureEntryListResponse(entries []*entity.FutureEntry) FutureEntryListResponse {
	responses := make([]FutureEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToFutureEntryResponse(entry)
	}
	return FutureEntryListResponse{Entries: responses}
}
