package dto

import (
	"time"

	"github.com/centavo/backend/internal/domain/entity"
)

// CreatePurchaseRequest represents the request body for installment purchase creation.
type CreatePurchaseRequest struct {
	Description      string  `json:"description" binding:"required,min=1,max=255"`
	TotalAmount      float64 `json:"total_amount" binding:"required"`
	InstallmentCount int     `json:"installment_count" binding:"required"`
	PurchaseDate     string  `json:"purchase_date" binding:"required"`
	AccountID        string  `json:"account_id" binding:"required"`
	Category         string  `json:"category,omitempty" binding:"omitempty,max=100"`
}

// PurchaseResponse represents a single installment purchase in API responses.
type PurchaseResponse struct {
	ID               string    `json:"id"`
	Description      string    `json:"description"`
	TotalAmount      string    `json:"total_amount"`
	InstallmentCount int       `json:"installment_count"`
	PurchaseDate     string    `json:"purchase_date"`
	AccountID        string    `json:"account_id"`
	Category         string    `json:"category"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreatePurchaseResponse represents the response for installment purchase
// creation: the purchase row plus its generated installment entries.
type CreatePurchaseResponse struct {
	Purchase PurchaseResponse      `json:"purchase"`
	Entries  []FutureEntryResponse `json:"entries"`
}

// PurchaseListResponse represents the response for listing installment purchases.
type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// DeletePurchaseResponse represents the response for installment purchase deletion.
type DeletePurchaseResponse struct {
	EntriesDeleted int64 `json:"entries_deleted"`
}

// ToPurchaseResponse converts an InstallmentPurchase entity to a PurchaseResponse DTO.
func ToPurchaseResponse(purchase *entity.InstallmentPurchase) PurchaseResponse {
	return PurchaseResponse{
		ID:               purchase.ID.String(),
		Description:      purchase.Description,
		TotalAmount:      purchase.TotalAmount.StringFixed(2),
		InstallmentCount: purchase.InstallmentCount,
		PurchaseDate:     purchase.PurchaseDate.Format("2006-01-02"),
		AccountID:        purchase.AccountID.String(),
		Category:         string(purchase.Category),
		CreatedAt:        purchase.CreatedAt,
		UpdatedAt:        purchase.UpdatedAt,
	}
}

// ToPurchaseListResponse converts purchases to a PurchaseListResponse.
func ToPurchaseListResponse(purchases []*entity.InstallmentPurchase) PurchaseListResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i, purchase := range purchases {
		responses[i] = ToPurchaseResponse(purchase)
	}
	return PurchaseListResponse{Purchases: responses}
}
