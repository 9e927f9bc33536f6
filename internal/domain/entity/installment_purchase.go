package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/valueobject"
)

// InstallmentPurchase represents a credit card purchase split into
// installments. It owns one generated FutureEntry per installment,
// related back through the entry's PurchaseID.
//
// Creation is atomic in intent: the purchase row and its entry set are
// written together. Deletion removes the purchase and every entry that
// references it; a partial deletion is surfaced as an explicit error,
// never reported as success.
type InstallmentPurchase struct {
	ID               uuid.UUID
	Description      string
	TotalAmount      decimal.Decimal
	InstallmentCount int
	PurchaseDate     time.Time
	AccountID        uuid.UUID
	Category         valueobject.Category
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewInstallmentPurchase creates a new InstallmentPurchase entity.
func NewInstallmentPurchase(
	description string,
	totalAmount decimal.Decimal,
	installmentCount int,
	purchaseDate time.Time,
	accountID uuid.UUID,
	category valueobject.Category,
) *InstallmentPurchase {
	now := time.Now().UTC()

	return &InstallmentPurchase{
		ID:               uuid.New(),
		Description:      description,
		TotalAmount:      totalAmount,
		InstallmentCount: installmentCount,
		PurchaseDate:     purchaseDate,
		AccountID:        accountID,
		Category:         category,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
