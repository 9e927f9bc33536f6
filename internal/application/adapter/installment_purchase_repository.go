package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/centavo/backend/internal/domain/entity"
)

// InstallmentPurchaseRepository defines the interface for installment purchase persistence operations.
type InstallmentPurchaseRepository interface {
	// Create creates a new installment purchase in the database.
	Create(ctx context.Context, purchase *entity.InstallmentPurchase) error

	// FindByID retrieves an installment purchase by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InstallmentPurchase, error)

	// FindAll retrieves every installment purchase, newest first.
	FindAll(ctx context.Context) ([]*entity.InstallmentPurchase, error)

	// Delete removes an installment purchase row from the database.
	// It does NOT touch the purchase's future entries; the compound delete
	// ordering lives in the use case so partial failures stay observable.
	Delete(ctx context.Context, id uuid.UUID) error
}
