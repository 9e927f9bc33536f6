package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// FutureEntryFilter defines filter options for listing future entries.
type FutureEntryFilter struct {
	Status     *entity.FutureEntryStatus
	Month      *valueobject.YearMonth
	PurchaseID *uuid.UUID
}

// FutureEntryRepository defines the interface for future entry persistence operations.
type FutureEntryRepository interface {
	// Create creates a new future entry in the database.
	Create(ctx context.Context, entry *entity.FutureEntry) error

	// CreateBatch creates a set of future entries in a single operation.
	// Used for the generated installment set of a purchase.
	CreateBatch(ctx context.Context, entries []*entity.FutureEntry) error

	// FindByID retrieves a future entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FutureEntry, error)

	// FindByFilter retrieves future entries matching the filter, ordered by due date.
	FindByFilter(ctx context.Context, filter FutureEntryFilter) ([]*entity.FutureEntry, error)

	// Update updates an existing future entry in the database.
	Update(ctx context.Context, entry *entity.FutureEntry) error

	// Delete removes a future entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByPurchase removes every future entry belonging to a purchase.
	// Returns the count of deleted entries.
	DeleteByPurchase(ctx context.Context, purchaseID uuid.UUID) (int64, error)
}
