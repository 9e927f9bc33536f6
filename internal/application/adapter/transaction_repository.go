package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	AccountID *uuid.UUID
	Month     *valueobject.YearMonth
	Kind      *entity.TransactionKind
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves every transaction, newest first.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
