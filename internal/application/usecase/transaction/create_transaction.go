// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/entity"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Kind        entity.TransactionKind
	Date        time.Time
	Category    string
	AccountID   uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !entity.ValidTransactionKind(input.Kind) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"kind must be: income or expense",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if _, err := uc.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	txn := entity.NewTransaction(
		input.Description,
		input.Amount.Round(2),
		input.Kind,
		dateOnly(input.Date),
		valueobject.NormalizeCategory(input.Category),
		input.AccountID,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// dateOnly normalizes a timestamp to midnight UTC so month bucketing never
// depends on the client's clock or timezone.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
