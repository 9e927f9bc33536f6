// Package futureentry contains future entry-related use cases.
package futureentry

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

// CreateFutureEntryInput represents the input for future entry creation.
type CreateFutureEntryInput struct {
	Description string
	Amount      decimal.Decimal
	Kind        entity.FutureEntryKind
	DueDate     time.Time
	Category    string
	AccountID   *uuid.UUID
}

// CreateFutureEntryOutput represents the output of future entry creation.
type CreateFutureEntryOutput struct {
	Entry *entity.FutureEntry
}

// CreateFutureEntryUseCase handles standalone future entry creation.
// Installment entries are never created here; they belong to the
// installment purchase flow.
type CreateFutureEntryUseCase struct {
	futureEntryRepo adapter.FutureEntryRepository
	accountRepo     adapter.AccountRepository
}

// NewCreateFutureEntryUseCase creates a new CreateFutureEntryUseCase instance.
func NewCreateFutureEntryUseCase(
	futureEntryRepo adapter.FutureEntryRepository,
	accountRepo adapter.AccountRepository,
) *CreateFutureEntryUseCase {
	return &CreateFutureEntryUseCase{
		futureEntryRepo: futureEntryRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the future entry creation.
func (uc *CreateFutureEntryUseCase) Execute(ctx context.Context, input CreateFutureEntryInput) (*CreateFutureEntryOutput, error) {
	if !entity.ValidFutureEntryKind(input.Kind) {
		return nil, domainerror.NewFutureEntryError(
			domainerror.ErrCodeInvalidFutureEntryKind,
			fmt.Sprintf("invalid future entry kind: %s", input.Kind),
			domainerror.ErrInvalidFutureEntryKind,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewFutureEntryError(
			domainerror.ErrCodeInvalidFutureEntryAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidFutureEntryAmount,
		)
	}

	if input.AccountID != nil {
		if _, err := uc.accountRepo.FindByID(ctx, *input.AccountID); err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return nil, domainerror.NewFutureEntryError(
					domainerror.ErrCodeFutureEntryNotFound,
					"account not found",
					domainerror.ErrAccountNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find account: %w", err)
		}
	}

	entry := entity.NewFutureEntry(
		input.Description,
		input.Amount.Round(2),
		input.Kind,
		dateOnly(input.DueDate),
		valueobject.NormalizeCategory(input.Category),
		input.AccountID,
		nil,
	)

	if err := uc.futureEntryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create future entry: %w", err)
	}

	return &CreateFutureEntryOutput{Entry: entry}, nil
}

// dateOnly normalizes a timestamp to midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
