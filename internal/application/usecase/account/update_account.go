package account

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
)

// UpdateAccountInput represents the input for account update.
type UpdateAccountInput struct {
	AccountID       uuid.UUID
	Name            string
	Category        entity.AccountCategory
	StartingBalance decimal.Decimal
	ClosingDay      *int
	DueDay          *int
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	if err := validateAccountInput(input.Name, input.Category, input.ClosingDay, input.DueDay); err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	account.Name = input.Name
	account.Category = input.Category
	account.StartingBalance = input.StartingBalance
	account.ClosingDay = input.ClosingDay
	account.DueDay = input.DueDay
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
