// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/entity"
	domainerror "github.com/centavo/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name            string
	Category        entity.AccountCategory
	StartingBalance decimal.Decimal
	ClosingDay      *int
	DueDay          *int
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if err := validateAccountInput(input.Name, input.Category, input.ClosingDay, input.DueDay); err != nil {
		return nil, err
	}

	account := entity.NewAccount(
		input.Name,
		input.Category,
		input.StartingBalance,
		input.ClosingDay,
		input.DueDay,
	)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}

// validateAccountInput enforces the statement-day invariant: closing and due
// days are present and in range for credit card accounts, absent otherwise.
func validateAccountInput(name string, category entity.AccountCategory, closingDay, dueDay *int) error {
	if name == "" {
		return domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountFields,
			"account name is required",
			nil,
		)
	}

	if !entity.ValidAccountCategory(category) {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountCategory,
			"account category must be: checking, savings, investment, or credit-card",
			domainerror.ErrInvalidAccountCategory,
		)
	}

	if category == entity.AccountCategoryCreditCard {
		if closingDay == nil || dueDay == nil {
			return domainerror.NewAccountError(
				domainerror.ErrCodeCardDaysRequired,
				"credit card accounts require closing_day and due_day",
				domainerror.ErrCardDaysRequired,
			)
		}
		if !validStatementDay(*closingDay) || !validStatementDay(*dueDay) {
			return domainerror.NewAccountError(
				domainerror.ErrCodeInvalidCardDay,
				"closing_day and due_day must be between 1 and 31",
				domainerror.ErrInvalidCardDay,
			)
		}
		return nil
	}

	if closingDay != nil || dueDay != nil {
		return domainerror.NewAccountError(
			domainerror.ErrCodeCardDaysNotAllowed,
			"closing_day and due_day are only valid for credit-card accounts",
			domainerror.ErrCardDaysNotAllowed,
		)
	}

	return nil
}

func validStatementDay(day int) bool {
	return day >= 1 && day <= 31
}
