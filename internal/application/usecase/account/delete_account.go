package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/centavo/backend/internal/application/adapter"
	domainerror "github.com/centavo/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	AccountID uuid.UUID
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Success bool
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	if _, err := uc.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if err := uc.accountRepo.Delete(ctx, input.AccountID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	return &DeleteAccountOutput{Success: true}, nil
}
