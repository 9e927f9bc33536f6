package installment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/centavo/backend/internal/application/adapter"
	domainerror "github.com/centavo/backend/internal/domain/error"
)

// DeletePurchaseOutput reports what the compound delete removed.
type DeletePurchaseOutput struct {
	EntriesDeleted int64
}

// DeletePurchaseUseCase handles the compound delete of an installment
// purchase: every future entry referencing the purchase first, then the
// purchase row itself.
type DeletePurchaseUseCase struct {
	purchaseRepo    adapter.InstallmentPurchaseRepository
	futureEntryRepo adapter.FutureEntryRepository
}

// NewDeletePurchaseUseCase creates a new DeletePurchaseUseCase instance.
func NewDeletePurchaseUseCase(
	purchaseRepo adapter.InstallmentPurchaseRepository,
	futureEntryRepo adapter.FutureEntryRepository,
) *DeletePurchaseUseCase {
	return &DeletePurchaseUseCase{
		purchaseRepo:    purchaseRepo,
		futureEntryRepo: futureEntryRepo,
	}
}

// Execute removes the purchase and its installment entries. When the entries
// are removed but the purchase row is not, the partial state is reported as
// an error rather than as success: the caller must refresh before retrying.
func (uc *DeletePurchaseUseCase) Execute(ctx context.Context, purchaseID uuid.UUID) (*DeletePurchaseOutput, error) {
	if _, err := uc.purchaseRepo.FindByID(ctx, purchaseID); err != nil {
		if errors.Is(err, domainerror.ErrPurchaseNotFound) {
			return nil, domainerror.NewInstallmentError(
				domainerror.ErrCodePurchaseNotFound,
				"installment purchase not found",
				domainerror.ErrPurchaseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find installment purchase: %w", err)
	}

	deleted, err := uc.futureEntryRepo.DeleteByPurchase(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete installment entries: %w", err)
	}

	if err := uc.purchaseRepo.Delete(ctx, purchaseID); err != nil {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodePurchaseDeleteIncomplete,
			fmt.Sprintf("%d installment entries were deleted but purchase %s was not", deleted, purchaseID),
			errors.Join(domainerror.ErrPurchaseDeleteIncomplete, err),
		)
	}

	return &DeletePurchaseOutput{EntriesDeleted: deleted}, nil
}
