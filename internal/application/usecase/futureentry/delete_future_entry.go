package futureentry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/application/usecase/installment"
	domainerror "github.com/centavo/backend/internal/domain/error"
)

// DeleteFutureEntryOutput reports the effect of the delete. PurchaseDeleted
// is set when the entry belonged to an installment purchase and the whole
// group was removed.
type DeleteFutureEntryOutput struct {
	PurchaseDeleted bool
	EntriesDeleted  int64
}

// DeleteFutureEntryUseCase handles future entry deletion. An entry that
// belongs to an installment purchase cannot be removed alone: deleting it
// deletes the entire purchase group through the purchase delete flow.
type DeleteFutureEntryUseCase struct {
	futureEntryRepo adapter.FutureEntryRepository
	deletePurchase  *installment.DeletePurchaseUseCase
}

// NewDeleteFutureEntryUseCase creates a new DeleteFutureEntryUseCase instance.
func NewDeleteFutureEntryUseCase(
	futureEntryRepo adapter.FutureEntryRepository,
	deletePurchase *installment.DeletePurchaseUseCase,
) *DeleteFutureEntryUseCase {
	return &DeleteFutureEntryUseCase{
		futureEntryRepo: futureEntryRepo,
		deletePurchase:  deletePurchase,
	}
}

// Execute deletes the entry, or its whole purchase group when it is an
// installment.
func (uc *DeleteFutureEntryUseCase) Execute(ctx context.Context, entryID uuid.UUID) (*DeleteFutureEntryOutput, error) {
	entry, err := uc.futureEntryRepo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFutureEntryNotFound) {
			return nil, domainerror.NewFutureEntryError(
				domainerror.ErrCodeFutureEntryNotFound,
				"future entry not found",
				domainerror.ErrFutureEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find future entry: %w", err)
	}

	if entry.PurchaseID != nil {
		out, err := uc.deletePurchase.Execute(ctx, *entry.PurchaseID)
		if err != nil {
			return nil, err
		}
		return &DeleteFutureEntryOutput{
			PurchaseDeleted: true,
			EntriesDeleted:  out.EntriesDeleted,
		}, nil
	}

	if err := uc.futureEntryRepo.Delete(ctx, entryID); err != nil {
		return nil, fmt.Errorf("failed to delete future entry: %w", err)
	}

	return &DeleteFutureEntryOutput{EntriesDeleted: 1}, nil
}
