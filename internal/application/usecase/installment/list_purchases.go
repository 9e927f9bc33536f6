package installment

import (
	"context"
	"fmt"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/entity"
)

// ListPurchasesOutput represents the output of listing installment purchases.
type ListPurchasesOutput struct {
	Purchases []*entity.InstallmentPurchase
}

// ListPurchasesUseCase handles listing installment purchases.
type ListPurchasesUseCase struct {
	purchaseRepo adapter.InstallmentPurchaseRepository
}

// NewListPurchasesUseCase creates a new ListPurchasesUseCase instance.
func NewListPurchasesUseCase(purchaseRepo adapter.InstallmentPurchaseRepository) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{purchaseRepo: purchaseRepo}
}

// Execute returns every installment purchase, newest first.
func (uc *ListPurchasesUseCase) Execute(ctx context.Context) (*ListPurchasesOutput, error) {
	purchases, err := uc.purchaseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list installment purchases: %w", err)
	}

	return &ListPurchasesOutput{Purchases: purchases}, nil
}
