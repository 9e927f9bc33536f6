package installment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavo/backend/internal/domain/entity"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/domain/finance"
)

func seededPurchase(t *testing.T, purchaseRepo *fakePurchaseRepo, entryRepo *fakeFutureEntryRepo) *entity.InstallmentPurchase {
	t.Helper()

	purchase := entity.NewInstallmentPurchase(
		"Sofa",
		decimal.RequireFromString("1200.00"),
		4,
		time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		uuid.New(),
		"Home",
	)
	purchaseRepo.purchases[purchase.ID] = purchase

	for i := 1; i <= purchase.InstallmentCount; i++ {
		entry := entity.NewFutureEntry(
			finance.InstallmentLabel(purchase.Description, i, purchase.InstallmentCount),
			decimal.RequireFromString("300.00"),
			entity.FutureEntryKindPayable,
			time.Date(2024, time.April+time.Month(i), 10, 0, 0, 0, 0, time.UTC),
			purchase.Category,
			nil,
			&purchase.ID,
		)
		entryRepo.entries[entry.ID] = entry
	}

	return purchase
}

func TestDeletePurchase(t *testing.T) {
	purchaseRepo := newFakePurchaseRepo()
	entryRepo := newFakeFutureEntryRepo()
	purchase := seededPurchase(t, purchaseRepo, entryRepo)

	uc := NewDeletePurchaseUseCase(purchaseRepo, entryRepo)
	out, err := uc.Execute(context.Background(), purchase.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(4), out.EntriesDeleted)
	assert.Empty(t, entryRepo.entries)
	assert.Empty(t, purchaseRepo.purchases)
}

func TestDeletePurchase_NotFound(t *testing.T) {
	uc := NewDeletePurchaseUseCase(newFakePurchaseRepo(), newFakeFutureEntryRepo())

	_, err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrPurchaseNotFound)
}

func TestDeletePurchase_PartialFailure(t *testing.T) {
	purchaseRepo := newFakePurchaseRepo()
	entryRepo := newFakeFutureEntryRepo()
	purchase := seededPurchase(t, purchaseRepo, entryRepo)
	purchaseRepo.failDel = true

	uc := NewDeletePurchaseUseCase(purchaseRepo, entryRepo)
	_, err := uc.Execute(context.Background(), purchase.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerror.ErrPurchaseDeleteIncomplete)

	var instErr *domainerror.InstallmentError
	require.True(t, errors.As(err, &instErr))
	assert.Equal(t, domainerror.ErrCodePurchaseDeleteIncomplete, instErr.Code)

	// The entries are gone but the purchase row survived.
	assert.Empty(t, entryRepo.entries)
	assert.Len(t, purchaseRepo.purchases, 1)
}
