// Package installment contains installment purchase-related use cases.
package installment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/entity"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/domain/finance"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// CreatePurchaseInput represents the input for installment purchase creation.
type CreatePurchaseInput struct {
	Description      string
	TotalAmount      decimal.Decimal
	InstallmentCount int
	PurchaseDate     time.Time
	AccountID        uuid.UUID
	Category         string
}

// CreatePurchaseOutput represents the output of installment purchase creation.
type CreatePurchaseOutput struct {
	Purchase *entity.InstallmentPurchase
	Entries  []*entity.FutureEntry
}

// CreatePurchaseUseCase handles installment purchase creation: it validates
// the card's statement configuration, generates the installment schedule and
// persists the purchase row together with its future entry set.
type CreatePurchaseUseCase struct {
	purchaseRepo    adapter.InstallmentPurchaseRepository
	futureEntryRepo adapter.FutureEntryRepository
	accountRepo     adapter.AccountRepository
}

// NewCreatePurchaseUseCase creates a new CreatePurchaseUseCase instance.
func NewCreatePurchaseUseCase(
	purchaseRepo adapter.InstallmentPurchaseRepository,
	futureEntryRepo adapter.FutureEntryRepository,
	accountRepo adapter.AccountRepository,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		purchaseRepo:    purchaseRepo,
		futureEntryRepo: futureEntryRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the installment purchase creation. Configuration problems
// on the owning card are rejected before any write reaches the store.
func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, input CreatePurchaseInput) (*CreatePurchaseOutput, error) {
	if input.InstallmentCount < 1 {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"installment count must be at least 1",
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidPurchaseAmount,
			"total amount must be greater than zero",
			domainerror.ErrInvalidPurchaseAmount,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewInstallmentError(
				domainerror.ErrCodePurchaseAccountNotFound,
				"purchase account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if !account.IsCreditCard() {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodePurchaseAccountNotCard,
			"installment purchases require a credit card account",
			domainerror.ErrPurchaseAccountNotCard,
		)
	}

	if err := checkStatementConfig(account); err != nil {
		return nil, err
	}

	purchaseDate := dateOnly(input.PurchaseDate)
	category := valueobject.NormalizeCategory(input.Category)

	purchase := entity.NewInstallmentPurchase(
		input.Description,
		input.TotalAmount.Round(2),
		input.InstallmentCount,
		purchaseDate,
		input.AccountID,
		category,
	)

	schedule := finance.GenerateSchedule(
		purchaseDate,
		purchase.TotalAmount,
		purchase.InstallmentCount,
		*account.ClosingDay,
		*account.DueDay,
	)

	entries := make([]*entity.FutureEntry, len(schedule))
	for i, inst := range schedule {
		entries[i] = entity.NewFutureEntry(
			finance.InstallmentLabel(input.Description, inst.Sequence, purchase.InstallmentCount),
			inst.Amount,
			entity.FutureEntryKindPayable,
			inst.DueDate,
			category,
			nil, // installments resolve their account through the parent purchase
			&purchase.ID,
		)
	}

	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create installment purchase: %w", err)
	}

	if err := uc.futureEntryRepo.CreateBatch(ctx, entries); err != nil {
		// The purchase row exists but its installments do not: surface the
		// inconsistency instead of reporting either success or a plain failure.
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodePurchaseCreateIncomplete,
			fmt.Sprintf("purchase %s was created but its %d installment entries were not", purchase.ID, len(entries)),
			errors.Join(domainerror.ErrPurchaseCreateIncomplete, err),
		)
	}

	return &CreatePurchaseOutput{
		Purchase: purchase,
		Entries:  entries,
	}, nil
}

// checkStatementConfig rejects purchases on cards that are not fully
// configured for installments, naming the missing fields.
func checkStatementConfig(account *entity.Account) error {
	var missing []string
	if account.ClosingDay == nil {
		missing = append(missing, "closing_day")
	}
	if account.DueDay == nil {
		missing = append(missing, "due_day")
	}
	if len(missing) > 0 {
		return domainerror.NewInstallmentError(
			domainerror.ErrCodeCardNotConfigured,
			fmt.Sprintf("card %q is missing %s", account.Name, strings.Join(missing, " and ")),
			domainerror.ErrCardNotConfigured,
		)
	}
	return nil
}

// dateOnly normalizes a timestamp to midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
