package futureentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/entity"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// PayFutureEntryInput represents the input for settling a future entry.
// PaymentAccountID overrides the entry's own account; it is required for
// installment entries, which carry no account of their own.
type PayFutureEntryInput struct {
	EntryID          uuid.UUID
	PaymentAccountID *uuid.UUID
	PaymentDate      *time.Time
}

// PayFutureEntryOutput represents the output of settling a future entry.
type PayFutureEntryOutput struct {
	Entry       *entity.FutureEntry
	Transaction *entity.Transaction
}

// PayFutureEntryUseCase handles the pending to paid transition of a future
// entry, recording the corresponding transaction on the payment account.
type PayFutureEntryUseCase struct {
	futureEntryRepo adapter.FutureEntryRepository
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewPayFutureEntryUseCase creates a new PayFutureEntryUseCase instance.
func NewPayFutureEntryUseCase(
	futureEntryRepo adapter.FutureEntryRepository,
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *PayFutureEntryUseCase {
	return &PayFutureEntryUseCase{
		futureEntryRepo: futureEntryRepo,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute settles the entry. The transition happens exactly once: a second
// call for the same entry is rejected. Installment entries settle as
// "Bill payment" expenses on the cash account that paid the statement, never
// on the card itself.
func (uc *PayFutureEntryUseCase) Execute(ctx context.Context, input PayFutureEntryInput) (*PayFutureEntryOutput, error) {
	entry, err := uc.futureEntryRepo.FindByID(ctx, input.EntryID)
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

	if !entry.IsPending() {
		return nil, domainerror.NewFutureEntryError(
			domainerror.ErrCodeFutureEntryAlreadyPaid,
			fmt.Sprintf("future entry %s is already paid", entry.ID),
			domainerror.ErrFutureEntryAlreadyPaid,
		)
	}

	accountID, err := uc.resolvePaymentAccount(ctx, entry, input.PaymentAccountID)
	if err != nil {
		return nil, err
	}

	paymentDate := time.Now().UTC()
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}
	paymentDate = dateOnly(paymentDate)

	kind := entity.TransactionKindIncome
	if entry.Kind == entity.FutureEntryKindPayable {
		kind = entity.TransactionKindExpense
	}

	category := entry.Category
	if entry.PurchaseID != nil {
		category = valueobject.CategoryBillPayment
	}

	txn := entity.NewTransaction(entry.Description, entry.Amount, kind, paymentDate, category, accountID)

	entry.Status = entity.FutureEntryStatusPaid
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.futureEntryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update future entry: %w", err)
	}

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create payment transaction: %w", err)
	}

	return &PayFutureEntryOutput{Entry: entry, Transaction: txn}, nil
}

// resolvePaymentAccount picks the account the settlement transaction lands
// on: the explicit override when given, otherwise the entry's own account.
// Credit cards are rejected either way; a settlement recorded on a card
// would classify as card-deferred and never reach any cash aggregate.
func (uc *PayFutureEntryUseCase) resolvePaymentAccount(ctx context.Context, entry *entity.FutureEntry, override *uuid.UUID) (uuid.UUID, error) {
	var accountID uuid.UUID
	switch {
	case override != nil:
		accountID = *override
	case entry.AccountID != nil:
		accountID = *entry.AccountID
	default:
		return uuid.Nil, domainerror.NewFutureEntryError(
			domainerror.ErrCodePaymentAccountRequired,
			"entry has no account; a payment account is required",
			domainerror.ErrPaymentAccountRequired,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return uuid.Nil, domainerror.NewFutureEntryError(
				domainerror.ErrCodePaymentAccountRequired,
				"payment account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return uuid.Nil, fmt.Errorf("failed to find payment account: %w", err)
	}

	if account.IsCreditCard() {
		return uuid.Nil, domainerror.NewFutureEntryError(
			domainerror.ErrCodePaymentAccountIsCard,
			fmt.Sprintf("account %q is a credit card; settlements require a cash account", account.Name),
			domainerror.ErrPaymentAccountIsCard,
		)
	}

	return accountID, nil
}
