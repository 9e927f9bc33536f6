package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/entity"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/domain/finance"
	"github.com/centavo/backend/internal/integration/persistence/model"
)

// snapshotLoader implements the adapter.SnapshotLoader interface with a full
// scan of the four ledger tables. Rows are validated while converting to
// entities; a bad row aborts the load instead of polluting the snapshot.
type snapshotLoader struct {
	db *gorm.DB
}

// NewSnapshotLoader creates a new snapshot loader instance.
func NewSnapshotLoader(db *gorm.DB) adapter.SnapshotLoader {
	return &snapshotLoader{
		db: db,
	}
}

// Load reads all four collections and builds a Snapshot with its indexes.
func (l *snapshotLoader) Load(ctx context.Context) (*finance.Snapshot, error) {
	accounts, err := l.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	transactions, err := l.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := l.loadFutureEntries(ctx)
	if err != nil {
		return nil, err
	}

	purchases, err := l.loadPurchases(ctx)
	if err != nil {
		return nil, err
	}

	return finance.NewSnapshot(accounts, transactions, entries, purchases), nil
}

func (l *snapshotLoader) loadAccounts(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	if err := l.db.WithContext(ctx).Find(&accountModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		account := am.ToEntity()
		if err := validateAccountRecord(account); err != nil {
			return nil, err
		}
		accounts[i] = account
	}
	return accounts, nil
}

func (l *snapshotLoader) loadTransactions(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	if err := l.db.WithContext(ctx).Find(&transactionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		txn := tm.ToEntity()
		if err := validateTransactionRecord(txn); err != nil {
			return nil, err
		}
		transactions[i] = txn
	}
	return transactions, nil
}

func (l *snapshotLoader) loadFutureEntries(ctx context.Context) ([]*entity.FutureEntry, error) {
	var entryModels []model.FutureEntryModel
	if err := l.db.WithContext(ctx).Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load future entries: %w", err)
	}

	entries := make([]*entity.FutureEntry, len(entryModels))
	for i, em := range entryModels {
		entry := em.ToEntity()
		if err := validateFutureEntryRecord(entry); err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

func (l *snapshotLoader) loadPurchases(ctx context.Context) ([]*entity.InstallmentPurchase, error) {
	var purchaseModels []model.InstallmentPurchaseModel
	if err := l.db.WithContext(ctx).Find(&purchaseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load installment purchases: %w", err)
	}

	purchases := make([]*entity.InstallmentPurchase, len(purchaseModels))
	for i, pm := range purchaseModels {
		purchase := pm.ToEntity()
		if err := validatePurchaseRecord(purchase); err != nil {
			return nil, err
		}
		purchases[i] = purchase
	}
	return purchases, nil
}

func validateAccountRecord(account *entity.Account) error {
	if !entity.ValidAccountCategory(account.Category) {
		return domainerror.NewMalformedRecordError(
			domainerror.ErrCodeMalformedAccount,
			model.AccountModel{}.TableName(), account.ID.String(), "category",
			domainerror.ErrInvalidAccountCategory,
		)
	}
	if account.IsCreditCard() {
		if !account.HasStatementConfig() {
			return domainerror.NewMalformedRecordError(
				domainerror.ErrCodeMalformedAccount,
				model.AccountModel{}.TableName(), account.ID.String(), "closing_day",
				domainerror.ErrCardDaysRequired,
			)
		}
		if !validStatementDayRange(*account.ClosingDay) || !validStatementDayRange(*account.DueDay) {
			return domainerror.NewMalformedRecordError(
				domainerror.ErrCodeMalformedAccount,
				model.AccountModel{}.TableName(), account.ID.String(), "closing_day",
				domainerror.ErrInvalidCardDay,
			)
		}
	}
	return nil
}

func validateTransactionRecord(txn *entity.Transaction) error {
	if !entity.ValidTransactionKind(txn.Kind) {
		return domainerror.NewMalformedRecordError(
			domainerror.ErrCodeMalformedTransaction,
			model.TransactionModel{}.TableName(), txn.ID.String(), "kind",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	if txn.Amount.IsNegative() {
		return domainerror.NewMalformedRecordError(
			domainerror.ErrCodeMalformedTransaction,
			model.TransactionModel{}.TableName(), txn.ID.String(), "amount",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

func validateFutureEntryRecord(entry *entity.FutureEntry) error {
	if !entity.ValidFutureEntryKind(entry.Kind) {
		return domainerror.NewMalformedRecordError(
			domainerror.ErrCodeMalformedFutureEntry,
			model.FutureEntryModel{}.TableName(), entry.ID.String(), "kind",
			domainerror.ErrInvalidFutureEntryKind,
		)
	}
	if entry.Status != entity.FutureEntryStatusPending && entry.Status != entity.FutureEntryStatusPaid {
		return domainerror.NewMalformedRecordError(
			domainerror.ErrCodeMalformedFutureEntry,
			model.FutureEntryModel{}.TableName(), entry.ID.String(), "status",
			nil,
		)
	}
	if entry.Amount.IsNegative() {
		return domainerror.NewMalformedRecordError(
			domainerror.ErrCodeMalformedFutureEntry,
			model.FutureEntryModel{}.TableName(), entry.ID.String(), "amount",
			domainerror.ErrInvalidFutureEntryAmount,
		)
	}
	return nil
}

func validatePurchaseRecord(purchase *entity.InstallmentPurchase) error {
	if purchase.InstallmentCount < 1 {
		return domainerror.NewMalformedRecordError(
			domainerror.ErrCodeMalformedPurchase,
			model.InstallmentPurchaseModel{}.TableName(), purchase.ID.String(), "installment_count",
			domainerror.ErrInvalidInstallmentCount,
		)
	}
	if purchase.TotalAmount.IsNegative() {
		return domainerror.NewMalformedRecordError(
			domainerror.ErrCodeMalformedPurchase,
			model.InstallmentPurchaseModel{}.TableName(), purchase.ID.String(), "total_amount",
			domainerror.ErrInvalidPurchaseAmount,
		)
	}
	return nil
}

func validStatementDayRange(day int) bool {
	return day >= 1 && day <= 31
}
