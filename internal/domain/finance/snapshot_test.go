package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// Test fixture helpers shared by the finance package tests.

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func intPtr(v int) *int {
	return &v
}

func checkingAccount(name, startingBalance string) *entity.Account {
	return &entity.Account{
		ID:              uuid.New(),
		Name:            name,
		Category:        entity.AccountCategoryChecking,
		StartingBalance: dec(startingBalance),
	}
}

func cardAccount(name string, closingDay, dueDay int) *entity.Account {
	return &entity.Account{
		ID:              uuid.New(),
		Name:            name,
		Category:        entity.AccountCategoryCreditCard,
		StartingBalance: decimal.Zero,
		ClosingDay:      intPtr(closingDay),
		DueDay:          intPtr(dueDay),
	}
}

func txn(account *entity.Account, kind entity.TransactionKind, amount string, date time.Time, category valueobject.Category) *entity.Transaction {
	return &entity.Transaction{
		ID:        uuid.New(),
		Amount:    dec(amount),
		Kind:      kind,
		Date:      date,
		Category:  category,
		AccountID: account.ID,
	}
}

func pendingEntry(kind entity.FutureEntryKind, amount string, dueDate time.Time, category valueobject.Category) *entity.FutureEntry {
	return &entity.FutureEntry{
		ID:       uuid.New(),
		Amount:   dec(amount),
		Kind:     kind,
		DueDate:  dueDate,
		Status:   entity.FutureEntryStatusPending,
		Category: category,
	}
}

func withAccount(fe *entity.FutureEntry, account *entity.Account) *entity.FutureEntry {
	fe.AccountID = &account.ID
	return fe
}

func withPurchase(fe *entity.FutureEntry, purchase *entity.InstallmentPurchase) *entity.FutureEntry {
	fe.PurchaseID = &purchase.ID
	return fe
}
