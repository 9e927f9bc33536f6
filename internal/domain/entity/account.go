// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountCategory represents the kind of financial account.
type AccountCategory string

const (
	AccountCategoryChecking   AccountCategory = "checking"
	AccountCategorySavings    AccountCategory = "savings"
	AccountCategoryInvestment AccountCategory = "investment"
	AccountCategoryCreditCard AccountCategory = "credit-card"
)

// ValidAccountCategory reports whether the category is one of the known kinds.
func ValidAccountCategory(c AccountCategory) bool {
	switch c {
	case AccountCategoryChecking, AccountCategorySavings,
		AccountCategoryInvestment, AccountCategoryCreditCard:
		return true
	}
	return false
}

// Account represents a financial account in the Centavo system.
//
// Credit card accounts additionally carry a statement configuration:
// ClosingDay is the day-of-month the statement closes and DueDay the
// day-of-month the statement payment is due. Both are nil for every
// other account category.
type Account struct {
	ID              uuid.UUID
	Name            string
	Category        AccountCategory
	StartingBalance decimal.Decimal
	ClosingDay      *int // 1-31, credit card only
	DueDay          *int // 1-31, credit card only
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(
	name string,
	category AccountCategory,
	startingBalance decimal.Decimal,
	closingDay *int,
	dueDay *int,
) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:              uuid.New(),
		Name:            name,
		Category:        category,
		StartingBalance: startingBalance,
		ClosingDay:      closingDay,
		DueDay:          dueDay,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsCreditCard reports whether the account is a credit card account.
func (a *Account) IsCreditCard() bool {
	return a.Category == AccountCategoryCreditCard
}

// HasStatementConfig reports whether both statement days are configured.
func (a *Account) HasStatementConfig() bool {
	return a.ClosingDay != nil && a.DueDay != nil
}

// AccountWithBalance pairs an account with its derived running balance.
type AccountWithBalance struct {
	Account *Account
	Balance decimal.Decimal
}
