package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/valueobject"
)

// TransactionKind represents the kind of transaction (income or expense).
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// ValidTransactionKind reports whether the kind is known.
func ValidTransactionKind(k TransactionKind) bool {
	return k == TransactionKindIncome || k == TransactionKindExpense
}

// Transaction represents a realized ledger movement on an account.
//
// Amount is always a positive magnitude; Kind determines the sign of its
// effect on the account balance. A transaction never changes kind after
// creation and is deleted independently of any other record.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal // Positive magnitude; Kind carries the sign
	Kind        TransactionKind
	Date        time.Time // Calendar day, stored date-only in UTC
	Category    valueobject.Category
	AccountID   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	description string,
	amount decimal.Decimal,
	kind TransactionKind,
	date time.Time,
	category valueobject.Category,
	accountID uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Date:        date,
		Category:    category,
		AccountID:   accountID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SignedAmount returns the amount with the sign implied by the kind:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == TransactionKindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
