package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/valueobject"
)

// FutureEntryKind represents the direction of a scheduled commitment.
type FutureEntryKind string

const (
	FutureEntryKindReceivable FutureEntryKind = "receivable"
	FutureEntryKindPayable    FutureEntryKind = "payable"
)

// ValidFutureEntryKind reports whether the kind is known.
func ValidFutureEntryKind(k FutureEntryKind) bool {
	return k == FutureEntryKindReceivable || k == FutureEntryKindPayable
}

// FutureEntryStatus represents the settlement state of a future entry.
type FutureEntryStatus string

const (
	FutureEntryStatusPending FutureEntryStatus = "pending"
	FutureEntryStatusPaid    FutureEntryStatus = "paid"
)

// FutureEntry represents a scheduled commitment: a bill to pay or an
// amount to receive on a future date.
//
// Status moves from pending to paid exactly once, through bill-payment
// confirmation, which also records the corresponding Transaction.
// AccountID is optional; installment entries usually carry no account of
// their own and resolve it through PurchaseID, their parent installment
// purchase. An entry with a PurchaseID cannot be deleted alone: deleting
// it means deleting the whole purchase group.
type FutureEntry struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal // Positive magnitude
	Kind        FutureEntryKind
	DueDate     time.Time
	Status      FutureEntryStatus
	Category    valueobject.Category
	AccountID   *uuid.UUID
	PurchaseID  *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFutureEntry creates a new pending FutureEntry entity.
func NewFutureEntry(
	description string,
	amount decimal.Decimal,
	kind FutureEntryKind,
	dueDate time.Time,
	category valueobject.Category,
	accountID *uuid.UUID,
	purchaseID *uuid.UUID,
) *FutureEntry {
	now := time.Now().UTC()

	return &FutureEntry{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Kind:        kind,
		DueDate:     dueDate,
		Status:      FutureEntryStatusPending,
		Category:    category,
		AccountID:   accountID,
		PurchaseID:  purchaseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsPending reports whether the entry has not been settled yet.
func (f *FutureEntry) IsPending() bool {
	return f.Status == FutureEntryStatusPending
}
