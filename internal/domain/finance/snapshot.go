// Package finance implements the financial derivation engine: pure functions
// that turn a ledger snapshot (accounts, transactions, future entries and
// installment purchases) into balances, cash-flow projections, category grids
// and health metrics.
//
// Every function in this package is a stateless transform over an immutable
// Snapshot value. Nothing here performs I/O, holds a lock or mutates its
// inputs, so multiple views can be derived concurrently from the same
// snapshot without coordination.
package finance

import (
	"github.com/google/uuid"

	"github.com/centavo/backend/internal/domain/entity"
)

// Snapshot is an immutable in-memory view of the four ledger collections,
// taken at a single point in time. Lookup indexes are built once at
// construction so classification never rescans the purchase list.
type Snapshot struct {
	Accounts      []*entity.Account
	Transactions  []*entity.Transaction
	FutureEntries []*entity.FutureEntry
	Purchases     []*entity.InstallmentPurchase

	accountByID  map[uuid.UUID]*entity.Account
	purchaseByID map[uuid.UUID]*entity.InstallmentPurchase
}

// NewSnapshot creates a Snapshot over the given collections and builds the
// lookup indexes. The collections are not copied; callers must not mutate
// them while computations over the snapshot are in flight.
func NewSnapshot(
	accounts []*entity.Account,
	transactions []*entity.Transaction,
	futureEntries []*entity.FutureEntry,
	purchases []*entity.InstallmentPurchase,
) *Snapshot {
	accountByID := make(map[uuid.UUID]*entity.Account, len(accounts))
	for _, account := range accounts {
		accountByID[account.ID] = account
	}

	purchaseByID := make(map[uuid.UUID]*entity.InstallmentPurchase, len(purchases))
	for _, purchase := range purchases {
		purchaseByID[purchase.ID] = purchase
	}

	return &Snapshot{
		Accounts:      accounts,
		Transactions:  transactions,
		FutureEntries: futureEntries,
		Purchases:     purchases,
		accountByID:   accountByID,
		purchaseByID:  purchaseByID,
	}
}

// Account returns the account with the given ID, if present.
func (s *Snapshot) Account(id uuid.UUID) (*entity.Account, bool) {
	account, ok := s.accountByID[id]
	return account, ok
}

// Purchase returns the installment purchase with the given ID, if present.
func (s *Snapshot) Purchase(id uuid.UUID) (*entity.InstallmentPurchase, bool) {
	purchase, ok := s.purchaseByID[id]
	return purchase, ok
}
