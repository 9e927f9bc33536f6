package finance

import (
	"github.com/google/uuid"

	"github.com/centavo/backend/internal/domain/entity"
)

// Class tells whether a record moves cash immediately or accumulates on a
// credit card to be settled later by a statement payment.
type Class string

const (
	// ClassCash marks records that change a non-card account balance the
	// moment they are realized.
	ClassCash Class = "cash"

	// ClassCard marks records attributable to a credit card account, whose
	// cash effect is deferred until the statement payment is recorded.
	ClassCard Class = "card"
)

// ClassifyTransaction classifies a realized transaction by its owning account.
func ClassifyTransaction(s *Snapshot, txn *entity.Transaction) Class {
	if account, ok := s.Account(txn.AccountID); ok && account.IsCreditCard() {
		return ClassCard
	}
	return ClassCash
}

// ClassifyFutureEntry classifies a scheduled entry. A direct credit card
// account reference wins; otherwise the entry is resolved through its parent
// installment purchase, since individual installments usually carry no
// account of their own. Everything else affects cash.
func ClassifyFutureEntry(s *Snapshot, fe *entity.FutureEntry) Class {
	if fe.AccountID != nil {
		if account, ok := s.Account(*fe.AccountID); ok && account.IsCreditCard() {
			return ClassCard
		}
	}

	if fe.PurchaseID != nil {
		if purchase, ok := s.Purchase(*fe.PurchaseID); ok {
			if account, ok := s.Account(purchase.AccountID); ok && account.IsCreditCard() {
				return ClassCard
			}
		}
	}

	return ClassCash
}

// CardAccountID resolves the credit card account an entry belongs to, either
// directly or through its parent purchase. ok is false for cash entries.
func CardAccountID(s *Snapshot, fe *entity.FutureEntry) (accountID uuid.UUID, ok bool) {
	if fe.AccountID != nil {
		if account, found := s.Account(*fe.AccountID); found && account.IsCreditCard() {
			return *fe.AccountID, true
		}
	}

	if fe.PurchaseID != nil {
		if purchase, found := s.Purchase(*fe.PurchaseID); found {
			if account, found := s.Account(purchase.AccountID); found && account.IsCreditCard() {
				return purchase.AccountID, true
			}
		}
	}

	return accountID, false
}
