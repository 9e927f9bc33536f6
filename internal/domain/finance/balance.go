package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountBalance computes the running balance of a single account:
// starting balance plus income minus expense over exactly that account's
// transactions. Card and cash transactions both count; the cash/card
// distinction only matters for cross-account aggregates, the per-account
// balance is ledger truth.
func AccountBalance(s *Snapshot, accountID uuid.UUID) decimal.Decimal {
	account, ok := s.Account(accountID)
	if !ok {
		return decimal.Zero
	}

	balance := account.StartingBalance
	for _, txn := range s.Transactions {
		if txn.AccountID == accountID {
			balance = balance.Add(txn.SignedAmount())
		}
	}
	return balance
}

// AccountBalanceAsOf computes the account balance restricted to
// transactions dated on or before asOf.
func AccountBalanceAsOf(s *Snapshot, accountID uuid.UUID, asOf time.Time) decimal.Decimal {
	account, ok := s.Account(accountID)
	if !ok {
		return decimal.Zero
	}

	balance := account.StartingBalance
	for _, txn := range s.Transactions {
		if txn.AccountID == accountID && !txn.Date.After(asOf) {
			balance = balance.Add(txn.SignedAmount())
		}
	}
	return balance
}

// AccountBalances computes the balance of every account in the snapshot.
func AccountBalances(s *Snapshot) map[uuid.UUID]decimal.Decimal {
	balances := make(map[uuid.UUID]decimal.Decimal, len(s.Accounts))
	for _, account := range s.Accounts {
		balances[account.ID] = account.StartingBalance
	}

	for _, txn := range s.Transactions {
		if balance, ok := balances[txn.AccountID]; ok {
			balances[txn.AccountID] = balance.Add(txn.SignedAmount())
		}
	}

	return balances
}
