package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// TimelineMonth is one month of the annual cash-flow timeline.
//
// Income and Expense cover cash-affecting records only, realized and
// pending alike. CardUsage totals card-deferred spending for the month and
// is informational: it never feeds Net or Accumulated. Card statements
// reach the cash columns only when recorded as ordinary expense
// transactions under the bill payment category.
type TimelineMonth struct {
	Month       valueobject.YearMonth
	Income      decimal.Decimal
	Expense     decimal.Decimal
	CardUsage   decimal.Decimal
	Net         decimal.Decimal
	Accumulated decimal.Decimal
}

// AnnualTimeline computes the 12-month cash-flow projection for a year.
// The accumulated column is seeded with the opening balance: non-card
// starting balances plus all cash-affecting history dated before January 1.
func AnnualTimeline(s *Snapshot, year int) []TimelineMonth {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	accumulated := OpeningBalance(s, yearStart)

	months := make([]TimelineMonth, 0, 12)
	for m := time.January; m <= time.December; m++ {
		ym := valueobject.NewYearMonth(year, m)

		income := decimal.Zero
		expense := decimal.Zero
		cardUsage := decimal.Zero

		for _, txn := range s.Transactions {
			if !ym.Contains(txn.Date) {
				continue
			}
			if ClassifyTransaction(s, txn) == ClassCard {
				// Card refunds shrink usage, card spending grows it.
				cardUsage = cardUsage.Sub(txn.SignedAmount())
				continue
			}
			if txn.Kind == entity.TransactionKindIncome {
				income = income.Add(txn.Amount)
			} else {
				expense = expense.Add(txn.Amount)
			}
		}

		for _, fe := range s.FutureEntries {
			if !fe.IsPending() || !ym.Contains(fe.DueDate) {
				continue
			}
			if ClassifyFutureEntry(s, fe) == ClassCard {
				if fe.Kind == entity.FutureEntryKindPayable {
					cardUsage = cardUsage.Add(fe.Amount)
				}
				continue
			}
			if fe.Kind == entity.FutureEntryKindReceivable {
				income = income.Add(fe.Amount)
			} else {
				expense = expense.Add(fe.Amount)
			}
		}

		net := income.Sub(expense)
		accumulated = accumulated.Add(net)

		months = append(months, TimelineMonth{
			Month:       ym,
			Income:      income,
			Expense:     expense,
			CardUsage:   cardUsage,
			Net:         net,
			Accumulated: accumulated,
		})
	}

	return months
}

// OpeningBalance computes the accumulated cash position at the start of a
// period: non-card starting balances, plus cash-affecting realized history
// before the cutoff, plus cash-affecting pending entries due before the
// cutoff.
func OpeningBalance(s *Snapshot, cutoff time.Time) decimal.Decimal {
	balance := decimal.Zero

	for _, account := range s.Accounts {
		if !account.IsCreditCard() {
			balance = balance.Add(account.StartingBalance)
		}
	}

	for _, txn := range s.Transactions {
		if txn.Date.Before(cutoff) && ClassifyTransaction(s, txn) == ClassCash {
			balance = balance.Add(txn.SignedAmount())
		}
	}

	for _, fe := range s.FutureEntries {
		if !fe.IsPending() || !fe.DueDate.Before(cutoff) {
			continue
		}
		if ClassifyFutureEntry(s, fe) != ClassCash {
			continue
		}
		if fe.Kind == entity.FutureEntryKindReceivable {
			balance = balance.Add(fe.Amount)
		} else {
			balance = balance.Sub(fe.Amount)
		}
	}

	return balance
}
