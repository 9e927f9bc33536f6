package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// NetWorthBreakdown is the asset/liability split behind a net worth figure.
type NetWorthBreakdown struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
}

// NetWorthPoint is one month of net-worth history.
type NetWorthPoint struct {
	Month valueobject.YearMonth
	Value decimal.Decimal
}

// NetWorthAt computes net worth at a point in time: positive balances of
// non-card accounts (assets) minus card debt and pending payables due by
// that time (liabilities). Balances are restricted to transactions dated
// on or before asOf.
func NetWorthAt(s *Snapshot, asOf time.Time) NetWorthBreakdown {
	assets := decimal.Zero
	liabilities := decimal.Zero

	for _, account := range s.Accounts {
		balance := AccountBalanceAsOf(s, account.ID, asOf)
		if account.IsCreditCard() {
			if balance.IsNegative() {
				liabilities = liabilities.Add(balance.Abs())
			}
			continue
		}
		if balance.IsPositive() {
			assets = assets.Add(balance)
		}
	}

	for _, fe := range s.FutureEntries {
		if fe.IsPending() && fe.Kind == entity.FutureEntryKindPayable && !fe.DueDate.After(asOf) {
			liabilities = liabilities.Add(fe.Amount)
		}
	}

	return NetWorthBreakdown{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		NetWorth:         assets.Sub(liabilities),
	}
}

// NetWorthHistory computes net worth at the end of each of the 12 trailing
// months ending at ref. Each point is recomputed from scratch over the
// restricted record sets; there is no incremental carry, correctness wins
// over performance at this data size.
func NetWorthHistory(s *Snapshot, ref valueobject.YearMonth) []NetWorthPoint {
	points := make([]NetWorthPoint, 0, 12)
	for i := 11; i >= 0; i-- {
		month := ref.AddMonths(-i)
		breakdown := NetWorthAt(s, month.End())
		points = append(points, NetWorthPoint{
			Month: month,
			Value: breakdown.NetWorth,
		})
	}
	return points
}
