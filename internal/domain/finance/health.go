package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// unlimitedReserveMonths is the sentinel reported when the reference month
// has no fixed expenses: the reserve is effectively unlimited.
const unlimitedReserveMonths = 99

var (
	hundred = decimal.NewFromInt(100)
	fifty   = decimal.NewFromInt(50)
	twenty  = decimal.NewFromInt(20)
)

// CategoryAverage is the mean monthly cash expense of one category over a year.
type CategoryAverage struct {
	Category valueobject.Category
	Average  decimal.Decimal
}

// Metrics is the full dashboard metrics record for a reference month.
type Metrics struct {
	Month valueobject.YearMonth

	RealizedIncome  decimal.Decimal
	RealizedExpense decimal.Decimal
	NetRealized     decimal.Decimal

	PendingReceivable decimal.Decimal
	PendingPayable    decimal.Decimal

	ProjectedIncome  decimal.Decimal
	ProjectedExpense decimal.Decimal
	ProjectedNet     decimal.Decimal

	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal

	DebtIndex     decimal.Decimal
	ReserveMonths decimal.Decimal
	SavingsRate   decimal.Decimal
	HealthScore   decimal.Decimal

	CategoryAverages []CategoryAverage
	NetWorthHistory  []NetWorthPoint
}

// HealthMetrics derives the complete metrics record for the given month.
//
// Ratio definitions:
//   - debt index = liabilities / assets x 100, 0 when assets are 0
//   - reserve months = assets / fixed monthly expense, 99 when that
//     expense is 0 (reported as effectively unlimited)
//   - savings rate = (income - expense) / income x 100, 0 when income is 0
//
// The composite score averages two sub-scores, each clamped to [0,100]
// BEFORE combining: savingsRate/20 x 100 and (1 - debtIndex/50) x 100.
// The clamping silently hides extreme ratios (a debt index of 500 scores
// the same 0 as one of 51), which is the intended smoothing.
func HealthMetrics(s *Snapshot, ref valueobject.YearMonth) *Metrics {
	realizedIncome := decimal.Zero
	realizedExpense := decimal.Zero
	fixedExpense := decimal.Zero

	for _, txn := range s.Transactions {
		if !ref.Contains(txn.Date) {
			continue
		}
		if txn.Kind == entity.TransactionKindExpense && txn.Category.IsFixedExpense() {
			fixedExpense = fixedExpense.Add(txn.Amount)
		}
		if ClassifyTransaction(s, txn) != ClassCash {
			continue
		}
		if txn.Kind == entity.TransactionKindIncome {
			realizedIncome = realizedIncome.Add(txn.Amount)
		} else {
			realizedExpense = realizedExpense.Add(txn.Amount)
		}
	}

	pendingReceivable := decimal.Zero
	pendingPayable := decimal.Zero
	for _, fe := range s.FutureEntries {
		if !fe.IsPending() || !ref.Contains(fe.DueDate) {
			continue
		}
		if ClassifyFutureEntry(s, fe) != ClassCash {
			continue
		}
		if fe.Kind == entity.FutureEntryKindReceivable {
			pendingReceivable = pendingReceivable.Add(fe.Amount)
		} else {
			pendingPayable = pendingPayable.Add(fe.Amount)
		}
	}

	netWorth := NetWorthAt(s, ref.End())

	debtIndex := decimal.Zero
	if netWorth.TotalAssets.IsPositive() {
		debtIndex = netWorth.TotalLiabilities.Div(netWorth.TotalAssets).Mul(hundred)
	}

	reserveMonths := decimal.NewFromInt(unlimitedReserveMonths)
	if fixedExpense.IsPositive() {
		reserveMonths = netWorth.TotalAssets.Div(fixedExpense)
	}

	savingsRate := decimal.Zero
	if realizedIncome.IsPositive() {
		savingsRate = realizedIncome.Sub(realizedExpense).Div(realizedIncome).Mul(hundred)
	}

	savingsScore := clampScore(savingsRate.Div(twenty).Mul(hundred))
	debtScore := clampScore(decimal.NewFromInt(1).Sub(debtIndex.Div(fifty)).Mul(hundred))
	healthScore := savingsScore.Add(debtScore).Div(decimal.NewFromInt(2))

	return &Metrics{
		Month:             ref,
		RealizedIncome:    realizedIncome,
		RealizedExpense:   realizedExpense,
		NetRealized:       realizedIncome.Sub(realizedExpense),
		PendingReceivable: pendingReceivable,
		PendingPayable:    pendingPayable,
		ProjectedIncome:   realizedIncome.Add(pendingReceivable),
		ProjectedExpense:  realizedExpense.Add(pendingPayable),
		ProjectedNet:      realizedIncome.Add(pendingReceivable).Sub(realizedExpense.Add(pendingPayable)),
		TotalAssets:       netWorth.TotalAssets,
		TotalLiabilities:  netWorth.TotalLiabilities,
		NetWorth:          netWorth.NetWorth,
		DebtIndex:         debtIndex,
		ReserveMonths:     reserveMonths,
		SavingsRate:       savingsRate,
		HealthScore:       healthScore,
		CategoryAverages:  categoryAverages(s, ref.Year),
		NetWorthHistory:   NetWorthHistory(s, ref),
	}
}

// clampScore clamps a sub-score to the [0,100] range.
func clampScore(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(hundred) {
		return hundred
	}
	return v
}

// categoryAverages computes the mean monthly cash expense per category over
// a year, largest first.
func categoryAverages(s *Snapshot, year int) []CategoryAverage {
	grid := CategoryGridForYear(s, year)

	averages := make([]CategoryAverage, 0, len(grid.Expense))
	for category, row := range grid.Expense {
		total := decimal.Zero
		for _, amount := range row {
			total = total.Add(amount)
		}
		averages = append(averages, CategoryAverage{
			Category: category,
			Average:  total.Div(decimal.NewFromInt(monthsPerYear)).Round(2),
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		if !averages[i].Average.Equal(averages[j].Average) {
			return averages[i].Average.GreaterThan(averages[j].Average)
		}
		return averages[i].Category < averages[j].Category
	})

	return averages
}
