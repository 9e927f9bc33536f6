package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

// monthsPerYear is the width of every grid row.
const monthsPerYear = 12

// CategoryGrid buckets a year of cash-affecting activity into
// category x month cells, one row per category, January first.
// MonthlyNet and Accumulated mirror the annual timeline columns and are
// cross-checked against it in tests.
type CategoryGrid struct {
	Income      map[valueobject.Category][]decimal.Decimal
	Expense     map[valueobject.Category][]decimal.Decimal
	MonthlyNet  []decimal.Decimal
	Accumulated []decimal.Decimal
}

// CategoryGridForYear computes the category grid for a year. Realized
// transactions and pending future entries both contribute; card-deferred
// records never do. Records without a category land in the Other bucket.
func CategoryGridForYear(s *Snapshot, year int) *CategoryGrid {
	grid := &CategoryGrid{
		Income:      make(map[valueobject.Category][]decimal.Decimal),
		Expense:     make(map[valueobject.Category][]decimal.Decimal),
		MonthlyNet:  make([]decimal.Decimal, monthsPerYear),
		Accumulated: make([]decimal.Decimal, monthsPerYear),
	}

	for _, txn := range s.Transactions {
		if txn.Date.Year() != year || ClassifyTransaction(s, txn) != ClassCash {
			continue
		}
		monthIndex := int(txn.Date.Month()) - 1
		if txn.Kind == entity.TransactionKindIncome {
			grid.addIncome(txn.Category, monthIndex, txn.Amount)
		} else {
			grid.addExpense(txn.Category, monthIndex, txn.Amount)
		}
	}

	for _, fe := range s.FutureEntries {
		if !fe.IsPending() || fe.DueDate.Year() != year || ClassifyFutureEntry(s, fe) != ClassCash {
			continue
		}
		monthIndex := int(fe.DueDate.Month()) - 1
		if fe.Kind == entity.FutureEntryKindReceivable {
			grid.addIncome(fe.Category, monthIndex, fe.Amount)
		} else {
			grid.addExpense(fe.Category, monthIndex, fe.Amount)
		}
	}

	accumulated := OpeningBalance(s, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	for m := 0; m < monthsPerYear; m++ {
		accumulated = accumulated.Add(grid.MonthlyNet[m])
		grid.Accumulated[m] = accumulated
	}

	return grid
}

func (g *CategoryGrid) addIncome(category valueobject.Category, monthIndex int, amount decimal.Decimal) {
	bucket := bucketFor(category)
	row, ok := g.Income[bucket]
	if !ok {
		row = make([]decimal.Decimal, monthsPerYear)
		g.Income[bucket] = row
	}
	row[monthIndex] = row[monthIndex].Add(amount)
	g.MonthlyNet[monthIndex] = g.MonthlyNet[monthIndex].Add(amount)
}

func (g *CategoryGrid) addExpense(category valueobject.Category, monthIndex int, amount decimal.Decimal) {
	bucket := bucketFor(category)
	row, ok := g.Expense[bucket]
	if !ok {
		row = make([]decimal.Decimal, monthsPerYear)
		g.Expense[bucket] = row
	}
	row[monthIndex] = row[monthIndex].Add(amount)
	g.MonthlyNet[monthIndex] = g.MonthlyNet[monthIndex].Sub(amount)
}

// bucketFor maps blank categories to the Other bucket.
func bucketFor(category valueobject.Category) valueobject.Category {
	if category == "" {
		return valueobject.CategoryOther
	}
	return category
}
