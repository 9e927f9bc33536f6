package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavo/backend/internal/domain/entity"
	"github.com/centavo/backend/internal/domain/valueobject"
)

func TestCategoryGridForYear(t *testing.T) {
	account := checkingAccount("Checking", "200.00")
	snap := NewSnapshot(
		[]*entity.Account{account},
		[]*entity.Transaction{
			txn(account, entity.TransactionKindIncome, "500.00", day(2024, time.May, 5), "Salary"),
			txn(account, entity.TransactionKindExpense, "200.00", day(2024, time.May, 20), "Food"),
			txn(account, entity.TransactionKindExpense, "50.00", day(2024, time.June, 2), "Food"),
			// Blank category lands in the Other bucket.
			txn(account, entity.TransactionKindExpense, "10.00", day(2024, time.June, 3), ""),
		},
		[]*entity.FutureEntry{
			pendingEntry(entity.FutureEntryKindPayable, "120.00", day(2024, time.May, 28), "Rent"),
		},
		nil,
	)

	grid := CategoryGridForYear(snap, 2024)

	require.Contains(t, grid.Income, valueobject.Category("Salary"))
	assert.True(t, grid.Income["Salary"][4].Equal(dec("500.00")))

	require.Contains(t, grid.Expense, valueobject.Category("Food"))
	assert.True(t, grid.Expense["Food"][4].Equal(dec("200.00")))
	assert.True(t, grid.Expense["Food"][5].Equal(dec("50.00")))

	require.Contains(t, grid.Expense, valueobject.CategoryOther)
	assert.True(t, grid.Expense[valueobject.CategoryOther][5].Equal(dec("10.00")))

	require.Contains(t, grid.Expense, valueobject.Category("Rent"))
	assert.True(t, grid.Expense["Rent"][4].Equal(dec("120.00")))

	// May: 500 - 200 - 120 = 180; June: -60.
	assert.True(t, grid.MonthlyNet[4].Equal(dec("180.00")))
	assert.True(t, grid.MonthlyNet[5].Equal(dec("-60.00")))

	// Accumulated seeded with the opening balance (200 starting).
	assert.True(t, grid.Accumulated[0].Equal(dec("200.00")))
	assert.True(t, grid.Accumulated[4].Equal(dec("380.00")))
	assert.True(t, grid.Accumulated[5].Equal(dec("320.00")))
	assert.True(t, grid.Accumulated[11].Equal(dec("320.00")))
}

func TestCategoryGrid_ExcludesCardRecords(t *testing.T) {
	card := cardAccount("Card", 25, 10)
	snap := NewSnapshot(
		[]*entity.Account{card},
		[]*entity.Transaction{
			txn(card, entity.TransactionKindExpense, "90.00", day(2024, time.May, 5), "Food"),
		},
		[]*entity.FutureEntry{
			withAccount(pendingEntry(entity.FutureEntryKindPayable, "60.00", day(2024, time.May, 10), "Food"), card),
		},
		nil,
	)

	grid := CategoryGridForYear(snap, 2024)
	assert.Empty(t, grid.Expense)
	assert.Empty(t, grid.Income)
	assert.True(t, grid.MonthlyNet[4].IsZero())
}

// The grid's monthly net column and the timeline's net column are computed
// independently; they must agree for the same data.
func TestCategoryGrid_MonthlyNetMatchesTimeline(t *testing.T) {
	checking := checkingAccount("Checking", "750.00")
	card := cardAccount("Card", 20, 5)

	purchase := &entity.InstallmentPurchase{
		ID:               uuid.New(),
		Description:      "Phone",
		TotalAmount:      dec("900.00"),
		InstallmentCount: 3,
		PurchaseDate:     day(2024, time.January, 2),
		AccountID:        card.ID,
	}

	transactions := []*entity.Transaction{
		txn(checking, entity.TransactionKindIncome, "3000.00", day(2024, time.January, 5), "Salary"),
		txn(checking, entity.TransactionKindExpense, "800.00", day(2024, time.January, 10), "Housing"),
		txn(checking, entity.TransactionKindExpense, "431.77", day(2024, time.February, 14), "Food"),
		txn(checking, entity.TransactionKindIncome, "120.50", day(2024, time.March, 1), ""),
		txn(card, entity.TransactionKindExpense, "75.00", day(2024, time.March, 8), "Food"),
		txn(checking, entity.TransactionKindExpense, "300.00", day(2024, time.April, 5), valueobject.CategoryBillPayment),
	}
	entries := []*entity.FutureEntry{
		pendingEntry(entity.FutureEntryKindPayable, "99.90", day(2024, time.February, 25), "Utilities"),
		pendingEntry(entity.FutureEntryKindReceivable, "250.00", day(2024, time.June, 12), "Invoice"),
		withPurchase(pendingEntry(entity.FutureEntryKindPayable, "300.00", day(2024, time.February, 5), "Electronics"), purchase),
	}

	snap := NewSnapshot(
		[]*entity.Account{checking, card},
		transactions,
		entries,
		[]*entity.InstallmentPurchase{purchase},
	)

	grid := CategoryGridForYear(snap, 2024)
	timeline := AnnualTimeline(snap, 2024)

	for m := 0; m < 12; m++ {
		assert.True(t, grid.MonthlyNet[m].Equal(timeline[m].Net),
			"month %d: grid net %s != timeline net %s", m+1, grid.MonthlyNet[m], timeline[m].Net)
		assert.True(t, grid.Accumulated[m].Equal(timeline[m].Accumulated),
			"month %d: grid accumulated %s != timeline accumulated %s", m+1, grid.Accumulated[m], timeline[m].Accumulated)
	}
}
