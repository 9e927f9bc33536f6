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

func TestAnnualTimeline_BasicScenario(t *testing.T) {
	account := checkingAccount("Checking", "1000.00")
	snap := NewSnapshot(
		[]*entity.Account{account},
		[]*entity.Transaction{
			txn(account, entity.TransactionKindIncome, "500.00", day(2024, time.May, 5), "Salary"),
			txn(account, entity.TransactionKindExpense, "200.00", day(2024, time.May, 20), "Food"),
		},
		nil, nil,
	)

	months := AnnualTimeline(snap, 2024)
	require.Len(t, months, 12)

	may := months[4]
	assert.Equal(t, valueobject.NewYearMonth(2024, time.May), may.Month)
	assert.True(t, may.Income.Equal(dec("500.00")), "income = %s", may.Income)
	assert.True(t, may.Expense.Equal(dec("200.00")), "expense = %s", may.Expense)
	assert.True(t, may.Net.Equal(dec("300.00")), "net = %s", may.Net)

	// Accumulated is seeded with the non-card starting balances.
	assert.True(t, months[0].Accumulated.Equal(dec("1000.00")))
	assert.True(t, may.Accumulated.Equal(dec("1300.00")), "accumulated = %s", may.Accumulated)
	assert.True(t, months[11].Accumulated.Equal(dec("1300.00")))
}

func TestAnnualTimeline_CardNeverReachesCashColumns(t *testing.T) {
	checking := checkingAccount("Checking", "0.00")
	card := cardAccount("Card", 25, 10)

	purchase := &entity.InstallmentPurchase{
		ID:               uuid.New(),
		Description:      "TV",
		TotalAmount:      dec("1200.00"),
		InstallmentCount: 2,
		PurchaseDate:     day(2024, time.February, 1),
		AccountID:        card.ID,
	}

	snap := NewSnapshot(
		[]*entity.Account{checking, card},
		[]*entity.Transaction{
			// A card expense, however categorized, must never hit Expense.
			txn(card, entity.TransactionKindExpense, "80.00", day(2024, time.March, 3), "Food"),
		},
		[]*entity.FutureEntry{
			withPurchase(pendingEntry(entity.FutureEntryKindPayable, "600.00", day(2024, time.March, 10), "Electronics"), purchase),
		},
		[]*entity.InstallmentPurchase{purchase},
	)

	months := AnnualTimeline(snap, 2024)
	march := months[2]

	assert.True(t, march.Expense.IsZero(), "expense = %s", march.Expense)
	assert.True(t, march.Income.IsZero())
	assert.True(t, march.CardUsage.Equal(dec("680.00")), "card usage = %s", march.CardUsage)
	assert.True(t, march.Net.IsZero())
}

func TestAnnualTimeline_BillPaymentIsOrdinaryExpense(t *testing.T) {
	checking := checkingAccount("Checking", "0.00")
	snap := NewSnapshot(
		[]*entity.Account{checking},
		[]*entity.Transaction{
			txn(checking, entity.TransactionKindExpense, "450.00", day(2024, time.April, 10), valueobject.CategoryBillPayment),
		},
		nil, nil,
	)

	months := AnnualTimeline(snap, 2024)
	assert.True(t, months[3].Expense.Equal(dec("450.00")))
}

func TestAnnualTimeline_PendingEntriesProject(t *testing.T) {
	checking := checkingAccount("Checking", "0.00")

	paid := pendingEntry(entity.FutureEntryKindPayable, "70.00", day(2024, time.August, 5), "Rent")
	paid.Status = entity.FutureEntryStatusPaid

	snap := NewSnapshot(
		[]*entity.Account{checking},
		nil,
		[]*entity.FutureEntry{
			pendingEntry(entity.FutureEntryKindReceivable, "300.00", day(2024, time.August, 1), "Invoice"),
			pendingEntry(entity.FutureEntryKindPayable, "120.00", day(2024, time.August, 15), "Rent"),
			paid, // settled entries are already realized elsewhere
		},
		nil,
	)

	months := AnnualTimeline(snap, 2024)
	august := months[7]

	assert.True(t, august.Income.Equal(dec("300.00")))
	assert.True(t, august.Expense.Equal(dec("120.00")))
	assert.True(t, august.Net.Equal(dec("180.00")))
}

func TestOpeningBalance(t *testing.T) {
	checking := checkingAccount("Checking", "100.00")
	card := cardAccount("Card", 25, 10)

	snap := NewSnapshot(
		[]*entity.Account{checking, card},
		[]*entity.Transaction{
			txn(checking, entity.TransactionKindIncome, "50.00", day(2023, time.November, 5), "Salary"),
			// Card history never feeds the cash opening balance.
			txn(card, entity.TransactionKindExpense, "400.00", day(2023, time.December, 1), "Food"),
			// Inside the year: not part of the opening balance.
			txn(checking, entity.TransactionKindIncome, "999.00", day(2024, time.January, 2), "Salary"),
		},
		[]*entity.FutureEntry{
			pendingEntry(entity.FutureEntryKindPayable, "30.00", day(2023, time.December, 20), "Rent"),
		},
		nil,
	)

	opening := OpeningBalance(snap, day(2024, time.January, 1))
	// 100 starting + 50 realized - 30 pending payable; the card's starting
	// balance and history are excluded.
	assert.True(t, opening.Equal(dec("120.00")), "opening = %s", opening)
}
