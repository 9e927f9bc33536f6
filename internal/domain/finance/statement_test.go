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

func TestCardStatement(t *testing.T) {
	checking := checkingAccount("Checking", "0.00")
	card := cardAccount("Card", 25, 10)
	otherCard := cardAccount("Other card", 15, 1)

	purchase := &entity.InstallmentPurchase{
		ID:               uuid.New(),
		Description:      "Notebook",
		TotalAmount:      dec("1000.00"),
		InstallmentCount: 4,
		PurchaseDate:     day(2024, time.January, 10),
		AccountID:        card.ID,
	}

	installment := withPurchase(pendingEntry(entity.FutureEntryKindPayable, "250.00", day(2024, time.March, 10), "Electronics"), purchase)
	installment.Description = InstallmentLabel("Notebook", 2, 4)

	direct := withAccount(pendingEntry(entity.FutureEntryKindPayable, "49.90", day(2024, time.March, 10), "Streaming"), card)
	direct.Description = "Streaming subscription"

	snap := NewSnapshot(
		[]*entity.Account{checking, card, otherCard},
		nil,
		[]*entity.FutureEntry{
			direct,
			installment,
			// Wrong month and wrong card: excluded.
			withAccount(pendingEntry(entity.FutureEntryKindPayable, "10.00", day(2024, time.April, 10), ""), card),
			withAccount(pendingEntry(entity.FutureEntryKindPayable, "20.00", day(2024, time.March, 10), ""), otherCard),
			// Cash entry: excluded.
			withAccount(pendingEntry(entity.FutureEntryKindPayable, "30.00", day(2024, time.March, 10), ""), checking),
		},
		[]*entity.InstallmentPurchase{purchase},
	)

	rows := CardStatement(snap, card.ID, valueobject.NewYearMonth(2024, time.March))
	require.Len(t, rows, 2)

	// Same due date: the installment row sorts by its parsed sequence; the
	// non-installment row (sequence 0) comes first.
	assert.Equal(t, "Streaming subscription", rows[0].Description)
	assert.Equal(t, 0, rows[0].Sequence)
	assert.Equal(t, "Notebook (2/4)", rows[1].Description)
	assert.Equal(t, 2, rows[1].Sequence)
	assert.Equal(t, 4, rows[1].InstallmentCount)

	assert.True(t, StatementTotal(rows).Equal(dec("299.90")))
}
