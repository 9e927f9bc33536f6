package finance

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/centavo/backend/internal/domain/valueobject"
)

// StatementRow is a virtual transaction on a credit card statement,
// reconstructed from the card's future entries for one cycle month.
// Sequence and InstallmentCount are recovered from the entry description's
// "(seq/count)" suffix and are zero for non-installment entries.
type StatementRow struct {
	EntryID          uuid.UUID
	Description      string
	Amount           decimal.Decimal
	DueDate          time.Time
	Sequence         int
	InstallmentCount int
	Pending          bool
}

// CardStatement lists the virtual rows of a card's statement for one month:
// every card-deferred future entry resolving to the account and due inside
// the month, ordered by due date, installment sequence, then description.
func CardStatement(s *Snapshot, accountID uuid.UUID, month valueobject.YearMonth) []StatementRow {
	rows := make([]StatementRow, 0)

	for _, fe := range s.FutureEntries {
		if !month.Contains(fe.DueDate) {
			continue
		}
		cardID, ok := CardAccountID(s, fe)
		if !ok || cardID != accountID {
			continue
		}

		sequence, count, _ := ParseInstallmentLabel(fe.Description)
		rows = append(rows, StatementRow{
			EntryID:          fe.ID,
			Description:      fe.Description,
			Amount:           fe.Amount,
			DueDate:          fe.DueDate,
			Sequence:         sequence,
			InstallmentCount: count,
			Pending:          fe.IsPending(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].DueDate.Equal(rows[j].DueDate) {
			return rows[i].DueDate.Before(rows[j].DueDate)
		}
		if rows[i].Sequence != rows[j].Sequence {
			return rows[i].Sequence < rows[j].Sequence
		}
		return rows[i].Description < rows[j].Description
	})

	return rows
}

// StatementTotal sums the rows of a card statement.
func StatementTotal(rows []StatementRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total
}
