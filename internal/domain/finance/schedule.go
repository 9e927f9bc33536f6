package finance

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Installment is one generated (due date, amount) pair of an installment plan.
type Installment struct {
	Sequence int // 1-based position within the plan
	DueDate  time.Time
	Amount   decimal.Decimal
}

// GenerateSchedule produces the ordered due dates and amounts for a credit
// card purchase split into count installments, given the card's statement
// configuration.
//
// The per-installment amount is total/count rounded to 2 decimal places,
// half away from zero. The rounding residual is intentionally NOT folded
// into the last installment, so the sum of the generated amounts can fall
// short of the total by up to count-1 cents (100.00 in 3 yields 3 x 33.33).
// Reconciling the residual would silently change every figure derived from
// historical plans, so the behavior is kept as is.
//
// Cycle rules: the purchase belongs to the statement closing on closingDay
// of its own month, rolling to the next month when the purchase day is on
// or after the closing day. The first due date is dueDay of the closing
// month, rolling one month forward when the due day precedes the closing
// day. Installment i is due i months after the first due date.
//
// Dates are anchored at noon UTC while being generated so month arithmetic
// never shifts a day across a timezone boundary; returned due dates are
// normalized back to midnight UTC.
func GenerateSchedule(
	purchaseDate time.Time,
	total decimal.Decimal,
	count int,
	closingDay int,
	dueDay int,
) []Installment {
	perInstallment := total.Div(decimal.NewFromInt(int64(count))).Round(2)

	closing := time.Date(purchaseDate.Year(), purchaseDate.Month(), closingDay, 12, 0, 0, 0, time.UTC)
	if purchaseDate.Day() >= closingDay {
		// Purchase missed the current cycle; it rolls to the next statement.
		closing = closing.AddDate(0, 1, 0)
	}

	firstDue := time.Date(closing.Year(), closing.Month(), dueDay, 12, 0, 0, 0, time.UTC)
	if dueDay < closingDay {
		// Due date falls in the month following the closing.
		firstDue = firstDue.AddDate(0, 1, 0)
	}

	installments := make([]Installment, count)
	for i := range installments {
		due := firstDue.AddDate(0, i, 0)
		installments[i] = Installment{
			Sequence: i + 1,
			DueDate:  time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC),
			Amount:   perInstallment,
		}
	}

	return installments
}

// installmentLabelRegex matches the "(seq/count)" suffix appended to every
// generated installment description.
var installmentLabelRegex = regexp.MustCompile(`\((\d+)/(\d+)\)\s*$`)

// InstallmentLabel annotates a description with its position in the plan,
// e.g. "Notebook (2/10)". The suffix is a stable, parseable contract: it is
// the only mechanism by which statement reconstruction recovers installment
// order, so its format must not change.
func InstallmentLabel(description string, sequence, count int) string {
	return fmt.Sprintf("%s (%d/%d)", description, sequence, count)
}

// ParseInstallmentLabel extracts the (sequence, count) pair from an
// installment description. ok is false when the description carries no
// installment suffix.
func ParseInstallmentLabel(description string) (sequence, count int, ok bool) {
	matches := installmentLabelRegex.FindStringSubmatch(description)
	if matches == nil {
		return 0, 0, false
	}

	sequence, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, false
	}
	count, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, false
	}

	return sequence, count, true
}
