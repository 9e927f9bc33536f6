package valueobject

import "strings"

// Category labels a transaction or future entry for reporting purposes.
// It is an open string type: any non-empty label is accepted, but blank
// labels normalize to CategoryOther so aggregates never grow an unnamed bucket.
type Category string

// CategoryOther is the bucket for uncategorized records.
const CategoryOther Category = "Other"

// CategoryBillPayment marks the expense transaction that settles a credit
// card statement. It is the only way a card cycle reaches cash-flow totals.
const CategoryBillPayment Category = "Bill payment"

// fixedExpenseCategories are the categories treated as fixed monthly cost
// when computing the emergency-reserve metric.
var fixedExpenseCategories = map[Category]bool{
	"Housing":        true,
	"Utilities":      true,
	"Education":      true,
	"Health":         true,
	"Transportation": true,
}

// NormalizeCategory trims the label and maps blank labels to CategoryOther.
func NormalizeCategory(label string) Category {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return CategoryOther
	}
	return Category(trimmed)
}

// IsFixedExpense reports whether the category counts toward fixed monthly
// expenses for the emergency-reserve calculation.
func (c Category) IsFixedExpense() bool {
	return fixedExpenseCategories[c]
}

// String returns the category label.
func (c Category) String() string {
	return string(c)
}
