// Package valueobject contains domain value objects for the Centavo system.
package valueobject

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month. It is the unit of period filtering
// across the aggregation engine: timelines, grids and net-worth history all
// bucket records by YearMonth instead of comparing raw date strings.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth creates a YearMonth from a year and month.
func NewYearMonth(year int, month time.Month) YearMonth {
	return YearMonth{Year: year, Month: month}
}

// YearMonthOf returns the YearMonth containing the given date.
func YearMonthOf(date time.Time) YearMonth {
	return YearMonth{Year: date.Year(), Month: date.Month()}
}

// ParseYearMonth parses a "YYYY-MM" string into a YearMonth.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid year-month %q: %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// Contains reports whether the given date falls inside this month.
func (ym YearMonth) Contains(date time.Time) bool {
	return date.Year() == ym.Year && date.Month() == ym.Month
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// AddMonths returns the YearMonth n months after ym (n may be negative).
func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Start returns the first day of the month (UTC, midnight).
func (ym YearMonth) Start() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the month (UTC, midnight).
func (ym YearMonth) End() time.Time {
	return ym.Start().AddDate(0, 1, -1)
}

// String returns the "YYYY-MM" representation.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}
