package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/teddybear-cooking/spend-tracker/internal/constants"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

// TimeFilter selects which slice of the collection a report covers.
type TimeFilter string

const (
	Daily   TimeFilter = "daily"
	Weekly  TimeFilter = "weekly"
	Monthly TimeFilter = "monthly"
)

var TimeFilters = []TimeFilter{Daily, Weekly, Monthly}

func ParseTimeFilter(s string) (TimeFilter, error) {
	f := TimeFilter(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TimeFilters {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid time filter '%s' (must be daily, weekly or monthly)", s)
}

// CurrentMonth returns now as YYYY-MM.
func CurrentMonth(now time.Time) string {
	return now.Format(constants.MonthFormat)
}

// StartOfWeek returns the Sunday that starts the week containing now, as
// YYYY-MM-DD.
func StartOfWeek(now time.Time) string {
	return now.AddDate(0, 0, -int(now.Weekday())).Format(constants.DateFormat)
}

// FilterByWindow keeps the transactions inside the window. An empty
// selectedMonth means the month of now. Unknown filters return every
// transaction.
func FilterByWindow(txs []model.Transaction, filter TimeFilter, selectedMonth string, now time.Time) []model.Transaction {
	var keep func(model.Transaction) bool

	switch filter {
	case Daily:
		today := now.Format(constants.DateFormat)
		keep = func(t model.Transaction) bool { return t.Date == today }
	case Weekly:
		start := StartOfWeek(now)
		keep = func(t model.Transaction) bool { return t.Date >= start }
	case Monthly:
		if selectedMonth == "" {
			selectedMonth = CurrentMonth(now)
		}
		keep = func(t model.Transaction) bool { return inMonth(t, selectedMonth) }
	default:
		return append([]model.Transaction{}, txs...)
	}

	out := []model.Transaction{}
	for _, t := range txs {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func inMonth(t model.Transaction, month string) bool {
	return strings.HasPrefix(t.Date, month)
}
