package ledger

import (
	"sort"
	"time"

	"finance-tracker-backend/internal/models"
)

// AllMonths selects every month of the year in FilterPeriod.
const AllMonths = 0

// FilterPeriod returns the transactions whose economic date falls in the
// selected year and month. Month AllMonths (0) keeps the whole year.
func FilterPeriod(txs []models.Transaction, year int, month time.Month) []models.Transaction {
	var out []models.Transaction
	for _, tx := range txs {
		if tx.Date.Year() != year {
			continue
		}
		if month != AllMonths && tx.Date.Month() != month {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// SortCanonical orders transactions for display: most recent economic date
// first, ties broken by the creation timestamp embedded in the id, newest
// entry first. The sort is stable so equal keys keep their relative order.
func SortCanonical(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		di, dj := dateOnly(txs[i].Date), dateOnly(txs[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return models.TimestampFromID(txs[i].ID) > models.TimestampFromID(txs[j].ID)
	})
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
