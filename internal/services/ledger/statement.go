package ledger

import (
	"time"

	"finance-tracker-backend/internal/models"
)

// StatementRange returns the open statement period for a card at the given
// instant: the day after the last statement close through the next close.
// Both bounds are inclusive dates. Cards without a statement day use the
// calendar month.
func StatementRange(card models.Card, now time.Time) (time.Time, time.Time) {
	day := card.StatementDay
	if day <= 0 {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	}

	closeThisMonth := dayOfMonth(now.Year(), now.Month(), day)
	if dateOnly(now).After(closeThisMonth) {
		start := closeThisMonth.AddDate(0, 0, 1)
		return start, dayOfMonth(start.Year(), start.Month()+1, day)
	}
	prevClose := dayOfMonth(now.Year(), now.Month()-1, day)
	return prevClose.AddDate(0, 0, 1), closeThisMonth
}

// StatementSpend totals the charges that increase a card's balance inside
// the current statement period, bucketed by posting date (falling back to
// the economic date). Display only; running balances never use this.
func StatementSpend(all []models.Transaction, card models.Card, now time.Time) float64 {
	start, end := StatementRange(card, now)
	var total float64
	for _, tx := range all {
		effect := classifyForCard(tx, card)
		if effect != effectSpend && effect != effectPaymentForwarded {
			continue
		}
		posted := dateOnly(tx.EffectiveDate())
		if posted.Before(start) || posted.After(end) {
			continue
		}
		total += tx.Amount
	}
	return total
}

// dayOfMonth clamps day to the last day of the month instead of rolling
// into the next one (statement day 31 in February closes on the 28th).
func dayOfMonth(year int, month time.Month, day int) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
