package handler

import (
	"net/http"
	"strconv"
	"time"

	"finance-tracker-backend/internal/services/ledger"

	"github.com/gin-gonic/gin"
)

// periodFromQuery reads year/month query params; month "all" or absent
// selects the whole year, and the year defaults to the current one.
func periodFromQuery(c *gin.Context) (int, time.Month) {
	now := time.Now()
	year := now.Year()
	if y, err := strconv.Atoi(c.Query("year")); err == nil {
		year = y
	}
	month := ledger.AllMonths
	if m := c.Query("month"); m != "" && m != "all" {
		if parsed, err := strconv.Atoi(m); err == nil && parsed >= 1 && parsed <= 12 {
			month = parsed
		}
	}
	return year, time.Month(month)
}

// GetLedger recomputes the full dashboard for the selected period.
func (h *Handler) GetLedger(c *gin.Context) {
	all, err := h.transactions.All()
	if err != nil {
		fail(c, err)
		return
	}
	cards, err := h.instruments.ListCards()
	if err != nil {
		fail(c, err)
		return
	}
	accounts, err := h.instruments.ListAccounts()
	if err != nil {
		fail(c, err)
		return
	}

	year, month := periodFromQuery(c)
	period := ledger.FilterPeriod(all, year, month)
	result := ledger.Compute(all, period, cards, accounts)

	now := time.Now()
	statementSpend := make(map[string]float64, len(cards))
	for _, card := range cards {
		statementSpend[card.ID] = ledger.StatementSpend(all, card, now)
	}

	c.JSON(http.StatusOK, gin.H{
		"year":           year,
		"month":          monthLabel(month),
		"ledger":         result,
		"statementSpend": statementSpend,
	})
}

func monthLabel(month time.Month) interface{} {
	if month == ledger.AllMonths {
		return "all"
	}
	return int(month)
}
