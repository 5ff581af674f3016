package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/services/ledger"

	"github.com/stretchr/testify/assert"
)

func TestFilterPeriod(t *testing.T) {
	txs := []models.Transaction{
		tx(models.KindExpense, 1, "acc1", day(2025, 1, 15)),
		tx(models.KindExpense, 2, "acc1", day(2025, 2, 1)),
		tx(models.KindExpense, 3, "acc1", day(2024, 1, 15)),
	}

	t.Run("year and month", func(t *testing.T) {
		got := ledger.FilterPeriod(txs, 2025, time.January)
		assert.Len(t, got, 1)
		assert.Equal(t, 1.0, got[0].Amount)
	})

	t.Run("whole year", func(t *testing.T) {
		got := ledger.FilterPeriod(txs, 2025, ledger.AllMonths)
		assert.Len(t, got, 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, ledger.FilterPeriod(txs, 2023, ledger.AllMonths))
	})

	t.Run("posting date does not move the period", func(t *testing.T) {
		posted := day(2025, 4, 2)
		shifted := tx(models.KindExpense, 9, "c1", day(2025, 3, 30))
		shifted.PostingDate = &posted
		got := ledger.FilterPeriod([]models.Transaction{shifted}, 2025, time.March)
		assert.Len(t, got, 1)
	})
}

func TestSortCanonical(t *testing.T) {
	id := func(ms int64) string { return fmt.Sprintf("%d-abcd1234", ms) }

	t.Run("newest date first", func(t *testing.T) {
		txs := []models.Transaction{
			{ID: id(1), Date: day(2025, 1, 1)},
			{ID: id(2), Date: day(2025, 1, 3)},
			{ID: id(3), Date: day(2025, 1, 2)},
		}
		ledger.SortCanonical(txs)
		assert.Equal(t, []string{id(2), id(3), id(1)}, []string{txs[0].ID, txs[1].ID, txs[2].ID})
	})

	t.Run("same date breaks ties by id timestamp", func(t *testing.T) {
		d := day(2025, 5, 10)
		txs := []models.Transaction{
			{ID: id(1000), Date: d.Add(18 * time.Hour)}, // time of day is ignored
			{ID: id(3000), Date: d},
			{ID: id(2000), Date: d},
		}
		ledger.SortCanonical(txs)
		assert.Equal(t, []string{id(3000), id(2000), id(1000)}, []string{txs[0].ID, txs[1].ID, txs[2].ID})
	})

	t.Run("deterministic for malformed ids", func(t *testing.T) {
		d := day(2025, 5, 10)
		txs := []models.Transaction{
			{ID: "legacy-a", Date: d},
			{ID: "legacy-b", Date: d},
		}
		ledger.SortCanonical(txs)
		// Both parse to timestamp zero; stable sort keeps input order.
		assert.Equal(t, "legacy-a", txs[0].ID)
		assert.Equal(t, "legacy-b", txs[1].ID)
	})
}
