package handler

import (
	"net/http"
	"time"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/services/ledger"

	"github.com/gin-gonic/gin"
)

type transactionPayload struct {
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	PostingDate   string  `json:"postingDate"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"paymentMethod"`
	Kind          string  `json:"kind"`
	TargetCardID  *string `json:"targetCardId"`
	CategoryID    *string `json:"categoryId"`
}

const dateLayout = "2006-01-02"

// ListTransactions returns the selected period in canonical display order.
func (h *Handler) ListTransactions(c *gin.Context) {
	all, err := h.transactions.All()
	if err != nil {
		fail(c, err)
		return
	}
	year, month := periodFromQuery(c)
	period := ledger.FilterPeriod(all, year, month)
	ledger.SortCanonical(period)
	c.JSON(http.StatusOK, gin.H{"items": period, "count": len(period)})
}

// CreateTransaction appends one plain transaction.
func (h *Handler) CreateTransaction(c *gin.Context) {
	var payload transactionPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	tx := models.Transaction{
		Amount:        payload.Amount,
		Description:   payload.Description,
		PaymentMethod: payload.PaymentMethod,
		Kind:          models.TransactionKind(payload.Kind),
		TargetCardID:  payload.TargetCardID,
		CategoryID:    payload.CategoryID,
	}
	if payload.Date != "" {
		date, err := time.Parse(dateLayout, payload.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected yyyy-mm-dd"})
			return
		}
		tx.Date = date
	}
	if payload.PostingDate != "" {
		posted, err := time.Parse(dateLayout, payload.PostingDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid posting date format, expected yyyy-mm-dd"})
			return
		}
		tx.PostingDate = &posted
	}

	created, err := h.service.AddTransaction(tx)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": created})
}

// UpdateTransaction merges a patch into an existing transaction.
func (h *Handler) UpdateTransaction(c *gin.Context) {
	id := c.Param("id")

	var payload map[string]interface{}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	patch := map[string]interface{}{}
	for key, column := range map[string]string{
		"amount":        "amount",
		"description":   "description",
		"paymentMethod": "payment_method",
		"kind":          "kind",
		"targetCardId":  "target_card_id",
		"categoryId":    "category_id",
	} {
		if v, ok := payload[key]; ok {
			patch[column] = v
		}
	}
	if raw, ok := payload["date"].(string); ok {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected yyyy-mm-dd"})
			return
		}
		patch["date"] = date
	}
	if raw, ok := payload["postingDate"].(string); ok {
		posted, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid posting date format, expected yyyy-mm-dd"})
			return
		}
		patch["posting_date"] = posted
	}

	updated, err := h.service.EditTransaction(id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": updated})
}

// DeleteTransaction removes a transaction and rolls back any linked
// installment counter.
func (h *Handler) DeleteTransaction(c *gin.Context) {
	if err := h.service.DeleteTransaction(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

// Transfer appends a linked withdrawal/deposit pair.
func (h *Handler) Transfer(c *gin.Context) {
	var payload struct {
		FromID       string  `json:"fromId"`
		ToID         string  `json:"toId"`
		Amount       float64 `json:"amount"`
		ExchangeRate float64 `json:"exchangeRate"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	pair, err := h.service.Transfer(payload.FromID, payload.ToID, payload.Amount, payload.ExchangeRate)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"withdrawal": pair.Withdrawal,
		"deposit":    pair.Deposit,
	})
}
