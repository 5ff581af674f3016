package handler

import (
	"io"
	"net/http"

	"finance-tracker-backend/internal/services/rates"

	"github.com/gin-gonic/gin"
)

// GetRate looks up an exchange rate. Failures are non-blocking: the response
// still carries the default rate plus the error string, and it echoes the
// requested pair so the client can discard answers for a stale selection.
func (h *Handler) GetRate(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	quote, err := h.rates.Lookup(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"from":  from,
			"to":    to,
			"rate":  rates.DefaultRate,
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ImportSnapshot replaces the whole state with an uploaded state document.
func (h *Handler) ImportSnapshot(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}

	doc, err := h.snapshots.Import(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "snapshot imported",
		"transactions": len(doc.Transactions),
		"cards":        len(doc.Cards),
		"bankAccounts": len(doc.BankAccounts),
	})
}

// ExportSnapshot produces the state document in the persisted layout.
func (h *Handler) ExportSnapshot(c *gin.Context) {
	doc, err := h.snapshots.Export()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
