package handler

import (
	"net/http"

	"finance-tracker-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCards(c *gin.Context) {
	cards, err := h.instruments.ListCards()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cards})
}

func (h *Handler) UpsertCard(c *gin.Context) {
	var card models.Card
	if err := c.BindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if card.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card name is required"})
		return
	}
	if err := h.instruments.UpsertCard(&card); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"card": card})
}

// DeleteCard refuses while transactions still reference the card.
func (h *Handler) DeleteCard(c *gin.Context) {
	if err := h.instruments.DeleteCard(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "card deleted"})
}

func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.instruments.ListAccounts()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": accounts})
}

func (h *Handler) UpsertAccount(c *gin.Context) {
	var account models.BankAccount
	if err := c.BindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if account.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account name is required"})
		return
	}
	if err := h.instruments.UpsertAccount(&account); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.instruments.DeleteAccount(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.refs.ListCategories()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": categories})
}

func (h *Handler) SaveCategory(c *gin.Context) {
	var category models.Category
	if err := c.BindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category name is required"})
		return
	}
	if err := h.refs.SaveCategory(&category); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.refs.DeleteCategory(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

func (h *Handler) ListDebts(c *gin.Context) {
	direction := models.DebtDirection(c.Query("direction"))
	if direction != models.DebtToMe && direction != models.DebtFromMe {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be to_me or from_me"})
		return
	}
	debts, err := h.refs.ListDebts(direction)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": debts})
}

func (h *Handler) SaveDebt(c *gin.Context) {
	var debt models.Debt
	if err := c.BindJSON(&debt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if debt.Direction != models.DebtToMe && debt.Direction != models.DebtFromMe {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be to_me or from_me"})
		return
	}
	if err := h.refs.SaveDebt(&debt); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

func (h *Handler) DeleteDebt(c *gin.Context) {
	if err := h.refs.DeleteDebt(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "debt deleted"})
}
