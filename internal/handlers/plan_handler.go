package handler

import (
	"net/http"
	"time"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/services/finance"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListInstallments(c *gin.Context) {
	plans, err := h.installments.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": plans})
}

// CreateInstallmentPurchase records a BNPL purchase: plan plus first payment.
func (h *Handler) CreateInstallmentPurchase(c *gin.Context) {
	var payload struct {
		Provider      string  `json:"provider"`
		Description   string  `json:"description"`
		TotalAmount   float64 `json:"totalAmount"`
		Installments  int     `json:"installments"`
		PaymentMethod string  `json:"paymentMethod"`
		CategoryID    *string `json:"categoryId"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	source := payload.PaymentMethod
	if source == "" {
		source = models.PaymentMethodCash
	}
	plan, err := h.service.AddInstallmentPurchase(
		payload.Provider, payload.Description, payload.TotalAmount,
		payload.Installments, source, payload.CategoryID,
	)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

// PayInstallment pays the next installment of a plan.
func (h *Handler) PayInstallment(c *gin.Context) {
	var payload struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	source := payload.PaymentMethod
	if source == "" {
		source = models.PaymentMethodCash
	}

	payment, err := h.service.PayNextInstallment(c.Param("id"), source)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": payment})
}

func (h *Handler) ListLoans(c *gin.Context) {
	loans, err := h.loans.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": loans})
}

type loanPayload struct {
	ID                  string  `json:"id"`
	Type                string  `json:"type"`
	Name                string  `json:"name"`
	TotalAmount         float64 `json:"totalAmount"`
	DownPayment         float64 `json:"downPayment"`
	FinalPayment        float64 `json:"finalPayment"`
	MonthlyPayment      float64 `json:"monthlyPayment"`
	StartDate           string  `json:"startDate"`
	EndDate             string  `json:"endDate"`
	Lender              string  `json:"lender"`
	LinkedAccount       *string `json:"linkedAccount"`
	PrepaidAmount       float64 `json:"prepaidAmount"`
	PrepaidInstallments int     `json:"prepaidInstallments"`
}

func (p loanPayload) toModel() (models.Loan, error) {
	loan := models.Loan{
		ID:                  p.ID,
		Type:                p.Type,
		Name:                p.Name,
		TotalAmount:         p.TotalAmount,
		DownPayment:         p.DownPayment,
		FinalPayment:        p.FinalPayment,
		MonthlyPayment:      p.MonthlyPayment,
		Lender:              p.Lender,
		LinkedAccount:       p.LinkedAccount,
		PrepaidAmount:       p.PrepaidAmount,
		PrepaidInstallments: p.PrepaidInstallments,
	}
	if p.StartDate != "" {
		start, err := time.Parse(dateLayout, p.StartDate)
		if err != nil {
			return loan, err
		}
		loan.StartDate = start
	}
	if p.EndDate != "" {
		end, err := time.Parse(dateLayout, p.EndDate)
		if err != nil {
			return loan, err
		}
		loan.EndDate = &end
	}
	return loan, nil
}

// CreateLoan stores a new loan and synthesizes its ledger transactions.
func (h *Handler) CreateLoan(c *gin.Context) {
	h.saveLoan(c, finance.Create)
}

// UpdateLoan rewrites an existing loan without re-synthesizing transactions.
func (h *Handler) UpdateLoan(c *gin.Context) {
	h.saveLoan(c, finance.Update)
}

func (h *Handler) saveLoan(c *gin.Context, mode finance.WriteMode) {
	var payload loanPayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	loan, err := payload.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected yyyy-mm-dd"})
		return
	}
	if mode == finance.Update {
		loan.ID = c.Param("id")
	}

	saved, err := h.service.SaveLoan(loan, mode)
	if err != nil {
		fail(c, err)
		return
	}
	status := http.StatusCreated
	if mode == finance.Update {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"loan": saved})
}
