package handler

import (
	"errors"
	"net/http"

	"finance-tracker-backend/internal/repository"
	"finance-tracker-backend/internal/services/finance"
	"finance-tracker-backend/internal/services/rates"
	"finance-tracker-backend/internal/snapshot"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler carries every dependency the HTTP surface needs.
type Handler struct {
	service      *finance.Service
	transactions *repository.TransactionRepository
	instruments  *repository.InstrumentRepository
	installments *repository.InstallmentRepository
	loans        *repository.LoanRepository
	refs         *repository.ReferenceRepository
	rates        *rates.Client
	snapshots    *snapshot.Service
	log          zerolog.Logger
}

func NewHandler(
	service *finance.Service,
	transactions *repository.TransactionRepository,
	instruments *repository.InstrumentRepository,
	installments *repository.InstallmentRepository,
	loans *repository.LoanRepository,
	refs *repository.ReferenceRepository,
	ratesClient *rates.Client,
	snapshots *snapshot.Service,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		service:      service,
		transactions: transactions,
		instruments:  instruments,
		installments: installments,
		loans:        loans,
		refs:         refs,
		rates:        ratesClient,
		snapshots:    snapshots,
		log:          log,
	}
}

// fail maps domain errors onto HTTP statuses with a gin.H body.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, finance.ErrInvalidAmount),
		errors.Is(err, finance.ErrSameAccount),
		errors.Is(err, finance.ErrInvalidLoan),
		errors.Is(err, finance.ErrPlanSettled):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrReferencedByTransaction):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
