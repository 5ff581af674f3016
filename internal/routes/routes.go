package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"finance-tracker-backend/internal/config"
	handler "finance-tracker-backend/internal/handlers"
	"finance-tracker-backend/internal/logger"
	"finance-tracker-backend/internal/repository"
	"finance-tracker-backend/internal/services/finance"
	"finance-tracker-backend/internal/services/rates"
	"finance-tracker-backend/internal/snapshot"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log zerolog.Logger) {
	transactionRepo := repository.NewTransactionRepository(db)
	instrumentRepo := repository.NewInstrumentRepository(db)
	installmentRepo := repository.NewInstallmentRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)

	financeService := finance.NewService(
		transactionRepo, instrumentRepo, installmentRepo, loanRepo,
		logger.For(log, "finance"),
	)
	ratesClient := rates.NewClient(config.ExchangeRateURL(), logger.For(log, "rates"))
	snapshotService := snapshot.NewService(db, referenceRepo, logger.For(log, "snapshot"))

	h := handler.NewHandler(
		financeService, transactionRepo, instrumentRepo, installmentRepo,
		loanRepo, referenceRepo, ratesClient, snapshotService,
		logger.For(log, "http"),
	)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Derived ledger
	api.GET("/ledger", h.GetLedger)

	// Transactions
	tx := api.Group("/transactions")
	tx.GET("", h.ListTransactions)
	tx.POST("", h.CreateTransaction)
	tx.PUT("/:id", h.UpdateTransaction)
	tx.DELETE("/:id", h.DeleteTransaction)

	// Transfers
	api.POST("/transfers", h.Transfer)

	// Instruments
	cards := api.Group("/cards")
	cards.GET("", h.ListCards)
	cards.POST("", h.UpsertCard)
	cards.DELETE("/:id", h.DeleteCard)

	accounts := api.Group("/accounts")
	accounts.GET("", h.ListAccounts)
	accounts.POST("", h.UpsertAccount)
	accounts.DELETE("/:id", h.DeleteAccount)

	// Reference data
	categories := api.Group("/categories")
	categories.GET("", h.ListCategories)
	categories.POST("", h.SaveCategory)
	categories.DELETE("/:id", h.DeleteCategory)

	debts := api.Group("/debts")
	debts.GET("", h.ListDebts)
	debts.POST("", h.SaveDebt)
	debts.DELETE("/:id", h.DeleteDebt)

	// BNPL installment plans
	installments := api.Group("/installments")
	installments.GET("", h.ListInstallments)
	installments.POST("", h.CreateInstallmentPurchase)
	installments.POST("/:id/pay", h.PayInstallment)

	// Loans
	loans := api.Group("/loans")
	loans.GET("", h.ListLoans)
	loans.POST("", h.CreateLoan)
	loans.PUT("/:id", h.UpdateLoan)

	// External collaborators
	api.GET("/rates", h.GetRate)
	api.GET("/snapshot", h.ExportSnapshot)
	api.POST("/snapshot", h.ImportSnapshot)
}
