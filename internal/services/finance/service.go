package finance

import (
	"errors"
	"time"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Service implements the mutation operations. Every operation validates
// before touching the store; multi-record writes run in one database
// transaction so the ledger never sees a partial append.
type Service struct {
	db           *gorm.DB
	transactions *repository.TransactionRepository
	instruments  *repository.InstrumentRepository
	installments *repository.InstallmentRepository
	loans        *repository.LoanRepository
	log          zerolog.Logger
}

func NewService(
	transactions *repository.TransactionRepository,
	instruments *repository.InstrumentRepository,
	installments *repository.InstallmentRepository,
	loans *repository.LoanRepository,
	log zerolog.Logger,
) *Service {
	return &Service{
		db:           transactions.DB(),
		transactions: transactions,
		instruments:  instruments,
		installments: installments,
		loans:        loans,
		log:          log,
	}
}

var validKinds = map[models.TransactionKind]bool{
	models.KindIncome:               true,
	models.KindExpense:              true,
	models.KindBNPLPayment:          true,
	models.KindInvestmentDeposit:    true,
	models.KindInvestmentWithdrawal: true,
	models.KindCardPayment:          true,
}

// AddTransaction appends a plain transaction with a freshly minted id.
func (s *Service) AddTransaction(tx models.Transaction) (*models.Transaction, error) {
	if tx.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !validKinds[tx.Kind] {
		return nil, errors.New("unknown transaction kind: " + string(tx.Kind))
	}
	now := time.Now()
	tx.ID = models.NewTransactionID(now)
	tx.CreatedAt = now
	if tx.Date.IsZero() {
		tx.Date = now
	}
	if err := s.transactions.Append(&tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// EditTransaction merges a patch into an existing transaction. Linked plan
// counters are untouched by edits.
func (s *Service) EditTransaction(id string, patch map[string]interface{}) (*models.Transaction, error) {
	return s.transactions.Update(id, patch)
}

// DeleteTransaction removes a transaction; installment payments also roll
// back the plan's paid counter (see TransactionRepository.Remove).
func (s *Service) DeleteTransaction(id string) error {
	return s.transactions.Remove(id)
}

// AddInstallmentPurchase records a BNPL purchase: the plan plus its first
// installment payment, atomically.
func (s *Service) AddInstallmentPurchase(provider, description string, totalAmount float64, count int, source string, categoryID *string) (*models.InstallmentPlan, error) {
	plan, first, err := BuildInstallmentPurchase(provider, description, totalAmount, count, source, categoryID, time.Now())
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Create(&plan).Error; err != nil {
			return err
		}
		return dbtx.Create(&first).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("plan", plan.ID).Int("installments", count).Msg("installment purchase recorded")
	return &plan, nil
}

// PayNextInstallment appends the next bnpl-payment and increments the
// plan's paid counter in one database transaction.
func (s *Service) PayNextInstallment(planID, source string) (*models.Transaction, error) {
	plan, err := s.installments.Get(planID)
	if err != nil {
		return nil, err
	}
	payment, err := NextInstallmentPayment(*plan, source, time.Now())
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Create(&payment).Error; err != nil {
			return err
		}
		res := dbtx.Model(&models.InstallmentPlan{}).
			Where("id = ? AND paid < total", planID).
			UpdateColumn("paid", gorm.Expr("paid + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPlanSettled
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Transfer moves money between two instruments by appending a linked
// withdrawal/deposit pair, both-or-neither.
func (s *Service) Transfer(fromID, toID string, amount, rate float64) (*TransferPair, error) {
	from, err := s.resolveEndpoint(fromID)
	if err != nil {
		return nil, err
	}
	to, err := s.resolveEndpoint(toID)
	if err != nil {
		return nil, err
	}
	pair, err := BuildTransferPair(from, to, amount, rate, time.Now())
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Create(&pair.Withdrawal).Error; err != nil {
			return err
		}
		return dbtx.Create(&pair.Deposit).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("from", fromID).Str("to", toID).
		Float64("amount", amount).Float64("rate", rate).
		Msg("transfer recorded")
	return &pair, nil
}

// resolveEndpoint maps an instrument id to a transfer endpoint. Sentinels
// like cash are valid non-card endpoints; anything else must be a known
// card or account.
func (s *Service) resolveEndpoint(id string) (Endpoint, error) {
	if card, err := s.instruments.GetCard(id); err == nil {
		return Endpoint{ID: id, Name: card.Name, IsCard: true}, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return Endpoint{}, err
	}
	if account, err := s.instruments.GetAccount(id); err == nil {
		return Endpoint{ID: id, Name: account.Name, IsCard: false}, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return Endpoint{}, err
	}
	switch id {
	case models.PaymentMethodCash, models.PaymentMethodTabby, models.PaymentMethodTamara:
		return Endpoint{ID: id, Name: id, IsCard: false}, nil
	}
	return Endpoint{}, repository.ErrNotFound
}

// SaveLoan stores a loan. In Create mode it also synthesizes the implied
// transactions (down payment, disbursement, final payment); Update mode
// only rewrites the loan record. The mode is explicit, never inferred
// from the id.
func (s *Service) SaveLoan(loan models.Loan, mode WriteMode) (*models.Loan, error) {
	now := time.Now()
	if loan.ID == "" {
		loan.ID = models.NewTransactionID(now)
		loan.CreatedAt = now
	}
	if loan.Status == "" {
		loan.Status = models.LoanActive
	}
	DeriveLoanTerms(&loan)

	if mode == Update {
		if err := s.loans.Save(&loan); err != nil {
			return nil, err
		}
		return &loan, nil
	}

	txs, err := BuildLoanTransactions(loan, now)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(dbtx *gorm.DB) error {
		for i := range txs {
			if err := dbtx.Create(&txs[i]).Error; err != nil {
				return err
			}
		}
		return dbtx.Create(&loan).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("loan", loan.ID).Int("transactions", len(txs)).Msg("loan recorded")
	return &loan, nil
}
