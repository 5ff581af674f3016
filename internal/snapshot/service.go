package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	blobSettings    = "settings"
	blobInvestments = "investments"
)

// Service imports and exports the persisted state document. Import replaces
// the whole state in one database transaction: the ledger only ever sees the
// old snapshot or the new one.
type Service struct {
	db   *gorm.DB
	refs *repository.ReferenceRepository
	log  zerolog.Logger
}

func NewService(db *gorm.DB, refs *repository.ReferenceRepository, log zerolog.Logger) *Service {
	return &Service{db: db, refs: refs, log: log}
}

// Import parses a state document, upgrades legacy shapes, and loads it.
// A parse failure leaves the current state untouched.
func (s *Service) Import(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("snapshot: malformed state document: %w", err)
	}
	doc.Upgrade(time.Now())

	txs := make([]models.Transaction, 0, len(doc.Transactions))
	for _, j := range doc.Transactions {
		tx, err := j.ToModel()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	err := s.db.Transaction(func(dbtx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Transaction{}, &models.Card{}, &models.BankAccount{},
			&models.InstallmentPlan{}, &models.Loan{}, &models.Category{}, &models.Debt{},
		} {
			if err := dbtx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		for i := range txs {
			if err := dbtx.Create(&txs[i]).Error; err != nil {
				return err
			}
		}
		for i := range doc.Cards {
			if err := dbtx.Create(&doc.Cards[i]).Error; err != nil {
				return err
			}
		}
		for i := range doc.BankAccounts {
			if err := dbtx.Create(&doc.BankAccounts[i]).Error; err != nil {
				return err
			}
		}
		for i := range doc.Installments {
			if err := dbtx.Create(&doc.Installments[i]).Error; err != nil {
				return err
			}
		}
		for i := range doc.Loans {
			if err := dbtx.Create(&doc.Loans[i]).Error; err != nil {
				return err
			}
		}
		for i := range doc.Categories {
			if err := dbtx.Create(&doc.Categories[i]).Error; err != nil {
				return err
			}
		}
		for i := range doc.DebtsToMe {
			doc.DebtsToMe[i].Direction = models.DebtToMe
			if err := dbtx.Create(&doc.DebtsToMe[i]).Error; err != nil {
				return err
			}
		}
		for i := range doc.DebtsFromMe {
			doc.DebtsFromMe[i].Direction = models.DebtFromMe
			if err := dbtx.Create(&doc.DebtsFromMe[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(doc.Settings) > 0 {
		if err := s.refs.PutBlob(blobSettings, datatypes.JSON(doc.Settings)); err != nil {
			return nil, err
		}
	}
	if len(doc.Investments) > 0 {
		if err := s.refs.PutBlob(blobInvestments, datatypes.JSON(doc.Investments)); err != nil {
			return nil, err
		}
	}

	s.log.Info().
		Int("transactions", len(txs)).
		Int("cards", len(doc.Cards)).
		Int("accounts", len(doc.BankAccounts)).
		Msg("state document imported")
	return &doc, nil
}

// Export assembles the current state into a document old clients can read.
func (s *Service) Export() (*Document, error) {
	doc := &Document{}

	var txs []models.Transaction
	if err := s.db.Find(&txs).Error; err != nil {
		return nil, err
	}
	doc.Transactions = make([]TransactionJSON, 0, len(txs))
	for _, tx := range txs {
		doc.Transactions = append(doc.Transactions, FromModel(tx))
	}

	if err := s.db.Find(&doc.Cards).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&doc.BankAccounts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&doc.Installments).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&doc.Loans).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&doc.Categories).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("direction = ?", models.DebtToMe).Find(&doc.DebtsToMe).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("direction = ?", models.DebtFromMe).Find(&doc.DebtsFromMe).Error; err != nil {
		return nil, err
	}

	settings, err := s.refs.GetBlob(blobSettings)
	if err != nil {
		return nil, err
	}
	doc.Settings = json.RawMessage(settings)
	investments, err := s.refs.GetBlob(blobInvestments)
	if err != nil {
		return nil, err
	}
	doc.Investments = json.RawMessage(investments)

	return doc, nil
}
