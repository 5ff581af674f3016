package repository

import (
	"errors"
	"fmt"
	"time"

	"finance-tracker-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InstrumentRepository holds card and bank-account configuration.
type InstrumentRepository struct {
	db *gorm.DB
}

func NewInstrumentRepository(db *gorm.DB) *InstrumentRepository {
	return &InstrumentRepository{db: db}
}

func (r *InstrumentRepository) GetCard(id string) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *InstrumentRepository) GetAccount(id string) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *InstrumentRepository) ListCards() ([]models.Card, error) {
	var cards []models.Card
	err := r.db.Order("created_at ASC").Find(&cards).Error
	return cards, err
}

func (r *InstrumentRepository) ListAccounts() ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	err := r.db.Order("created_at ASC").Find(&accounts).Error
	return accounts, err
}

// UpsertCard creates the card when its id is empty, otherwise merges fields
// into the existing record, preserving the id.
func (r *InstrumentRepository) UpsertCard(card *models.Card) error {
	if card.ID == "" {
		card.ID = models.NewTransactionID(time.Now())
		card.CreatedAt = time.Now()
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(card).Error
}

// UpsertAccount mirrors UpsertCard for bank accounts.
func (r *InstrumentRepository) UpsertAccount(account *models.BankAccount) error {
	if account.ID == "" {
		account.ID = models.NewTransactionID(time.Now())
		account.CreatedAt = time.Now()
	}
	if account.Currency == "" {
		account.Currency = models.DefaultCurrency
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(account).Error
}

// DeleteCard removes a card unless any transaction still references it,
// either as the payment method or as the target of a card payment.
func (r *InstrumentRepository) DeleteCard(id string) error {
	var count int64
	err := r.db.Model(&models.Transaction{}).
		Where("payment_method = ? OR target_card_id = ?", id, id).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("card %s: %w", id, ErrReferencedByTransaction)
	}
	return r.db.Delete(&models.Card{}, "id = ?", id).Error
}

// DeleteAccount removes an account unless a transaction references it.
func (r *InstrumentRepository) DeleteAccount(id string) error {
	var count int64
	err := r.db.Model(&models.Transaction{}).
		Where("payment_method = ?", id).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("account %s: %w", id, ErrReferencedByTransaction)
	}
	return r.db.Delete(&models.BankAccount{}, "id = ?", id).Error
}
