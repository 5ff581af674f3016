package repository

import (
	"errors"

	"finance-tracker-backend/internal/models"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Expose DB for services that need multi-repo transactions
func (r *TransactionRepository) DB() *gorm.DB {
	return r.db
}

// Append inserts a new transaction.
func (r *TransactionRepository) Append(tx *models.Transaction) error {
	return r.db.Create(tx).Error
}

// Get fetches a single transaction by id.
func (r *TransactionRepository) Get(id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// Update merges a patch into an existing transaction. The id never changes.
func (r *TransactionRepository) Update(id string, patch map[string]interface{}) (*models.Transaction, error) {
	tx, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	delete(patch, "id")
	if err := r.db.Model(tx).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Remove deletes a transaction. When it was an installment payment, the
// linked plan's paid counter is decremented (floored at 0) in the same
// database transaction, so both changes are visible together or neither is.
func (r *TransactionRepository) Remove(id string) error {
	target, err := r.Get(id)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Delete(&models.Transaction{}, "id = ?", id).Error; err != nil {
			return err
		}
		if target.IsInstallmentPayment && target.InstallmentID != nil {
			return dbtx.Model(&models.InstallmentPlan{}).
				Where("id = ? AND paid > 0", *target.InstallmentID).
				UpdateColumn("paid", gorm.Expr("paid - 1")).
				Error
		}
		return nil
	})
}

// All returns the full transaction history. Display order is derived by the
// ledger package, not stored.
func (r *TransactionRepository) All() ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Find(&txs).Error
	return txs, err
}
