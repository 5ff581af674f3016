package repository

import (
	"errors"
	"time"

	"finance-tracker-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReferenceRepository covers the small lookup tables: categories, debts and
// the raw snapshot blobs.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *ReferenceRepository) SaveCategory(category *models.Category) error {
	if category.ID == "" {
		category.ID = models.NewTransactionID(time.Now())
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(category).Error
}

func (r *ReferenceRepository) DeleteCategory(id string) error {
	return r.db.Delete(&models.Category{}, "id = ?", id).Error
}

func (r *ReferenceRepository) ListDebts(direction models.DebtDirection) ([]models.Debt, error) {
	var debts []models.Debt
	err := r.db.Where("direction = ?", direction).Order("created_at DESC").Find(&debts).Error
	return debts, err
}

func (r *ReferenceRepository) SaveDebt(debt *models.Debt) error {
	if debt.ID == "" {
		debt.ID = models.NewTransactionID(time.Now())
		debt.CreatedAt = time.Now()
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(debt).Error
}

func (r *ReferenceRepository) DeleteDebt(id string) error {
	return r.db.Delete(&models.Debt{}, "id = ?", id).Error
}

// GetBlob returns the raw JSON stored under key, or nil when absent.
func (r *ReferenceRepository) GetBlob(key string) (datatypes.JSON, error) {
	var blob models.StateBlob
	err := r.db.First(&blob, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return blob.Data, nil
}

func (r *ReferenceRepository) PutBlob(key string, data datatypes.JSON) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&models.StateBlob{Key: key, Data: data}).Error
}
