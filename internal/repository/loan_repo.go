package repository

import (
	"errors"

	"finance-tracker-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) Get(id string) (*models.Loan, error) {
	var loan models.Loan
	if err := r.db.First(&loan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &loan, nil
}

func (r *LoanRepository) List() ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.Order("start_date DESC").Find(&loans).Error
	return loans, err
}

func (r *LoanRepository) Save(loan *models.Loan) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(loan).Error
}

func (r *LoanRepository) Delete(id string) error {
	return r.db.Delete(&models.Loan{}, "id = ?", id).Error
}
