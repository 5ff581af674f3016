package repository

import (
	"errors"

	"finance-tracker-backend/internal/models"

	"gorm.io/gorm"
)

type InstallmentRepository struct {
	db *gorm.DB
}

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) Get(id string) (*models.InstallmentPlan, error) {
	var plan models.InstallmentPlan
	if err := r.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *InstallmentRepository) List() ([]models.InstallmentPlan, error) {
	var plans []models.InstallmentPlan
	err := r.db.Order("created_at DESC").Find(&plans).Error
	return plans, err
}

func (r *InstallmentRepository) Create(plan *models.InstallmentPlan) error {
	return r.db.Create(plan).Error
}
