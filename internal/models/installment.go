package models

import "time"

// InstallmentPlan is a BNPL purchase split into equal installments.
// Paid starts at 1 because the first installment is paid at purchase time.
type InstallmentPlan struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	Provider          string    `json:"provider"`
	Description       string    `json:"description"`
	TotalAmount       float64   `json:"totalAmount"`
	InstallmentAmount float64   `json:"installmentAmount"`
	Total             int       `json:"total"`
	Paid              int       `json:"paid"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Settled reports whether every installment has been paid.
func (p InstallmentPlan) Settled() bool {
	return p.Paid >= p.Total
}
