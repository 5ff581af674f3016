package models

import "time"

// LoanStatus tracks a loan through its life.
type LoanStatus string

const (
	LoanActive LoanStatus = "active"
	LoanClosed LoanStatus = "closed"
)

// Loan describes a borrowed amount repaid in monthly payments, optionally
// with a down payment at the start and a balloon payment at the end.
type Loan struct {
	ID                  string     `gorm:"primaryKey" json:"id"`
	Type                string     `json:"type"`
	Name                string     `json:"name"`
	TotalAmount         float64    `json:"totalAmount"`
	DownPayment         float64    `json:"downPayment"`
	FinalPayment        float64    `json:"finalPayment"`
	MonthlyPayment      float64    `json:"monthlyPayment"`
	StartDate           time.Time  `json:"startDate"`
	EndDate             *time.Time `json:"endDate,omitempty"`
	TotalMonths         int        `json:"totalMonths"`
	RemainingMonths     int        `json:"remainingMonths"`
	Lender              string     `json:"lender"`
	Status              LoanStatus `json:"status"`
	LinkedAccount       *string    `json:"linkedAccount,omitempty"`
	PrepaidAmount       float64    `json:"prepaidAmount"`
	PrepaidInstallments int        `json:"prepaidInstallments"`
	CreatedAt           time.Time  `json:"createdAt"`
}
