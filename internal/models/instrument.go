package models

import (
	"time"

	"gorm.io/datatypes"
)

// Card is a credit card configuration. Balance is never stored; it is
// reconstructed from the transaction log by the ledger engine.
type Card struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `json:"name"`
	Limit        float64        `gorm:"column:credit_limit" json:"limit"`
	DueDay       int            `json:"dueDay"`
	StatementDay int            `json:"statementDay"`
	SMSKeywords  datatypes.JSON `json:"smsKeywords,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// BankAccount is a bank account configuration with its opening balance.
type BankAccount struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Name        string         `json:"name"`
	Balance     float64        `json:"balance"`
	Currency    string         `json:"currency"`
	SMSKeywords datatypes.JSON `json:"smsKeywords,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// DefaultCurrency applies when an account was saved without one.
const DefaultCurrency = "SAR"

// CurrencyOrDefault returns the account currency, defaulting to SAR.
func (a BankAccount) CurrencyOrDefault() string {
	if a.Currency == "" {
		return DefaultCurrency
	}
	return a.Currency
}
