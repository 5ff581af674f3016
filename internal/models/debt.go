package models

import "time"

// DebtDirection says who owes whom.
type DebtDirection string

const (
	DebtToMe   DebtDirection = "to_me"
	DebtFromMe DebtDirection = "from_me"
)

// Debt is an informal IOU tracked outside the instrument ledger.
type Debt struct {
	ID        string        `gorm:"primaryKey" json:"id"`
	Direction DebtDirection `gorm:"index" json:"direction"`
	Person    string        `json:"person"`
	Amount    float64       `json:"amount"`
	Note      string        `json:"note"`
	Settled   bool          `json:"settled"`
	CreatedAt time.Time     `json:"createdAt"`
}
