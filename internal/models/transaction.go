package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionKind is the closed set of ledger effects a transaction can have.
// Card payments carry their target card in TargetCardID instead of encoding
// it inside the kind string.
type TransactionKind string

const (
	KindIncome               TransactionKind = "income"
	KindExpense              TransactionKind = "expense"
	KindBNPLPayment          TransactionKind = "bnpl-payment"
	KindInvestmentDeposit    TransactionKind = "investment-deposit"
	KindInvestmentWithdrawal TransactionKind = "investment-withdrawal"
	KindCardPayment          TransactionKind = "card-payment"
)

// Fixed payment-method sentinels. Anything else is a bank-account or card id.
const (
	PaymentMethodCash           = "cash"
	PaymentMethodTabby          = "tabby"
	PaymentMethodTamara         = "tamara"
	PaymentMethodReconciliation = "reconciliation"
)

// Transaction is one financial event. Amount is a non-negative magnitude;
// direction comes from Kind, never from sign.
type Transaction struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	Amount        float64         `gorm:"index" json:"amount"`
	Date          time.Time       `gorm:"index" json:"date"`
	PostingDate   *time.Time      `json:"postingDate,omitempty"`
	Description   string          `json:"description"`
	PaymentMethod string          `gorm:"index" json:"paymentMethod"`
	Kind          TransactionKind `gorm:"column:kind;index" json:"kind"`
	TargetCardID  *string         `gorm:"index" json:"targetCardId,omitempty"`
	CategoryID    *string         `json:"categoryId,omitempty"`

	IsInstallmentPayment bool    `json:"isInstallmentPayment"`
	InstallmentID        *string `json:"installmentId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// EffectiveDate is the issuer posting date when present, else the economic date.
func (t Transaction) EffectiveDate() time.Time {
	if t.PostingDate != nil {
		return *t.PostingDate
	}
	return t.Date
}

// NewTransactionID mints an id whose numeric prefix is the creation time in
// milliseconds; the prefix is the tie-breaker for display ordering.
func NewTransactionID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.New().String()[:8])
}

// TimestampFromID recovers the millisecond timestamp embedded in an id.
// Ids without a numeric prefix sort as zero.
func TimestampFromID(id string) int64 {
	head, _, _ := strings.Cut(id, "-")
	ts, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}
