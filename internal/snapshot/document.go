package snapshot

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finance-tracker-backend/internal/models"
)

// Document is the single JSON state document the app persists. Sections the
// backend does not model (settings, investments) are carried verbatim.
// Older snapshots use the flat creditCards/bank shape; Upgrade converts them.
type Document struct {
	Transactions []TransactionJSON        `json:"transactions"`
	Categories   []models.Category        `json:"categories,omitempty"`
	Installments []models.InstallmentPlan `json:"installments,omitempty"`
	Investments  json.RawMessage          `json:"investments,omitempty"`
	Cards        []models.Card            `json:"cards,omitempty"`
	BankAccounts []models.BankAccount     `json:"bankAccounts,omitempty"`
	Loans        []models.Loan            `json:"loans,omitempty"`
	DebtsToMe    []models.Debt            `json:"debtsToMe,omitempty"`
	DebtsFromMe  []models.Debt            `json:"debtsFromMe,omitempty"`
	Settings     json.RawMessage          `json:"settings,omitempty"`

	// Legacy flat shape.
	CreditCards []models.Card `json:"creditCards,omitempty"`
	Bank        *LegacyBank   `json:"bank,omitempty"`
}

// LegacyBank is the pre-multi-account bank section: one unnamed account.
type LegacyBank struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// legacyBankMethod is the fixed payment-method id old clients wrote before
// accounts had user-defined ids.
const legacyBankMethod = "bank"

// TransactionJSON is the wire form of a transaction. The type field still
// carries the legacy dynamic `<cardId>-payment` strings; decoding converts
// them to the card-payment kind plus an explicit target id.
type TransactionJSON struct {
	ID                   string  `json:"id"`
	Amount               float64 `json:"amount"`
	Date                 string  `json:"date"`
	PostingDate          string  `json:"postingDate,omitempty"`
	Description          string  `json:"description"`
	PaymentMethod        string  `json:"paymentMethod"`
	Type                 string  `json:"type"`
	TargetCardID         *string `json:"targetCardId,omitempty"`
	CategoryID           *string `json:"categoryId,omitempty"`
	IsInstallmentPayment bool    `json:"isInstallmentPayment,omitempty"`
	InstallmentID        *string `json:"installmentId,omitempty"`
}

// ParseType maps a wire type string onto the closed kind set. Dynamic
// `<cardId>-payment` strings become card-payment plus the recovered target.
// Unrecognized strings yield an empty kind, which is inert in the engine.
func ParseType(s string) (models.TransactionKind, *string) {
	switch models.TransactionKind(s) {
	case models.KindIncome, models.KindExpense, models.KindBNPLPayment,
		models.KindInvestmentDeposit, models.KindInvestmentWithdrawal:
		return models.TransactionKind(s), nil
	case models.KindCardPayment:
		return models.KindCardPayment, nil
	}
	if cardID, ok := strings.CutSuffix(s, "-payment"); ok && cardID != "" {
		return models.KindCardPayment, &cardID
	}
	return "", nil
}

// EncodeType writes the wire type string, using the dynamic form for card
// payments with a known target so old clients keep working.
func EncodeType(kind models.TransactionKind, target *string) string {
	if kind == models.KindCardPayment && target != nil {
		return *target + "-payment"
	}
	return string(kind)
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("snapshot: bad date %q: %w", s, err)
	}
	return t, nil
}

// ToModel converts a wire transaction to the domain model.
func (j TransactionJSON) ToModel() (models.Transaction, error) {
	date, err := parseDate(j.Date)
	if err != nil {
		return models.Transaction{}, err
	}
	kind, target := ParseType(j.Type)
	if j.TargetCardID != nil {
		target = j.TargetCardID
	}
	tx := models.Transaction{
		ID:                   j.ID,
		Amount:               j.Amount,
		Date:                 date,
		Description:          j.Description,
		PaymentMethod:        j.PaymentMethod,
		Kind:                 kind,
		TargetCardID:         target,
		CategoryID:           j.CategoryID,
		IsInstallmentPayment: j.IsInstallmentPayment,
		InstallmentID:        j.InstallmentID,
		CreatedAt:            time.UnixMilli(models.TimestampFromID(j.ID)),
	}
	if j.PostingDate != "" {
		posted, err := parseDate(j.PostingDate)
		if err != nil {
			return models.Transaction{}, err
		}
		tx.PostingDate = &posted
	}
	return tx, nil
}

// FromModel converts a domain transaction to its wire form.
func FromModel(tx models.Transaction) TransactionJSON {
	j := TransactionJSON{
		ID:                   tx.ID,
		Amount:               tx.Amount,
		Date:                 tx.Date.Format(dateLayout),
		Description:          tx.Description,
		PaymentMethod:        tx.PaymentMethod,
		Type:                 EncodeType(tx.Kind, tx.TargetCardID),
		TargetCardID:         tx.TargetCardID,
		CategoryID:           tx.CategoryID,
		IsInstallmentPayment: tx.IsInstallmentPayment,
		InstallmentID:        tx.InstallmentID,
	}
	if tx.PostingDate != nil {
		j.PostingDate = tx.PostingDate.Format(dateLayout)
	}
	return j
}

// Upgrade rewrites a legacy flat document in place: creditCards becomes
// cards, the single bank section becomes a bank account, and transactions
// pointing at the legacy fixed method id are remapped to the generated
// account. Already-current documents pass through untouched.
func (d *Document) Upgrade(now time.Time) {
	if len(d.CreditCards) > 0 && len(d.Cards) == 0 {
		d.Cards = d.CreditCards
	}
	d.CreditCards = nil

	if d.Bank != nil && len(d.BankAccounts) == 0 {
		account := models.BankAccount{
			ID:       models.NewTransactionID(now),
			Name:     d.Bank.Name,
			Balance:  d.Bank.Balance,
			Currency: models.DefaultCurrency,
		}
		if account.Name == "" {
			account.Name = "Bank account"
		}
		d.BankAccounts = []models.BankAccount{account}
		for i := range d.Transactions {
			if d.Transactions[i].PaymentMethod == legacyBankMethod {
				d.Transactions[i].PaymentMethod = account.ID
			}
		}
	}
	d.Bank = nil
}
