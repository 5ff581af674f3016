package finance

import (
	"fmt"
	"math"
	"time"

	"finance-tracker-backend/internal/models"
)

// WriteMode says whether a loan write is a first save or an edit. Edits
// never re-synthesize the loan's ledger transactions.
type WriteMode int

const (
	Create WriteMode = iota
	Update
)

// Endpoint is one side of a transfer: an instrument id plus what kind of
// instrument it resolved to. Sentinels like cash resolve to a non-card
// endpoint whose name is the sentinel itself.
type Endpoint struct {
	ID     string
	Name   string
	IsCard bool
}

// TransferPair is the two linked transactions a transfer produces. Each leg
// affects exactly one instrument; appending both atomically keeps the
// system-wide books consistent.
type TransferPair struct {
	Withdrawal models.Transaction
	Deposit    models.Transaction
}

// BuildTransferPair validates a transfer and synthesizes its two legs.
// The deposit receives amount*rate; a rate other than 1 is an explicit
// cross-currency conversion, not an error. Non-positive rates fall back
// to 1 (the caller keeps its last known-good rate on lookup failure).
func BuildTransferPair(from, to Endpoint, amount, rate float64, now time.Time) (TransferPair, error) {
	if from.ID == to.ID {
		return TransferPair{}, ErrSameAccount
	}
	if amount <= 0 {
		return TransferPair{}, ErrInvalidAmount
	}
	if rate <= 0 {
		rate = 1
	}

	withdrawal := models.Transaction{
		ID:          models.NewTransactionID(now),
		Amount:      amount,
		Date:        now,
		Description: fmt.Sprintf("Transfer to %s", to.Name),
		CreatedAt:   now,
	}
	if from.IsCard {
		// Paying something off with a card increases what is owed on it.
		withdrawal.Kind = models.KindCardPayment
		withdrawal.PaymentMethod = from.ID
	} else {
		withdrawal.Kind = models.KindExpense
		withdrawal.PaymentMethod = from.ID
	}

	deposit := models.Transaction{
		ID:          models.NewTransactionID(now),
		Amount:      amount * rate,
		Date:        now,
		Description: fmt.Sprintf("Transfer from %s", from.Name),
		CreatedAt:   now,
	}
	if to.IsCard {
		// The reconciliation sentinel keeps this leg off every account:
		// the source outflow is already carried by the withdrawal leg.
		target := to.ID
		deposit.Kind = models.KindCardPayment
		deposit.TargetCardID = &target
		deposit.PaymentMethod = models.PaymentMethodReconciliation
	} else {
		deposit.Kind = models.KindIncome
		deposit.PaymentMethod = to.ID
	}

	return TransferPair{Withdrawal: withdrawal, Deposit: deposit}, nil
}

// BuildInstallmentPurchase synthesizes a BNPL purchase: an installment plan
// with the first installment already paid, plus the expense transaction for
// that first installment. The full purchase amount never becomes a
// transaction of its own.
func BuildInstallmentPurchase(provider, description string, totalAmount float64, count int, source string, categoryID *string, now time.Time) (models.InstallmentPlan, models.Transaction, error) {
	if totalAmount <= 0 || count <= 0 {
		return models.InstallmentPlan{}, models.Transaction{}, ErrInvalidAmount
	}

	plan := models.InstallmentPlan{
		ID:                models.NewTransactionID(now),
		Provider:          provider,
		Description:       description,
		TotalAmount:       totalAmount,
		InstallmentAmount: totalAmount / float64(count),
		Total:             count,
		Paid:              1,
		CreatedAt:         now,
	}

	planID := plan.ID
	first := models.Transaction{
		ID:                   models.NewTransactionID(now),
		Amount:               plan.InstallmentAmount,
		Date:                 now,
		Description:          fmt.Sprintf("%s (1/%d)", description, count),
		PaymentMethod:        source,
		Kind:                 models.KindExpense,
		CategoryID:           categoryID,
		IsInstallmentPayment: true,
		InstallmentID:        &planID,
		CreatedAt:            now,
	}

	return plan, first, nil
}

// NextInstallmentPayment synthesizes the transaction paying a plan's next
// installment. The caller increments the plan's paid counter in the same
// database transaction.
func NextInstallmentPayment(plan models.InstallmentPlan, source string, now time.Time) (models.Transaction, error) {
	if plan.Settled() {
		return models.Transaction{}, ErrPlanSettled
	}
	planID := plan.ID
	return models.Transaction{
		ID:                   models.NewTransactionID(now),
		Amount:               plan.InstallmentAmount,
		Date:                 now,
		Description:          fmt.Sprintf("%s (%d/%d)", plan.Description, plan.Paid+1, plan.Total),
		PaymentMethod:        source,
		Kind:                 models.KindBNPLPayment,
		IsInstallmentPayment: true,
		InstallmentID:        &planID,
		CreatedAt:            now,
	}, nil
}

// DeriveLoanTerms fills in the month counters from the amounts and the
// monthly payment size.
func DeriveLoanTerms(loan *models.Loan) {
	if loan.MonthlyPayment <= 0 {
		return
	}
	financed := loan.TotalAmount - loan.DownPayment - loan.FinalPayment
	if financed < 0 {
		financed = 0
	}
	loan.TotalMonths = int(math.Ceil(financed / loan.MonthlyPayment))
	loan.RemainingMonths = loan.TotalMonths - loan.PrepaidInstallments
	if loan.RemainingMonths < 0 {
		loan.RemainingMonths = 0
	}
}

// BuildLoanTransactions synthesizes the ledger entries a new loan implies:
// a down-payment expense and the disbursement income at the start date, and
// a final-payment expense at the end date when one applies.
func BuildLoanTransactions(loan models.Loan, now time.Time) ([]models.Transaction, error) {
	if loan.Name == "" || loan.TotalAmount <= 0 || loan.MonthlyPayment <= 0 {
		return nil, ErrInvalidLoan
	}

	source := models.PaymentMethodCash
	if loan.LinkedAccount != nil && *loan.LinkedAccount != "" {
		source = *loan.LinkedAccount
	}

	var txs []models.Transaction
	if loan.DownPayment > 0 {
		txs = append(txs, models.Transaction{
			ID:            models.NewTransactionID(now),
			Amount:        loan.DownPayment,
			Date:          loan.StartDate,
			Description:   fmt.Sprintf("%s down payment", loan.Name),
			PaymentMethod: source,
			Kind:          models.KindExpense,
			CreatedAt:     now,
		})
	}
	txs = append(txs, models.Transaction{
		ID:            models.NewTransactionID(now),
		Amount:        loan.TotalAmount,
		Date:          loan.StartDate,
		Description:   fmt.Sprintf("%s disbursement", loan.Name),
		PaymentMethod: source,
		Kind:          models.KindIncome,
		CreatedAt:     now,
	})
	if loan.FinalPayment > 0 && loan.EndDate != nil {
		txs = append(txs, models.Transaction{
			ID:            models.NewTransactionID(now),
			Amount:        loan.FinalPayment,
			Date:          *loan.EndDate,
			Description:   fmt.Sprintf("%s final payment", loan.Name),
			PaymentMethod: source,
			Kind:          models.KindExpense,
			CreatedAt:     now,
		})
	}
	return txs, nil
}
