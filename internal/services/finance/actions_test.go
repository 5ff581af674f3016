package finance_test

import (
	"testing"
	"time"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/services/finance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func TestBuildTransferPair(t *testing.T) {
	account := finance.Endpoint{ID: "acc1", Name: "Main"}
	other := finance.Endpoint{ID: "acc2", Name: "Side"}
	card := finance.Endpoint{ID: "c1", Name: "Visa", IsCard: true}

	t.Run("account to account", func(t *testing.T) {
		pair, err := finance.BuildTransferPair(account, other, 100, 1, now)
		require.NoError(t, err)

		assert.Equal(t, models.KindExpense, pair.Withdrawal.Kind)
		assert.Equal(t, "acc1", pair.Withdrawal.PaymentMethod)
		assert.Equal(t, 100.0, pair.Withdrawal.Amount)

		assert.Equal(t, models.KindIncome, pair.Deposit.Kind)
		assert.Equal(t, "acc2", pair.Deposit.PaymentMethod)
		assert.Equal(t, 100.0, pair.Deposit.Amount)
		assert.NotEqual(t, pair.Withdrawal.ID, pair.Deposit.ID)
	})

	t.Run("cross currency rate applies to the deposit only", func(t *testing.T) {
		pair, err := finance.BuildTransferPair(account, other, 100, 2, now)
		require.NoError(t, err)
		assert.Equal(t, 100.0, pair.Withdrawal.Amount)
		assert.Equal(t, 200.0, pair.Deposit.Amount)
	})

	t.Run("account to card pays the card down", func(t *testing.T) {
		pair, err := finance.BuildTransferPair(account, card, 150, 1, now)
		require.NoError(t, err)

		assert.Equal(t, models.KindExpense, pair.Withdrawal.Kind)
		assert.Equal(t, "acc1", pair.Withdrawal.PaymentMethod)

		assert.Equal(t, models.KindCardPayment, pair.Deposit.Kind)
		require.NotNil(t, pair.Deposit.TargetCardID)
		assert.Equal(t, "c1", *pair.Deposit.TargetCardID)
		assert.Equal(t, models.PaymentMethodReconciliation, pair.Deposit.PaymentMethod)
	})

	t.Run("card as source uses the card payment kind", func(t *testing.T) {
		pair, err := finance.BuildTransferPair(card, account, 80, 1, now)
		require.NoError(t, err)
		assert.Equal(t, models.KindCardPayment, pair.Withdrawal.Kind)
		assert.Equal(t, "c1", pair.Withdrawal.PaymentMethod)
		assert.Nil(t, pair.Withdrawal.TargetCardID)
	})

	t.Run("same endpoint rejected", func(t *testing.T) {
		_, err := finance.BuildTransferPair(account, account, 100, 1, now)
		assert.ErrorIs(t, err, finance.ErrSameAccount)
	})

	t.Run("non positive amount rejected", func(t *testing.T) {
		for _, amount := range []float64{0, -5} {
			_, err := finance.BuildTransferPair(account, other, amount, 1, now)
			assert.ErrorIs(t, err, finance.ErrInvalidAmount)
		}
	})

	t.Run("non positive rate falls back to 1", func(t *testing.T) {
		pair, err := finance.BuildTransferPair(account, other, 100, 0, now)
		require.NoError(t, err)
		assert.Equal(t, 100.0, pair.Deposit.Amount)
	})
}

func TestBuildInstallmentPurchase(t *testing.T) {
	t.Run("plan with first installment paid", func(t *testing.T) {
		plan, first, err := finance.BuildInstallmentPurchase("tabby", "Headphones", 400, 4, models.PaymentMethodTabby, nil, now)
		require.NoError(t, err)

		assert.Equal(t, 4, plan.Total)
		assert.Equal(t, 1, plan.Paid)
		assert.Equal(t, 100.0, plan.InstallmentAmount)
		assert.False(t, plan.Settled())

		assert.Equal(t, 100.0, first.Amount)
		assert.Equal(t, models.KindExpense, first.Kind)
		assert.Equal(t, "Headphones (1/4)", first.Description)
		assert.True(t, first.IsInstallmentPayment)
		require.NotNil(t, first.InstallmentID)
		assert.Equal(t, plan.ID, *first.InstallmentID)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, _, err := finance.BuildInstallmentPurchase("tabby", "x", 0, 4, "cash", nil, now)
		assert.ErrorIs(t, err, finance.ErrInvalidAmount)
		_, _, err = finance.BuildInstallmentPurchase("tabby", "x", 400, 0, "cash", nil, now)
		assert.ErrorIs(t, err, finance.ErrInvalidAmount)
	})
}

func TestNextInstallmentPayment(t *testing.T) {
	plan := models.InstallmentPlan{
		ID: "p1", Description: "Headphones",
		TotalAmount: 400, InstallmentAmount: 100, Total: 4, Paid: 1,
	}

	t.Run("pays the next installment", func(t *testing.T) {
		payment, err := finance.NextInstallmentPayment(plan, models.PaymentMethodTamara, now)
		require.NoError(t, err)
		assert.Equal(t, 100.0, payment.Amount)
		assert.Equal(t, models.KindBNPLPayment, payment.Kind)
		assert.Equal(t, "Headphones (2/4)", payment.Description)
		assert.Equal(t, models.PaymentMethodTamara, payment.PaymentMethod)
		require.NotNil(t, payment.InstallmentID)
		assert.Equal(t, "p1", *payment.InstallmentID)
	})

	t.Run("settled plan rejected", func(t *testing.T) {
		done := plan
		done.Paid = done.Total
		_, err := finance.NextInstallmentPayment(done, "cash", now)
		assert.ErrorIs(t, err, finance.ErrPlanSettled)
	})
}

func TestDeriveLoanTerms(t *testing.T) {
	t.Run("months from financed amount", func(t *testing.T) {
		loan := models.Loan{TotalAmount: 12000, DownPayment: 2000, FinalPayment: 1000, MonthlyPayment: 900}
		finance.DeriveLoanTerms(&loan)
		assert.Equal(t, 10, loan.TotalMonths, "9000 / 900")
		assert.Equal(t, 10, loan.RemainingMonths)
	})

	t.Run("partial months round up", func(t *testing.T) {
		loan := models.Loan{TotalAmount: 1000, MonthlyPayment: 300}
		finance.DeriveLoanTerms(&loan)
		assert.Equal(t, 4, loan.TotalMonths)
	})

	t.Run("prepaid installments reduce remaining", func(t *testing.T) {
		loan := models.Loan{TotalAmount: 1200, MonthlyPayment: 100, PrepaidInstallments: 3}
		finance.DeriveLoanTerms(&loan)
		assert.Equal(t, 12, loan.TotalMonths)
		assert.Equal(t, 9, loan.RemainingMonths)
	})

	t.Run("zero monthly payment leaves terms alone", func(t *testing.T) {
		loan := models.Loan{TotalAmount: 1000, TotalMonths: 7}
		finance.DeriveLoanTerms(&loan)
		assert.Equal(t, 7, loan.TotalMonths)
	})
}

func TestBuildLoanTransactions(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	acc := "acc1"

	t.Run("full shape", func(t *testing.T) {
		loan := models.Loan{
			Name: "Car", TotalAmount: 50000, DownPayment: 10000, FinalPayment: 5000,
			MonthlyPayment: 1500, StartDate: start, EndDate: &end, LinkedAccount: &acc,
		}
		txs, err := finance.BuildLoanTransactions(loan, now)
		require.NoError(t, err)
		require.Len(t, txs, 3)

		assert.Equal(t, models.KindExpense, txs[0].Kind)
		assert.Equal(t, 10000.0, txs[0].Amount)
		assert.Equal(t, start, txs[0].Date)

		assert.Equal(t, models.KindIncome, txs[1].Kind)
		assert.Equal(t, 50000.0, txs[1].Amount)

		assert.Equal(t, models.KindExpense, txs[2].Kind)
		assert.Equal(t, 5000.0, txs[2].Amount)
		assert.Equal(t, end, txs[2].Date)

		for _, tx := range txs {
			assert.Equal(t, "acc1", tx.PaymentMethod)
		}
	})

	t.Run("disbursement only", func(t *testing.T) {
		loan := models.Loan{Name: "Personal", TotalAmount: 10000, MonthlyPayment: 500, StartDate: start}
		txs, err := finance.BuildLoanTransactions(loan, now)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, models.KindIncome, txs[0].Kind)
		assert.Equal(t, models.PaymentMethodCash, txs[0].PaymentMethod)
	})

	t.Run("final payment needs an end date", func(t *testing.T) {
		loan := models.Loan{Name: "Personal", TotalAmount: 10000, FinalPayment: 500, MonthlyPayment: 500, StartDate: start}
		txs, err := finance.BuildLoanTransactions(loan, now)
		require.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("invalid loans rejected", func(t *testing.T) {
		for _, loan := range []models.Loan{
			{TotalAmount: 100, MonthlyPayment: 10},
			{Name: "x", MonthlyPayment: 10},
			{Name: "x", TotalAmount: 100},
		} {
			_, err := finance.BuildLoanTransactions(loan, now)
			assert.ErrorIs(t, err, finance.ErrInvalidLoan)
		}
	})
}
