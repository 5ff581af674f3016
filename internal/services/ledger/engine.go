package ledger

import (
	"finance-tracker-backend/internal/models"
)

// CardDetail is a card's configuration plus its reconstructed position.
type CardDetail struct {
	models.Card
	Balance         float64 `json:"balance"`
	Available       float64 `json:"available"`
	UsagePercentage float64 `json:"usagePercentage"`
}

// AccountDetail is an account's configuration plus its reconstructed balance
// and period-scoped flows.
type AccountDetail struct {
	models.BankAccount
	Balance     float64 `json:"balance"`
	Deposits    float64 `json:"deposits"`
	Withdrawals float64 `json:"withdrawals"`
}

// Result is everything the dashboard needs, derived from the transaction log.
// Balances are computed from full history; totals and category breakdowns
// are scoped to the selected period.
type Result struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`

	CardDetails        map[string]CardDetail    `json:"cardDetails"`
	CardPayments       map[string]float64       `json:"cardPayments"`
	BankAccountDetails map[string]AccountDetail `json:"bankAccountDetails"`

	TotalDebt        float64 `json:"totalDebt"`
	TotalAvailable   float64 `json:"totalAvailable"`
	TotalLimits      float64 `json:"totalLimits"`
	TotalBankBalance float64 `json:"totalBankBalance"`

	TotalInvestmentDeposits    float64 `json:"totalInvestmentDeposits"`
	TotalInvestmentWithdrawals float64 `json:"totalInvestmentWithdrawals"`

	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
}

// Compute reconstructs every balance and period aggregate from scratch.
// It is a pure function: no I/O, no hidden state, and it never fails for
// well-formed input. Transactions referencing unknown instrument ids fall
// out of the per-instrument figures but still count toward the kind-keyed
// aggregates.
func Compute(all, period []models.Transaction, cards []models.Card, accounts []models.BankAccount) Result {
	res := Result{
		CardDetails:        make(map[string]CardDetail, len(cards)),
		CardPayments:       make(map[string]float64),
		BankAccountDetails: make(map[string]AccountDetail, len(accounts)),
		ExpensesByCategory: make(map[string]float64),
	}

	for _, card := range cards {
		detail := reconstructCard(card, all)
		res.CardDetails[card.ID] = detail
		res.TotalDebt += detail.Balance
		res.TotalAvailable += detail.Available
		res.TotalLimits += card.Limit
	}

	for _, account := range accounts {
		detail := reconstructAccount(account, all, period)
		res.BankAccountDetails[account.ID] = detail
		res.TotalBankBalance += detail.Balance
	}

	for _, tx := range period {
		switch tx.Kind {
		case models.KindIncome:
			res.TotalIncome += tx.Amount
		case models.KindExpense, models.KindBNPLPayment:
			res.TotalExpenses += tx.Amount
			if tx.CategoryID != nil {
				res.ExpensesByCategory[*tx.CategoryID] += tx.Amount
			}
		case models.KindInvestmentDeposit:
			// An investment deposit is an outflow from spendable cash.
			res.TotalInvestmentDeposits += tx.Amount
			res.TotalExpenses += tx.Amount
		case models.KindInvestmentWithdrawal:
			res.TotalInvestmentWithdrawals += tx.Amount
			res.TotalIncome += tx.Amount
		case models.KindCardPayment:
			if tx.TargetCardID != nil {
				res.CardPayments[*tx.TargetCardID] += tx.Amount
			}
		}
	}

	return res
}

// reconstructCard replays the entire history against one card. A card's
// outstanding balance is a running total since account opening, so the
// period subset is never enough here.
func reconstructCard(card models.Card, all []models.Transaction) CardDetail {
	detail := CardDetail{Card: card}
	for _, tx := range all {
		switch classifyForCard(tx, card) {
		case effectPaymentReceived:
			detail.Balance -= tx.Amount
		case effectPaymentForwarded, effectSpend:
			detail.Balance += tx.Amount
		}
	}
	detail.Available = card.Limit - detail.Balance
	if card.Limit > 0 {
		detail.UsagePercentage = detail.Balance / card.Limit * 100
	}
	return detail
}

// reconstructAccount replays full history from the opening balance and
// additionally derives period-scoped deposits/withdrawals for display.
func reconstructAccount(account models.BankAccount, all, period []models.Transaction) AccountDetail {
	detail := AccountDetail{BankAccount: account, Balance: account.Balance}
	for _, tx := range all {
		if tx.PaymentMethod != account.ID {
			continue
		}
		detail.Balance += accountDelta(tx)
	}
	for _, tx := range period {
		if tx.PaymentMethod != account.ID {
			continue
		}
		delta := accountDelta(tx)
		if delta > 0 {
			detail.Deposits += delta
		} else {
			detail.Withdrawals += -delta
		}
	}
	return detail
}

// accountDelta is the signed effect of a transaction on the account it was
// paid from. The switch covers the closed kind set explicitly: exactly one
// effect per transaction, no suffix matching.
func accountDelta(tx models.Transaction) float64 {
	switch tx.Kind {
	case models.KindIncome, models.KindInvestmentWithdrawal:
		return tx.Amount
	case models.KindExpense, models.KindBNPLPayment, models.KindInvestmentDeposit, models.KindCardPayment:
		return -tx.Amount
	}
	return 0
}
