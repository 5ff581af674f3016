package ledger

import (
	"strings"

	"finance-tracker-backend/internal/models"
)

// cardEffect is the single ledger effect a transaction has on one card.
type cardEffect int

const (
	effectNone cardEffect = iota
	// effectPaymentReceived: a payment made toward this card's balance.
	effectPaymentReceived
	// effectPaymentForwarded: this card was used to pay off something else,
	// which increases what is owed on it.
	effectPaymentForwarded
	// effectSpend: a regular purchase charged to this card.
	effectSpend
)

// legacyPaymentMarker prefixes the card name in free-text payment
// descriptions written by old clients ("سداد" = repayment).
const legacyPaymentMarker = "سداد "

// classifyForCard assigns a transaction to at most one of the three card
// buckets. The case order (received, forwarded, spend) is a deliberate
// tie-break for ambiguous legacy-format data and must not be reordered.
func classifyForCard(tx models.Transaction, card models.Card) cardEffect {
	if paymentTargets(tx, card) {
		return effectPaymentReceived
	}
	if tx.PaymentMethod == card.ID && tx.Kind == models.KindCardPayment {
		return effectPaymentForwarded
	}
	if tx.PaymentMethod == card.ID &&
		(tx.Kind == models.KindExpense || tx.Kind == models.KindBNPLPayment) {
		return effectSpend
	}
	return effectNone
}

// paymentTargets reports whether tx is a payment received by card. The
// structured target id is the preferred signal; the free-text fallback is
// consulted only when no structured target exists, so new data never depends
// on string matching.
func paymentTargets(tx models.Transaction, card models.Card) bool {
	if tx.Kind != models.KindCardPayment {
		return false
	}
	if tx.TargetCardID != nil {
		return *tx.TargetCardID == card.ID
	}
	return legacyPaymentTarget(tx, card)
}

// legacyPaymentTarget matches the old free-text convention
// "سداد <card name>". Compatibility shim for imported history only.
func legacyPaymentTarget(tx models.Transaction, card models.Card) bool {
	return card.Name != "" && strings.Contains(tx.Description, legacyPaymentMarker+card.Name)
}
