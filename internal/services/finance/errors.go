package finance

import "errors"

// ErrInvalidAmount is returned when an operation's amount is missing,
// zero or negative.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrSameAccount is returned when a transfer names the same instrument on
// both sides.
var ErrSameAccount = errors.New("cannot transfer to the same account")

// ErrPlanSettled is returned when paying an installment plan that has no
// installments left.
var ErrPlanSettled = errors.New("installment plan already settled")

// ErrInvalidLoan is returned when required loan fields are missing.
var ErrInvalidLoan = errors.New("loan is missing required fields")
