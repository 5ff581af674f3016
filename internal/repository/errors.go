package repository

import "errors"

// ErrReferencedByTransaction is returned when deleting an instrument that
// transactions still point at.
var ErrReferencedByTransaction = errors.New("instrument is referenced by transactions")

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")
