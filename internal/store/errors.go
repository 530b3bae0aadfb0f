package store

import "errors"

var (
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
	ErrRecordNotFound       = errors.New("record not found")
	ErrConstraintViolation  = errors.New("database constraint violation")
	ErrEmptyRunID           = errors.New("run id can not be empty")
)
