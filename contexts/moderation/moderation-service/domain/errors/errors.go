package errors

import "errors"

var (
	ErrAdNotFound        = errors.New("ad not found")
	ErrOracleUnavailable = errors.New("moderation oracle unavailable")
	ErrInvalidInput      = errors.New("invalid input")
)
