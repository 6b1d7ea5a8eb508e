package errors

import "errors"

var (
	ErrPublisherNotFound  = errors.New("publisher not found")
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrInvalidPeriod      = errors.New("invalid settlement period")
	ErrInvalidInput       = errors.New("invalid input")
)
