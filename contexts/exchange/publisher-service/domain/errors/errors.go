package errors

import "errors"

var (
	ErrPublisherNotFound      = errors.New("publisher not found for the provided wallet address")
	ErrPublisherAlreadyExists = errors.New("publisher with this wallet address already exists")
	ErrDomainAlreadyExists    = errors.New("publisher with this domain already exists")
	ErrAdSlotNotFound         = errors.New("ad slot not found")
	ErrAdSlotAlreadyExists    = errors.New("ad slot with this slot id already exists for this publisher")
	ErrAdSlotLimitExceeded    = errors.New("publisher has reached the maximum limit of ad slots")
	ErrAdNotFound             = errors.New("ad not found")
	ErrInsufficientCredits    = errors.New("ad has insufficient credits")
	ErrImpressionNotFound     = errors.New("impression not found")
	ErrInvalidInput           = errors.New("invalid publisher input")
)
