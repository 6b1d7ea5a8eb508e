package errors

import "errors"

var (
	ErrBrandNotFound    = errors.New("brand not found for the provided wallet address")
	ErrBrandNotActive   = errors.New("brand is not allowed to post ads")
	ErrAdNotFound       = errors.New("ad not found")
	ErrAdNotOwned       = errors.New("ad does not belong to this brand")
	ErrInvalidInput     = errors.New("invalid ad input")
	ErrInvalidCredit    = errors.New("credit amount must be positive")
	ErrCreativeRejected = errors.New("creative must be an image")
	ErrUploadFailed     = errors.New("creative upload failed")
)
