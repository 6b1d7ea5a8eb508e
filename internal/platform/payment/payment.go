package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrPaymentRequired means no payment proof accompanied the request;
	// the response carries the requirement so the client can retry with one.
	ErrPaymentRequired = errors.New("payment required")
	// ErrPaymentRejected means a proof was presented but did not satisfy
	// the requirement.
	ErrPaymentRejected = errors.New("payment rejected")
)

// Quote is the dynamic price for one gated action, produced per request
// before the handler runs.
type Quote struct {
	Price       decimal.Decimal
	Description string
}

// ActionHandler computes the quote for the calling wallet. It must be
// side-effect free; the gate may call it for requests that never pay.
type ActionHandler func(ctx context.Context, walletAddress string) (Quote, error)

// Config carries the human-readable requirement metadata shown to the
// paying client.
type Config struct {
	Description string
}

// Requirement is the full payment demand for one (method, route) pair.
type Requirement struct {
	Method  string
	Route   string
	Price   decimal.Decimal
	PayTo   string
	Network string
	Config  Config
}

// Key identifies the requirement in challenge responses.
func (r Requirement) Key() string {
	return r.Method + " " + r.Route
}
