package payment

import (
	"context"
	"net/http"
	"strings"
)

// PaymentHeader carries the client's payment proof.
const PaymentHeader = "X-Payment"

// Verifier checks a request's payment proof against a requirement. A nil
// return lets the gated handler run; ErrPaymentRequired asks the client to
// pay; any other error rejects the presented proof.
type Verifier interface {
	Verify(ctx context.Context, r *http.Request, requirement Requirement) error
}

// VerifyFunc adapts a function to the Verifier interface.
type VerifyFunc func(ctx context.Context, r *http.Request, requirement Requirement) error

func (f VerifyFunc) Verify(ctx context.Context, r *http.Request, requirement Requirement) error {
	return f(ctx, r, requirement)
}

// DevVerifier accepts any non-empty payment proof. It keeps the challenge
// flow intact for local runs; production deployments wire a
// facilitator-backed Verifier instead.
type DevVerifier struct{}

func (DevVerifier) Verify(_ context.Context, r *http.Request, _ Requirement) error {
	if strings.TrimSpace(r.Header.Get(PaymentHeader)) == "" {
		return ErrPaymentRequired
	}
	return nil
}
