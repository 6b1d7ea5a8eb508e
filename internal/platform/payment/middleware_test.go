package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func staticQuote(price string) ActionHandler {
	return func(_ context.Context, _ string) (Quote, error) {
		return Quote{
			Price:       decimal.RequireFromString(price),
			Description: "test action",
		}, nil
	}
}

func gatedHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestGateMissingWalletShortCircuitsBeforeQuote(t *testing.T) {
	quoted := false
	called := false
	gate := Gate{
		PayTo:   "0xmaster",
		Network: "base-sepolia",
		Quote: func(_ context.Context, _ string) (Quote, error) {
			quoted = true
			return Quote{}, nil
		},
		Verifier: DevVerifier{},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brand/ad", nil)
	gate.Wrap(http.MethodPost, "/brand/ad", gatedHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if quoted {
		t.Fatalf("quote must not run without a wallet")
	}
	if called {
		t.Fatalf("handler must not run without a wallet")
	}
	assertErrorCode(t, rec, "MISSING_WALLET")
}

func TestGateQuoteFailureIsServerError(t *testing.T) {
	called := false
	gate := Gate{
		PayTo:   "0xmaster",
		Network: "base-sepolia",
		Quote: func(_ context.Context, _ string) (Quote, error) {
			return Quote{}, errors.New("store down")
		},
		Verifier: DevVerifier{},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brand/ad", nil)
	req.Header.Set(WalletHeader, "0xbrand")
	gate.Wrap(http.MethodPost, "/brand/ad", gatedHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if called {
		t.Fatalf("handler must not run when quoting fails")
	}
	assertErrorCode(t, rec, "PAYMENT_QUOTE_FAILED")
}

func TestGateChallengesWithoutProof(t *testing.T) {
	called := false
	gate := Gate{
		PayTo:    "0xmaster",
		Network:  "base-sepolia",
		Quote:    staticQuote("0.001"),
		Verifier: DevVerifier{},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brand/ad", nil)
	req.Header.Set(WalletHeader, "0xbrand")
	gate.Wrap(http.MethodPost, "/brand/ad", gatedHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", rec.Code)
	}
	if called {
		t.Fatalf("handler must not run before payment")
	}

	var body struct {
		Accepts []struct {
			Price       string `json:"price"`
			PayTo       string `json:"pay_to"`
			Description string `json:"description"`
		} `json:"accepts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode challenge: %v", err)
	}
	if len(body.Accepts) != 1 {
		t.Fatalf("challenge must carry one requirement, got %d", len(body.Accepts))
	}
	if body.Accepts[0].Price != "0.001" || body.Accepts[0].PayTo != "0xmaster" {
		t.Fatalf("unexpected requirement: %+v", body.Accepts[0])
	}
}

func TestGateRejectionBlocksHandler(t *testing.T) {
	called := false
	gate := Gate{
		PayTo:   "0xmaster",
		Network: "base-sepolia",
		Quote:   staticQuote("0.001"),
		Verifier: VerifyFunc(func(_ context.Context, _ *http.Request, _ Requirement) error {
			return ErrPaymentRejected
		}),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brand/ad", nil)
	req.Header.Set(WalletHeader, "0xbrand")
	req.Header.Set(PaymentHeader, "bogus-proof")
	gate.Wrap(http.MethodPost, "/brand/ad", gatedHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", rec.Code)
	}
	if called {
		t.Fatalf("handler must not run on rejected payment")
	}
	assertErrorCode(t, rec, "PAYMENT_REJECTED")
}

func TestGatePassesVerifiedRequestThrough(t *testing.T) {
	called := false
	var seen Requirement
	gate := Gate{
		PayTo:   "0xmaster",
		Network: "base-sepolia",
		Quote:   staticQuote("0.0005"),
		Verifier: VerifyFunc(func(_ context.Context, _ *http.Request, requirement Requirement) error {
			seen = requirement
			return nil
		}),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brand/ad", nil)
	req.Header.Set(WalletHeader, "0xbrand")
	req.Header.Set(PaymentHeader, "proof")
	gate.Wrap(http.MethodPost, "/brand/ad", gatedHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !called {
		t.Fatalf("handler must run after verification")
	}
	if seen.Key() != "POST /brand/ad" {
		t.Fatalf("requirement keyed wrong: %s", seen.Key())
	}
	if seen.Price.String() != "0.0005" {
		t.Fatalf("requirement must carry the quoted price, got %s", seen.Price)
	}
}

func TestGateWalletQueryFallback(t *testing.T) {
	called := false
	gate := Gate{
		PayTo:   "0xmaster",
		Network: "base-sepolia",
		Quote:   staticQuote("0.001"),
		Verifier: VerifyFunc(func(_ context.Context, _ *http.Request, _ Requirement) error {
			return nil
		}),
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brand/ad?wallet=0xquery", nil)
	gate.Wrap(http.MethodPost, "/brand/ad", gatedHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 via query wallet, got %d", rec.Code)
	}
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Success {
		t.Fatalf("error responses must not claim success")
	}
	if body.Error.Code != code {
		t.Fatalf("expected code %s, got %s", code, body.Error.Code)
	}
}
