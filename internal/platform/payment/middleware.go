package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// WalletHeader names the caller's wallet for quoting. Query parameter
// "wallet" is accepted as a fallback for clients that cannot set headers.
const WalletHeader = "X-Wallet-Address"

// Gate wraps mutating routes with the payment protocol. Per request it
// quotes a price for the calling wallet, builds the requirement, and hands
// it to the verifier; the wrapped handler runs only after verification
// passes. No handler side effect can precede payment.
type Gate struct {
	PayTo    string
	Network  string
	Quote    ActionHandler
	Verifier Verifier
	Logger   *slog.Logger
}

func (g Gate) Wrap(method string, route string, next http.Handler) http.Handler {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wallet := WalletFromRequest(r)
		if wallet == "" {
			g.writeError(w, http.StatusBadRequest, "MISSING_WALLET", "wallet address is required")
			return
		}

		quote, err := g.Quote(r.Context(), wallet)
		if err != nil {
			logger.Error("payment quote failed",
				"event", "payment_quote_failed",
				"module", "internal/platform/payment",
				"layer", "platform",
				"route", method+" "+route,
				"wallet", wallet,
				"error", err.Error(),
			)
			g.writeError(w, http.StatusInternalServerError, "PAYMENT_QUOTE_FAILED", "unable to quote payment for this action")
			return
		}

		requirement := Requirement{
			Method:  method,
			Route:   route,
			Price:   quote.Price,
			PayTo:   g.PayTo,
			Network: g.Network,
			Config:  Config{Description: quote.Description},
		}

		if err := g.Verifier.Verify(r.Context(), r, requirement); err != nil {
			if errors.Is(err, ErrPaymentRequired) {
				g.writeChallenge(w, requirement)
				return
			}
			logger.Warn("payment rejected",
				"event", "payment_rejected",
				"module", "internal/platform/payment",
				"layer", "platform",
				"route", requirement.Key(),
				"wallet", wallet,
				"error", err.Error(),
			)
			g.writeError(w, http.StatusPaymentRequired, "PAYMENT_REJECTED", "payment verification failed")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func WalletFromRequest(r *http.Request) string {
	if wallet := strings.TrimSpace(r.Header.Get(WalletHeader)); wallet != "" {
		return wallet
	}
	return strings.TrimSpace(r.URL.Query().Get("wallet"))
}

type errorEnvelope struct {
	Success   bool      `json:"success"`
	Timestamp string    `json:"timestamp"`
	Error     errorBody `json:"error"`
}

type errorBody struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type challengeEnvelope struct {
	Success   bool            `json:"success"`
	Timestamp string          `json:"timestamp"`
	Error     errorBody       `json:"error"`
	Accepts   []requirementTO `json:"accepts"`
}

type requirementTO struct {
	Method      string `json:"method"`
	Route       string `json:"route"`
	Price       string `json:"price"`
	PayTo       string `json:"pay_to"`
	Network     string `json:"network"`
	Description string `json:"description"`
}

func (g Gate) writeError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Success:   false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Error: errorBody{
			Status:  status,
			Code:    code,
			Message: message,
		},
	})
}

// writeChallenge answers 402 with the requirement so the client can pay
// and retry the same request with a proof attached.
func (g Gate) writeChallenge(w http.ResponseWriter, requirement Requirement) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusPaymentRequired)
	_ = json.NewEncoder(w).Encode(challengeEnvelope{
		Success:   false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Error: errorBody{
			Status:  http.StatusPaymentRequired,
			Code:    "PAYMENT_REQUIRED",
			Message: "payment is required for this action",
		},
		Accepts: []requirementTO{{
			Method:      requirement.Method,
			Route:       requirement.Route,
			Price:       requirement.Price.String(),
			PayTo:       requirement.PayTo,
			Network:     requirement.Network,
			Description: requirement.Config.Description,
		}},
	})
}
