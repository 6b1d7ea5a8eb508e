package httpserver

import (
	"encoding/json"
	"net/http"
	"time"
)

// Every response carries the same envelope: success flag, RFC3339 UTC
// timestamp, and either data or a machine-readable error.
type dataEnvelope struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
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

func writeData(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dataEnvelope{
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      payload,
	})
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
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
