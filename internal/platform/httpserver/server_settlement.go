package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	settlementerrors "adx402/contexts/finance/settlement-service/domain/errors"
	settlementhttp "adx402/contexts/finance/settlement-service/transport/http"
)

func (s *Server) handleComputeSettlement(w http.ResponseWriter, r *http.Request) {
	var req settlementhttp.ComputeSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "request body must be valid JSON")
		return
	}
	resp, err := s.settlement.Handler.ComputeSettlementHandler(r.Context(), req)
	if err != nil {
		writeSettlementError(w, err)
		return
	}
	writeData(w, http.StatusCreated, resp)
}

func (s *Server) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	resp, err := s.settlement.Handler.ListSettlementsHandler(r.Context(), r.URL.Query().Get("publisher_id"))
	if err != nil {
		writeSettlementError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp)
}

func writeSettlementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, settlementerrors.ErrPublisherNotFound):
		writeError(w, http.StatusNotFound, "PUBLISHER_NOT_FOUND", err.Error())
	case errors.Is(err, settlementerrors.ErrSettlementNotFound):
		writeError(w, http.StatusNotFound, "SETTLEMENT_NOT_FOUND", err.Error())
	case errors.Is(err, settlementerrors.ErrInvalidPeriod):
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	case errors.Is(err, settlementerrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
