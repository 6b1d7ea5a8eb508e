package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	publishererrors "adx402/contexts/exchange/publisher-service/domain/errors"
	publisherhttp "adx402/contexts/exchange/publisher-service/transport/http"
)

func (s *Server) handleGetAd(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.publisher.Handler.GetAdHandler(r.Context(), query.Get("wallet"), query.Get("slot_id"))
	if err != nil {
		writePublisherError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp)
}

func (s *Server) handleTrackImpression(w http.ResponseWriter, r *http.Request) {
	var req publisherhttp.TrackImpressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "request body must be valid JSON")
		return
	}
	resp, err := s.publisher.Handler.TrackImpressionHandler(r.Context(), req)
	if err != nil {
		writePublisherError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp)
}

func (s *Server) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	var req publisherhttp.TrackClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "request body must be valid JSON")
		return
	}
	resp, err := s.publisher.Handler.TrackClickHandler(r.Context(), req)
	if err != nil {
		writePublisherError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePublisher(w http.ResponseWriter, r *http.Request) {
	var req publisherhttp.CreatePublisherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "request body must be valid JSON")
		return
	}
	resp, err := s.publisher.Handler.CreatePublisherHandler(r.Context(), req)
	if err != nil {
		writePublisherError(w, err)
		return
	}
	writeData(w, http.StatusCreated, resp)
}

func (s *Server) handleCreateAdSlot(w http.ResponseWriter, r *http.Request) {
	var req publisherhttp.CreateAdSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "request body must be valid JSON")
		return
	}
	resp, err := s.publisher.Handler.CreateAdSlotHandler(r.Context(), req)
	if err != nil {
		writePublisherError(w, err)
		return
	}
	writeData(w, http.StatusCreated, resp)
}

func (s *Server) handleGetPublisher(w http.ResponseWriter, r *http.Request) {
	resp, err := s.publisher.Handler.GetPublisherHandler(r.Context(), r.URL.Query().Get("wallet"))
	if err != nil {
		writePublisherError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp)
}

func (s *Server) handleListAdSlots(w http.ResponseWriter, r *http.Request) {
	resp, err := s.publisher.Handler.ListAdSlotsHandler(r.Context(), r.URL.Query().Get("wallet"))
	if err != nil {
		writePublisherError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp)
}

func writePublisherError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, publishererrors.ErrPublisherNotFound):
		writeError(w, http.StatusNotFound, "PUBLISHER_NOT_FOUND", err.Error())
	case errors.Is(err, publishererrors.ErrAdSlotNotFound):
		writeError(w, http.StatusNotFound, "AD_SLOT_NOT_FOUND", err.Error())
	case errors.Is(err, publishererrors.ErrAdNotFound):
		writeError(w, http.StatusNotFound, "AD_NOT_FOUND", err.Error())
	case errors.Is(err, publishererrors.ErrImpressionNotFound):
		writeError(w, http.StatusNotFound, "IMPRESSION_NOT_FOUND", err.Error())
	case errors.Is(err, publishererrors.ErrPublisherAlreadyExists):
		writeError(w, http.StatusConflict, "PUBLISHER_ALREADY_EXISTS", err.Error())
	case errors.Is(err, publishererrors.ErrDomainAlreadyExists):
		writeError(w, http.StatusConflict, "DOMAIN_ALREADY_EXISTS", err.Error())
	case errors.Is(err, publishererrors.ErrAdSlotAlreadyExists):
		writeError(w, http.StatusConflict, "AD_SLOT_ALREADY_EXISTS", err.Error())
	case errors.Is(err, publishererrors.ErrAdSlotLimitExceeded):
		writeError(w, http.StatusBadRequest, "AD_SLOT_LIMIT_EXCEEDED", err.Error())
	case errors.Is(err, publishererrors.ErrInsufficientCredits):
		writeError(w, http.StatusBadRequest, "INSUFFICIENT_CREDITS", err.Error())
	case errors.Is(err, publishererrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
