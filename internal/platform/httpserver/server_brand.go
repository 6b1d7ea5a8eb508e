package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	branderrors "adx402/contexts/exchange/brand-service/domain/errors"
	brandhttp "adx402/contexts/exchange/brand-service/transport/http"
	"adx402/internal/platform/payment"
)

// Creatives above this size are rejected before buffering.
const maxCreativeBytes = 10 << 20

func (s *Server) handleUploadAd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCreativeBytes); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "request must be multipart/form-data")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxCreativeBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unable to read image file")
		return
	}
	if len(data) > maxCreativeBytes {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "image file exceeds the size limit")
		return
	}

	wallet := payment.WalletFromRequest(r)
	if wallet == "" {
		wallet = r.FormValue("wallet")
	}

	req := brandhttp.UploadAdRequest{
		Wallet:      wallet,
		BrandName:   r.FormValue("brand_name"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		TargetURL:   r.FormValue("target_url"),
		Tags:        splitTags(r.FormValue("tags")),
		AspectRatio: r.FormValue("aspect_ratio"),
		StartTime:   r.FormValue("start_time"),
		EndTime:     r.FormValue("end_time"),
	}

	resp, err := s.brand.Handler.UploadAdHandler(r.Context(), req)
	if err != nil {
		writeBrandError(w, err)
		return
	}
	writeData(w, http.StatusCreated, resp)
}

func (s *Server) handleCreditAd(w http.ResponseWriter, r *http.Request) {
	var req brandhttp.CreditAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "request body must be valid JSON")
		return
	}
	resp, err := s.brand.Handler.CreditAdHandler(r.Context(), req)
	if err != nil {
		writeBrandError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp)
}

func (s *Server) handleListAds(w http.ResponseWriter, r *http.Request) {
	resp, err := s.brand.Handler.ListAdsHandler(r.Context(), r.URL.Query().Get("wallet"))
	if err != nil {
		writeBrandError(w, err)
		return
	}
	writeData(w, http.StatusOK, resp)
}

func writeBrandError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, branderrors.ErrBrandNotFound):
		writeError(w, http.StatusNotFound, "BRAND_NOT_FOUND", err.Error())
	case errors.Is(err, branderrors.ErrAdNotFound):
		writeError(w, http.StatusNotFound, "AD_NOT_FOUND", err.Error())
	case errors.Is(err, branderrors.ErrAdNotOwned):
		writeError(w, http.StatusForbidden, "AD_NOT_OWNED", err.Error())
	case errors.Is(err, branderrors.ErrBrandNotActive):
		writeError(w, http.StatusForbidden, "BRAND_NOT_ACTIVE", err.Error())
	case errors.Is(err, branderrors.ErrInvalidCredit):
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	case errors.Is(err, branderrors.ErrCreativeRejected):
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	case errors.Is(err, branderrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	case errors.Is(err, branderrors.ErrUploadFailed):
		writeError(w, http.StatusBadGateway, "UPSTREAM_FAILURE", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
