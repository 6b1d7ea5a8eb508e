package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/http/httptest"
	"testing"
	"time"

	brandservice "adx402/contexts/exchange/brand-service"
	publisherservice "adx402/contexts/exchange/publisher-service"
	publisherentities "adx402/contexts/exchange/publisher-service/domain/entities"
	settlementservice "adx402/contexts/finance/settlement-service"
	"adx402/internal/platform/payment"

	"github.com/shopspring/decimal"
)

func newTestServer(seedAds []publisherentities.CatalogAd) *Server {
	publisherModule := publisherservice.NewInMemoryModule(seedAds, nil)
	brandModule := brandservice.NewInMemoryModule(nil, nil)
	settlementModule := settlementservice.NewInMemoryModule(nil)

	gate := payment.Gate{
		PayTo:   "0xmaster",
		Network: "base-sepolia",
		Quote: func(_ context.Context, _ string) (payment.Quote, error) {
			return payment.Quote{Price: decimal.RequireFromString("0.001"), Description: "test"}, nil
		},
		Verifier: payment.DevVerifier{},
	}

	return New(publisherModule, brandModule, settlementModule, gate, nil, nil, ":0")
}

func doJSON(t *testing.T, server *Server, method string, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success   bool            `json:"success"`
		Timestamp string          `json:"timestamp"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	if !envelope.Success {
		t.Fatalf("expected success envelope, body %s", rec.Body.String())
	}
	if envelope.Timestamp == "" {
		t.Fatalf("envelope must carry a timestamp")
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v (body %s)", err, rec.Body.String())
	}
	return envelope.Error.Code
}

func TestServeAndTrackUntilCreditsRunOut(t *testing.T) {
	const balance = 2
	server := newTestServer([]publisherentities.CatalogAd{{
		AdID:             "ad-1",
		BrandID:          "brand-1",
		ImageURL:         "https://cdn/ad-1",
		TargetURL:        "https://example.com",
		CreditBalance:    balance,
		ModerationStatus: publisherentities.ModerationStatusApproved,
		CreatedAt:        time.Now().UTC(),
	}})

	rec := doJSON(t, server, http.MethodPost, "/publisher/create", map[string]any{
		"wallet_address": "0xpub",
		"domain":         "news.example",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create publisher: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, server, http.MethodPost, "/publisher/create-slot", map[string]any{
		"wallet":  "0xpub",
		"slot_id": "sidebar",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create slot: %d %s", rec.Code, rec.Body.String())
	}

	for i := 0; i < balance; i++ {
		rec = doJSON(t, server, http.MethodGet, "/publisher/ad?wallet=0xpub&slot_id=sidebar", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("get ad %d: %d %s", i, rec.Code, rec.Body.String())
		}
		var adResp struct {
			Ad *struct {
				ID string `json:"id"`
			} `json:"ad"`
		}
		decodeData(t, rec, &adResp)
		if adResp.Ad == nil || adResp.Ad.ID != "ad-1" {
			t.Fatalf("expected ad-1 on round %d, got %+v", i, adResp.Ad)
		}

		rec = doJSON(t, server, http.MethodPost, "/publisher/track-impression", map[string]any{
			"wallet":  "0xpub",
			"slot_id": "sidebar",
			"ad_id":   "ad-1",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("track impression %d: %d %s", i, rec.Code, rec.Body.String())
		}
	}

	// Credits drained: no ad served, further impressions refused.
	rec = doJSON(t, server, http.MethodGet, "/publisher/ad?wallet=0xpub&slot_id=sidebar", nil)
	var emptyResp struct {
		Ad *struct{} `json:"ad"`
	}
	decodeData(t, rec, &emptyResp)
	if emptyResp.Ad != nil {
		t.Fatalf("expected no ad after credits drained")
	}

	rec = doJSON(t, server, http.MethodPost, "/publisher/track-impression", map[string]any{
		"wallet":  "0xpub",
		"slot_id": "sidebar",
		"ad_id":   "ad-1",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on drained ad, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "INSUFFICIENT_CREDITS" {
		t.Fatalf("expected INSUFFICIENT_CREDITS, got %s", code)
	}
}

func TestClickUnknownImpressionIs404(t *testing.T) {
	server := newTestServer(nil)

	rec := doJSON(t, server, http.MethodPost, "/publisher/track-click", map[string]any{
		"impression_id": "missing",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "IMPRESSION_NOT_FOUND" {
		t.Fatalf("expected IMPRESSION_NOT_FOUND, got %s", code)
	}
}

func TestDuplicatePublisherWalletIs409(t *testing.T) {
	server := newTestServer(nil)

	rec := doJSON(t, server, http.MethodPost, "/publisher/create", map[string]any{
		"wallet_address": "0xpub",
		"domain":         "one.example",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("first create: %d", rec.Code)
	}
	rec = doJSON(t, server, http.MethodPost, "/publisher/create", map[string]any{
		"wallet_address": "0xpub",
		"domain":         "two.example",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "PUBLISHER_ALREADY_EXISTS" {
		t.Fatalf("expected PUBLISHER_ALREADY_EXISTS, got %s", code)
	}
}

func TestFourthSlotIs400AndLeavesThree(t *testing.T) {
	server := newTestServer(nil)

	rec := doJSON(t, server, http.MethodPost, "/publisher/create", map[string]any{
		"wallet_address": "0xpub",
		"domain":         "news.example",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create publisher: %d", rec.Code)
	}

	for i := 0; i < 3; i++ {
		rec = doJSON(t, server, http.MethodPost, "/publisher/create-slot", map[string]any{
			"wallet":  "0xpub",
			"slot_id": fmt.Sprintf("slot-%d", i),
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("slot %d: %d %s", i, rec.Code, rec.Body.String())
		}
	}

	rec = doJSON(t, server, http.MethodPost, "/publisher/create-slot", map[string]any{
		"wallet":  "0xpub",
		"slot_id": "slot-overflow",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on fourth slot, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "AD_SLOT_LIMIT_EXCEEDED" {
		t.Fatalf("expected AD_SLOT_LIMIT_EXCEEDED, got %s", code)
	}

	rec = doJSON(t, server, http.MethodGet, "/publisher/slots?wallet=0xpub", nil)
	var listResp struct {
		Items []struct {
			SlotID string `json:"slot_id"`
		} `json:"items"`
	}
	decodeData(t, rec, &listResp)
	if len(listResp.Items) != 3 {
		t.Fatalf("expected exactly three slots to survive, got %d", len(listResp.Items))
	}
}

func TestBrandUploadChallengedThenAccepted(t *testing.T) {
	server := newTestServer(nil)

	buildUpload := func() (*bytes.Buffer, string) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, _ := writer.CreatePart(textproto.MIMEHeader{
			"Content-Disposition": {`form-data; name="image"; filename="banner.png"`},
			"Content-Type":        {"image/png"},
		})
		_, _ = part.Write([]byte{0x89, 0x50, 0x4e, 0x47})
		_ = writer.WriteField("target_url", "https://example.com/landing")
		_ = writer.WriteField("tags", "crypto,defi")
		_ = writer.WriteField("aspect_ratio", "1:1")
		_ = writer.Close()
		return &body, writer.FormDataContentType()
	}

	// No payment proof: gate answers 402 with the requirement.
	body, contentType := buildUpload()
	req := httptest.NewRequest(http.MethodPost, "/brand/ad", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(payment.WalletHeader, "0xbrand")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402 challenge, got %d %s", rec.Code, rec.Body.String())
	}

	// With proof: the upload lands, pending at balance 0.
	body, contentType = buildUpload()
	req = httptest.NewRequest(http.MethodPost, "/brand/ad", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(payment.WalletHeader, "0xbrand")
	req.Header.Set(payment.PaymentHeader, "proof")
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 after payment, got %d %s", rec.Code, rec.Body.String())
	}

	var adResp struct {
		ModerationStatus string `json:"moderation_status"`
		CreditBalance    int    `json:"credit_balance"`
	}
	decodeData(t, rec, &adResp)
	if adResp.ModerationStatus != "pending" || adResp.CreditBalance != 0 {
		t.Fatalf("uploaded ad must be pending at balance 0, got %+v", adResp)
	}

	// Missing wallet entirely: 400 before any quote or handler work.
	body, contentType = buildUpload()
	req = httptest.NewRequest(http.MethodPost, "/brand/ad", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without wallet, got %d", rec.Code)
	}
}
