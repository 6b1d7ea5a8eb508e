package httpserver

import (
	"log/slog"
	"net/http"
	"strings"

	brandservice "adx402/contexts/exchange/brand-service"
	publisherservice "adx402/contexts/exchange/publisher-service"
	settlementservice "adx402/contexts/finance/settlement-service"
	"adx402/internal/platform/objectstore"
	"adx402/internal/platform/payment"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "adx402/internal/platform/httpserver/docs"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	publisher  publisherservice.Module
	brand      brandservice.Module
	settlement settlementservice.Module
	gate       payment.Gate
	creatives  *objectstore.Store
}

func New(
	publisherModule publisherservice.Module,
	brandModule brandservice.Module,
	settlementModule settlementservice.Module,
	gate payment.Gate,
	creatives *objectstore.Store,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		publisher:  publisherModule,
		brand:      brandModule,
		settlement: settlementModule,
		gate:       gate,
		creatives:  creatives,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routing mux; tests drive it through httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /publisher/ad", s.handleGetAd)
	s.mux.HandleFunc("POST /publisher/track-impression", s.handleTrackImpression)
	s.mux.HandleFunc("POST /publisher/track-click", s.handleTrackClick)
	s.mux.HandleFunc("POST /publisher/create", s.handleCreatePublisher)
	s.mux.HandleFunc("POST /publisher/create-slot", s.handleCreateAdSlot)
	s.mux.HandleFunc("GET /publisher/profile", s.handleGetPublisher)
	s.mux.HandleFunc("GET /publisher/slots", s.handleListAdSlots)

	// The upload route mutates state against payment, so the gate wraps it;
	// the rest of the brand surface is free.
	s.mux.Handle("POST /brand/ad", s.gate.Wrap(http.MethodPost, "/brand/ad", http.HandlerFunc(s.handleUploadAd)))
	s.mux.HandleFunc("POST /brand/credit", s.handleCreditAd)
	s.mux.HandleFunc("GET /brand/ads", s.handleListAds)

	s.mux.HandleFunc("POST /settlements/compute", s.handleComputeSettlement)
	s.mux.HandleFunc("GET /settlements", s.handleListSettlements)

	if s.creatives != nil {
		s.mux.HandleFunc("GET /creatives/", s.handleGetCreative)
	}
}

func (s *Server) handleGetCreative(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/creatives/")
	data, contentType, found := s.creatives.Get("creatives/" + key)
	if !found {
		writeError(w, http.StatusNotFound, "CREATIVE_NOT_FOUND", "creative not found")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
