// Package api is the HTTP boundary: routes, JSON encoding and the
// middleware chain around the goa muxer.
package api

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"

	"consultsite/internal/config"
	"consultsite/internal/domain"
	"consultsite/internal/metrics"
	"consultsite/internal/services"
)

const maxBodyBytes = 1 << 20

// InquirySubmitter runs the inquiry write path
type InquirySubmitter interface {
	Submit(ctx context.Context, p *services.InquiryPayload) (string, error)
}

// Catalogue serves static marketing content
type Catalogue interface {
	Services() []domain.Service
	Highlights() []domain.Highlight
}

// Health serves liveness and diagnostics
type Health interface {
	Root() services.Message
	Hello() services.Message
	Diagnose(ctx context.Context) services.Diagnostics
}

// Server holds the HTTP handlers
type Server struct {
	inquiries InquirySubmitter
	catalogue Catalogue
	health    Health
}

// NewServer creates the HTTP server handlers
func NewServer(inquiries InquirySubmitter, catalogue Catalogue, health Health) *Server {
	return &Server{
		inquiries: inquiries,
		catalogue: catalogue,
		health:    health,
	}
}

// Mount registers every route on mux
func (s *Server) Mount(mux goahttp.Muxer) {
	mux.Handle(http.MethodGet, "/", s.root)
	mux.Handle(http.MethodGet, "/api/hello", s.hello)
	mux.Handle(http.MethodGet, "/api/services", s.listServices)
	mux.Handle(http.MethodGet, "/api/highlights", s.listHighlights)
	mux.Handle(http.MethodPost, "/api/inquiries", s.createInquiry)
	mux.Handle(http.MethodGet, "/test", s.diagnostics)
	mux.Handle(http.MethodGet, "/metrics", promhttp.Handler().ServeHTTP)
}

// Handler builds the complete handler:
// security headers -> CORS -> request id -> logging -> metrics -> mux
func (s *Server) Handler(cfg *config.Config) http.Handler {
	mux := goahttp.NewMuxer()
	s.Mount(mux)

	var h http.Handler = mux
	h = metrics.PrometheusMiddleware(h)
	h = requestLogging(h)
	h = middleware.RequestID()(h)
	h = middleware.PopulateRequestContext()(h)
	h = cors(h, &cfg.CORS)
	h = securityHeaders(h, cfg)
	return h
}
