package api

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	goahttp "goa.design/goa/v3/http"

	"consultsite/internal/services"
	apperrors "consultsite/pkg/errors"
)

// SubmitResult is the body of a successful inquiry submission
type SubmitResult struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// ValidationDetail is one entry of a 422 response
type ValidationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationResponse is the body of a 422 response
type ValidationResponse struct {
	Detail []ValidationDetail `json:"detail"`
}

// ErrorResponse is the body of a 500 response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	encode(r.Context(), w, http.StatusOK, s.health.Root())
}

func (s *Server) hello(w http.ResponseWriter, r *http.Request) {
	encode(r.Context(), w, http.StatusOK, s.health.Hello())
}

func (s *Server) listServices(w http.ResponseWriter, r *http.Request) {
	encode(r.Context(), w, http.StatusOK, s.catalogue.Services())
}

func (s *Server) listHighlights(w http.ResponseWriter, r *http.Request) {
	encode(r.Context(), w, http.StatusOK, s.catalogue.Highlights())
}

func (s *Server) diagnostics(w http.ResponseWriter, r *http.Request) {
	encode(r.Context(), w, http.StatusOK, s.health.Diagnose(r.Context()))
}

func (s *Server) createInquiry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var payload services.InquiryPayload
	if err := goahttp.RequestDecoder(r).Decode(&payload); err != nil {
		msg := "invalid JSON body"
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "request body too large"
		}
		encode(ctx, w, http.StatusUnprocessableEntity, ValidationResponse{
			Detail: []ValidationDetail{{Loc: []string{"body"}, Msg: msg, Type: "json_invalid"}},
		})
		return
	}

	id, err := s.inquiries.Submit(ctx, &payload)
	if err != nil {
		encodeError(ctx, w, err)
		return
	}

	encode(ctx, w, http.StatusOK, SubmitResult{Status: "ok", ID: id})
}

// encodeError maps the service error taxonomy onto status codes
func encodeError(ctx context.Context, w http.ResponseWriter, err error) {
	if verr, ok := services.AsValidationError(err); ok {
		details := make([]ValidationDetail, len(verr.Fields))
		for i, f := range verr.Fields {
			details[i] = ValidationDetail{Loc: []string{"body", f.Field}, Msg: f.Reason, Type: f.Rule}
		}
		encode(ctx, w, http.StatusUnprocessableEntity, ValidationResponse{Detail: details})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		encode(ctx, w, http.StatusInternalServerError, ErrorResponse{Detail: appErr.Message})
		return
	}

	log.Printf("[ERROR] unexpected error: %v", err)
	encode(ctx, w, http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
}

func encode(ctx context.Context, w http.ResponseWriter, status int, v any) {
	enc := goahttp.ResponseEncoder(ctx, w)
	w.WriteHeader(status)
	if err := enc.Encode(v); err != nil {
		log.Printf("[ERROR] failed to encode response: %v", err)
	}
}
