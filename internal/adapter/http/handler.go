package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adloom/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it decodes requests, attaches the session principal and maps the error
// taxonomy onto status codes. Routes are registered on a chi.Router.
type Handler struct {
	adgen     port.AdGenUseCase
	sim       port.SimulationUseCase
	billing   port.BillingUseCase
	dashboard port.DashboardUseCase
	content   port.ContentUseCase
	hub       *SSEHub
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	adgen port.AdGenUseCase,
	sim port.SimulationUseCase,
	billing port.BillingUseCase,
	dashboard port.DashboardUseCase,
	content port.ContentUseCase,
	hub *SSEHub,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		adgen:     adgen,
		sim:       sim,
		billing:   billing,
		dashboard: dashboard,
		content:   content,
		hub:       hub,
		logger:    logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ads/generate", h.handleGenerateAds)
		r.Post("/ads/compliance", h.handleCompliance)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)
			r.Post("/campaigns", h.handleLaunchCampaign)
			r.Get("/campaigns", h.handleListCampaigns)
			r.Get("/campaigns/history", h.handleCampaignHistory)
			r.Get("/campaigns/stream", h.handleCampaignStream)
			r.Get("/dashboard", h.handleDashboard)
			r.Get("/reports/campaigns.xlsx", h.handleCampaignReport)
		})

		r.Post("/billing/withdrawals", h.handleRequestWithdrawal)
		r.Get("/billing/withdrawals", h.handleListWithdrawals)
		r.Get("/billing/transactions", h.handleListTransactions)

		r.Post("/articles/generate", h.handleGenerateArticle)
		r.Get("/articles", h.handleListArticles)
		r.Get("/articles/{slug}", h.handleGetArticle)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type ctxKey int

const sessionKey ctxKey = 0

// requireSession extracts the X-Session-ID header identifying the browser
// session. There is no authentication in this product; the session id
// scopes the simulated campaigns, nothing more.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := r.Header.Get("X-Session-ID")
		if sid == "" {
			http.Error(w, "missing X-Session-ID header", http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sid)))
	})
}

func sessionID(r *http.Request) string {
	sid, _ := r.Context().Value(sessionKey).(string)
	return sid
}

// writeJSON encodes v with the proper content type. Encoding failures are
// logged; the status line is already gone by then.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Validation errors
// carry their field messages; everything unexpected is a logged 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *port.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make(map[string]string, len(verr.Fields))
		for _, f := range verr.Fields {
			fields[f.Field] = f.Message
		}
		h.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": fields,
		})
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, port.ErrInsufficientFunds), errors.Is(err, port.ErrInsufficientEarnings):
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
