package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/swetha221234/smart-rural-connect/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ComplaintAdmin interface {
	Transition(ctx context.Context, id string, target domain.Status) (*domain.Complaint, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Complaint, error)
}

type ReportGetter interface {
	Summarize(ctx context.Context, filter domain.ListFilter) (*domain.Report, error)
}

type Authenticator interface {
	Authenticate(password string) bool
}

type Handler struct {
	logger *slog.Logger
	Admin  ComplaintAdmin
	Report ReportGetter
	Auth   Authenticator
}

func NewHandler(logger *slog.Logger, admin ComplaintAdmin, report ReportGetter, auth Authenticator) *Handler {
	return &Handler{
		logger: logger,
		Admin:  admin,
		Report: report,
		Auth:   auth,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminComplaintList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminComplaintList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	filter := domain.ListFilter{
		Status:   domain.Status(r.URL.Query().Get("status")),
		Category: domain.Category(r.URL.Query().Get("category")),
	}

	complaints, err := h.Admin.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("complaints listed", slog.Int("count", len(complaints)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"complaints": complaints,
		"total":      len(complaints),
	})
}

func (h *Handler) AdminComplaintTransition(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminComplaintTransition", slog.String("remote", r.RemoteAddr))

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	c, err := h.Admin.Transition(r.Context(), id, req.Status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("complaint transitioned",
		slog.String("id", id),
		slog.String("status", string(req.Status)),
	)
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) AdminReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminReport", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	filter := domain.ListFilter{
		Status:   domain.Status(r.URL.Query().Get("status")),
		Category: domain.Category(r.URL.Query().Get("category")),
	}

	report, err := h.Report.Summarize(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminLogin", slog.String("remote", r.RemoteAddr))

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if !h.Auth.Authenticate(req.Password) {
		l.Warn("admin login rejected", slog.String("remote", r.RemoteAddr))
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
