package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/swetha221234/smart-rural-connect/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ComplaintRegistrar interface {
	Register(ctx context.Context, req domain.RegisterComplaintRequest) (*domain.Complaint, error)
	Track(ctx context.Context, id string) (*domain.Complaint, error)
}

type Handler struct {
	logger    *slog.Logger
	Registrar ComplaintRegistrar
}

func NewHandler(logger *slog.Logger, registrar ComplaintRegistrar) *Handler {
	return &Handler{
		logger:    logger,
		Registrar: registrar,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) PublicComplaintRegister(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PublicComplaintRegister", slog.String("remote", r.RemoteAddr))

	var req domain.RegisterComplaintRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	c, err := h.Registrar.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("complaint registered",
		slog.String("id", c.ID),
		slog.String("category", string(c.Category)),
		slog.String("priority", string(c.Priority)),
	)
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) PublicComplaintTrack(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PublicComplaintTrack", slog.String("remote", r.RemoteAddr))

	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	c, err := h.Registrar.Track(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}
