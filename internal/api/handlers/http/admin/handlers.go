package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"cadizaccesible/internal/domain"
	"cadizaccesible/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Incidents interface {
	GetAll(ctx context.Context) ([]*domain.Incident, error)
	GetByID(ctx context.Context, id string) (*domain.Incident, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, remark string) (*domain.Incident, error)
	Delete(ctx context.Context, id string) error
}

type Stats interface {
	Summary(ctx context.Context) (*domain.StatsSummary, error)
	TotalByStatus(ctx context.Context, status domain.Status) (int64, error)
	TotalBySeverity(ctx context.Context, severity domain.Severity) (int64, error)
}

type Handler struct {
	logger    *slog.Logger
	Incidents Incidents
	Stats     Stats
}

func NewHandler(logger *slog.Logger, incidents Incidents, stats Stats) *Handler {
	return &Handler{
		logger:    logger,
		Incidents: incidents,
		Stats:     stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// IncidentList returns the whole triage inbox, newest first.
func (h *Handler) IncidentList(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.Incidents.GetAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"incidents": incidents,
		"total":     len(incidents),
	})
}

func (h *Handler) IncidentGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	inc, err := h.Incidents.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, inc)
}

// IncidentUpdateStatus applies a workflow transition and returns the
// re-read record.
func (h *Handler) IncidentUpdateStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id := chi.URLParam(r, "id")

	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	inc, err := h.Incidents.UpdateStatus(r.Context(), id, req.Status, req.Remark)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("status updated",
		slog.String("id", id),
		slog.String("status", string(req.Status)),
	)
	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) IncidentDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id := chi.URLParam(r, "id")

	if err := h.Incidents.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident deleted", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// StatsSummary serves the dashboard. With ?status= or ?severity= it
// returns the single filtered count instead of the full snapshot.
func (h *Handler) StatsSummary(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			l.Warn("invalid status filter", slog.String("status", raw))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown status"})
			return
		}
		total, err := h.Stats.TotalByStatus(r.Context(), status)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]any{"status": status, "total": total})
		return
	}

	if raw := r.URL.Query().Get("severity"); raw != "" {
		severity, err := domain.ParseSeverity(raw)
		if err != nil {
			l.Warn("invalid severity filter", slog.String("severity", raw))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown severity"})
			return
		}
		total, err := h.Stats.TotalBySeverity(r.Context(), severity)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]any{"severity": severity, "total": total})
		return
	}

	summary, err := h.Stats.Summary(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, summary)
}
