package public

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"cadizaccesible/internal/domain"
	"cadizaccesible/internal/middleware"
	"cadizaccesible/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Incidents interface {
	Create(ctx context.Context, creatorEmail string, req domain.CreateIncidentRequest) (*domain.Incident, error)
	GetByCreator(ctx context.Context, email string) ([]*domain.Incident, error)
	GetByID(ctx context.Context, id string) (*domain.Incident, error)
	Delete(ctx context.Context, id string) error
}

type Accounts interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.Account, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Account, error)
}

type Handler struct {
	logger    *slog.Logger
	Incidents Incidents
	Accounts  Accounts
}

func NewHandler(logger *slog.Logger, incidents Incidents, accounts Accounts) *Handler {
	return &Handler{
		logger:    logger,
		Incidents: incidents,
		Accounts:  accounts,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RegisterRequest
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

	acc, err := h.Accounts.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("account registered", slog.String("email", acc.Email))
	h.writeJSON(w, http.StatusCreated, acc)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	acc, err := h.Accounts.Login(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, acc)
}

func (h *Handler) IncidentCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateIncidentRequest
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

	email := middleware.SessionEmail(r.Context())

	inc, err := h.Incidents.Create(r.Context(), email, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident created", slog.String("id", inc.ID), slog.String("creator", email))
	h.writeJSON(w, http.StatusCreated, inc)
}

// IncidentListMine returns the caller's own reports, newest first.
func (h *Handler) IncidentListMine(w http.ResponseWriter, r *http.Request) {
	email := middleware.SessionEmail(r.Context())

	incidents, err := h.Incidents.GetByCreator(r.Context(), email)
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

	// Citizens only see their own reports; admins use the admin surface.
	if middleware.SessionRole(r.Context()) != domain.RoleAdmin &&
		inc.CreatorEmail != middleware.SessionEmail(r.Context()) {
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}

	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) IncidentDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id := chi.URLParam(r, "id")

	inc, err := h.Incidents.GetByID(r.Context(), id)
	if err == nil {
		if middleware.SessionRole(r.Context()) != domain.RoleAdmin &&
			inc.CreatorEmail != middleware.SessionEmail(r.Context()) {
			h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
			return
		}
	}

	// Delete of an already-absent id is still a success.
	if err := h.Incidents.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident deleted", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
