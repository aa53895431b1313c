package schedule

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
	"github.com/MrJamesThe3rd/flowy/internal/http/auth"
	"github.com/MrJamesThe3rd/flowy/internal/schedule"
)

type Handler struct {
	engine *schedule.Engine
}

func NewHandler(engine *schedule.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/deactivate", h.setActive(false))
	r.Post("/{id}/activate", h.setActive(true))
	r.Post("/process", h.process)
}

type scheduleResponse struct {
	ID           uuid.UUID       `json:"id"`
	SourceFlowID *uuid.UUID      `json:"source_flow_id,omitempty"`
	Frequency    flow.Frequency  `json:"frequency"`
	NextRunDate  time.Time       `json:"next_run_date"`
	LastRunDate  *time.Time      `json:"last_run_date,omitempty"`
	IsActive     bool            `json:"is_active"`
	Type         flow.Type       `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toResponse(s *schedule.Schedule) scheduleResponse {
	return scheduleResponse{
		ID:           s.ID,
		SourceFlowID: s.SourceFlowID,
		Frequency:    s.Frequency,
		NextRunDate:  s.NextRunDate,
		LastRunDate:  s.LastRunDate,
		IsActive:     s.IsActive,
		Type:         s.Template.Type,
		Amount:       s.Template.Amount,
		Currency:     s.Template.Currency,
		Description:  s.Template.Description,
		CreatedAt:    s.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.ScopeFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	scheds, err := h.engine.List(r.Context(), owner, activeOnly)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]scheduleResponse, len(scheds))
	for i, s := range scheds {
		resp[i] = toResponse(s)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.ScopeFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s, err := h.engine.Get(r.Context(), owner, id)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			http.Error(w, "schedule not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(s)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) setActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := auth.ScopeFrom(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		if active {
			err = h.engine.Activate(r.Context(), owner, id)
		} else {
			err = h.engine.Deactivate(r.Context(), owner, id)
		}

		if err != nil {
			if errors.Is(err, schedule.ErrNotFound) {
				http.Error(w, "schedule not found", http.StatusNotFound)
				return
			}

			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// process runs the due schedules for the caller's scope immediately,
// instead of waiting for the background runner.
func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.ScopeFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.engine.ProcessDue(r.Context(), owner, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
