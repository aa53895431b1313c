package flow

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
)

type Handler struct {
	svc *flow.Service
}

func NewHandler(svc *flow.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createFlowRequest struct {
	Type              flow.Type       `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	FromAssetID       *uuid.UUID      `json:"from_asset_id,omitempty"`
	ToAssetID         *uuid.UUID      `json:"to_asset_id,omitempty"`
	DebtID            *uuid.UUID      `json:"debt_id,omitempty"`
	Category          string          `json:"category,omitempty"`
	Date              time.Time       `json:"date"`
	Description       string          `json:"description,omitempty"`
	ExpenseCategoryID *uuid.UUID      `json:"flow_expense_category_id,omitempty"`
	Metadata          flow.Metadata   `json:"metadata,omitempty"`
	NeedsReview       bool            `json:"needs_review,omitempty"`
	Frequency         flow.Frequency  `json:"recurring_frequency,omitempty"`
	AdjustBalances    bool            `json:"adjust_balances,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.ScopeFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.svc.Create(r.Context(), owner, flow.CreateParams{
		Type:              req.Type,
		Amount:            req.Amount,
		Currency:          req.Currency,
		FromAssetID:       req.FromAssetID,
		ToAssetID:         req.ToAssetID,
		DebtID:            req.DebtID,
		Category:          req.Category,
		Date:              req.Date,
		Description:       req.Description,
		ExpenseCategoryID: req.ExpenseCategoryID,
		Metadata:          req.Metadata,
		NeedsReview:       req.NeedsReview,
		Frequency:         req.Frequency,
		AdjustBalances:    req.AdjustBalances,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.ScopeFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filter := flow.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(flow.Type(s))
	}

	if s := r.URL.Query().Get("needs_review"); s != "" {
		filter.NeedsReview = new(s == "true")
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	flows, err := h.svc.List(r.Context(), owner, filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(flows)); err != nil {
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

	f, err := h.svc.Get(r.Context(), owner, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateFlowRequest struct {
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Date           *time.Time       `json:"date,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Metadata       flow.Metadata    `json:"metadata,omitempty"`
	NeedsReview    *bool            `json:"needs_review,omitempty"`
	AdjustBalances bool             `json:"adjust_balances,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
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

	var req updateFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.svc.Update(r.Context(), owner, id, flow.UpdateParams{
		Amount:         req.Amount,
		Category:       req.Category,
		Date:           req.Date,
		Description:    req.Description,
		Metadata:       req.Metadata,
		NeedsReview:    req.NeedsReview,
		AdjustBalances: req.AdjustBalances,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Delete(r.Context(), owner, id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	var validationErr *flow.ValidationError
	if errors.As(err, &validationErr) {
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
		return
	}

	var refErr *flow.ReferenceError
	if errors.As(err, &refErr) {
		http.Error(w, refErr.Error(), http.StatusBadRequest)
		return
	}

	if errors.Is(err, flow.ErrNotFound) {
		http.Error(w, "flow not found", http.StatusNotFound)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}
