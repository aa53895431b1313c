package portfolio

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/flowy/internal/asset"
	assetStore "github.com/MrJamesThe3rd/flowy/internal/asset/store"
	"github.com/MrJamesThe3rd/flowy/internal/debt"
	debtStore "github.com/MrJamesThe3rd/flowy/internal/debt/store"
	"github.com/MrJamesThe3rd/flowy/internal/http/auth"
)

// Handler exposes the read-only asset and debt surface the engine's
// callers need to pick references from.
type Handler struct {
	assets *assetStore.Store
	debts  *debtStore.Store
}

func NewHandler(assets *assetStore.Store, debts *debtStore.Store) *Handler {
	return &Handler{assets: assets, debts: debts}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/assets", h.listAssets)
	r.Get("/assets/{id}", h.getAsset)
	r.Get("/debts", h.listDebts)
	r.Get("/debts/{id}", h.getDebt)
}

type assetResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Kind     asset.Kind      `json:"kind"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Ticker   string          `json:"ticker,omitempty"`
}

type debtResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Currency       string          `json:"currency"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	Status         debt.Status     `json:"status"`
	PaidOffDate    *time.Time      `json:"paid_off_date,omitempty"`
}

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.ScopeFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	assets, err := h.assets.ListAssets(r.Context(), owner)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]assetResponse, len(assets))
	for i, a := range assets {
		resp[i] = assetResponse{
			ID:       a.ID,
			Name:     a.Name,
			Kind:     a.Kind,
			Balance:  a.Balance,
			Currency: a.Currency,
			Ticker:   a.Ticker,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listDebts(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.ScopeFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	debts, err := h.debts.ListDebts(r.Context(), owner)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]debtResponse, len(debts))
	for i, d := range debts {
		resp[i] = debtResponse{
			ID:             d.ID,
			Name:           d.Name,
			CurrentBalance: d.CurrentBalance,
			Currency:       d.Currency,
			MonthlyPayment: d.MonthlyPayment,
			Status:         d.Status,
			PaidOffDate:    d.PaidOffDate,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
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

	a, err := h.assets.GetAsset(r.Context(), owner, id)
	if err != nil {
		if errors.Is(err, asset.ErrNotFound) {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(assetResponse{
		ID:       a.ID,
		Name:     a.Name,
		Kind:     a.Kind,
		Balance:  a.Balance,
		Currency: a.Currency,
		Ticker:   a.Ticker,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getDebt(w http.ResponseWriter, r *http.Request) {
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

	d, err := h.debts.GetDebt(r.Context(), owner, id)
	if err != nil {
		if errors.Is(err, debt.ErrNotFound) {
			http.Error(w, "debt not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(debtResponse{
		ID:             d.ID,
		Name:           d.Name,
		CurrentBalance: d.CurrentBalance,
		Currency:       d.Currency,
		MonthlyPayment: d.MonthlyPayment,
		Status:         d.Status,
		PaidOffDate:    d.PaidOffDate,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
