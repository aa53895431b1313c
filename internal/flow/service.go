package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/flowy/internal/asset"
	"github.com/MrJamesThe3rd/flowy/internal/category"
	"github.com/MrJamesThe3rd/flowy/internal/currency"
	"github.com/MrJamesThe3rd/flowy/internal/debt"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=flow

type Repository interface {
	CreateFlow(ctx context.Context, f *Flow) error
	GetFlow(ctx context.Context, owner scope.Scope, id uuid.UUID) (*Flow, error)
	UpdateFlow(ctx context.Context, f *Flow) error
	ListFlows(ctx context.Context, owner scope.Scope, filter ListFilter) ([]*Flow, error)
	DeleteFlow(ctx context.Context, owner scope.Scope, id uuid.UUID) error
}

// ScheduleWriter is the slice of the schedule store the coordinator
// needs: create a schedule ahead of its source flow, link the two, and
// compensate when the flow insert fails.
type ScheduleWriter interface {
	CreateSchedule(ctx context.Context, owner scope.Scope, tpl Template, freq Frequency, nextRun time.Time) (uuid.UUID, error)
	LinkSourceFlow(ctx context.Context, scheduleID, flowID uuid.UUID) error
	DeleteSchedule(ctx context.Context, scheduleID uuid.UUID) error
}

type AssetFinder interface {
	GetAsset(ctx context.Context, owner scope.Scope, id uuid.UUID) (*asset.Asset, error)
}

type DebtFinder interface {
	GetDebt(ctx context.Context, owner scope.Scope, id uuid.UUID) (*debt.Debt, error)
}

type CategoryFinder interface {
	GetCategory(ctx context.Context, owner scope.Scope, id uuid.UUID) (*category.Category, error)
}

// Refs holds the resolved entities a flow references.
type Refs struct {
	From     *asset.Asset
	To       *asset.Asset
	Debt     *debt.Debt
	Category *category.Category
}

// BalanceAdjuster applies the balance side effects of a flow. The
// amount delta is signed relative to the flow's direction: the full
// amount on create, the difference on an amount-changing update.
type BalanceAdjuster interface {
	ApplyFlow(ctx context.Context, f *Flow, amountDelta decimal.Decimal, sharesDelta *decimal.Decimal, refs Refs) error
}

// Service coordinates flow creation and update as a sequence of
// non-atomic steps: validate, resolve references, create the schedule
// when recurrence is requested, write the flow, link the two rows, and
// adjust balances strictly after the flow is durable.
type Service struct {
	repo       Repository
	schedules  ScheduleWriter
	assets     AssetFinder
	debts      DebtFinder
	categories CategoryFinder
	adjuster   BalanceAdjuster
}

func NewService(repo Repository, schedules ScheduleWriter, assets AssetFinder, debts DebtFinder, categories CategoryFinder, adjuster BalanceAdjuster) *Service {
	return &Service{
		repo:       repo,
		schedules:  schedules,
		assets:     assets,
		debts:      debts,
		categories: categories,
		adjuster:   adjuster,
	}
}

type CreateParams struct {
	Type              Type
	Amount            decimal.Decimal
	Currency          string
	FromAssetID       *uuid.UUID
	ToAssetID         *uuid.UUID
	DebtID            *uuid.UUID
	Category          string
	Date              time.Time
	Description       string
	ExpenseCategoryID *uuid.UUID
	Metadata          Metadata
	NeedsReview       bool

	// Frequency turns the flow into the source of a recurring
	// schedule; empty means one-off.
	Frequency      Frequency
	AdjustBalances bool
}

type ListFilter struct {
	Type        *Type
	NeedsReview *bool
	ScheduleID  *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}

func (s *Service) validate(p CreateParams) error {
	if !p.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "unknown flow type"}
	}

	if !p.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	if _, err := currency.Normalize(p.Currency); err != nil {
		return &ValidationError{Field: "currency", Reason: err.Error()}
	}

	if p.Frequency != "" && !p.Frequency.Valid() {
		return &ValidationError{Field: "frequency", Reason: "unknown frequency"}
	}

	if p.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "required"}
	}

	return ValidateRefs(p.Type, p.FromAssetID, p.ToAssetID)
}

// resolveRefs looks up every referenced asset, debt and category
// concurrently and fails with a ReferenceError naming the first missing
// one. No write happens before this step succeeds.
func (s *Service) resolveRefs(ctx context.Context, owner scope.Scope, p CreateParams) (Refs, error) {
	var refs Refs

	g, gctx := errgroup.WithContext(ctx)

	if p.FromAssetID != nil {
		id := *p.FromAssetID

		g.Go(func() error {
			a, err := s.assets.GetAsset(gctx, owner, id)
			if err != nil {
				if errors.Is(err, asset.ErrNotFound) {
					return &ReferenceError{Kind: "asset", ID: id}
				}

				return fmt.Errorf("resolving from asset: %w", err)
			}

			refs.From = a

			return nil
		})
	}

	if p.ToAssetID != nil {
		id := *p.ToAssetID

		g.Go(func() error {
			a, err := s.assets.GetAsset(gctx, owner, id)
			if err != nil {
				if errors.Is(err, asset.ErrNotFound) {
					return &ReferenceError{Kind: "asset", ID: id}
				}

				return fmt.Errorf("resolving to asset: %w", err)
			}

			refs.To = a

			return nil
		})
	}

	if p.DebtID != nil {
		id := *p.DebtID

		g.Go(func() error {
			d, err := s.debts.GetDebt(gctx, owner, id)
			if err != nil {
				if errors.Is(err, debt.ErrNotFound) {
					return &ReferenceError{Kind: "debt", ID: id}
				}

				return fmt.Errorf("resolving debt: %w", err)
			}

			refs.Debt = d

			return nil
		})
	}

	if p.ExpenseCategoryID != nil {
		id := *p.ExpenseCategoryID

		g.Go(func() error {
			c, err := s.categories.GetCategory(gctx, owner, id)
			if err != nil {
				if errors.Is(err, category.ErrNotFound) {
					return &ReferenceError{Kind: "category", ID: id}
				}

				return fmt.Errorf("resolving category: %w", err)
			}

			refs.Category = c

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Refs{}, err
	}

	return refs, nil
}

// Create validates and persists a new flow. When a frequency is set,
// the schedule row is created first so its id can be embedded in the
// flow; a failed flow insert triggers a best-effort delete of that
// schedule. Balance adjustment runs strictly after the flow is durable
// and never rolls it back.
func (s *Service) Create(ctx context.Context, owner scope.Scope, p CreateParams) (*Flow, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}

	refs, err := s.resolveRefs(ctx, owner, p)
	if err != nil {
		return nil, err
	}

	var scheduleID *uuid.UUID

	if p.Frequency != "" {
		id, err := s.schedules.CreateSchedule(ctx, owner, templateFrom(p), p.Frequency, p.Frequency.Next(p.Date))
		if err != nil {
			return nil, fmt.Errorf("creating schedule: %w", err)
		}

		scheduleID = &id
	}

	f := &Flow{
		Owner:             owner,
		Type:              p.Type,
		Amount:            p.Amount,
		Currency:          p.Currency,
		FromAssetID:       p.FromAssetID,
		ToAssetID:         p.ToAssetID,
		DebtID:            p.DebtID,
		Category:          p.Category,
		Date:              p.Date,
		Description:       p.Description,
		ExpenseCategoryID: p.ExpenseCategoryID,
		ScheduleID:        scheduleID,
		Metadata:          p.Metadata,
		NeedsReview:       p.NeedsReview,
	}

	if err := s.repo.CreateFlow(ctx, f); err != nil {
		if scheduleID != nil {
			// Best-effort compensation: nothing locks the schedule row,
			// so a concurrent actor may already reference it.
			if derr := s.schedules.DeleteSchedule(ctx, *scheduleID); derr != nil {
				slog.Error("failed to clean up orphaned schedule",
					"schedule_id", *scheduleID, "error", derr)
			}
		}

		return nil, fmt.Errorf("creating flow: %w", err)
	}

	if scheduleID != nil {
		s.linkSourceFlow(ctx, *scheduleID, f.ID)
	}

	if p.AdjustBalances {
		shares := sharesOf(p.Metadata)
		if err := s.adjuster.ApplyFlow(ctx, f, p.Amount, shares, refs); err != nil {
			// The flow is durable; a failed adjustment is surfaced in
			// the logs, never by rolling the flow back.
			slog.Error("balance adjustment failed", "flow_id", f.ID, "error", err)
		}
	}

	return f, nil
}

// linkSourceFlow patches schedule.source_flow_id to the flow that
// requested the recurrence. The patch is idempotent, so it is retried
// once; if both attempts fail the two rows stay half-linked, which is
// an accepted inconsistency of the two-phase write.
func (s *Service) linkSourceFlow(ctx context.Context, scheduleID, flowID uuid.UUID) {
	var err error

	for range 2 {
		if err = s.schedules.LinkSourceFlow(ctx, scheduleID, flowID); err == nil {
			return
		}
	}

	slog.Error("failed to link schedule to source flow",
		"schedule_id", scheduleID, "flow_id", flowID, "error", err)
}

// CreateFromTemplate synthesizes a flow from a recurring schedule's
// template, dated at the schedule's run date. Generated flows carry the
// schedule id, are never themselves recurring, skip review, and always
// adjust balances.
func (s *Service) CreateFromTemplate(ctx context.Context, owner scope.Scope, tpl Template, date time.Time, scheduleID uuid.UUID) (*Flow, error) {
	p := CreateParams{
		Type:              tpl.Type,
		Amount:            tpl.Amount,
		Currency:          tpl.Currency,
		FromAssetID:       tpl.FromAssetID,
		ToAssetID:         tpl.ToAssetID,
		DebtID:            tpl.DebtID,
		Category:          tpl.Category,
		Date:              date,
		Description:       tpl.Description,
		ExpenseCategoryID: tpl.ExpenseCategoryID,
		Metadata:          tpl.Metadata,
	}

	if err := s.validate(p); err != nil {
		return nil, err
	}

	refs, err := s.resolveRefs(ctx, owner, p)
	if err != nil {
		return nil, err
	}

	f := &Flow{
		Owner:             owner,
		Type:              p.Type,
		Amount:            p.Amount,
		Currency:          p.Currency,
		FromAssetID:       p.FromAssetID,
		ToAssetID:         p.ToAssetID,
		DebtID:            p.DebtID,
		Category:          p.Category,
		Date:              date,
		Description:       p.Description,
		ExpenseCategoryID: p.ExpenseCategoryID,
		ScheduleID:        &scheduleID,
		Metadata:          p.Metadata,
		NeedsReview:       false,
	}

	if err := s.repo.CreateFlow(ctx, f); err != nil {
		return nil, fmt.Errorf("creating flow: %w", err)
	}

	if err := s.adjuster.ApplyFlow(ctx, f, f.Amount, sharesOf(f.Metadata), refs); err != nil {
		slog.Error("balance adjustment failed", "flow_id", f.ID, "error", err)
	}

	return f, nil
}

type UpdateParams struct {
	Amount      *decimal.Decimal
	Category    *string
	Date        *time.Time
	Description *string
	Metadata    Metadata
	NeedsReview *bool

	AdjustBalances bool
}

// Update patches a flow. When AdjustBalances is set and the amount
// changed, only the difference between new and old is applied to the
// referenced balances, so repeating the same edit is a no-op.
func (s *Service) Update(ctx context.Context, owner scope.Scope, id uuid.UUID, p UpdateParams) (*Flow, error) {
	f, err := s.repo.GetFlow(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	oldAmount := f.Amount
	oldShares := sharesOf(f.Metadata)

	if p.Amount != nil {
		if !p.Amount.IsPositive() {
			return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
		}

		f.Amount = *p.Amount
	}

	if p.Category != nil {
		f.Category = *p.Category
	}

	if p.Date != nil {
		f.Date = *p.Date
	}

	if p.Description != nil {
		f.Description = *p.Description
	}

	if p.Metadata != nil {
		f.Metadata = p.Metadata
	}

	if p.NeedsReview != nil {
		f.NeedsReview = *p.NeedsReview
	}

	if err := s.repo.UpdateFlow(ctx, f); err != nil {
		return nil, fmt.Errorf("updating flow: %w", err)
	}

	if p.AdjustBalances && !f.Amount.Equal(oldAmount) {
		refs, err := s.resolveRefs(ctx, owner, CreateParams{
			FromAssetID:       f.FromAssetID,
			ToAssetID:         f.ToAssetID,
			DebtID:            f.DebtID,
			ExpenseCategoryID: f.ExpenseCategoryID,
		})
		if err != nil {
			slog.Error("balance reconciliation failed resolving refs", "flow_id", f.ID, "error", err)
			return f, nil
		}

		difference := f.Amount.Sub(oldAmount)
		sharesDiff := sharesDifference(oldShares, sharesOf(f.Metadata))

		if err := s.adjuster.ApplyFlow(ctx, f, difference, sharesDiff, refs); err != nil {
			slog.Error("balance reconciliation failed", "flow_id", f.ID, "error", err)
		}
	}

	return f, nil
}

func (s *Service) Get(ctx context.Context, owner scope.Scope, id uuid.UUID) (*Flow, error) {
	return s.repo.GetFlow(ctx, owner, id)
}

func (s *Service) List(ctx context.Context, owner scope.Scope, filter ListFilter) ([]*Flow, error) {
	return s.repo.ListFlows(ctx, owner, filter)
}

func (s *Service) Delete(ctx context.Context, owner scope.Scope, id uuid.UUID) error {
	return s.repo.DeleteFlow(ctx, owner, id)
}

func templateFrom(p CreateParams) Template {
	return Template{
		Type:              p.Type,
		Amount:            p.Amount,
		Currency:          p.Currency,
		FromAssetID:       p.FromAssetID,
		ToAssetID:         p.ToAssetID,
		DebtID:            p.DebtID,
		Category:          p.Category,
		Description:       p.Description,
		ExpenseCategoryID: p.ExpenseCategoryID,
		Metadata:          p.Metadata,
	}
}

func sharesOf(m Metadata) *decimal.Decimal {
	shares, ok := m.Shares()
	if !ok {
		return nil
	}

	return &shares
}

func sharesDifference(old, updated *decimal.Decimal) *decimal.Decimal {
	if updated == nil {
		return nil
	}

	if old == nil {
		return updated
	}

	diff := updated.Sub(*old)

	return &diff
}
