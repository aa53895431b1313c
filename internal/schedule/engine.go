package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

//go:generate mockgen -source=engine.go -destination=repository_mock.go -package=schedule

type Repository interface {
	GetSchedule(ctx context.Context, owner scope.Scope, id uuid.UUID) (*Schedule, error)
	ListSchedules(ctx context.Context, owner scope.Scope, activeOnly bool) ([]*Schedule, error)
	ListDue(ctx context.Context, owner scope.Scope, today time.Time) ([]*Schedule, error)
	Advance(ctx context.Context, id uuid.UUID, lastRun, nextRun time.Time) error
	SetActive(ctx context.Context, owner scope.Scope, id uuid.UUID, active bool) error
	DueOwners(ctx context.Context, today time.Time) ([]scope.Scope, error)
}

// FlowCreator synthesizes a flow from a schedule's template, including
// its balance side effects. Implemented by the flow service.
type FlowCreator interface {
	CreateFromTemplate(ctx context.Context, owner scope.Scope, tpl flow.Template, date time.Time, scheduleID uuid.UUID) (*flow.Flow, error)
}

// Engine owns the schedule lifecycle and the batch processing of due
// schedules.
type Engine struct {
	repo  Repository
	flows FlowCreator
}

func NewEngine(repo Repository, flows FlowCreator) *Engine {
	return &Engine{repo: repo, flows: flows}
}

// ItemError isolates one schedule's processing failure inside a batch
// result.
type ItemError struct {
	ScheduleID uuid.UUID `json:"schedule_id"`
	Error      string    `json:"error"`
}

// Result summarizes one ProcessDue invocation.
type Result struct {
	Processed    int         `json:"processed"`
	CreatedFlows []uuid.UUID `json:"created_flows"`
	Errors       []ItemError `json:"errors"`
}

// ProcessDue regenerates a flow for every active schedule whose
// next_run_date is on or before today. Schedules are handled
// independently: one failure lands in the result's error list and the
// batch continues. Each successful run advances the schedule exactly
// one period, anchored to its own cadence rather than today, so a
// schedule that has fallen behind converges over repeated invocations
// without skipping or compounding periods.
func (e *Engine) ProcessDue(ctx context.Context, owner scope.Scope, today time.Time) (*Result, error) {
	due, err := e.repo.ListDue(ctx, owner, today)
	if err != nil {
		return nil, fmt.Errorf("listing due schedules: %w", err)
	}

	result := &Result{}

	for _, sched := range due {
		f, err := e.flows.CreateFromTemplate(ctx, owner, sched.Template, sched.NextRunDate, sched.ID)
		if err != nil {
			slog.Error("failed to generate flow from schedule",
				"schedule_id", sched.ID, "error", err)

			result.Errors = append(result.Errors, ItemError{
				ScheduleID: sched.ID,
				Error:      err.Error(),
			})

			continue
		}

		lastRun := sched.NextRunDate
		nextRun := sched.Frequency.Next(sched.NextRunDate)

		if err := e.repo.Advance(ctx, sched.ID, lastRun, nextRun); err != nil {
			// The flow exists but the schedule did not move; the next
			// invocation will generate a duplicate. Surface it as the
			// schedule's failure rather than hiding it.
			slog.Error("failed to advance schedule",
				"schedule_id", sched.ID, "error", err)

			result.Errors = append(result.Errors, ItemError{
				ScheduleID: sched.ID,
				Error:      fmt.Sprintf("flow %s created but schedule not advanced: %v", f.ID, err),
			})

			continue
		}

		result.Processed++
		result.CreatedFlows = append(result.CreatedFlows, f.ID)
	}

	return result, nil
}

func (e *Engine) Get(ctx context.Context, owner scope.Scope, id uuid.UUID) (*Schedule, error) {
	return e.repo.GetSchedule(ctx, owner, id)
}

func (e *Engine) List(ctx context.Context, owner scope.Scope, activeOnly bool) ([]*Schedule, error) {
	return e.repo.ListSchedules(ctx, owner, activeOnly)
}

// Deactivate stops a schedule without deleting it.
func (e *Engine) Deactivate(ctx context.Context, owner scope.Scope, id uuid.UUID) error {
	return e.repo.SetActive(ctx, owner, id, false)
}

// Activate resumes a deactivated schedule.
func (e *Engine) Activate(ctx context.Context, owner scope.Scope, id uuid.UUID) error {
	return e.repo.SetActive(ctx, owner, id, true)
}

// DueOwners lists the scopes that currently have due schedules; the
// background runner iterates them.
func (e *Engine) DueOwners(ctx context.Context, today time.Time) ([]scope.Scope, error) {
	return e.repo.DueOwners(ctx, today)
}
