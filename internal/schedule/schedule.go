package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

var ErrNotFound = errors.New("schedule not found")

// Schedule is a recurrence rule that regenerates a flow on a cadence.
// It is created active; processing stamps last_run_date and advances
// next_run_date by one period. Deactivation is explicit, schedules are
// never deleted implicitly.
type Schedule struct {
	ID           uuid.UUID
	Owner        scope.Scope
	SourceFlowID *uuid.UUID // the flow that originally requested the recurrence
	Frequency    flow.Frequency
	NextRunDate  time.Time
	LastRunDate  *time.Time
	IsActive     bool
	Template     flow.Template
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Due reports whether the schedule should be processed on the given
// day.
func (s *Schedule) Due(today time.Time) bool {
	return s.IsActive && !s.NextRunDate.After(today)
}
