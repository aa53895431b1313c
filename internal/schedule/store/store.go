package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
	"github.com/MrJamesThe3rd/flowy/internal/schedule"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

// Store persists recurring schedules. The flow template is stored as a
// JSONB snapshot so a schedule regenerates flows exactly as requested
// at creation time, regardless of later edits to the source flow.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectScheduleColumns = `
	s.id, s.owner_user_id, s.owner_family_id, s.source_flow_id, s.frequency,
	s.next_run_date, s.last_run_date, s.is_active, s.flow_template,
	s.created_at, s.updated_at
`

func scanSchedule(s scanner) (*schedule.Schedule, error) {
	var sched schedule.Schedule

	var freqStr string

	var template []byte

	if err := s.Scan(
		&sched.ID, &sched.Owner.UserID, &sched.Owner.FamilyID, &sched.SourceFlowID, &freqStr,
		&sched.NextRunDate, &sched.LastRunDate, &sched.IsActive, &template,
		&sched.CreatedAt, &sched.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sched.Frequency = flow.Frequency(freqStr)

	if err := json.Unmarshal(template, &sched.Template); err != nil {
		return nil, fmt.Errorf("decoding flow template: %w", err)
	}

	return &sched, nil
}

// CreateSchedule inserts an active schedule and returns its id. The
// source flow is linked afterwards, once it exists.
func (s *Store) CreateSchedule(ctx context.Context, owner scope.Scope, tpl flow.Template, freq flow.Frequency, nextRun time.Time) (uuid.UUID, error) {
	template, err := json.Marshal(tpl)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding flow template: %w", err)
	}

	query := `
		INSERT INTO recurring_schedules (owner_user_id, owner_family_id, frequency,
			next_run_date, is_active, flow_template, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, $5, NOW(), NOW())
		RETURNING id
	`

	var id uuid.UUID

	err = s.db.QueryRowContext(ctx, query,
		owner.UserID,
		owner.FamilyID,
		freq,
		nextRun,
		template,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("creating schedule: %w", err)
	}

	return id, nil
}

// LinkSourceFlow sets source_flow_id. It writes a fixed value, so
// repeating it is harmless.
func (s *Store) LinkSourceFlow(ctx context.Context, scheduleID, flowID uuid.UUID) error {
	query := `
		UPDATE recurring_schedules
		SET source_flow_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, flowID, scheduleID)
	if err != nil {
		return fmt.Errorf("linking source flow: %w", err)
	}

	return nil
}

func (s *Store) DeleteSchedule(ctx context.Context, scheduleID uuid.UUID) error {
	query := `DELETE FROM recurring_schedules WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, scheduleID)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}

	return nil
}

func (s *Store) GetSchedule(ctx context.Context, owner scope.Scope, id uuid.UUID) (*schedule.Schedule, error) {
	query := `SELECT ` + selectScheduleColumns + `
		FROM recurring_schedules s
		WHERE s.id = $1 AND (s.owner_user_id = $2 OR s.owner_family_id = $3)`

	sched, err := scanSchedule(s.db.QueryRowContext(ctx, query, id, owner.UserID, owner.FamilyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, schedule.ErrNotFound
		}

		return nil, fmt.Errorf("getting schedule: %w", err)
	}

	return sched, nil
}

func (s *Store) ListSchedules(ctx context.Context, owner scope.Scope, activeOnly bool) ([]*schedule.Schedule, error) {
	query := `SELECT ` + selectScheduleColumns + `
		FROM recurring_schedules s
		WHERE (s.owner_user_id = $1 OR s.owner_family_id = $2)`

	if activeOnly {
		query += " AND s.is_active"
	}

	query += " ORDER BY s.next_run_date ASC"

	return s.querySchedules(ctx, query, owner.UserID, owner.FamilyID)
}

// ListDue returns the active schedules whose next run date is on or
// before today, oldest first.
func (s *Store) ListDue(ctx context.Context, owner scope.Scope, today time.Time) ([]*schedule.Schedule, error) {
	query := `SELECT ` + selectScheduleColumns + `
		FROM recurring_schedules s
		WHERE (s.owner_user_id = $1 OR s.owner_family_id = $2)
			AND s.is_active AND s.next_run_date <= $3
		ORDER BY s.next_run_date ASC`

	return s.querySchedules(ctx, query, owner.UserID, owner.FamilyID, today)
}

func (s *Store) querySchedules(ctx context.Context, query string, args ...any) ([]*schedule.Schedule, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var scheds []*schedule.Schedule

	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule: %w", err)
		}

		scheds = append(scheds, sched)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule rows: %w", err)
	}

	return scheds, nil
}

// Advance stamps the completed run and moves the schedule one period
// forward.
func (s *Store) Advance(ctx context.Context, id uuid.UUID, lastRun, nextRun time.Time) error {
	query := `
		UPDATE recurring_schedules
		SET last_run_date = $1, next_run_date = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, lastRun, nextRun, id)
	if err != nil {
		return fmt.Errorf("advancing schedule: %w", err)
	}

	return nil
}

func (s *Store) SetActive(ctx context.Context, owner scope.Scope, id uuid.UUID, active bool) error {
	query := `
		UPDATE recurring_schedules
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2 AND (owner_user_id = $3 OR owner_family_id = $4)
	`

	res, err := s.db.ExecContext(ctx, query, active, id, owner.UserID, owner.FamilyID)
	if err != nil {
		return fmt.Errorf("updating schedule activity: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return schedule.ErrNotFound
	}

	return nil
}

// DueOwners lists the distinct owner scopes that have at least one due
// schedule, for the background runner to iterate.
func (s *Store) DueOwners(ctx context.Context, today time.Time) ([]scope.Scope, error) {
	query := `
		SELECT DISTINCT owner_user_id, owner_family_id
		FROM recurring_schedules
		WHERE is_active AND next_run_date <= $1
	`

	rows, err := s.db.QueryContext(ctx, query, today)
	if err != nil {
		return nil, fmt.Errorf("listing due owners: %w", err)
	}
	defer rows.Close()

	var owners []scope.Scope

	for rows.Next() {
		var owner scope.Scope
		if err := rows.Scan(&owner.UserID, &owner.FamilyID); err != nil {
			return nil, fmt.Errorf("scanning due owner: %w", err)
		}

		owners = append(owners, owner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating due owner rows: %w", err)
	}

	return owners, nil
}
