package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectFlowColumns = `
	f.id, f.owner_user_id, f.owner_family_id, f.type, f.amount, f.currency,
	f.from_asset_id, f.to_asset_id, f.debt_id, f.category, f.date, f.description,
	f.expense_category_id, f.schedule_id, f.metadata, f.needs_review,
	f.created_at, f.updated_at
`

func scanFlow(s scanner) (*flow.Flow, error) {
	var f flow.Flow

	var typeStr string

	var description sql.NullString

	var metadata []byte

	if err := s.Scan(
		&f.ID, &f.Owner.UserID, &f.Owner.FamilyID, &typeStr, &f.Amount, &f.Currency,
		&f.FromAssetID, &f.ToAssetID, &f.DebtID, &f.Category, &f.Date, &description,
		&f.ExpenseCategoryID, &f.ScheduleID, &metadata, &f.NeedsReview,
		&f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return nil, err
	}

	f.Type = flow.Type(typeStr)
	f.Description = description.String

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &f.Metadata); err != nil {
			return nil, fmt.Errorf("decoding flow metadata: %w", err)
		}
	}

	return &f, nil
}

func encodeMetadata(m flow.Metadata) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(m)
}

func (s *Store) CreateFlow(ctx context.Context, f *flow.Flow) error {
	metadata, err := encodeMetadata(f.Metadata)
	if err != nil {
		return fmt.Errorf("encoding flow metadata: %w", err)
	}

	query := `
		INSERT INTO flows (owner_user_id, owner_family_id, type, amount, currency,
			from_asset_id, to_asset_id, debt_id, category, date, description,
			expense_category_id, schedule_id, metadata, needs_review, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		f.Owner.UserID,
		f.Owner.FamilyID,
		f.Type,
		f.Amount,
		f.Currency,
		f.FromAssetID,
		f.ToAssetID,
		f.DebtID,
		f.Category,
		f.Date,
		f.Description,
		f.ExpenseCategoryID,
		f.ScheduleID,
		metadata,
		f.NeedsReview,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating flow: %w", err)
	}

	return nil
}

func (s *Store) GetFlow(ctx context.Context, owner scope.Scope, id uuid.UUID) (*flow.Flow, error) {
	query := `SELECT ` + selectFlowColumns + `
		FROM flows f
		WHERE f.id = $1 AND (f.owner_user_id = $2 OR f.owner_family_id = $3)`

	f, err := scanFlow(s.db.QueryRowContext(ctx, query, id, owner.UserID, owner.FamilyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, flow.ErrNotFound
		}

		return nil, fmt.Errorf("getting flow: %w", err)
	}

	return f, nil
}

func (s *Store) ListFlows(ctx context.Context, owner scope.Scope, filter flow.ListFilter) ([]*flow.Flow, error) {
	query := `SELECT ` + selectFlowColumns + `
		FROM flows f
		WHERE (f.owner_user_id = $1 OR f.owner_family_id = $2)`

	args := []any{owner.UserID, owner.FamilyID}
	argIdx := 3

	if filter.Type != nil {
		query += fmt.Sprintf(" AND f.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.NeedsReview != nil {
		query += fmt.Sprintf(" AND f.needs_review = $%d", argIdx)

		args = append(args, *filter.NeedsReview)
		argIdx++
	}

	if filter.ScheduleID != nil {
		query += fmt.Sprintf(" AND f.schedule_id = $%d", argIdx)

		args = append(args, *filter.ScheduleID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND f.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND f.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY f.date DESC, f.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing flows: %w", err)
	}
	defer rows.Close()

	var flows []*flow.Flow

	for rows.Next() {
		f, err := scanFlow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning flow: %w", err)
		}

		flows = append(flows, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating flow rows: %w", err)
	}

	return flows, nil
}

func (s *Store) UpdateFlow(ctx context.Context, f *flow.Flow) error {
	metadata, err := encodeMetadata(f.Metadata)
	if err != nil {
		return fmt.Errorf("encoding flow metadata: %w", err)
	}

	query := `
		UPDATE flows
		SET amount = $1, category = $2, date = $3, description = $4,
			metadata = $5, needs_review = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err = s.db.ExecContext(ctx, query,
		f.Amount,
		f.Category,
		f.Date,
		f.Description,
		metadata,
		f.NeedsReview,
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating flow: %w", err)
	}

	return nil
}

func (s *Store) DeleteFlow(ctx context.Context, owner scope.Scope, id uuid.UUID) error {
	query := `
		DELETE FROM flows
		WHERE id = $1 AND (owner_user_id = $2 OR owner_family_id = $3)
	`

	_, err := s.db.ExecContext(ctx, query, id, owner.UserID, owner.FamilyID)
	if err != nil {
		return fmt.Errorf("deleting flow: %w", err)
	}

	return nil
}
