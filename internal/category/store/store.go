package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/flowy/internal/category"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetCategory(ctx context.Context, owner scope.Scope, id uuid.UUID) (*category.Category, error) {
	query := `
		SELECT c.id, c.owner_user_id, c.owner_family_id, c.name, c.created_at
		FROM flow_expense_categories c
		WHERE c.id = $1 AND (c.owner_user_id = $2 OR c.owner_family_id = $3)
	`

	var c category.Category

	err := s.db.QueryRowContext(ctx, query, id, owner.UserID, owner.FamilyID).
		Scan(&c.ID, &c.Owner.UserID, &c.Owner.FamilyID, &c.Name, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context, owner scope.Scope) ([]*category.Category, error) {
	query := `
		SELECT c.id, c.owner_user_id, c.owner_family_id, c.name, c.created_at
		FROM flow_expense_categories c
		WHERE (c.owner_user_id = $1 OR c.owner_family_id = $2)
		ORDER BY c.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, owner.UserID, owner.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category

	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Owner.UserID, &c.Owner.FamilyID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, nil
}
