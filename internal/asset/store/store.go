package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/flowy/internal/asset"
	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectAssetColumns = `
	a.id, a.owner_user_id, a.owner_family_id, a.name, a.kind, a.balance,
	a.currency, a.ticker, a.created_at, a.updated_at
`

func scanAsset(s scanner) (*asset.Asset, error) {
	var a asset.Asset

	var kindStr string

	var ticker sql.NullString

	if err := s.Scan(
		&a.ID, &a.Owner.UserID, &a.Owner.FamilyID, &a.Name, &kindStr, &a.Balance,
		&a.Currency, &ticker, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Kind = asset.Kind(kindStr)
	a.Ticker = ticker.String

	return &a, nil
}

func (s *Store) GetAsset(ctx context.Context, owner scope.Scope, id uuid.UUID) (*asset.Asset, error) {
	query := `SELECT ` + selectAssetColumns + `
		FROM assets a
		WHERE a.id = $1 AND (a.owner_user_id = $2 OR a.owner_family_id = $3)`

	a, err := scanAsset(s.db.QueryRowContext(ctx, query, id, owner.UserID, owner.FamilyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, asset.ErrNotFound
		}

		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return a, nil
}

func (s *Store) ListAssets(ctx context.Context, owner scope.Scope) ([]*asset.Asset, error) {
	query := `SELECT ` + selectAssetColumns + `
		FROM assets a
		WHERE (a.owner_user_id = $1 OR a.owner_family_id = $2)
		ORDER BY a.name ASC`

	rows, err := s.db.QueryContext(ctx, query, owner.UserID, owner.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	var assets []*asset.Asset

	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}

		assets = append(assets, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating asset rows: %w", err)
	}

	return assets, nil
}

// AdjustBalance applies the delta inside the database so concurrent
// flows touching the same asset cannot lose an update.
func (s *Store) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE assets
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING balance
	`

	var newBalance decimal.Decimal

	err := s.db.QueryRowContext(ctx, query, delta, id).Scan(&newBalance)
	if err != nil {
		if err == sql.ErrNoRows {
			return decimal.Decimal{}, asset.ErrNotFound
		}

		return decimal.Decimal{}, fmt.Errorf("adjusting asset balance: %w", err)
	}

	return newBalance, nil
}
