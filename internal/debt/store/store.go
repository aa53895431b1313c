package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/flowy/internal/debt"
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

const selectDebtColumns = `
	d.id, d.owner_user_id, d.owner_family_id, d.name, d.current_balance,
	d.currency, d.monthly_payment, d.status, d.paid_off_date, d.created_at, d.updated_at
`

func scanDebt(s scanner) (*debt.Debt, error) {
	var d debt.Debt

	var statusStr string

	if err := s.Scan(
		&d.ID, &d.Owner.UserID, &d.Owner.FamilyID, &d.Name, &d.CurrentBalance,
		&d.Currency, &d.MonthlyPayment, &statusStr, &d.PaidOffDate, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	d.Status = debt.Status(statusStr)

	return &d, nil
}

func (s *Store) GetDebt(ctx context.Context, owner scope.Scope, id uuid.UUID) (*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + `
		FROM debts d
		WHERE d.id = $1 AND (d.owner_user_id = $2 OR d.owner_family_id = $3)`

	d, err := scanDebt(s.db.QueryRowContext(ctx, query, id, owner.UserID, owner.FamilyID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, debt.ErrNotFound
		}

		return nil, fmt.Errorf("getting debt: %w", err)
	}

	return d, nil
}

func (s *Store) ListDebts(ctx context.Context, owner scope.Scope) ([]*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + `
		FROM debts d
		WHERE (d.owner_user_id = $1 OR d.owner_family_id = $2)
		ORDER BY d.name ASC`

	rows, err := s.db.QueryContext(ctx, query, owner.UserID, owner.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("listing debts: %w", err)
	}
	defer rows.Close()

	var debts []*debt.Debt

	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning debt: %w", err)
		}

		debts = append(debts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating debt rows: %w", err)
	}

	return debts, nil
}

// AdjustBalance applies the delta atomically, clamping the balance at
// zero.
func (s *Store) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE debts
		SET current_balance = GREATEST(current_balance + $1, 0), updated_at = NOW()
		WHERE id = $2
		RETURNING current_balance
	`

	var newBalance decimal.Decimal

	err := s.db.QueryRowContext(ctx, query, delta, id).Scan(&newBalance)
	if err != nil {
		if err == sql.ErrNoRows {
			return decimal.Decimal{}, debt.ErrNotFound
		}

		return decimal.Decimal{}, fmt.Errorf("adjusting debt balance: %w", err)
	}

	return newBalance, nil
}

func (s *Store) MarkPaidOff(ctx context.Context, id uuid.UUID, when time.Time) error {
	query := `
		UPDATE debts
		SET status = $1, paid_off_date = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, debt.StatusPaidOff, when, id)
	if err != nil {
		return fmt.Errorf("marking debt paid off: %w", err)
	}

	return nil
}
