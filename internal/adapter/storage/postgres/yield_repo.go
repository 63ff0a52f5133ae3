package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// YieldRepo implements ports.YieldRepository. Balances live in a single
// upserted row per account; a missing row reads as zero.
type YieldRepo struct {
	pool Pool
}

// NewYieldRepo creates a new YieldRepo.
func NewYieldRepo(pool Pool) *YieldRepo {
	return &YieldRepo{pool: pool}
}

// GetBalance returns the accrued balance, zero when no row exists.
func (r *YieldRepo) GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	query := `SELECT balance FROM yield_balances WHERE account_id = $1`

	var balance int64
	err := r.pool.QueryRow(ctx, query, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get yield balance: %w", err)
	}
	return balance, nil
}

// GetBalanceForUpdate reads the balance under FOR UPDATE.
// This MUST be called within a transaction.
func (r *YieldRepo) GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (int64, error) {
	query := `SELECT balance FROM yield_balances WHERE account_id = $1 FOR UPDATE`

	var balance int64
	err := tx.QueryRow(ctx, query, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get yield balance for update: %w", err)
	}
	return balance, nil
}

// Add upserts the balance row, applying a positive or negative delta.
func (r *YieldRepo) Add(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, delta int64) error {
	query := `INSERT INTO yield_balances (account_id, balance, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (account_id)
		DO UPDATE SET balance = yield_balances.balance + $2, updated_at = NOW()`

	if _, err := tx.Exec(ctx, query, accountID, delta); err != nil {
		return fmt.Errorf("add yield balance: %w", err)
	}
	return nil
}
