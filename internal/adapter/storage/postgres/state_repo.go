package postgres

import (
	"context"
	"fmt"

	"card-exchange/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// StateRepo implements ports.StateRepository against the single-row
// exchange_state table. The row is seeded by migration; reads never
// encounter an empty table.
type StateRepo struct {
	pool Pool
}

// NewStateRepo creates a new StateRepo.
func NewStateRepo(pool Pool) *StateRepo {
	return &StateRepo{pool: pool}
}

const stateQuery = `SELECT paused, fee_percent, total_staked, updated_at FROM exchange_state WHERE id = 1`

func scanState(row pgx.Row) (*domain.ExchangeState, error) {
	st := &domain.ExchangeState{}
	if err := row.Scan(&st.Paused, &st.FeePercent, &st.TotalStaked, &st.UpdatedAt); err != nil {
		return nil, err
	}
	return st, nil
}

// Get reads the state row without locking.
func (r *StateRepo) Get(ctx context.Context) (*domain.ExchangeState, error) {
	st, err := scanState(r.pool.QueryRow(ctx, stateQuery))
	if err != nil {
		return nil, fmt.Errorf("get exchange state: %w", err)
	}
	return st, nil
}

// GetShared reads the state row under FOR SHARE so a concurrent pause
// serializes against this transaction.
func (r *StateRepo) GetShared(ctx context.Context, tx pgx.Tx) (*domain.ExchangeState, error) {
	st, err := scanState(tx.QueryRow(ctx, stateQuery+` FOR SHARE`))
	if err != nil {
		return nil, fmt.Errorf("get exchange state shared: %w", err)
	}
	return st, nil
}

// GetForUpdate reads the state row under FOR UPDATE for administrative writes.
func (r *StateRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.ExchangeState, error) {
	st, err := scanState(tx.QueryRow(ctx, stateQuery+` FOR UPDATE`))
	if err != nil {
		return nil, fmt.Errorf("get exchange state for update: %w", err)
	}
	return st, nil
}

// SetPaused writes the pause flag.
func (r *StateRepo) SetPaused(ctx context.Context, tx pgx.Tx, paused bool) error {
	query := `UPDATE exchange_state SET paused = $1, updated_at = NOW() WHERE id = 1`

	if _, err := tx.Exec(ctx, query, paused); err != nil {
		return fmt.Errorf("set paused: %w", err)
	}
	return nil
}

// SetFeePercent writes the settlement fee percentage.
func (r *StateRepo) SetFeePercent(ctx context.Context, tx pgx.Tx, feePercent int) error {
	query := `UPDATE exchange_state SET fee_percent = $1, updated_at = NOW() WHERE id = 1`

	if _, err := tx.Exec(ctx, query, feePercent); err != nil {
		return fmt.Errorf("set fee percent: %w", err)
	}
	return nil
}

// AddTotalStaked applies a delta to the staked-card counter.
func (r *StateRepo) AddTotalStaked(ctx context.Context, tx pgx.Tx, delta int64) error {
	query := `UPDATE exchange_state SET total_staked = total_staked + $1, updated_at = NOW() WHERE id = 1`

	if _, err := tx.Exec(ctx, query, delta); err != nil {
		return fmt.Errorf("add total staked: %w", err)
	}
	return nil
}
