package postgres

import (
	"context"
	"errors"
	"fmt"

	"card-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StakeRepo implements ports.StakeRepository.
type StakeRepo struct {
	pool Pool
}

// NewStakeRepo creates a new StakeRepo.
func NewStakeRepo(pool Pool) *StakeRepo {
	return &StakeRepo{pool: pool}
}

// Create inserts a stake record.
func (r *StakeRepo) Create(ctx context.Context, tx pgx.Tx, s *domain.StakeRecord) error {
	query := `INSERT INTO stakes (account_id, card_id, rarity_tier, staked_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, s.AccountID, s.CardID, s.RarityTier, s.StakedAt)
	if err != nil {
		return fmt.Errorf("insert stake: %w", err)
	}
	return nil
}

// Get fetches a stake record (non-locking read). Returns nil, nil when the
// card is not staked.
func (r *StakeRepo) Get(ctx context.Context, accountID uuid.UUID, cardID int64) (*domain.StakeRecord, error) {
	query := `SELECT account_id, card_id, rarity_tier, staked_at
		FROM stakes WHERE account_id = $1 AND card_id = $2`

	s := &domain.StakeRecord{}
	err := r.pool.QueryRow(ctx, query, accountID, cardID).Scan(
		&s.AccountID, &s.CardID, &s.RarityTier, &s.StakedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stake: %w", err)
	}
	return s, nil
}

// GetForUpdate fetches a stake record with pessimistic locking.
// This MUST be called within a transaction.
func (r *StakeRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, cardID int64) (*domain.StakeRecord, error) {
	query := `SELECT account_id, card_id, rarity_tier, staked_at
		FROM stakes WHERE account_id = $1 AND card_id = $2 FOR UPDATE`

	s := &domain.StakeRecord{}
	err := tx.QueryRow(ctx, query, accountID, cardID).Scan(
		&s.AccountID, &s.CardID, &s.RarityTier, &s.StakedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stake for update: %w", err)
	}
	return s, nil
}

// HasStake reports whether the account currently stakes the card.
func (r *StakeRepo) HasStake(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, cardID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM stakes WHERE account_id = $1 AND card_id = $2)`

	var exists bool
	if err := tx.QueryRow(ctx, query, accountID, cardID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check stake: %w", err)
	}
	return exists, nil
}

// Delete removes a stake record.
func (r *StakeRepo) Delete(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, cardID int64) error {
	query := `DELETE FROM stakes WHERE account_id = $1 AND card_id = $2`

	tag, err := tx.Exec(ctx, query, accountID, cardID)
	if err != nil {
		return fmt.Errorf("delete stake: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stake not found: account %s card %d", accountID, cardID)
	}
	return nil
}
