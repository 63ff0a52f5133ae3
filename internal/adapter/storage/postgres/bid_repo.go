package postgres

import (
	"context"
	"errors"
	"fmt"

	"card-exchange/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// BidRepo implements ports.BidRepository. Bid rows are append-only; the
// (listing_id, seq) pair is the primary key.
type BidRepo struct {
	pool Pool
}

// NewBidRepo creates a new BidRepo.
func NewBidRepo(pool Pool) *BidRepo {
	return &BidRepo{pool: pool}
}

// Append inserts one bid history record.
func (r *BidRepo) Append(ctx context.Context, tx pgx.Tx, b *domain.BidRecord) error {
	query := `INSERT INTO bids (listing_id, seq, bidder_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, b.ListingID, b.Seq, b.BidderID, b.Amount, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bid: %w", err)
	}
	return nil
}

// Get fetches one bid by per-listing sequence number. Returns nil, nil when
// no such record exists.
func (r *BidRepo) Get(ctx context.Context, listingID int64, seq int) (*domain.BidRecord, error) {
	query := `SELECT listing_id, seq, bidder_id, amount, created_at
		FROM bids WHERE listing_id = $1 AND seq = $2`

	b := &domain.BidRecord{}
	err := r.pool.QueryRow(ctx, query, listingID, seq).Scan(
		&b.ListingID, &b.Seq, &b.BidderID, &b.Amount, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bid: %w", err)
	}
	return b, nil
}
