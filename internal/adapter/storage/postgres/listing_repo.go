package postgres

import (
	"context"
	"errors"
	"fmt"

	"card-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListingRepo implements ports.ListingRepository.
type ListingRepo struct {
	pool Pool
}

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(pool Pool) *ListingRepo {
	return &ListingRepo{pool: pool}
}

const listingColumns = `id, card_id, seller_id, price, is_auction, auction_end_time, active,
		escrow, highest_bid, highest_bidder, bid_count, created_at, updated_at`

func scanListing(row pgx.Row) (*domain.Listing, error) {
	l := &domain.Listing{}
	err := row.Scan(
		&l.ID, &l.CardID, &l.SellerID, &l.Price, &l.IsAuction, &l.AuctionEndTime, &l.Active,
		&l.Escrow, &l.HighestBid, &l.HighestBidder, &l.BidCount, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create inserts a listing and returns its allocated ID.
func (r *ListingRepo) Create(ctx context.Context, tx pgx.Tx, l *domain.Listing) (int64, error) {
	query := `INSERT INTO listings (card_id, seller_id, price, is_auction, auction_end_time, active,
		escrow, highest_bid, highest_bidder, bid_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query,
		l.CardID, l.SellerID, l.Price, l.IsAuction, l.AuctionEndTime, l.Active,
		l.Escrow, l.HighestBid, l.HighestBidder, l.BidCount, l.CreatedAt, l.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert listing: %w", err)
	}
	return id, nil
}

// GetByID fetches a listing by ID (without locking).
func (r *ListingRepo) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	l, err := scanListing(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing by id: %w", err)
	}
	return l, nil
}

// GetByIDForUpdate fetches a listing by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *ListingRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1 FOR UPDATE`

	l, err := scanListing(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing for update: %w", err)
	}
	return l, nil
}

// HasActiveForCard reports whether any active listing exists for the card.
func (r *ListingRepo) HasActiveForCard(ctx context.Context, tx pgx.Tx, cardID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM listings WHERE card_id = $1 AND active = true)`

	var exists bool
	if err := tx.QueryRow(ctx, query, cardID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check active listing for card: %w", err)
	}
	return exists, nil
}

// Deactivate flips a listing's active flag off.
func (r *ListingRepo) Deactivate(ctx context.Context, tx pgx.Tx, id int64) error {
	query := `UPDATE listings SET active = false, updated_at = NOW() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("listing not found: %d", id)
	}
	return nil
}

// UpdateAuctionState records a new leading bid.
func (r *ListingRepo) UpdateAuctionState(ctx context.Context, tx pgx.Tx, id int64, escrow, highestBid int64, highestBidder uuid.UUID, bidCount int) error {
	query := `UPDATE listings SET escrow = $1, highest_bid = $2, highest_bidder = $3, bid_count = $4, updated_at = NOW()
		WHERE id = $5`

	tag, err := tx.Exec(ctx, query, escrow, highestBid, highestBidder, bidCount, id)
	if err != nil {
		return fmt.Errorf("update auction state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("listing not found: %d", id)
	}
	return nil
}

// ClearEscrow zeroes the escrow scalar after settlement.
func (r *ListingRepo) ClearEscrow(ctx context.Context, tx pgx.Tx, id int64) error {
	query := `UPDATE listings SET escrow = 0, updated_at = NOW() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("clear escrow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("listing not found: %d", id)
	}
	return nil
}
