package ports

import (
	"context"

	"card-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListingRepository defines persistence operations for listings.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking; listings are deactivated, never deleted.
type ListingRepository interface {
	// Create inserts a listing and returns its allocated monotonic ID.
	Create(ctx context.Context, tx pgx.Tx, listing *domain.Listing) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Listing, error)
	// HasActiveForCard reports whether any active listing exists for the card.
	HasActiveForCard(ctx context.Context, tx pgx.Tx, cardID int64) (bool, error)
	Deactivate(ctx context.Context, tx pgx.Tx, id int64) error
	// UpdateAuctionState records a new leading bid: escrow, leader and the
	// incremented bid count.
	UpdateAuctionState(ctx context.Context, tx pgx.Tx, id int64, escrow, highestBid int64, highestBidder uuid.UUID, bidCount int) error
	// ClearEscrow zeroes the escrow scalar after settlement.
	ClearEscrow(ctx context.Context, tx pgx.Tx, id int64) error
}

// BidRepository defines persistence for the append-only bid history.
type BidRepository interface {
	Append(ctx context.Context, tx pgx.Tx, bid *domain.BidRecord) error
	// Get fetches one record by per-listing sequence number.
	// Returns nil, nil when no such record exists.
	Get(ctx context.Context, listingID int64, seq int) (*domain.BidRecord, error)
}

// StakeRepository defines persistence for stake records. A missing row
// means "not staked".
type StakeRepository interface {
	Create(ctx context.Context, tx pgx.Tx, stake *domain.StakeRecord) error
	Get(ctx context.Context, accountID uuid.UUID, cardID int64) (*domain.StakeRecord, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, cardID int64) (*domain.StakeRecord, error)
	// HasStake reports whether the account currently stakes the card.
	HasStake(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, cardID int64) (bool, error)
	Delete(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, cardID int64) error
}

// YieldRepository defines persistence for pooled per-account yield balances.
type YieldRepository interface {
	// GetBalance returns the accrued balance, zero when no row exists.
	GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error)
	GetBalanceForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (int64, error)
	// Add upserts the balance row, applying a positive or negative delta.
	Add(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, delta int64) error
}

// StateRepository defines persistence for the single-row global state.
type StateRepository interface {
	Get(ctx context.Context) (*domain.ExchangeState, error)
	// GetShared reads the state row under FOR SHARE so a concurrent pause
	// serializes against in-flight mutations.
	GetShared(ctx context.Context, tx pgx.Tx) (*domain.ExchangeState, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.ExchangeState, error)
	SetPaused(ctx context.Context, tx pgx.Tx, paused bool) error
	SetFeePercent(ctx context.Context, tx pgx.Tx, feePercent int) error
	AddTotalStaked(ctx context.Context, tx pgx.Tx, delta int64) error
}

// AccountRepository defines persistence operations for principals.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
