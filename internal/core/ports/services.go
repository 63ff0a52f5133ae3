package ports

import (
	"context"
	"time"

	"card-exchange/internal/core/domain"

	"github.com/google/uuid"
)

// --- External collaborators ---

// Ledger is the external fungible-token ledger. The exchange never keeps
// token balances itself; it only decides when, how much, and between whom
// value moves. Amounts are non-negative integers in the smallest unit.
type Ledger interface {
	Transfer(ctx context.Context, from, to uuid.UUID, amount int64) error
}

// CardRegistry is the external card registry. The exchange reads ownership
// to authorize listing and staking; it never mutates registry records.
type CardRegistry interface {
	OwnerOf(ctx context.Context, cardID int64) (uuid.UUID, error)
}

// EventPublisher delivers domain events to external indexers/UIs.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Clock supplies the current time to every time-dependent precondition.
// Injected so auction deadlines and lock periods are evaluated against an
// externally supplied value, never polled.
type Clock interface {
	Now() time.Time
}

// --- Service ports (business logic) ---

// ListingService owns the lifecycle of sale/auction listings, including
// the bid escrow operations that mutate listing fields.
type ListingService interface {
	List(ctx context.Context, req ListRequest) (*domain.Listing, error)
	Buy(ctx context.Context, callerID uuid.UUID, listingID int64) (*SettlementResult, error)
	Cancel(ctx context.Context, callerID uuid.UUID, listingID int64) (*domain.Listing, error)
	PlaceBid(ctx context.Context, callerID uuid.UUID, listingID int64, amount int64) (*domain.BidRecord, error)
	EndAuction(ctx context.Context, callerID uuid.UUID, listingID int64) (*SettlementResult, error)
	GetListing(ctx context.Context, listingID int64) (*domain.Listing, error)
	GetBid(ctx context.Context, listingID int64, seq int) (*domain.BidRecord, error)
}

// ListRequest holds validated input for creating a listing.
type ListRequest struct {
	CallerID        uuid.UUID
	CardID          int64
	Price           int64
	IsAuction       bool
	AuctionDuration time.Duration // Required > 0 iff IsAuction
}

// SettlementResult reports the outcome of a buy or auction settlement.
// Won is false only for an auction that closed without bids.
type SettlementResult struct {
	Listing   *domain.Listing
	Won       bool
	WinnerID  *uuid.UUID
	Amount    int64
	Fee       int64
	SellerNet int64
}

// VaultService owns staking records and per-account accrued yield.
type VaultService interface {
	Stake(ctx context.Context, req StakeRequest) (*StakeResult, error)
	Unstake(ctx context.Context, callerID uuid.UUID, cardID int64) (*UnstakeResult, error)
	Claim(ctx context.Context, callerID uuid.UUID) (int64, error)
	GetYield(ctx context.Context, accountID uuid.UUID) (int64, error)
	// GetStakedCard returns nil, nil when the card is not staked.
	GetStakedCard(ctx context.Context, accountID uuid.UUID, cardID int64) (*domain.StakeRecord, error)
}

// StakeRequest holds validated input for staking a card.
type StakeRequest struct {
	CallerID   uuid.UUID
	CardID     int64
	RarityTier int
}

// StakeResult reports a successful stake.
type StakeResult struct {
	Record    *domain.StakeRecord
	YieldRate int64 // Credited to the balance and seeded into the pool
}

// UnstakeResult reports a successful unstake.
type UnstakeResult struct {
	CardID           int64
	YieldEarned      int64
	RemainingBalance int64
}

// AdminService is the privileged administrative surface.
type AdminService interface {
	Pause(ctx context.Context, callerID uuid.UUID) error
	Unpause(ctx context.Context, callerID uuid.UUID) error
	SetFeePercent(ctx context.Context, callerID uuid.UUID, feePercent int) error
	GetState(ctx context.Context) (*domain.ExchangeState, error)
}

// AuthService defines account registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(accountID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}
