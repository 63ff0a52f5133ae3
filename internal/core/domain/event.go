package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a domain event for external indexers and UIs.
type EventType string

const (
	EventListed           EventType = "LISTED"
	EventPurchased        EventType = "PURCHASED"
	EventBidPlaced        EventType = "BID_PLACED"
	EventListingCancelled EventType = "LISTING_CANCELLED"
	EventAuctionEnded     EventType = "AUCTION_ENDED"
	EventCardStaked       EventType = "CARD_STAKED"
	EventCardUnstaked     EventType = "CARD_UNSTAKED"
	EventYieldClaimed     EventType = "YIELD_CLAIMED"
	EventPaused           EventType = "PAUSED"
	EventUnpaused         EventType = "UNPAUSED"
)

// Event is one domain event, emitted exactly once per successful state
// transition and never on a failed call.
type Event struct {
	Type       EventType   `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// ListedPayload accompanies EventListed.
type ListedPayload struct {
	ListingID      int64      `json:"listing_id"`
	CardID         int64      `json:"card_id"`
	SellerID       uuid.UUID  `json:"seller_id"`
	Price          int64      `json:"price"`
	IsAuction      bool       `json:"is_auction"`
	AuctionEndTime *time.Time `json:"auction_end_time,omitempty"`
}

// PurchasedPayload accompanies EventPurchased.
type PurchasedPayload struct {
	ListingID int64     `json:"listing_id"`
	CardID    int64     `json:"card_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	Price     int64     `json:"price"`
	Fee       int64     `json:"fee"`
	SellerNet int64     `json:"seller_net"`
}

// BidPlacedPayload accompanies EventBidPlaced.
type BidPlacedPayload struct {
	ListingID int64     `json:"listing_id"`
	Seq       int       `json:"seq"`
	BidderID  uuid.UUID `json:"bidder_id"`
	Amount    int64     `json:"amount"`
}

// ListingCancelledPayload accompanies EventListingCancelled.
type ListingCancelledPayload struct {
	ListingID int64     `json:"listing_id"`
	CardID    int64     `json:"card_id"`
	SellerID  uuid.UUID `json:"seller_id"`
}

// AuctionEndedPayload accompanies EventAuctionEnded. Won is false when the
// auction closed without any bids (no funds moved).
type AuctionEndedPayload struct {
	ListingID int64      `json:"listing_id"`
	CardID    int64      `json:"card_id"`
	SellerID  uuid.UUID  `json:"seller_id"`
	Won       bool       `json:"won"`
	WinnerID  *uuid.UUID `json:"winner_id,omitempty"`
	Amount    int64      `json:"amount"`
	Fee       int64      `json:"fee"`
	SellerNet int64      `json:"seller_net"`
}

// CardStakedPayload accompanies EventCardStaked.
type CardStakedPayload struct {
	AccountID  uuid.UUID `json:"account_id"`
	CardID     int64     `json:"card_id"`
	RarityTier int       `json:"rarity_tier"`
	YieldRate  int64     `json:"yield_rate"`
}

// CardUnstakedPayload accompanies EventCardUnstaked.
type CardUnstakedPayload struct {
	AccountID   uuid.UUID `json:"account_id"`
	CardID      int64     `json:"card_id"`
	YieldEarned int64     `json:"yield_earned"`
}

// YieldClaimedPayload accompanies EventYieldClaimed.
type YieldClaimedPayload struct {
	AccountID uuid.UUID `json:"account_id"`
	Amount    int64     `json:"amount"`
}

// PausePayload accompanies EventPaused and EventUnpaused.
type PausePayload struct {
	AdminID uuid.UUID `json:"admin_id"`
}
