package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing is an offer to sell or auction a single card. Listings are never
// deleted: once Active flips to false the row remains as a historical
// record, and no operation ever re-activates it.
type Listing struct {
	ID             int64      `json:"id"`
	CardID         int64      `json:"card_id"`
	SellerID       uuid.UUID  `json:"seller_id"`
	Price          int64      `json:"price"` // In smallest token unit
	IsAuction      bool       `json:"is_auction"`
	AuctionEndTime *time.Time `json:"auction_end_time,omitempty"` // Set iff IsAuction
	Active         bool       `json:"active"`

	// Auction escrow state. Escrow always holds exactly the current
	// leader's funds; outbid parties are refunded when superseded.
	Escrow        int64      `json:"escrow"`
	HighestBid    int64      `json:"highest_bid"`
	HighestBidder *uuid.UUID `json:"highest_bidder,omitempty"`
	BidCount      int        `json:"bid_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOpenAuction reports whether bids can still be placed at the given time.
func (l *Listing) IsOpenAuction(now time.Time) bool {
	return l.Active && l.IsAuction && l.AuctionEndTime != nil && now.Before(*l.AuctionEndTime)
}

// AuctionEnded reports whether the auction end time has passed.
func (l *Listing) AuctionEnded(now time.Time) bool {
	return l.IsAuction && l.AuctionEndTime != nil && !now.Before(*l.AuctionEndTime)
}

// HasLeader reports whether any bid has been accepted on this listing.
func (l *Listing) HasLeader() bool {
	return l.HighestBidder != nil
}

// MinimumBid returns the lowest acceptable next bid: the opening price when
// no bid exists, otherwise a 5% increment over the current leader, floored
// by integer division and never below the opening price. The increment is
// computed as bid/20 rather than bid*105/100 so large bids cannot overflow
// the multiplication.
func (l *Listing) MinimumBid() int64 {
	if l.HighestBid == 0 {
		return l.Price
	}
	min := l.HighestBid + l.HighestBid/20
	if min < l.Price {
		return l.Price
	}
	return min
}

// BidRecord is one entry of a listing's append-only bid history, indexed by
// a per-listing sequence number starting at 0. Records are never mutated.
type BidRecord struct {
	ListingID int64     `json:"listing_id"`
	Seq       int       `json:"seq"`
	BidderID  uuid.UUID `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
