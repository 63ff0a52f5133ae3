package dto

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for account login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// ListingCreateRequest is the request body for creating a listing.
type ListingCreateRequest struct {
	CardID          int64 `json:"card_id" binding:"required,gt=0"`
	Price           int64 `json:"price" binding:"required,gt=0"`
	IsAuction       bool  `json:"is_auction"`
	AuctionDuration int64 `json:"auction_duration,omitempty"` // Seconds; required iff is_auction
}

// BidRequest is the request body for placing an auction bid.
type BidRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// StakeRequest is the request body for staking a card.
type StakeRequest struct {
	CardID     int64 `json:"card_id" binding:"required,gt=0"`
	RarityTier int   `json:"rarity_tier" binding:"required"`
}

// UnstakeRequest is the request body for withdrawing a staked card.
type UnstakeRequest struct {
	CardID int64 `json:"card_id" binding:"required,gt=0"`
}

// FeeRequest is the request body for updating the exchange fee.
type FeeRequest struct {
	FeePercent *int `json:"fee_percent" binding:"required"`
}

// ListingResponse is the response body for listing queries and mutations.
type ListingResponse struct {
	ID             int64   `json:"id"`
	CardID         int64   `json:"card_id"`
	SellerID       string  `json:"seller_id"`
	Price          int64   `json:"price"`
	IsAuction      bool    `json:"is_auction"`
	AuctionEndTime *int64  `json:"auction_end_time,omitempty"` // Unix timestamp
	Active         bool    `json:"active"`
	Escrow         int64   `json:"escrow"`
	HighestBid     int64   `json:"highest_bid"`
	HighestBidder  *string `json:"highest_bidder,omitempty"`
	BidCount       int     `json:"bid_count"`
	CreatedAt      string  `json:"created_at"`
}

// BidResponse is the response body for a single bid record.
type BidResponse struct {
	ListingID int64  `json:"listing_id"`
	Seq       int    `json:"seq"`
	BidderID  string `json:"bidder_id"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
}

// SettlementResponse is the response body for buy and auction settlement.
type SettlementResponse struct {
	Listing   ListingResponse `json:"listing"`
	Won       bool            `json:"won"`
	WinnerID  *string         `json:"winner_id,omitempty"`
	Amount    int64           `json:"amount"`
	Fee       int64           `json:"fee"`
	SellerNet int64           `json:"seller_net"`
}

// StakeResponse is the response body for a successful stake.
type StakeResponse struct {
	AccountID  string `json:"account_id"`
	CardID     int64  `json:"card_id"`
	RarityTier int    `json:"rarity_tier"`
	StakedAt   string `json:"staked_at"`
	YieldRate  int64  `json:"yield_rate"`
}

// UnstakeResponse is the response body for a successful unstake.
type UnstakeResponse struct {
	CardID           int64 `json:"card_id"`
	YieldEarned      int64 `json:"yield_earned"`
	RemainingBalance int64 `json:"remaining_balance"`
}

// ClaimResponse is the response body for a yield claim.
type ClaimResponse struct {
	Claimed int64 `json:"claimed"`
}

// YieldResponse is the response body for the yield balance query.
type YieldResponse struct {
	Balance int64 `json:"balance"`
}

// StateResponse is the response body for the exchange state query.
type StateResponse struct {
	Paused      bool  `json:"paused"`
	FeePercent  int   `json:"fee_percent"`
	TotalStaked int64 `json:"total_staked"`
}
