package handler

import (
	"strconv"
	"time"

	"card-exchange/internal/adapter/http/dto"
	"card-exchange/internal/adapter/http/middleware"
	"card-exchange/internal/core/domain"
	"card-exchange/internal/core/ports"
	"card-exchange/pkg/apperror"
	"card-exchange/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListingHandler handles listing and auction endpoints.
type ListingHandler struct {
	listingSvc ports.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listingSvc ports.ListingService) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc}
}

// currentAccount extracts the authenticated account ID set by JWTAuth.
func currentAccount(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxAccountID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// pathInt64 parses a positive int64 path parameter.
func pathInt64(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Create handles POST /api/v1/listings.
func (h *ListingHandler) Create(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ListingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	listing, err := h.listingSvc.List(c.Request.Context(), ports.ListRequest{
		CallerID:        callerID,
		CardID:          req.CardID,
		Price:           req.Price,
		IsAuction:       req.IsAuction,
		AuctionDuration: time.Duration(req.AuctionDuration) * time.Second,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toListingResponse(listing))
}

// Get handles GET /api/v1/listings/:id.
func (h *ListingHandler) Get(c *gin.Context) {
	listingID, ok := pathInt64(c, "id")
	if !ok {
		response.Error(c, apperror.Validation("invalid listing id"))
		return
	}

	listing, err := h.listingSvc.GetListing(c.Request.Context(), listingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toListingResponse(listing))
}

// Buy handles POST /api/v1/listings/:id/buy.
func (h *ListingHandler) Buy(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	listingID, ok := pathInt64(c, "id")
	if !ok {
		response.Error(c, apperror.Validation("invalid listing id"))
		return
	}

	result, err := h.listingSvc.Buy(c.Request.Context(), callerID, listingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettlementResponse(result))
}

// Cancel handles POST /api/v1/listings/:id/cancel.
func (h *ListingHandler) Cancel(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	listingID, ok := pathInt64(c, "id")
	if !ok {
		response.Error(c, apperror.Validation("invalid listing id"))
		return
	}

	listing, err := h.listingSvc.Cancel(c.Request.Context(), callerID, listingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toListingResponse(listing))
}

// PlaceBid handles POST /api/v1/listings/:id/bids.
func (h *ListingHandler) PlaceBid(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	listingID, ok := pathInt64(c, "id")
	if !ok {
		response.Error(c, apperror.Validation("invalid listing id"))
		return
	}

	var req dto.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	bid, err := h.listingSvc.PlaceBid(c.Request.Context(), callerID, listingID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toBidResponse(bid))
}

// EndAuction handles POST /api/v1/listings/:id/end.
func (h *ListingHandler) EndAuction(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	listingID, ok := pathInt64(c, "id")
	if !ok {
		response.Error(c, apperror.Validation("invalid listing id"))
		return
	}

	result, err := h.listingSvc.EndAuction(c.Request.Context(), callerID, listingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSettlementResponse(result))
}

// GetBid handles GET /api/v1/listings/:id/bids/:seq.
func (h *ListingHandler) GetBid(c *gin.Context) {
	listingID, ok := pathInt64(c, "id")
	if !ok {
		response.Error(c, apperror.Validation("invalid listing id"))
		return
	}
	seq, err := strconv.Atoi(c.Param("seq"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid bid sequence"))
		return
	}

	bid, err := h.listingSvc.GetBid(c.Request.Context(), listingID, seq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toBidResponse(bid))
}

func toListingResponse(l *domain.Listing) dto.ListingResponse {
	resp := dto.ListingResponse{
		ID:         l.ID,
		CardID:     l.CardID,
		SellerID:   l.SellerID.String(),
		Price:      l.Price,
		IsAuction:  l.IsAuction,
		Active:     l.Active,
		Escrow:     l.Escrow,
		HighestBid: l.HighestBid,
		BidCount:   l.BidCount,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
	if l.AuctionEndTime != nil {
		end := l.AuctionEndTime.Unix()
		resp.AuctionEndTime = &end
	}
	if l.HighestBidder != nil {
		bidder := l.HighestBidder.String()
		resp.HighestBidder = &bidder
	}
	return resp
}

func toBidResponse(b *domain.BidRecord) dto.BidResponse {
	return dto.BidResponse{
		ListingID: b.ListingID,
		Seq:       b.Seq,
		BidderID:  b.BidderID.String(),
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func toSettlementResponse(r *ports.SettlementResult) dto.SettlementResponse {
	resp := dto.SettlementResponse{
		Listing:   toListingResponse(r.Listing),
		Won:       r.Won,
		Amount:    r.Amount,
		Fee:       r.Fee,
		SellerNet: r.SellerNet,
	}
	if r.WinnerID != nil {
		winner := r.WinnerID.String()
		resp.WinnerID = &winner
	}
	return resp
}
