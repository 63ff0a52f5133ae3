package service

import (
	"context"
	"fmt"

	"card-exchange/internal/core/domain"
	"card-exchange/internal/core/ports"
	"card-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ListingServiceImpl implements ports.ListingService: listing lifecycle,
// bid escrow custody and auction settlement.
type ListingServiceImpl struct {
	listingRepo ports.ListingRepository
	bidRepo     ports.BidRepository
	stakeRepo   ports.StakeRepository
	stateRepo   ports.StateRepository
	ledger      ports.Ledger
	registry    ports.CardRegistry
	events      ports.EventPublisher
	transactor  ports.DBTransactor
	clock       ports.Clock
	treasury    uuid.UUID
	escrowAcct  uuid.UUID
	log         zerolog.Logger
}

// NewListingService creates a new ListingServiceImpl. treasury and
// escrowAcct are the platform's ledger principals for fee routing and bid
// custody.
func NewListingService(
	listingRepo ports.ListingRepository,
	bidRepo ports.BidRepository,
	stakeRepo ports.StakeRepository,
	stateRepo ports.StateRepository,
	ledger ports.Ledger,
	registry ports.CardRegistry,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	clock ports.Clock,
	treasury uuid.UUID,
	escrowAcct uuid.UUID,
	log zerolog.Logger,
) *ListingServiceImpl {
	return &ListingServiceImpl{
		listingRepo: listingRepo,
		bidRepo:     bidRepo,
		stakeRepo:   stakeRepo,
		stateRepo:   stateRepo,
		ledger:      ledger,
		registry:    registry,
		events:      events,
		transactor:  transactor,
		clock:       clock,
		treasury:    treasury,
		escrowAcct:  escrowAcct,
		log:         log,
	}
}

// List creates a new sale or auction listing for a card the caller owns.
func (s *ListingServiceImpl) List(ctx context.Context, req ports.ListRequest) (*domain.Listing, error) {
	if req.Price <= 0 {
		return nil, apperror.ErrInvalidPrice()
	}
	if req.IsAuction && req.AuctionDuration <= 0 {
		return nil, apperror.ErrInvalidAuctionDuration()
	}

	// Ownership is authorized against the external registry; the registry
	// is never mutated on sale.
	owner, err := s.registry.OwnerOf(ctx, req.CardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("card registry lookup: %w", err))
	}
	if owner != req.CallerID {
		return nil, apperror.ErrNotCardOwner()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetShared(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read exchange state: %w", err))
	}
	if state.Paused {
		return nil, apperror.ErrExchangePaused()
	}

	// A card committed to the vault or to another listing cannot be listed.
	listed, err := s.listingRepo.HasActiveForCard(ctx, dbTx, req.CardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check active listing: %w", err))
	}
	if listed {
		return nil, apperror.ErrCardAlreadyListed()
	}
	staked, err := s.stakeRepo.HasStake(ctx, dbTx, req.CallerID, req.CardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check stake: %w", err))
	}
	if staked {
		return nil, apperror.ErrCardAlreadyStaked()
	}

	now := s.clock.Now().UTC()
	listing := &domain.Listing{
		CardID:    req.CardID,
		SellerID:  req.CallerID,
		Price:     req.Price,
		IsAuction: req.IsAuction,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.IsAuction {
		end := now.Add(req.AuctionDuration)
		listing.AuctionEndTime = &end
	}

	id, err := s.listingRepo.Create(ctx, dbTx, listing)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create listing: %w", err))
	}
	listing.ID = id

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventListed,
		OccurredAt: now,
		Payload: domain.ListedPayload{
			ListingID:      listing.ID,
			CardID:         listing.CardID,
			SellerID:       listing.SellerID,
			Price:          listing.Price,
			IsAuction:      listing.IsAuction,
			AuctionEndTime: listing.AuctionEndTime,
		},
	})

	s.log.Info().
		Int64("listing_id", listing.ID).
		Int64("card_id", listing.CardID).
		Str("seller_id", listing.SellerID.String()).
		Int64("price", listing.Price).
		Bool("is_auction", listing.IsAuction).
		Msg("listing created")

	return listing, nil
}

// Buy settles a direct (non-auction) sale: the buyer pays the fee to the
// treasury and the remainder to the seller, and the listing closes.
func (s *ListingServiceImpl) Buy(ctx context.Context, callerID uuid.UUID, listingID int64) (*ports.SettlementResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetShared(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read exchange state: %w", err))
	}
	if state.Paused {
		return nil, apperror.ErrExchangePaused()
	}

	listing, err := s.listingRepo.GetByIDForUpdate(ctx, dbTx, listingID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing == nil {
		return nil, apperror.ErrListingNotFound()
	}
	if !listing.Active {
		return nil, apperror.ErrListingClosed()
	}
	if listing.IsAuction {
		return nil, apperror.ErrIsAnAuction()
	}

	fee, net := domain.SplitProceeds(listing.Price, state.FeePercent)

	// Buyer pays fee and net in two ledger legs. Once any leg has moved,
	// every later failure reverses the settled legs before aborting so the
	// rolled-back sale leaves no funds with the treasury or seller.
	undoSettlement := func() {
		s.reverseTransfer(ctx, listing.SellerID, callerID, net, listingID, "sale net")
		s.reverseTransfer(ctx, s.treasury, callerID, fee, listingID, "sale fee")
	}
	if fee > 0 {
		if err := s.ledger.Transfer(ctx, callerID, s.treasury, fee); err != nil {
			return nil, apperror.ErrLedgerTransferFailed(fmt.Errorf("fee transfer: %w", err))
		}
	}
	if err := s.ledger.Transfer(ctx, callerID, listing.SellerID, net); err != nil {
		s.reverseTransfer(ctx, s.treasury, callerID, fee, listingID, "sale fee")
		return nil, apperror.ErrLedgerTransferFailed(fmt.Errorf("seller transfer: %w", err))
	}

	if err := s.listingRepo.Deactivate(ctx, dbTx, listingID); err != nil {
		undoSettlement()
		return nil, apperror.InternalError(fmt.Errorf("deactivate listing: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		undoSettlement()
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	listing.Active = false
	now := s.clock.Now().UTC()
	s.publish(ctx, domain.Event{
		Type:       domain.EventPurchased,
		OccurredAt: now,
		Payload: domain.PurchasedPayload{
			ListingID: listing.ID,
			CardID:    listing.CardID,
			SellerID:  listing.SellerID,
			BuyerID:   callerID,
			Price:     listing.Price,
			Fee:       fee,
			SellerNet: net,
		},
	})

	s.log.Info().
		Int64("listing_id", listingID).
		Str("buyer_id", callerID.String()).
		Int64("price", listing.Price).
		Int64("fee", fee).
		Msg("listing purchased")

	return &ports.SettlementResult{
		Listing:   listing,
		Won:       true,
		WinnerID:  &callerID,
		Amount:    listing.Price,
		Fee:       fee,
		SellerNet: net,
	}, nil
}

// Cancel closes a listing without moving funds. Only the seller may cancel;
// an auction cannot be cancelled while it is open or once a bid has been
// escrowed; the leader must be settled through EndAuction instead.
func (s *ListingServiceImpl) Cancel(ctx context.Context, callerID uuid.UUID, listingID int64) (*domain.Listing, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetShared(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read exchange state: %w", err))
	}
	if state.Paused {
		return nil, apperror.ErrExchangePaused()
	}

	listing, err := s.listingRepo.GetByIDForUpdate(ctx, dbTx, listingID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing == nil {
		return nil, apperror.ErrListingNotFound()
	}
	if !listing.Active {
		return nil, apperror.ErrListingClosed()
	}
	if listing.SellerID != callerID {
		return nil, apperror.ErrNotSeller()
	}
	if listing.IsAuction {
		if listing.IsOpenAuction(s.clock.Now()) {
			return nil, apperror.ErrAuctionStillOpen()
		}
		if listing.HasLeader() {
			return nil, apperror.ErrAuctionHasBids()
		}
	}

	if err := s.listingRepo.Deactivate(ctx, dbTx, listingID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deactivate listing: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	listing.Active = false
	s.publish(ctx, domain.Event{
		Type:       domain.EventListingCancelled,
		OccurredAt: s.clock.Now().UTC(),
		Payload: domain.ListingCancelledPayload{
			ListingID: listing.ID,
			CardID:    listing.CardID,
			SellerID:  listing.SellerID,
		},
	})

	s.log.Info().Int64("listing_id", listingID).Msg("listing cancelled")

	return listing, nil
}

// PlaceBid escrows a new leading bid. The minimum accepted amount is
// max(price, floor(highestBid*105/100)). Funds move into escrow before the
// bidder is recorded as leader, and the outbid party is refunded from
// escrow as part of the same call.
func (s *ListingServiceImpl) PlaceBid(ctx context.Context, callerID uuid.UUID, listingID int64, amount int64) (*domain.BidRecord, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetShared(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read exchange state: %w", err))
	}
	if state.Paused {
		return nil, apperror.ErrExchangePaused()
	}

	listing, err := s.listingRepo.GetByIDForUpdate(ctx, dbTx, listingID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing == nil {
		return nil, apperror.ErrListingNotFound()
	}
	if !listing.Active {
		return nil, apperror.ErrListingClosed()
	}
	if !listing.IsAuction {
		return nil, apperror.ErrNotAnAuction()
	}
	now := s.clock.Now()
	if listing.AuctionEnded(now) {
		return nil, apperror.ErrAuctionEnded()
	}
	if amount < listing.MinimumBid() {
		return nil, apperror.ErrBidTooLow()
	}

	// Escrow-then-record: pull the bid into escrow first so a leader is
	// never recorded whose funds did not arrive.
	if err := s.ledger.Transfer(ctx, callerID, s.escrowAcct, amount); err != nil {
		return nil, apperror.ErrLedgerTransferFailed(fmt.Errorf("escrow bid: %w", err))
	}

	// Refund the outbid leader from escrow. If the refund fails, return
	// the new bid and abort so no escrowed balance is ever lost.
	var prevLeader *uuid.UUID
	var prevEscrow int64
	if listing.HasLeader() && listing.Escrow > 0 {
		prevLeader = listing.HighestBidder
		prevEscrow = listing.Escrow
		if err := s.ledger.Transfer(ctx, s.escrowAcct, *prevLeader, prevEscrow); err != nil {
			s.reverseTransfer(ctx, s.escrowAcct, callerID, amount, listingID, "bid escrow")
			return nil, apperror.ErrLedgerTransferFailed(fmt.Errorf("refund outbid leader: %w", err))
		}
	}

	// After the refund the rolled-back row still names the previous leader,
	// so any later failure must restore their escrowed funds as well as
	// return the new bid.
	undoBid := func() {
		s.reverseTransfer(ctx, s.escrowAcct, callerID, amount, listingID, "bid escrow")
		if prevLeader != nil {
			s.reverseTransfer(ctx, *prevLeader, s.escrowAcct, prevEscrow, listingID, "outbid refund")
		}
	}

	bid := &domain.BidRecord{
		ListingID: listingID,
		Seq:       listing.BidCount,
		BidderID:  callerID,
		Amount:    amount,
		CreatedAt: now.UTC(),
	}
	if err := s.bidRepo.Append(ctx, dbTx, bid); err != nil {
		undoBid()
		return nil, apperror.InternalError(fmt.Errorf("append bid record: %w", err))
	}
	if err := s.listingRepo.UpdateAuctionState(ctx, dbTx, listingID, amount, amount, callerID, listing.BidCount+1); err != nil {
		undoBid()
		return nil, apperror.InternalError(fmt.Errorf("update auction state: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		undoBid()
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventBidPlaced,
		OccurredAt: bid.CreatedAt,
		Payload: domain.BidPlacedPayload{
			ListingID: listingID,
			Seq:       bid.Seq,
			BidderID:  callerID,
			Amount:    amount,
		},
	})

	s.log.Info().
		Int64("listing_id", listingID).
		Str("bidder_id", callerID.String()).
		Int64("amount", amount).
		Int("seq", bid.Seq).
		Msg("bid placed")

	return bid, nil
}

// EndAuction settles an auction whose end time has passed. With a leader,
// the escrowed amount is split between treasury and seller; without bids
// the listing simply closes. A second call finds the listing inactive and
// fails, so settlement can never pay twice.
func (s *ListingServiceImpl) EndAuction(ctx context.Context, callerID uuid.UUID, listingID int64) (*ports.SettlementResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetShared(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read exchange state: %w", err))
	}
	if state.Paused {
		return nil, apperror.ErrExchangePaused()
	}

	listing, err := s.listingRepo.GetByIDForUpdate(ctx, dbTx, listingID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing == nil {
		return nil, apperror.ErrListingNotFound()
	}
	if !listing.Active {
		return nil, apperror.ErrListingClosed()
	}
	if !listing.IsAuction {
		return nil, apperror.ErrNotAnAuction()
	}
	if !listing.AuctionEnded(s.clock.Now()) {
		return nil, apperror.ErrAuctionStillOpen()
	}

	var fee, net int64
	won := listing.HasLeader()
	if won {
		fee, net = domain.SplitProceeds(listing.Escrow, state.FeePercent)

		if fee > 0 {
			if err := s.ledger.Transfer(ctx, s.escrowAcct, s.treasury, fee); err != nil {
				return nil, apperror.ErrLedgerTransferFailed(fmt.Errorf("fee transfer: %w", err))
			}
		}
		if err := s.ledger.Transfer(ctx, s.escrowAcct, listing.SellerID, net); err != nil {
			s.reverseTransfer(ctx, s.treasury, s.escrowAcct, fee, listingID, "auction fee")
			return nil, apperror.ErrLedgerTransferFailed(fmt.Errorf("seller transfer: %w", err))
		}
	}

	// The rolled-back row keeps the listing active with escrow recorded, so
	// a failure after payout must pull the settled legs back into escrow or
	// a retry would pay out the same escrow twice.
	undoSettlement := func() {
		if !won {
			return
		}
		s.reverseTransfer(ctx, listing.SellerID, s.escrowAcct, net, listingID, "auction net")
		s.reverseTransfer(ctx, s.treasury, s.escrowAcct, fee, listingID, "auction fee")
	}

	if err := s.listingRepo.Deactivate(ctx, dbTx, listingID); err != nil {
		undoSettlement()
		return nil, apperror.InternalError(fmt.Errorf("deactivate listing: %w", err))
	}
	if err := s.listingRepo.ClearEscrow(ctx, dbTx, listingID); err != nil {
		undoSettlement()
		return nil, apperror.InternalError(fmt.Errorf("clear escrow: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		undoSettlement()
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	amount := listing.Escrow
	listing.Active = false
	listing.Escrow = 0

	s.publish(ctx, domain.Event{
		Type:       domain.EventAuctionEnded,
		OccurredAt: s.clock.Now().UTC(),
		Payload: domain.AuctionEndedPayload{
			ListingID: listing.ID,
			CardID:    listing.CardID,
			SellerID:  listing.SellerID,
			Won:       won,
			WinnerID:  listing.HighestBidder,
			Amount:    amount,
			Fee:       fee,
			SellerNet: net,
		},
	})

	s.log.Info().
		Int64("listing_id", listingID).
		Bool("won", won).
		Int64("amount", amount).
		Int64("fee", fee).
		Msg("auction ended")

	return &ports.SettlementResult{
		Listing:   listing,
		Won:       won,
		WinnerID:  listing.HighestBidder,
		Amount:    amount,
		Fee:       fee,
		SellerNet: net,
	}, nil
}

// GetListing fetches a listing by ID.
func (s *ListingServiceImpl) GetListing(ctx context.Context, listingID int64) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get listing: %w", err))
	}
	if listing == nil {
		return nil, apperror.ErrListingNotFound()
	}
	return listing, nil
}

// GetBid fetches one bid history record; an out-of-range sequence number is
// a lookup error, never a silent default.
func (s *ListingServiceImpl) GetBid(ctx context.Context, listingID int64, seq int) (*domain.BidRecord, error) {
	if seq < 0 {
		return nil, apperror.ErrBidNotFound()
	}
	bid, err := s.bidRepo.Get(ctx, listingID, seq)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get bid: %w", err))
	}
	if bid == nil {
		return nil, apperror.ErrBidNotFound()
	}
	return bid, nil
}

// reverseTransfer undoes one settled ledger leg after the surrounding
// operation failed. A failed reversal strands funds, so it is logged at
// error level for reconciliation.
func (s *ListingServiceImpl) reverseTransfer(ctx context.Context, from, to uuid.UUID, amount int64, listingID int64, leg string) {
	if amount <= 0 {
		return
	}
	if err := s.ledger.Transfer(ctx, from, to, amount); err != nil {
		s.log.Error().Err(err).
			Int64("listing_id", listingID).
			Int64("amount", amount).
			Str("leg", leg).
			Msg("compensating transfer failed")
	}
}

// publish emits a domain event post-commit, best-effort.
func (s *ListingServiceImpl) publish(ctx context.Context, event domain.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event", string(event.Type)).Msg("failed to publish event")
	}
}
