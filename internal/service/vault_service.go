package service

import (
	"context"
	"fmt"
	"time"

	"card-exchange/internal/core/domain"
	"card-exchange/internal/core/ports"
	"card-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VaultConfig holds the vault's static parameters. TierMultipliers maps a
// rarity tier (1..3) to its yield-rate multiplier; set once at construction
// with no runtime setter.
type VaultConfig struct {
	PoolAccount     uuid.UUID
	LockPeriod      time.Duration
	BaseYieldRate   int64
	TierMultipliers map[int]int64
}

// VaultServiceImpl implements ports.VaultService: stake custody, yield
// accrual and payout against the external ledger's yield pool account.
type VaultServiceImpl struct {
	stakeRepo   ports.StakeRepository
	yieldRepo   ports.YieldRepository
	listingRepo ports.ListingRepository
	stateRepo   ports.StateRepository
	ledger      ports.Ledger
	registry    ports.CardRegistry
	events      ports.EventPublisher
	transactor  ports.DBTransactor
	clock       ports.Clock
	cfg         VaultConfig
	log         zerolog.Logger
}

// NewVaultService creates a new VaultServiceImpl.
func NewVaultService(
	stakeRepo ports.StakeRepository,
	yieldRepo ports.YieldRepository,
	listingRepo ports.ListingRepository,
	stateRepo ports.StateRepository,
	ledger ports.Ledger,
	registry ports.CardRegistry,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	clock ports.Clock,
	cfg VaultConfig,
	log zerolog.Logger,
) *VaultServiceImpl {
	return &VaultServiceImpl{
		stakeRepo:   stakeRepo,
		yieldRepo:   yieldRepo,
		listingRepo: listingRepo,
		stateRepo:   stateRepo,
		ledger:      ledger,
		registry:    registry,
		events:      events,
		transactor:  transactor,
		clock:       clock,
		cfg:         cfg,
		log:         log,
	}
}

// Stake records a stake for a card the caller owns, credits the tier's
// yield rate to the caller's balance and seeds the same amount from the
// caller's ledger account into the yield pool. The seeding leg is a stake
// deposit, not a reward; the reward is paid later on unstake or claim.
func (s *VaultServiceImpl) Stake(ctx context.Context, req ports.StakeRequest) (*ports.StakeResult, error) {
	if !domain.ValidRarityTier(req.RarityTier) {
		return nil, apperror.ErrInvalidRarityTier()
	}

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

	staked, err := s.stakeRepo.HasStake(ctx, dbTx, req.CallerID, req.CardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check stake: %w", err))
	}
	if staked {
		return nil, apperror.ErrCardAlreadyStaked()
	}

	// A card with an active listing cannot also sit in the vault.
	listed, err := s.listingRepo.HasActiveForCard(ctx, dbTx, req.CardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check active listing: %w", err))
	}
	if listed {
		return nil, apperror.ErrCardListed()
	}

	yieldRate := s.cfg.TierMultipliers[req.RarityTier] * s.cfg.BaseYieldRate

	// Stake deposit into the pool; failure aborts the whole stake.
	if err := s.ledger.Transfer(ctx, req.CallerID, s.cfg.PoolAccount, yieldRate); err != nil {
		return nil, apperror.ErrLedgerTransferFailed(fmt.Errorf("stake deposit: %w", err))
	}

	now := s.clock.Now().UTC()
	record := &domain.StakeRecord{
		AccountID:  req.CallerID,
		CardID:     req.CardID,
		RarityTier: req.RarityTier,
		StakedAt:   now,
	}
	// The deposit already reached the pool; any later failure returns it so
	// the rolled-back stake leaves no funds behind.
	if err := s.stakeRepo.Create(ctx, dbTx, record); err != nil {
		s.reverseTransfer(ctx, s.cfg.PoolAccount, req.CallerID, yieldRate, "stake deposit")
		return nil, apperror.InternalError(fmt.Errorf("create stake: %w", err))
	}
	if err := s.yieldRepo.Add(ctx, dbTx, req.CallerID, yieldRate); err != nil {
		s.reverseTransfer(ctx, s.cfg.PoolAccount, req.CallerID, yieldRate, "stake deposit")
		return nil, apperror.InternalError(fmt.Errorf("credit yield balance: %w", err))
	}
	if err := s.stateRepo.AddTotalStaked(ctx, dbTx, 1); err != nil {
		s.reverseTransfer(ctx, s.cfg.PoolAccount, req.CallerID, yieldRate, "stake deposit")
		return nil, apperror.InternalError(fmt.Errorf("increment staked count: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		s.reverseTransfer(ctx, s.cfg.PoolAccount, req.CallerID, yieldRate, "stake deposit")
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventCardStaked,
		OccurredAt: now,
		Payload: domain.CardStakedPayload{
			AccountID:  req.CallerID,
			CardID:     req.CardID,
			RarityTier: req.RarityTier,
			YieldRate:  yieldRate,
		},
	})

	s.log.Info().
		Str("account_id", req.CallerID.String()).
		Int64("card_id", req.CardID).
		Int("rarity_tier", req.RarityTier).
		Int64("yield_rate", yieldRate).
		Msg("card staked")

	return &ports.StakeResult{Record: record, YieldRate: yieldRate}, nil
}

// Unstake withdraws a card after the lock period, paying out a
// duration-scaled portion of the caller's pooled yield balance: the whole
// balance scaled by stakedSeconds/86400 and clamped to the balance itself.
func (s *VaultServiceImpl) Unstake(ctx context.Context, callerID uuid.UUID, cardID int64) (*ports.UnstakeResult, error) {
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

	stake, err := s.stakeRepo.GetForUpdate(ctx, dbTx, callerID, cardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock stake: %w", err))
	}
	if stake == nil {
		return nil, apperror.ErrCardNotStaked()
	}

	now := s.clock.Now()
	if !stake.LockElapsed(now, s.cfg.LockPeriod) {
		return nil, apperror.ErrLockPeriodActive()
	}

	balance, err := s.yieldRepo.GetBalanceForUpdate(ctx, dbTx, callerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock yield balance: %w", err))
	}

	yieldEarned := domain.AccruedYield(balance, now.Sub(stake.StakedAt))

	if yieldEarned > 0 {
		if err := s.ledger.Transfer(ctx, s.cfg.PoolAccount, callerID, yieldEarned); err != nil {
			return nil, apperror.ErrLedgerTransferFailed(fmt.Errorf("yield payout: %w", err))
		}
	}

	// The payout already left the pool; any later failure pulls it back so
	// the rolled-back balance cannot be paid out again on retry.
	if err := s.stakeRepo.Delete(ctx, dbTx, callerID, cardID); err != nil {
		s.reverseTransfer(ctx, callerID, s.cfg.PoolAccount, yieldEarned, "yield payout")
		return nil, apperror.InternalError(fmt.Errorf("delete stake: %w", err))
	}
	if yieldEarned > 0 {
		if err := s.yieldRepo.Add(ctx, dbTx, callerID, -yieldEarned); err != nil {
			s.reverseTransfer(ctx, callerID, s.cfg.PoolAccount, yieldEarned, "yield payout")
			return nil, apperror.InternalError(fmt.Errorf("debit yield balance: %w", err))
		}
	}
	if err := s.stateRepo.AddTotalStaked(ctx, dbTx, -1); err != nil {
		s.reverseTransfer(ctx, callerID, s.cfg.PoolAccount, yieldEarned, "yield payout")
		return nil, apperror.InternalError(fmt.Errorf("decrement staked count: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		s.reverseTransfer(ctx, callerID, s.cfg.PoolAccount, yieldEarned, "yield payout")
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventCardUnstaked,
		OccurredAt: now.UTC(),
		Payload: domain.CardUnstakedPayload{
			AccountID:   callerID,
			CardID:      cardID,
			YieldEarned: yieldEarned,
		},
	})

	s.log.Info().
		Str("account_id", callerID.String()).
		Int64("card_id", cardID).
		Int64("yield_earned", yieldEarned).
		Msg("card unstaked")

	return &ports.UnstakeResult{
		CardID:           cardID,
		YieldEarned:      yieldEarned,
		RemainingBalance: balance - yieldEarned,
	}, nil
}

// Claim pays the caller's full yield balance from the pool and zeroes it,
// independent of any stake or lock state.
func (s *VaultServiceImpl) Claim(ctx context.Context, callerID uuid.UUID) (int64, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetShared(ctx, dbTx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("read exchange state: %w", err))
	}
	if state.Paused {
		return 0, apperror.ErrExchangePaused()
	}

	balance, err := s.yieldRepo.GetBalanceForUpdate(ctx, dbTx, callerID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("lock yield balance: %w", err))
	}
	if balance <= 0 {
		return 0, apperror.ErrNoYieldToClaim()
	}

	if err := s.ledger.Transfer(ctx, s.cfg.PoolAccount, callerID, balance); err != nil {
		return 0, apperror.ErrLedgerTransferFailed(fmt.Errorf("yield payout: %w", err))
	}

	if err := s.yieldRepo.Add(ctx, dbTx, callerID, -balance); err != nil {
		s.reverseTransfer(ctx, callerID, s.cfg.PoolAccount, balance, "claim payout")
		return 0, apperror.InternalError(fmt.Errorf("zero yield balance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		s.reverseTransfer(ctx, callerID, s.cfg.PoolAccount, balance, "claim payout")
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventYieldClaimed,
		OccurredAt: s.clock.Now().UTC(),
		Payload: domain.YieldClaimedPayload{
			AccountID: callerID,
			Amount:    balance,
		},
	})

	s.log.Info().
		Str("account_id", callerID.String()).
		Int64("amount", balance).
		Msg("yield claimed")

	return balance, nil
}

// GetYield returns the raw stored yield balance (zero = nothing accrued).
func (s *VaultServiceImpl) GetYield(ctx context.Context, accountID uuid.UUID) (int64, error) {
	balance, err := s.yieldRepo.GetBalance(ctx, accountID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get yield balance: %w", err))
	}
	return balance, nil
}

// GetStakedCard returns the stake record, or nil, nil when not staked.
func (s *VaultServiceImpl) GetStakedCard(ctx context.Context, accountID uuid.UUID, cardID int64) (*domain.StakeRecord, error) {
	stake, err := s.stakeRepo.Get(ctx, accountID, cardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get stake: %w", err))
	}
	return stake, nil
}

// reverseTransfer undoes one settled ledger leg after the surrounding
// operation failed. A failed reversal strands funds, so it is logged at
// error level for reconciliation.
func (s *VaultServiceImpl) reverseTransfer(ctx context.Context, from, to uuid.UUID, amount int64, leg string) {
	if amount <= 0 {
		return
	}
	if err := s.ledger.Transfer(ctx, from, to, amount); err != nil {
		s.log.Error().Err(err).
			Int64("amount", amount).
			Str("leg", leg).
			Msg("compensating transfer failed")
	}
}

// publish emits a domain event post-commit, best-effort.
func (s *VaultServiceImpl) publish(ctx context.Context, event domain.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event", string(event.Type)).Msg("failed to publish event")
	}
}
