package service

import (
	"context"
	"testing"
	"time"

	"card-exchange/internal/core/domain"
	"card-exchange/internal/core/ports"
	"card-exchange/internal/core/ports/mocks"
	"card-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPool = uuid.MustParse("33333333-3333-3333-3333-333333333333")

type vaultTestDeps struct {
	svc         *VaultServiceImpl
	stakeRepo   *mocks.MockStakeRepository
	yieldRepo   *mocks.MockYieldRepository
	listingRepo *mocks.MockListingRepository
	stateRepo   *mocks.MockStateRepository
	ledger      *mocks.MockLedger
	registry    *mocks.MockCardRegistry
	events      *mocks.MockEventPublisher
	transactor  *mocks.MockDBTransactor
	clock       *mocks.MockClock
	ctrl        *gomock.Controller
}

func setupVaultService(t *testing.T) *vaultTestDeps {
	ctrl := gomock.NewController(t)
	d := &vaultTestDeps{
		stakeRepo:   mocks.NewMockStakeRepository(ctrl),
		yieldRepo:   mocks.NewMockYieldRepository(ctrl),
		listingRepo: mocks.NewMockListingRepository(ctrl),
		stateRepo:   mocks.NewMockStateRepository(ctrl),
		ledger:      mocks.NewMockLedger(ctrl),
		registry:    mocks.NewMockCardRegistry(ctrl),
		events:      mocks.NewMockEventPublisher(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		clock:       mocks.NewMockClock(ctrl),
		ctrl:        ctrl,
	}
	cfg := VaultConfig{
		PoolAccount:     testPool,
		LockPeriod:      7 * 24 * time.Hour,
		BaseYieldRate:   50,
		TierMultipliers: map[int]int64{1: 10, 2: 20, 3: 30},
	}
	d.svc = NewVaultService(
		d.stakeRepo, d.yieldRepo, d.listingRepo, d.stateRepo,
		d.ledger, d.registry, d.events, d.transactor, d.clock,
		cfg, zerolog.Nop(),
	)
	return d
}

// ==================== Stake Tests ====================

func TestVaultService_Stake_Success(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	req := ports.StakeRequest{CallerID: caller, CardID: 7, RarityTier: 2}

	d.registry.EXPECT().OwnerOf(ctx, int64(7)).Return(caller, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().HasStake(ctx, tx, caller, int64(7)).Return(false, nil)
	d.listingRepo.EXPECT().HasActiveForCard(ctx, tx, int64(7)).Return(false, nil)
	// Tier 2: multiplier 20 * base 50 = 1000.
	d.ledger.EXPECT().Transfer(ctx, caller, testPool, int64(1000)).Return(nil)
	d.clock.EXPECT().Now().Return(now)
	d.stakeRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.yieldRepo.EXPECT().Add(ctx, tx, caller, int64(1000)).Return(nil)
	d.stateRepo.EXPECT().AddTotalStaked(ctx, tx, int64(1)).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.Stake(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.YieldRate)
	assert.Equal(t, 2, result.Record.RarityTier)
	assert.Equal(t, now, result.Record.StakedAt)
}

func TestVaultService_Stake_InvalidTier(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	for _, tier := range []int{0, 4, -1} {
		_, err := d.svc.Stake(context.Background(), ports.StakeRequest{CallerID: uuid.New(), CardID: 7, RarityTier: tier})
		assertAppError(t, err, "VLT_001")
	}
}

func TestVaultService_Stake_NotOwner(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.registry.EXPECT().OwnerOf(ctx, int64(7)).Return(uuid.New(), nil)

	_, err := d.svc.Stake(ctx, ports.StakeRequest{CallerID: uuid.New(), CardID: 7, RarityTier: 1})
	assertAppError(t, err, "AUTH_004")
}

func TestVaultService_Stake_AlreadyStaked(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}

	d.registry.EXPECT().OwnerOf(ctx, int64(7)).Return(caller, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().HasStake(ctx, tx, caller, int64(7)).Return(true, nil)

	_, err := d.svc.Stake(ctx, ports.StakeRequest{CallerID: caller, CardID: 7, RarityTier: 1})
	assertAppError(t, err, "VLT_002")
}

func TestVaultService_Stake_CardListed(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}

	d.registry.EXPECT().OwnerOf(ctx, int64(7)).Return(caller, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().HasStake(ctx, tx, caller, int64(7)).Return(false, nil)
	d.listingRepo.EXPECT().HasActiveForCard(ctx, tx, int64(7)).Return(true, nil)

	_, err := d.svc.Stake(ctx, ports.StakeRequest{CallerID: caller, CardID: 7, RarityTier: 1})
	assertAppError(t, err, "VLT_006")
}

func TestVaultService_Stake_DepositFails(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}

	d.registry.EXPECT().OwnerOf(ctx, int64(7)).Return(caller, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().HasStake(ctx, tx, caller, int64(7)).Return(false, nil)
	d.listingRepo.EXPECT().HasActiveForCard(ctx, tx, int64(7)).Return(false, nil)
	d.ledger.EXPECT().Transfer(ctx, caller, testPool, int64(500)).Return(apperror.ErrLedgerTransferFailed(assert.AnError))

	_, err := d.svc.Stake(ctx, ports.StakeRequest{CallerID: caller, CardID: 7, RarityTier: 1})
	assertAppError(t, err, "LGR_001")
}

func TestVaultService_Stake_CreateFails_ReversesDeposit(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	d.registry.EXPECT().OwnerOf(ctx, int64(7)).Return(caller, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().HasStake(ctx, tx, caller, int64(7)).Return(false, nil)
	d.listingRepo.EXPECT().HasActiveForCard(ctx, tx, int64(7)).Return(false, nil)
	d.ledger.EXPECT().Transfer(ctx, caller, testPool, int64(1000)).Return(nil)
	d.clock.EXPECT().Now().Return(now)
	d.stakeRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(assert.AnError)
	// The deposit comes back out of the pool since no stake was recorded.
	d.ledger.EXPECT().Transfer(ctx, testPool, caller, int64(1000)).Return(nil)

	_, err := d.svc.Stake(ctx, ports.StakeRequest{CallerID: caller, CardID: 7, RarityTier: 2})
	assertAppError(t, err, "SYS_001")
}

// ==================== Unstake Tests ====================

func TestVaultService_Unstake_Success(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}
	stakedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	// 8 days staked: lock (7d) elapsed; 12h accrual window used below.
	now := stakedAt.Add(8 * 24 * time.Hour)

	stake := &domain.StakeRecord{AccountID: caller, CardID: 7, RarityTier: 2, StakedAt: stakedAt}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().GetForUpdate(ctx, tx, caller, int64(7)).Return(stake, nil)
	d.clock.EXPECT().Now().Return(now)
	d.yieldRepo.EXPECT().GetBalanceForUpdate(ctx, tx, caller).Return(int64(1000), nil)
	// 8 days > 1 day, so the accrual clamps to the full balance.
	d.ledger.EXPECT().Transfer(ctx, testPool, caller, int64(1000)).Return(nil)
	d.stakeRepo.EXPECT().Delete(ctx, tx, caller, int64(7)).Return(nil)
	d.yieldRepo.EXPECT().Add(ctx, tx, caller, int64(-1000)).Return(nil)
	d.stateRepo.EXPECT().AddTotalStaked(ctx, tx, int64(-1)).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.Unstake(ctx, caller, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.YieldEarned)
	assert.Equal(t, int64(0), result.RemainingBalance)
}

func TestVaultService_Unstake_LockActive(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}
	stakedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := stakedAt.Add(6 * 24 * time.Hour)

	stake := &domain.StakeRecord{AccountID: caller, CardID: 7, RarityTier: 1, StakedAt: stakedAt}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().GetForUpdate(ctx, tx, caller, int64(7)).Return(stake, nil)
	d.clock.EXPECT().Now().Return(now)

	_, err := d.svc.Unstake(ctx, caller, 7)
	assertAppError(t, err, "VLT_004")
}

func TestVaultService_Unstake_LockBoundary(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}
	stakedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	// Exactly at the lock boundary withdrawal is allowed.
	now := stakedAt.Add(7 * 24 * time.Hour)

	stake := &domain.StakeRecord{AccountID: caller, CardID: 7, RarityTier: 1, StakedAt: stakedAt}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().GetForUpdate(ctx, tx, caller, int64(7)).Return(stake, nil)
	d.clock.EXPECT().Now().Return(now)
	d.yieldRepo.EXPECT().GetBalanceForUpdate(ctx, tx, caller).Return(int64(500), nil)
	d.ledger.EXPECT().Transfer(ctx, testPool, caller, int64(500)).Return(nil)
	d.stakeRepo.EXPECT().Delete(ctx, tx, caller, int64(7)).Return(nil)
	d.yieldRepo.EXPECT().Add(ctx, tx, caller, int64(-500)).Return(nil)
	d.stateRepo.EXPECT().AddTotalStaked(ctx, tx, int64(-1)).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.Unstake(ctx, caller, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(500), result.YieldEarned)
}

func TestVaultService_Unstake_DeleteFails_ReversesPayout(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}
	stakedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := stakedAt.Add(8 * 24 * time.Hour)

	stake := &domain.StakeRecord{AccountID: caller, CardID: 7, RarityTier: 2, StakedAt: stakedAt}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().GetForUpdate(ctx, tx, caller, int64(7)).Return(stake, nil)
	d.clock.EXPECT().Now().Return(now)
	d.yieldRepo.EXPECT().GetBalanceForUpdate(ctx, tx, caller).Return(int64(1000), nil)
	d.ledger.EXPECT().Transfer(ctx, testPool, caller, int64(1000)).Return(nil)
	d.stakeRepo.EXPECT().Delete(ctx, tx, caller, int64(7)).Return(assert.AnError)
	// The payout returns to the pool; the rolled-back balance stays claimable.
	d.ledger.EXPECT().Transfer(ctx, caller, testPool, int64(1000)).Return(nil)

	_, err := d.svc.Unstake(ctx, caller, 7)
	assertAppError(t, err, "SYS_001")
}

func TestVaultService_Unstake_NotStaked(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().GetForUpdate(ctx, tx, caller, int64(7)).Return(nil, nil)

	_, err := d.svc.Unstake(ctx, caller, 7)
	assertAppError(t, err, "VLT_003")
}

func TestVaultService_Unstake_ZeroBalance_NoPayout(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}
	stakedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := stakedAt.Add(8 * 24 * time.Hour)

	stake := &domain.StakeRecord{AccountID: caller, CardID: 7, RarityTier: 1, StakedAt: stakedAt}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.stakeRepo.EXPECT().GetForUpdate(ctx, tx, caller, int64(7)).Return(stake, nil)
	d.clock.EXPECT().Now().Return(now)
	d.yieldRepo.EXPECT().GetBalanceForUpdate(ctx, tx, caller).Return(int64(0), nil)
	// No ledger payout and no balance debit at zero.
	d.stakeRepo.EXPECT().Delete(ctx, tx, caller, int64(7)).Return(nil)
	d.stateRepo.EXPECT().AddTotalStaked(ctx, tx, int64(-1)).Return(nil)
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.Unstake(ctx, caller, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.YieldEarned)
}

// ==================== Claim Tests ====================

func TestVaultService_Claim_Success(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.yieldRepo.EXPECT().GetBalanceForUpdate(ctx, tx, caller).Return(int64(1500), nil)
	d.ledger.EXPECT().Transfer(ctx, testPool, caller, int64(1500)).Return(nil)
	d.yieldRepo.EXPECT().Add(ctx, tx, caller, int64(-1500)).Return(nil)
	d.clock.EXPECT().Now().Return(time.Now())
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	amount, err := d.svc.Claim(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), amount)
}

func TestVaultService_Claim_DebitFails_ReversesPayout(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.yieldRepo.EXPECT().GetBalanceForUpdate(ctx, tx, caller).Return(int64(1500), nil)
	d.ledger.EXPECT().Transfer(ctx, testPool, caller, int64(1500)).Return(nil)
	d.yieldRepo.EXPECT().Add(ctx, tx, caller, int64(-1500)).Return(assert.AnError)
	// The payout returns to the pool; the balance was never debited.
	d.ledger.EXPECT().Transfer(ctx, caller, testPool, int64(1500)).Return(nil)

	_, err := d.svc.Claim(ctx, caller)
	assertAppError(t, err, "SYS_001")
}

func TestVaultService_Claim_NothingAccrued(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(openState(), nil)
	d.yieldRepo.EXPECT().GetBalanceForUpdate(ctx, tx, caller).Return(int64(0), nil)

	_, err := d.svc.Claim(ctx, caller)
	assertAppError(t, err, "VLT_005")
}

func TestVaultService_Claim_Paused(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetShared(ctx, tx).Return(&domain.ExchangeState{Paused: true}, nil)

	_, err := d.svc.Claim(ctx, uuid.New())
	assertAppError(t, err, "ADM_001")
}

// ==================== Read Tests ====================

func TestVaultService_GetYield(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	d.yieldRepo.EXPECT().GetBalance(ctx, caller).Return(int64(300), nil)

	balance, err := d.svc.GetYield(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, int64(300), balance)
}

func TestVaultService_GetStakedCard_NotStaked(t *testing.T) {
	d := setupVaultService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()
	d.stakeRepo.EXPECT().Get(ctx, caller, int64(7)).Return(nil, nil)

	stake, err := d.svc.GetStakedCard(ctx, caller, 7)
	require.NoError(t, err)
	assert.Nil(t, stake)
}
