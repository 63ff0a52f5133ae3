package service

import (
	"context"
	"testing"
	"time"

	"card-exchange/internal/core/domain"
	"card-exchange/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type adminTestDeps struct {
	svc        *AdminServiceImpl
	stateRepo  *mocks.MockStateRepository
	events     *mocks.MockEventPublisher
	transactor *mocks.MockDBTransactor
	clock      *mocks.MockClock
	adminID    uuid.UUID
	ctrl       *gomock.Controller
}

func setupAdminService(t *testing.T) *adminTestDeps {
	ctrl := gomock.NewController(t)
	d := &adminTestDeps{
		stateRepo:  mocks.NewMockStateRepository(ctrl),
		events:     mocks.NewMockEventPublisher(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		clock:      mocks.NewMockClock(ctrl),
		adminID:    uuid.New(),
		ctrl:       ctrl,
	}
	d.svc = NewAdminService(d.stateRepo, d.events, d.transactor, d.clock, d.adminID, zerolog.Nop())
	return d
}

func TestAdminService_Pause_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.ExchangeState{Paused: false}, nil)
	d.stateRepo.EXPECT().SetPaused(ctx, tx, true).Return(nil)
	d.clock.EXPECT().Now().Return(time.Now())
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	err := d.svc.Pause(ctx, d.adminID)
	assert.NoError(t, err)
}

func TestAdminService_Pause_NotAdmin(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	err := d.svc.Pause(context.Background(), uuid.New())
	assertAppError(t, err, "ADM_004")
}

func TestAdminService_Pause_AlreadyPaused(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.ExchangeState{Paused: true}, nil)

	err := d.svc.Pause(ctx, d.adminID)
	assertAppError(t, err, "ADM_001")
}

func TestAdminService_Unpause_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.ExchangeState{Paused: true}, nil)
	d.stateRepo.EXPECT().SetPaused(ctx, tx, false).Return(nil)
	d.clock.EXPECT().Now().Return(time.Now())
	d.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	err := d.svc.Unpause(ctx, d.adminID)
	assert.NoError(t, err)
}

func TestAdminService_Unpause_NotPaused(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.ExchangeState{Paused: false}, nil)

	err := d.svc.Unpause(ctx, d.adminID)
	assertAppError(t, err, "ADM_002")
}

func TestAdminService_SetFeePercent_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.ExchangeState{FeePercent: 2}, nil)
	d.stateRepo.EXPECT().SetFeePercent(ctx, tx, 5).Return(nil)

	err := d.svc.SetFeePercent(ctx, d.adminID, 5)
	assert.NoError(t, err)
}

func TestAdminService_SetFeePercent_OutOfRange(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	for _, pct := range []int{-1, 11} {
		err := d.svc.SetFeePercent(context.Background(), d.adminID, pct)
		assertAppError(t, err, "ADM_003")
	}
}

func TestAdminService_SetFeePercent_Bounds(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	for _, pct := range []int{0, 10} {
		tx := &mockTx{}
		d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
		d.stateRepo.EXPECT().GetForUpdate(ctx, tx).Return(&domain.ExchangeState{}, nil)
		d.stateRepo.EXPECT().SetFeePercent(ctx, tx, pct).Return(nil)

		err := d.svc.SetFeePercent(ctx, d.adminID, pct)
		assert.NoError(t, err)
	}
}

func TestAdminService_GetState(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.stateRepo.EXPECT().Get(ctx).Return(&domain.ExchangeState{Paused: false, FeePercent: 2, TotalStaked: 4}, nil)

	state, err := d.svc.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, state.FeePercent)
	assert.Equal(t, int64(4), state.TotalStaked)
}
