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

// AdminServiceImpl implements ports.AdminService. Every operation is gated
// on the single configured administrator principal.
type AdminServiceImpl struct {
	stateRepo  ports.StateRepository
	events     ports.EventPublisher
	transactor ports.DBTransactor
	clock      ports.Clock
	adminID    uuid.UUID
	log        zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(
	stateRepo ports.StateRepository,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	clock ports.Clock,
	adminID uuid.UUID,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		stateRepo:  stateRepo,
		events:     events,
		transactor: transactor,
		clock:      clock,
		adminID:    adminID,
		log:        log,
	}
}

// Pause halts every mutating operation. The state row is locked so any
// in-flight mutation holding its FOR SHARE read serializes before the flip.
func (s *AdminServiceImpl) Pause(ctx context.Context, callerID uuid.UUID) error {
	if callerID != s.adminID {
		return apperror.ErrAdminOnly()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock exchange state: %w", err))
	}
	if state.Paused {
		return apperror.ErrExchangePaused()
	}

	if err := s.stateRepo.SetPaused(ctx, dbTx, true); err != nil {
		return apperror.InternalError(fmt.Errorf("set paused: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventPaused,
		OccurredAt: s.clock.Now().UTC(),
		Payload:    domain.PausePayload{AdminID: callerID},
	})

	s.log.Warn().Str("admin_id", callerID.String()).Msg("exchange paused")
	return nil
}

// Unpause resumes mutating operations.
func (s *AdminServiceImpl) Unpause(ctx context.Context, callerID uuid.UUID) error {
	if callerID != s.adminID {
		return apperror.ErrAdminOnly()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	state, err := s.stateRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock exchange state: %w", err))
	}
	if !state.Paused {
		return apperror.ErrExchangeNotPaused()
	}

	if err := s.stateRepo.SetPaused(ctx, dbTx, false); err != nil {
		return apperror.InternalError(fmt.Errorf("set unpaused: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventUnpaused,
		OccurredAt: s.clock.Now().UTC(),
		Payload:    domain.PausePayload{AdminID: callerID},
	})

	s.log.Warn().Str("admin_id", callerID.String()).Msg("exchange unpaused")
	return nil
}

// SetFeePercent updates the settlement fee, bounded [0,10].
func (s *AdminServiceImpl) SetFeePercent(ctx context.Context, callerID uuid.UUID, feePercent int) error {
	if callerID != s.adminID {
		return apperror.ErrAdminOnly()
	}
	if !domain.ValidFeePercent(feePercent) {
		return apperror.ErrFeePercentOutOfRange()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if _, err := s.stateRepo.GetForUpdate(ctx, dbTx); err != nil {
		return apperror.InternalError(fmt.Errorf("lock exchange state: %w", err))
	}
	if err := s.stateRepo.SetFeePercent(ctx, dbTx, feePercent); err != nil {
		return apperror.InternalError(fmt.Errorf("set fee percent: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("admin_id", callerID.String()).
		Int("fee_percent", feePercent).
		Msg("fee percent updated")
	return nil
}

// GetState returns the current global state.
func (s *AdminServiceImpl) GetState(ctx context.Context) (*domain.ExchangeState, error) {
	state, err := s.stateRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get exchange state: %w", err))
	}
	return state, nil
}

func (s *AdminServiceImpl) publish(ctx context.Context, event domain.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event", string(event.Type)).Msg("failed to publish event")
	}
}
