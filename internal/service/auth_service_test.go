package service

import (
	"context"
	"testing"
	"time"

	"card-exchange/internal/core/domain"
	"card-exchange/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestDeps struct {
	svc         *AuthServiceImpl
	accountRepo *mocks.MockAccountRepository
	hashSvc     *mocks.MockHashService
	tokenSvc    *mocks.MockTokenService
	ctrl        *gomock.Controller
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		hashSvc:     mocks.NewMockHashService(ctrl),
		tokenSvc:    mocks.NewMockTokenService(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAuthService(d.accountRepo, d.hashSvc, d.tokenSvc)
	return d
}

func TestAuthService_Register_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.accountRepo.EXPECT().GetByUsername(ctx, "collector1").Return(nil, nil)
	d.hashSvc.EXPECT().Hash("s3cret").Return("$argon2id$hash", nil)
	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := d.svc.Register(ctx, "collector1", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "collector1", account.Username)
	assert.Equal(t, "$argon2id$hash", account.PasswordHash)
	assert.NotEqual(t, uuid.Nil, account.ID)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	existing := &domain.Account{ID: uuid.New(), Username: "collector1"}

	d.accountRepo.EXPECT().GetByUsername(ctx, "collector1").Return(existing, nil)

	_, err := d.svc.Register(ctx, "collector1", "s3cret")
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_Login_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.Account{ID: uuid.New(), Username: "collector1", PasswordHash: "$argon2id$hash"}
	expiresAt := time.Now().Add(time.Hour)

	d.accountRepo.EXPECT().GetByUsername(ctx, "collector1").Return(account, nil)
	d.hashSvc.EXPECT().Verify("s3cret", "$argon2id$hash").Return(true, nil)
	d.tokenSvc.EXPECT().Generate(account.ID).Return("jwt-token", expiresAt, nil)

	token, exp, err := d.svc.Login(ctx, "collector1", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiresAt, exp)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	account := &domain.Account{ID: uuid.New(), Username: "collector1", PasswordHash: "$argon2id$hash"}

	d.accountRepo.EXPECT().GetByUsername(ctx, "collector1").Return(account, nil)
	d.hashSvc.EXPECT().Verify("wrong", "$argon2id$hash").Return(false, nil)

	_, _, err := d.svc.Login(ctx, "collector1", "wrong")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.accountRepo.EXPECT().GetByUsername(ctx, "nobody").Return(nil, nil)

	_, _, err := d.svc.Login(ctx, "nobody", "pw")
	assertAppError(t, err, "AUTH_001")
}
