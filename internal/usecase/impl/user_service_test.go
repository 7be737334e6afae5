package impl

import (
	"context"
	"testing"
	"time"

	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	mockRepo "dealspot/internal/mocks/repository"
	mockSvc "dealspot/internal/mocks/service"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	passwordHasher   *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	mocks := &userServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		passwordHasher:   mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	service := NewUserService(UserServiceParams{
		TxManager:        mocks.txManager,
		UserRepo:         mocks.userRepo,
		RefreshTokenRepo: mocks.refreshTokenRepo,
		PasswordHasher:   mocks.passwordHasher,
		TokenService:     mocks.tokenService,
	})

	return service, mocks
}

func TestUserService_RegisterCustomer(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	input := usecase.RegisterCustomerInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
		City:     "Portland",
	}

	mocks.passwordHasher.EXPECT().
		Hash(input.Password).
		Return("hashed-password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().AuthRepo().Return(txAuthRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txUserRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	userID := uuid.New()
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = userID

			return nil
		})

	txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, userID, auth.UserID)
			assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
			assert.Equal(t, input.Email, auth.ProviderUserID)
			assert.Equal(t, "hashed-password", auth.PasswordHash)
		}).
		Return(nil)

	output, err := service.RegisterCustomer(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, input.Email, output.User.Email)
	require.NotNil(t, output.User.CustomerProfile)
	assert.Equal(t, input.City, output.User.CustomerProfile.City)
	assert.Equal(t, []entity.Role{entity.RoleCustomer}, output.User.Roles())
}

func TestUserService_RegisterCustomer_EmailTaken(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	input := usecase.RegisterCustomerInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
		City:     "Portland",
	}

	mocks.passwordHasher.EXPECT().
		Hash(input.Password).
		Return("hashed-password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txUserRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := service.RegisterCustomer(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterBusinessMember(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := usecase.RegisterBusinessMemberInput{
		Name:       "Bob",
		Email:      "bob@nonnas.example.com",
		Password:   "s3cret-password",
		BusinessID: businessID,
		Position:   "owner",
	}

	mocks.passwordHasher.EXPECT().
		Hash(input.Password).
		Return("hashed-password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().AuthRepo().Return(txAuthRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txUserRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Return(nil)

	output, err := service.RegisterBusinessMember(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output.User.BusinessProfile)
	assert.Equal(t, businessID, output.User.BusinessProfile.BusinessID)
	assert.Equal(t, []entity.Role{entity.RoleBusiness}, output.User.Roles())
}

func TestUserService_Login(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:              userID,
		Email:           "alice@example.com",
		Name:            "Alice",
		CustomerProfile: &entity.CustomerProfile{UserID: userID, City: "Portland"},
	}
	input := usecase.LoginInput{Email: user.Email, Password: "s3cret-password"}

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(user, nil)

	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AuthRepo().Return(txAuthRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

	mocks.passwordHasher.EXPECT().
		Check(input.Password, "hashed-password").
		Return(true)

	mocks.tokenService.EXPECT().
		GenerateTokens(userID, []string{"customer"}, (*uuid.UUID)(nil)).
		Return("access-token", "refresh-token", nil)

	mocks.tokenService.EXPECT().
		HashToken("refresh-token").
		Return("refresh-token-hash")

	mocks.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(720 * time.Hour)

	mocks.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, session *entity.RefreshToken) {
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, "refresh-token-hash", session.TokenHash)
			assert.WithinDuration(t, time.Now().Add(720*time.Hour), session.ExpiresAt, 5*time.Second)
		}).
		Return(nil)

	output, err := service.Login(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.Nil(t, output)
	// Indistinguishable from a wrong password.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:              userID,
		Email:           "alice@example.com",
		CustomerProfile: &entity.CustomerProfile{UserID: userID},
	}

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AuthRepo().Return(txAuthRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txAuthRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed-password"}, nil)

	mocks.passwordHasher.EXPECT().
		Check("wrong-password", "hashed-password").
		Return(false)

	output, err := service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong-password"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Refresh_RotatesSession(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()
	user := &entity.User{
		ID:    userID,
		Email: "bob@nonnas.example.com",
		BusinessProfile: &entity.BusinessMember{
			UserID:     userID,
			BusinessID: businessID,
		},
	}

	mocks.tokenService.EXPECT().
		HashToken("old-refresh-token").
		Return("old-token-hash")

	mocks.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, "old-token-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-token-hash"}, nil)

	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	// Rotation consumes the presented session before issuing the next one.
	mocks.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, "old-token-hash").
		Return(nil)

	mocks.tokenService.EXPECT().
		GenerateTokens(userID, []string{"business"}, &businessID).
		Return("new-access-token", "new-refresh-token", nil)

	mocks.tokenService.EXPECT().
		HashToken("new-refresh-token").
		Return("new-token-hash")

	mocks.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(720 * time.Hour)

	mocks.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	output, err := service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "old-refresh-token"})
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
	assert.Equal(t, "new-refresh-token", output.RefreshToken)
}

func TestUserService_Refresh_UnknownToken(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()

	mocks.tokenService.EXPECT().
		HashToken("forged-token").
		Return("forged-hash")

	mocks.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, "forged-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "forged-token"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Refresh_ConsumedConcurrently(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:              userID,
		CustomerProfile: &entity.CustomerProfile{UserID: userID},
	}

	mocks.tokenService.EXPECT().
		HashToken("raced-token").
		Return("raced-hash")

	mocks.refreshTokenRepo.EXPECT().
		FindByTokenHash(ctx, "raced-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "raced-hash"}, nil)

	mocks.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	// A parallel refresh consumed the session between the read and the delete.
	mocks.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, "raced-hash").
		Return(repository.ErrRefreshTokenNotFound)

	output, err := service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "raced-token"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()

	mocks.tokenService.EXPECT().
		HashToken("refresh-token").
		Return("refresh-token-hash")

	mocks.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, "refresh-token-hash").
		Return(nil)

	err := service.Logout(ctx, usecase.RefreshInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
}

func TestUserService_Logout_Idempotent(t *testing.T) {
	service, mocks := newUserServiceForTest(t)

	ctx := context.Background()

	mocks.tokenService.EXPECT().
		HashToken("already-gone").
		Return("already-gone-hash")

	mocks.refreshTokenRepo.EXPECT().
		DeleteByTokenHash(ctx, "already-gone-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := service.Logout(ctx, usecase.RefreshInput{RefreshToken: "already-gone"})
	require.NoError(t, err)
}
