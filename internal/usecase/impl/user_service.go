package impl

import (
	"context"
	"time"

	"dealspot/internal/domain/entity"
	domainerrors "dealspot/internal/domain/errors"
	"dealspot/internal/domain/repository"
	"dealspot/internal/domain/service"
	"dealspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	passwordHasher   service.PasswordHasher
	tokenService     service.TokenService
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	PasswordHasher   service.PasswordHasher
	TokenService     service.TokenService
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		passwordHasher:   params.PasswordHasher,
		tokenService:     params.TokenService,
	}
}

// RegisterCustomer creates a new user with a customer profile and an email
// credential. User, profile, and credential rows share one transaction.
func (srv *userService) RegisterCustomer(ctx context.Context, input usecase.RegisterCustomerInput) (*usecase.RegisterOutput, error) {
	user := &entity.User{
		Email: input.Email,
		Name:  input.Name,
		CustomerProfile: &entity.CustomerProfile{
			City: input.City,
		},
	}

	if err := srv.registerWithPassword(ctx, user, input.Password); err != nil {
		return nil, err
	}

	return &usecase.RegisterOutput{User: user}, nil
}

// RegisterBusinessMember creates a new user bound to an existing business.
func (srv *userService) RegisterBusinessMember(ctx context.Context, input usecase.RegisterBusinessMemberInput) (*usecase.RegisterOutput, error) {
	user := &entity.User{
		Email: input.Email,
		Name:  input.Name,
		BusinessProfile: &entity.BusinessMember{
			BusinessID: input.BusinessID,
			Position:   input.Position,
		},
	}

	if err := srv.registerWithPassword(ctx, user, input.Password); err != nil {
		return nil, err
	}

	return &usecase.RegisterOutput{User: user}, nil
}

// registerWithPassword is the shared registration path: every principal kind
// goes through the same credential store with the same hashing discipline.
func (srv *userService) registerWithPassword(ctx context.Context, user *entity.User, password string) error {
	passwordHash, err := srv.passwordHasher.Hash(password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, user.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		auth := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: user.Email,
			PasswordHash:   passwordHash,
		}

		return repoFactory.AuthRepo().CreateAuthentication(ctx, auth)
	})
}

// Login verifies email credentials and issues a token pair. The refresh token
// is stored as a SHA-256 hash only.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same answer as a bad password, so login probing can't
			// distinguish unknown emails.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	var auth *entity.Authentication
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		auth, err = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.passwordHasher.Check(input.Password, auth.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// issueSession generates a token pair and persists the refresh session.
func (srv *userService) issueSession(ctx context.Context, user *entity.User) (string, string, error) {
	roles := make([]string, 0, 3)
	for _, role := range user.Roles() {
		roles = append(roles, role.String())
	}

	businessID := businessIDOf(user)

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, roles, businessID)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, session); err != nil {
		return "", "", errors.Wrap(err, "failed to persist refresh session")
	}

	return accessToken, refreshToken, nil
}

func businessIDOf(user *entity.User) *uuid.UUID {
	if user.BusinessProfile == nil {
		return nil
	}

	return &user.BusinessProfile.BusinessID
}

// Refresh rotates a refresh token: the presented token's session is consumed
// and replaced, so a stolen-then-replayed token dies on first legitimate use.
func (srv *userService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	session, err := srv.refreshTokenRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh session")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find session user")
	}

	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Another request consumed it first; treat as an invalid token.
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to consume refresh session")
	}

	accessToken, refreshToken, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout ends the session identified by the presented refresh token.
func (srv *userService) Logout(ctx context.Context, input usecase.RefreshInput) error {
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Already gone; logout is idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to delete refresh session")
	}

	return nil
}
