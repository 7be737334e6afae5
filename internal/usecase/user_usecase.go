// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dealspot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterCustomerInput defines the data required to register a new customer.
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Password string
	City     string
}

// RegisterBusinessMemberInput defines the data required to register a member
// account acting for an existing business.
type RegisterBusinessMemberInput struct {
	Name       string
	Email      string
	Password   string
	BusinessID uuid.UUID
	Position   string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the raw refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*RegisterOutput, error)
	RegisterBusinessMember(ctx context.Context, input RegisterBusinessMemberInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh rotates a refresh token: the presented token's session is
	// replaced by a new one and a fresh access token is issued.
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)

	// Logout ends the session identified by the presented refresh token.
	Logout(ctx context.Context, input RefreshInput) error
}
