// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	ReferralCode string // Optional code of the shopper who referred this one.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token used to mint a new access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token whose session is ended.
type LogoutInput struct {
	RefreshToken string
}

// GoogleCallbackInput carries a Google ID token obtained by the client.
type GoogleCallbackInput struct {
	IDToken      string
	ReferralCode string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	User     *entity.User
	Referred bool // A pending referral was recorded.
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines account and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	GoogleCallback(ctx context.Context, input *GoogleCallbackInput) (*LoginOutput, error)
}
