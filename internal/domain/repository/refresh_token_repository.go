package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists hashed refresh tokens.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error
	// FindRefreshTokenByHash only returns tokens that have not expired.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error
	CountActiveRefreshTokens(ctx context.Context, userID uuid.UUID) (int64, error)
}
