package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	ErrAuthNotFound      = errors.New("authentication not found")
	ErrAuthAlreadyExists = errors.New("authentication already exists")
)

// AuthRepository persists login credentials.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)
}
