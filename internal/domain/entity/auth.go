package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication providers.
const (
	ProviderTypeEmail  = "email"
	ProviderTypeGoogle = "google"
)

// Authentication is one way of signing in to an account (email/password or a linked Google identity).
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string // "email" or "google".
	ProviderUserID string // Email for the email provider, the Google "sub" claim otherwise.
	PasswordHash   string // bcrypt hash, only set for the email provider.
	CreatedAt      time.Time
}

// RefreshToken is a persisted session. Only the SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
