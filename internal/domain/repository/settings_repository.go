package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

var ErrSettingsNotFound = errors.New("loyalty settings not found")

// SettingsRepository persists the single loyalty settings record.
type SettingsRepository interface {
	GetLoyaltySettings(ctx context.Context) (*entity.LoyaltySettings, error)
	SaveLoyaltySettings(ctx context.Context, settings *entity.LoyaltySettings) error
}
