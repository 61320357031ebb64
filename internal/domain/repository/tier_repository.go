package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// TierRepository persists the tier catalog.
type TierRepository interface {
	// ListTiers returns tiers ordered by ascending minimum spend.
	ListTiers(ctx context.Context) ([]*entity.Tier, error)
	// ReplaceTiers swaps the whole catalog. Callers run it inside a transaction.
	ReplaceTiers(ctx context.Context, tiers []*entity.Tier) error
}
