package entity

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Tier is a named loyalty level unlocked by cumulative spend.
type Tier struct {
	ID               uuid.UUID
	Name             string
	MinSpend         float64 // Lifetime spend needed to reach the tier. Unique across the catalog.
	DiscountPercent  float64
	FreeShipping     bool
	PointsMultiplier float64 // Applied to earned points, 1.0 means no bonus.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Audience returns the coupon audience segment reserved for members of this tier.
func (t *Tier) Audience() Audience {
	return Audience(loyaltyAudiencePrefix + strings.ToLower(t.Name))
}

// TierCatalog is the tier list ordered by strictly increasing MinSpend.
type TierCatalog []*Tier

// TierProgress is the outcome of resolving a lifetime spend against the catalog.
type TierProgress struct {
	Current          *Tier   // nil when the spend is below every threshold.
	Next             *Tier   // nil at the top tier.
	Rank             int     // Index of Current in the catalog, -1 when Current is nil.
	Progress         float64 // Percentage towards Next, within [0, 100].
	AmountToNextTier float64
}

// NewTierCatalog sorts a copy of tiers by MinSpend and validates it.
func NewTierCatalog(tiers []*Tier) (TierCatalog, error) {
	catalog := make(TierCatalog, len(tiers))
	copy(catalog, tiers)
	sort.SliceStable(catalog, func(i, j int) bool {
		return catalog[i].MinSpend < catalog[j].MinSpend
	})

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

// Validate checks ordering, thresholds and multipliers. The first tier may start above 0;
// spend below it resolves to no current tier.
func (c TierCatalog) Validate() error {
	names := make(map[string]struct{}, len(c))
	for i, tier := range c {
		name := strings.TrimSpace(tier.Name)
		if name == "" {
			return errors.Errorf("tier %d has no name", i)
		}
		if _, dup := names[strings.ToLower(name)]; dup {
			return errors.Errorf("tier name %q is used twice", name)
		}
		names[strings.ToLower(name)] = struct{}{}

		if tier.MinSpend < 0 {
			return errors.Errorf("tier %q has a negative minimum spend", name)
		}
		if tier.PointsMultiplier <= 0 {
			return errors.Errorf("tier %q must have a positive points multiplier", name)
		}
		if tier.DiscountPercent < 0 || tier.DiscountPercent > 100 {
			return errors.Errorf("tier %q discount must be between 0 and 100", name)
		}
		if i > 0 && tier.MinSpend <= c[i-1].MinSpend {
			return errors.Errorf("tier %q minimum spend must be greater than %q", name, c[i-1].Name)
		}
	}

	return nil
}

// Resolve finds the highest tier whose MinSpend is met and the progress towards the following one.
func (c TierCatalog) Resolve(lifetimeSpent float64) TierProgress {
	if lifetimeSpent < 0 {
		lifetimeSpent = 0
	}

	// First index whose threshold is not met; the tier before it is the current one.
	idx := sort.Search(len(c), func(i int) bool {
		return c[i].MinSpend > lifetimeSpent
	})

	result := TierProgress{Rank: idx - 1}
	floor := 0.0
	if idx > 0 {
		result.Current = c[idx-1]
		floor = result.Current.MinSpend
	}

	if idx >= len(c) {
		result.Progress = 100

		return result
	}

	result.Next = c[idx]
	span := result.Next.MinSpend - floor
	if span > 0 {
		result.Progress = RoundMoney(clamp((lifetimeSpent-floor)/span*100, 0, 100))
	}
	result.AmountToNextTier = RoundMoney(result.Next.MinSpend - lifetimeSpent)

	return result
}

// Multiplier returns the points multiplier of the current tier, 1 when there is none.
func (p TierProgress) Multiplier() float64 {
	if p.Current == nil {
		return 1
	}

	return p.Current.PointsMultiplier
}

// TierID returns the current tier ID, nil when there is no current tier.
func (p TierProgress) TierID() *uuid.UUID {
	if p.Current == nil {
		return nil
	}
	id := p.Current.ID

	return &id
}

// TierName returns the current tier name or an empty string.
func (p TierProgress) TierName() string {
	if p.Current == nil {
		return ""
	}

	return p.Current.Name
}
