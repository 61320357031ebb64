package postgres

import (
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTiers_FormValidCatalog(t *testing.T) {
	catalog, err := entity.NewTierCatalog(defaultTiers())
	require.NoError(t, err)
	require.Len(t, catalog, 4)

	assert.Equal(t, "Bronze", catalog.Resolve(0).TierName())
	assert.Equal(t, "Silver", catalog.Resolve(5000).TierName())
	assert.Equal(t, "Platinum", catalog.Resolve(1_000_000).TierName())
}

func TestSeedSettings(t *testing.T) {
	t.Run("falls back to built-in defaults", func(t *testing.T) {
		assert.Equal(t, entity.DefaultLoyaltySettings(), seedSettings(&config.Config{}))
	})

	t.Run("uses configured defaults", func(t *testing.T) {
		cfg := &config.Config{Loyalty: &config.LoyaltyConfig{Defaults: &config.LoyaltyDefaults{
			Enabled:             true,
			PointsPerTaka:       0.5,
			MinimumRedeemPoints: 200,
			PointValue:          0.25,
			ReferrerBonus:       1000,
			ReferredBonus:       100,
		}}}

		settings := seedSettings(cfg)
		assert.Equal(t, 0.5, settings.PointsPerTaka)
		assert.Equal(t, int64(200), settings.MinimumRedeemPoints)
		assert.Equal(t, int64(1000), settings.ReferrerBonus)
	})
}

func TestSettingsMapping_AlwaysTargetsSingleRow(t *testing.T) {
	settingsM := fromSettingsDomain(entity.DefaultLoyaltySettings())
	assert.Equal(t, model.LoyaltySettingsID, settingsM.ID)

	back := toSettingsDomain(settingsM)
	assert.Equal(t, entity.DefaultLoyaltySettings().PointValue, back.PointValue)
}
