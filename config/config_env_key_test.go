package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"loyalty": map[string]any{
			"referralBaseUrl": "",
			"defaults": map[string]any{
				"pointsPerTaka":       1,
				"minimumRedeemPoints": 100,
			},
		},
		"redis": map[string]any{
			"settingsTtl": "5m",
		},
		"pubsub": map[string]any{
			"kafkaBrokers": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "LOYALTY_REFERRALBASEURL", want: "loyalty.referralBaseUrl"},
		{envKey: "LOYALTY_DEFAULTS_POINTSPERTAKA", want: "loyalty.defaults.pointsPerTaka"},
		{envKey: "LOYALTY_DEFAULTS_MINIMUMREDEEMPOINTS", want: "loyalty.defaults.minimumRedeemPoints"},
		{envKey: "REDIS_SETTINGSTTL", want: "redis.settingsTtl"},
		{envKey: "PUBSUB_KAFKABROKERS", want: "pubsub.kafkaBrokers"},
		{envKey: "METRICS__ENABLED", want: "metrics.enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestPubSubConfig_Brokers(t *testing.T) {
	cfg := &PubSubConfig{KafkaBrokers: " kafka-0:9092, ,kafka-1:9092 "}
	assert.Equal(t, []string{"kafka-0:9092", "kafka-1:9092"}, cfg.Brokers())

	assert.Empty(t, (&PubSubConfig{}).Brokers())
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
redis:
  addr: localhost:6379
  settingsTtl: 5m
loyalty:
  defaults:
    enabled: false
    minimumRedeemPoints: 100
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("REDIS_SETTINGSTTL", "90s")
	t.Setenv("LOYALTY_DEFAULTS_ENABLED", "true")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.Redis)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 90*time.Second, cfg.Redis.SettingsTTL)

	require.NotNil(t, cfg.Loyalty)
	require.NotNil(t, cfg.Loyalty.Defaults)
	assert.True(t, cfg.Loyalty.Defaults.Enabled)
	assert.Equal(t, int64(100), cfg.Loyalty.Defaults.MinimumRedeemPoints)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}
