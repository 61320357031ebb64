package metrics

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"storefront/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoyaltyMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := NewLoyaltyMetrics(reg, "test")
	require.NoError(t, err)
	m := recorder.(*loyaltyMetrics)

	m.PointsAwarded(150)
	m.PointsAwarded(0)
	m.PointsRedeemed(100)
	m.OfferLookup(true)
	m.OfferLookup(false)
	m.OfferLookup(true)
	m.CouponRedeemed("FLAT150")
	m.TierChanged("Silver")

	assert.Equal(t, 150.0, testutil.ToFloat64(m.pointsAwarded))
	assert.Equal(t, 100.0, testutil.ToFloat64(m.pointsRedeemed))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.offerLookups.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.offerLookups.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.couponRedeems.WithLabelValues("FLAT150")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tierChanges.WithLabelValues("Silver")))
}

func TestLoyaltyMetrics_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewLoyaltyMetrics(reg, "test")
	require.NoError(t, err)

	_, err = NewLoyaltyMetrics(reg, "test")
	assert.Error(t, err)
}

func TestHTTPMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewHTTPMetrics(reg, "test")
	require.NoError(t, err)

	m.Observe(http.MethodGet, "/coupons/best", http.StatusOK, 20*time.Millisecond)
	m.Observe(http.MethodPost, "/user/loyalty", http.StatusUnprocessableEntity, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/coupons/best", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.errors.WithLabelValues(http.MethodGet, "/coupons/best", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues(http.MethodPost, "/user/loyalty", "422")))

	expected := `
# HELP test_http_errors_total Number of HTTP requests answered with a 4xx or 5xx status.
# TYPE test_http_errors_total counter
test_http_errors_total{code="200",method="GET",route="/coupons/best"} 0
test_http_errors_total{code="422",method="POST",route="/user/loyalty"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_errors_total"))
}

func TestProviders_Disabled(t *testing.T) {
	params := Params{Registry: NewRegistry(), Config: &config.Config{}, Logger: slog.Default()}

	recorder, err := ProvideLoyaltyMetrics(params)
	require.NoError(t, err)
	assert.IsType(t, noopLoyaltyMetrics{}, recorder)

	httpMetrics, err := ProvideHTTPMetrics(params)
	require.NoError(t, err)
	assert.Nil(t, httpMetrics)
}

func TestProviders_Enabled(t *testing.T) {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Namespace: "shop"}}
	params := Params{Registry: NewRegistry(), Config: cfg, Logger: slog.Default()}

	recorder, err := ProvideLoyaltyMetrics(params)
	require.NoError(t, err)
	recorder.PointsAwarded(10)

	httpMetrics, err := ProvideHTTPMetrics(params)
	require.NoError(t, err)
	require.NotNil(t, httpMetrics)

	count, err := testutil.GatherAndCount(params.Registry, "shop_loyalty_points_awarded_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
