// Package metrics exposes Prometheus collectors for HTTP traffic and the loyalty flows.
package metrics

import (
	"log/slog"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const defaultNamespace = "storefront"

// NewRegistry creates a private registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func namespace(cfg *config.Config) string {
	if cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		return cfg.Metrics.Namespace
	}

	return defaultNamespace
}

// HTTPMetrics counts requests per route and status.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP collectors on reg.
func NewHTTPMetrics(reg prometheus.Registerer, ns string) (*HTTPMetrics, error) {
	labels := []string{"method", "route", "code"}
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests.",
		}, labels),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_errors_total",
			Help:      "Number of HTTP requests answered with a 4xx or 5xx status.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
	}

	for _, c := range []prometheus.Collector{m.requests, m.errors, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register http metrics")
		}
	}

	return m, nil
}

// Observe records one finished request. route is the matched route template, not the raw path.
func (m *HTTPMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"code":   strconv.Itoa(status),
	}
	m.requests.With(labels).Inc()
	m.duration.With(labels).Observe(elapsed.Seconds())
	if status >= 400 {
		m.errors.With(labels).Inc()
	}
}

// loyaltyMetrics implements service.LoyaltyMetrics with Prometheus counters.
type loyaltyMetrics struct {
	pointsAwarded  prometheus.Counter
	pointsRedeemed prometheus.Counter
	offerLookups   *prometheus.CounterVec
	couponRedeems  *prometheus.CounterVec
	tierChanges    *prometheus.CounterVec
}

// NewLoyaltyMetrics registers the loyalty collectors on reg.
func NewLoyaltyMetrics(reg prometheus.Registerer, ns string) (service.LoyaltyMetrics, error) {
	m := &loyaltyMetrics{
		pointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "loyalty",
			Name:      "points_awarded_total",
			Help:      "Points credited for completed orders and referrals.",
		}),
		pointsRedeemed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "loyalty",
			Name:      "points_redeemed_total",
			Help:      "Points debited by redemptions.",
		}),
		offerLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "coupons",
			Name:      "best_offer_lookups_total",
			Help:      "Best-offer lookups, by whether an offer was found.",
		}, []string{"found"}),
		couponRedeems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "coupons",
			Name:      "redemptions_total",
			Help:      "Coupons applied to placed orders.",
		}, []string{"code"}),
		tierChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "loyalty",
			Name:      "tier_changes_total",
			Help:      "Accounts moved into a tier.",
		}, []string{"tier"}),
	}

	for _, c := range []prometheus.Collector{m.pointsAwarded, m.pointsRedeemed, m.offerLookups, m.couponRedeems, m.tierChanges} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register loyalty metrics")
		}
	}

	return m, nil
}

func (m *loyaltyMetrics) PointsAwarded(points int64) {
	if points > 0 {
		m.pointsAwarded.Add(float64(points))
	}
}

func (m *loyaltyMetrics) PointsRedeemed(points int64) {
	if points > 0 {
		m.pointsRedeemed.Add(float64(points))
	}
}

func (m *loyaltyMetrics) OfferLookup(found bool) {
	m.offerLookups.WithLabelValues(strconv.FormatBool(found)).Inc()
}

func (m *loyaltyMetrics) CouponRedeemed(code string) {
	m.couponRedeems.WithLabelValues(code).Inc()
}

func (m *loyaltyMetrics) TierChanged(tierName string) {
	m.tierChanges.WithLabelValues(tierName).Inc()
}

// noopLoyaltyMetrics drops every observation.
type noopLoyaltyMetrics struct{}

// NewNoopLoyaltyMetrics is used when metrics are disabled.
func NewNoopLoyaltyMetrics() service.LoyaltyMetrics {
	return noopLoyaltyMetrics{}
}

func (noopLoyaltyMetrics) PointsAwarded(int64)   {}
func (noopLoyaltyMetrics) PointsRedeemed(int64)  {}
func (noopLoyaltyMetrics) OfferLookup(bool)      {}
func (noopLoyaltyMetrics) CouponRedeemed(string) {}
func (noopLoyaltyMetrics) TierChanged(string)    {}

// Params holds dependencies for the metric providers, injected by Fx
type Params struct {
	fx.In

	Registry *prometheus.Registry
	Config   *config.Config
	Logger   *slog.Logger
}

func enabled(cfg *config.Config) bool {
	return cfg.Metrics != nil && cfg.Metrics.Enabled
}

// ProvideLoyaltyMetrics returns Prometheus counters, or a no-op recorder when metrics are disabled.
func ProvideLoyaltyMetrics(params Params) (service.LoyaltyMetrics, error) {
	if !enabled(params.Config) {
		params.Logger.Info("Metrics disabled, using no-op loyalty metrics")

		return NewNoopLoyaltyMetrics(), nil
	}

	return NewLoyaltyMetrics(params.Registry, namespace(params.Config))
}

// ProvideHTTPMetrics returns nil when metrics are disabled; the middleware is then skipped.
func ProvideHTTPMetrics(params Params) (*HTTPMetrics, error) {
	if !enabled(params.Config) {
		return nil, nil
	}

	return NewHTTPMetrics(params.Registry, namespace(params.Config))
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		ProvideLoyaltyMetrics,
		ProvideHTTPMetrics,
	),
)
