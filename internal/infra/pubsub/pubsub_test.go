package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testEvent() *service.LoyaltyEvent {
	return &service.LoyaltyEvent{
		EventID:    "evt-1",
		Type:       service.EventPointsEarned,
		RequestID:  "req-1",
		UserID:     "user-1",
		Points:     150,
		Balance:    650,
		TierName:   "Silver",
		OrderID:    "order-1",
		OccurredAt: time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishLoyaltyEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger)
	require.NoError(t, publisher.PublishLoyaltyEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localPushSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "points_earned", received.Message.Attributes["event_type"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.LoyaltyEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, int64(150), decoded.Points)
	assert.Equal(t, "Silver", decoded.TierName)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger)
	err := publisher.PublishLoyaltyEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNoopPublisher(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: testLogger,
	})
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishLoyaltyEvent(context.Background(), testEvent()))
}

func TestNewRecord(t *testing.T) {
	record, err := newRecord("loyalty-events", testEvent())
	require.NoError(t, err)

	assert.Equal(t, "loyalty-events", record.Topic)
	assert.Equal(t, []byte("user-1"), record.Key)

	headers := make(map[string]string, len(record.Headers))
	for _, h := range record.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"event_type": "points_earned",
		"user_id":    "user-1",
		"request_id": "req-1",
	}, headers)
}

func TestEncodeEvent_OmitsEmptyRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	_, attributes, err := encodeEvent(event)
	require.NoError(t, err)
	assert.NotContains(t, attributes, "request_id")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google"}, wantErr: "project ID is required"},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: "kafka", TopicID: "events"}, wantErr: "kafka brokers are required"},
		{name: "kafka without topic", cfg: &config.PubSubConfig{Provider: "kafka", KafkaBrokers: "localhost:9092"}, wantErr: "topic ID is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger,
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}
