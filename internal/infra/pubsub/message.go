package pubsub

import (
	"encoding/json"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeEvent returns the JSON payload and the broker attributes of an event.
// Attributes let subscribers filter by type without decoding the body.
func encodeEvent(event *service.LoyaltyEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.Type),
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
