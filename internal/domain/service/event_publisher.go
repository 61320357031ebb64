package service

import (
	"context"
	"time"
)

// LoyaltyEventType names the loyalty events published after a transaction commits.
type LoyaltyEventType string

const (
	EventPointsEarned      LoyaltyEventType = "points_earned"
	EventPointsRedeemed    LoyaltyEventType = "points_redeemed"
	EventTierChanged       LoyaltyEventType = "tier_changed"
	EventReferralCompleted LoyaltyEventType = "referral_completed"
)

// LoyaltyEvent is the message downstream consumers (notifications, CRM) receive.
type LoyaltyEvent struct {
	EventID    string           `json:"event_id"`
	Type       LoyaltyEventType `json:"type"`
	RequestID  string           `json:"request_id,omitempty"`
	UserID     string           `json:"user_id"`
	Points     int64            `json:"points,omitempty"`
	Balance    int64            `json:"balance"`
	TierName   string           `json:"tier_name,omitempty"`
	OrderID    string           `json:"order_id,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message broker
type EventPublisher interface {
	// PublishLoyaltyEvent publishes a single event and waits for the broker acknowledgement.
	PublishLoyaltyEvent(ctx context.Context, event *LoyaltyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
