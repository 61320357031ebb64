package entity

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReferralStatus tracks whether the referred user has placed a qualifying order.
type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralCompleted ReferralStatus = "completed"
)

// Referral links a referrer to the user who signed up with their code. One per referred user.
type Referral struct {
	ID            uuid.UUID
	ReferrerID    uuid.UUID
	ReferredID    uuid.UUID
	Code          string
	Status        ReferralStatus
	ReferrerBonus int64
	ReferredBonus int64
	CompletedAt   *time.Time
	CreatedAt     time.Time
}

// ReferralStats counts the referrals made by one user.
type ReferralStats struct {
	Total     int64
	Completed int64
}

// GenerateReferralCode returns an uppercase alphanumeric code of the given length.
func GenerateReferralCode(length int) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if length <= 0 || length > len(raw) {
		return raw
	}

	return raw[:length]
}

// NormalizeReferralCode trims and uppercases user input.
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ReferralLink appends the referral code to the storefront signup URL.
func ReferralLink(baseURL, code string) string {
	if baseURL == "" || code == "" {
		return ""
	}

	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}

	return baseURL + sep + "ref=" + url.QueryEscape(code)
}
