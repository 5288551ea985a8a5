package domain

import "time"

// AnonymousEmail is recorded for checkouts started without a signed-in user.
const AnonymousEmail = "anonymous"

// Entitlement is the premium access flag and its activation time.
type Entitlement struct {
	IsPremium   bool       `json:"isPremium"`
	ActivatedAt *time.Time `json:"activatedAt,omitempty"`
}

// NewPremiumEntitlement returns a premium entitlement activated at t.
func NewPremiumEntitlement(t time.Time) Entitlement {
	return Entitlement{IsPremium: true, ActivatedAt: &t}
}

// PendingPayment is the locally remembered checkout awaiting confirmation.
type PendingPayment struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"timestamp"`
}

// User is a backend account.
type User struct {
	Email              string
	IsPremium          bool
	PremiumActivatedAt *time.Time
	SubscriptionType   string
	CreatedAt          time.Time
}
