package domain

import "time"

// Payment status values reported by the payment-status interface.
const (
	PaymentPaid    = "paid"
	PaymentExpired = "expired"
)

// Checkout session lifecycle values, as reported by the backend.
const (
	SessionOpen     = "open"
	SessionComplete = "complete"
	SessionExpired  = "expired"

	PaymentUnpaid = "unpaid"
)

// CheckoutSession is a handle to an in-progress external payment.
type CheckoutSession struct {
	// ID is the opaque session identifier
	ID string `json:"sessionId"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentStatus is the interpreted answer of one status query.
type PaymentStatus struct {
	// Status is "paid", "expired", or any other raw status
	Status string

	// Raw holds the remaining response fields for diagnostics
	Raw map[string]interface{}
}

// IsPaid reports a confirmed payment.
func (s PaymentStatus) IsPaid() bool { return s.Status == PaymentPaid }

// IsExpired reports an expired checkout session.
func (s PaymentStatus) IsExpired() bool { return s.Status == PaymentExpired }

// Package is a purchasable premium plan.
type Package struct {
	ID          string  `json:"id"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

// PremiumPackages lists the plans offered at checkout.
var PremiumPackages = map[string]Package{
	"monthly": {ID: "monthly", Price: 9.99, Currency: "usd", Description: "Monthly Premium Subscription"},
	"yearly":  {ID: "yearly", Price: 99.99, Currency: "usd", Description: "Yearly Premium Subscription (Save 20%)"},
}

// LookupPackage returns the package with the given id.
func LookupPackage(id string) (Package, error) {
	pkg, ok := PremiumPackages[id]
	if !ok {
		return Package{}, ErrUnknownPackage
	}
	return pkg, nil
}

// CheckoutTransaction is the backend's record of one checkout session.
type CheckoutTransaction struct {
	SessionID     string
	Email         string
	PackageID     string
	Amount        float64
	Currency      string
	PaymentStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsPaid reports whether the transaction has been paid.
func (t CheckoutTransaction) IsPaid() bool { return t.PaymentStatus == PaymentPaid }

// CheckoutStatus is the backend's answer to a status query.
// AmountTotal is expressed in minor units (cents).
type CheckoutStatus struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
	SessionID     string `json:"session_id"`
}
