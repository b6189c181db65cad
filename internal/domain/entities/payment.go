package entities

import "time"

// PaymentStatus represents the lifecycle of a payment attempt.
//
// Transitions only move forward through pending -> initiated -> {completed, failed,
// cancelled, refunded}. pending and initiated may be revisited while the gateway has
// not finalized; completed, cancelled and refunded are sinks.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusInitiated PaymentStatus = "initiated"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// IsTerminal reports whether the status is a sink: once a payment reaches it,
// no trigger (poll, callback, IPN replay) may move the payment out of it.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusCancelled, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentDomain discriminates the two payment stores (event vs program) that share
// one Pesapal account and one IPN channel but must never cross-update each other.

type PaymentDomain string

const (
	PaymentDomainEvent   PaymentDomain = "event"
	PaymentDomainProgram PaymentDomain = "program"
)

const PaymentMethodPesapal = "pesapal"

// Payment is one attempt to collect money for exactly one registration.
//
// Storage model (DynamoDB, one table per domain):
//   - PK: id
//   - GSI registration_id-index (PK: registration_id)
//   - GSI order_tracking_id-index (PK: order_tracking_id)
//
// Correlation keys:
//   - MerchantReference is generated locally, regenerated on every submission attempt,
//     and echoed back by Pesapal.
//   - OrderTrackingID is assigned by Pesapal on submission and is the key for all
//     subsequent status queries, callbacks and IPNs.
//
// Records are never deleted; a failed payment is re-submitted in place with a fresh
// merchant reference.

type Payment struct {
	ID                string        `json:"id"`
	RegistrationID    string        `json:"registration_id"`
	Amount            float64       `json:"amount"`
	Currency          string        `json:"currency"`
	PaymentMethod     string        `json:"payment_method"`
	Status            PaymentStatus `json:"payment_status"`
	OrderTrackingID   string        `json:"order_tracking_id,omitempty"`
	TransactionID     string        `json:"transaction_id,omitempty"`
	MerchantReference string        `json:"merchant_reference,omitempty"`
	PaymentURL        string        `json:"payment_url,omitempty"`
	CustomerEmail     string        `json:"customer_email,omitempty"`
	CustomerPhone     string        `json:"customer_phone,omitempty"`
	InitiatedAt       *time.Time    `json:"initiated_at,omitempty"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
