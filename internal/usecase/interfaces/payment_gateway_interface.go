package interfaces

import "context"

// GatewayOrder is the SubmitOrderRequest payload prepared by the order builder.
// ID carries the merchant reference; Pesapal echoes it back as
// OrderMerchantReference on the callback redirect.

type GatewayOrder struct {
	ID             string                `json:"id"`
	Currency       string                `json:"currency"`
	Amount         float64               `json:"amount"`
	Description    string                `json:"description"`
	CallbackURL    string                `json:"callback_url"`
	NotificationID string                `json:"notification_id,omitempty"`
	BillingAddress GatewayBillingAddress `json:"billing_address"`
}

type GatewayBillingAddress struct {
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
	CountryCode  string `json:"country_code"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

// GatewayOrderResponse is the accepted-order response: the gateway-assigned
// tracking id plus the hosted payment page URL the payer is sent to.

type GatewayOrderResponse struct {
	OrderTrackingID   string `json:"order_tracking_id"`
	MerchantReference string `json:"merchant_reference"`
	RedirectURL       string `json:"redirect_url"`
}

// GatewayTransactionStatus is the gateway's current view of one order.
// StatusCode is Pesapal's numeric code: 0 pending, 1 completed, 2 failed.

type GatewayTransactionStatus struct {
	StatusCode               int    `json:"status_code"`
	PaymentMethod            string `json:"payment_method"`
	ConfirmationCode         string `json:"confirmation_code,omitempty"`
	PaymentStatusDescription string `json:"payment_status_description"`
}

// IPaymentGateway abstracts the Pesapal v3 API.
//
// Soft-fail contract: every method returns (nil, err) for every failure class
// (timeout, connection error, HTTP error, malformed body, gateway business error).
// Callers treat nil as "not yet successful"; no gateway failure is ever allowed
// to propagate as a panic or a 500.
type IPaymentGateway interface {
	SubmitOrder(ctx context.Context, order GatewayOrder) (*GatewayOrderResponse, error)
	GetTransactionStatus(ctx context.Context, orderTrackingID string) (*GatewayTransactionStatus, error)
	// ConfirmTransaction validates an IPN against the gateway, defending against
	// spoofed notifications. Same shape and contract as GetTransactionStatus.
	ConfirmTransaction(ctx context.Context, orderTrackingID string) (*GatewayTransactionStatus, error)
}
