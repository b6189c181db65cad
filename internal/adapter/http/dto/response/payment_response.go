package response

import (
	"time"

	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase"
)

// PaymentResponse mirrors the payment record. RedirectURL duplicates
// PaymentURL under the name the payment pages historically consumed.

type PaymentResponse struct {
	ID                string     `json:"id"`
	RegistrationID    string     `json:"registration_id"`
	Amount            float64    `json:"amount"`
	Currency          string     `json:"currency"`
	PaymentMethod     string     `json:"payment_method"`
	Status            string     `json:"payment_status"`
	OrderTrackingID   string     `json:"order_tracking_id,omitempty"`
	TransactionID     string     `json:"transaction_id,omitempty"`
	MerchantReference string     `json:"merchant_reference,omitempty"`
	PaymentURL        string     `json:"payment_url,omitempty"`
	RedirectURL       string     `json:"redirect_url,omitempty"`
	InitiatedAt       *time.Time `json:"initiated_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		RegistrationID:    p.RegistrationID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		PaymentMethod:     p.PaymentMethod,
		Status:            string(p.Status),
		OrderTrackingID:   p.OrderTrackingID,
		TransactionID:     p.TransactionID,
		MerchantReference: p.MerchantReference,
		PaymentURL:        p.PaymentURL,
		RedirectURL:       p.PaymentURL,
		InitiatedAt:       p.InitiatedAt,
		CompletedAt:       p.CompletedAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// PaymentStatusResponse is the poll answer: the record plus whether the status
// reflects a live gateway query or a stored snapshot.

type PaymentStatusResponse struct {
	Payment            PaymentResponse `json:"payment"`
	GatewayReachable   bool            `json:"gateway_reachable"`
	GatewayDescription string          `json:"gateway_description,omitempty"`
}

func FromPaymentStatus(v usecase.PaymentStatusView) PaymentStatusResponse {
	return PaymentStatusResponse{
		Payment:            FromPayment(v.Payment),
		GatewayReachable:   v.GatewayReachable,
		GatewayDescription: v.GatewayDescription,
	}
}

// IPNAck is the acknowledgment Pesapal expects back from an IPN delivery.
// The HTTP status is always 200; Status in the body carries 200 or 500 and
// tells the gateway whether to redeliver the notification.

type IPNAck struct {
	OrderNotificationType string `json:"orderNotificationType"`
	OrderTrackingID       string `json:"orderTrackingId"`
	Status                int    `json:"status"`
}
