package request

// IPNRequest is the body Pesapal posts to the registered IPN URL. Pesapal uses
// PascalCase keys here, unlike the rest of its API. Only the tracking id is
// acted on; the notification type is echoed back in the ack.

type IPNRequest struct {
	OrderTrackingID       string `json:"OrderTrackingId"`
	OrderNotificationType string `json:"OrderNotificationType"`
	OrderMerchantRef      string `json:"OrderMerchantReference"`
}
