package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"

	"mbg_backend/internal/usecase/interfaces"
)

var (
	ErrNoAccessToken   = errors.New("pesapal: no access token")
	ErrGatewayRejected = errors.New("pesapal: gateway rejected request")
	ErrMalformedReply  = errors.New("pesapal: malformed gateway response")
	ErrMissingRedirect = errors.New("pesapal: order response missing redirect_url")
	ErrGatewayBusiness = errors.New("pesapal: gateway returned business error")
)

// Client speaks the Pesapal v3 API. It is a pure HTTP adapter: it never touches
// payment storage, and every failure collapses into an error the reconciliation
// use case treats as "not yet successful".

type Client struct {
	cfg   Config
	creds *CredentialCache
	http  *retryablehttp.Client
}

var _ interfaces.IPaymentGateway = (*Client)(nil)

func NewClient(cfg Config, creds *CredentialCache) *Client {
	return &Client{cfg: cfg, creds: creds, http: newHTTPClient()}
}

type submitOrderResponse struct {
	OrderTrackingID   string `json:"order_tracking_id"`
	MerchantReference string `json:"merchant_reference"`
	RedirectURL       string `json:"redirect_url"`
	Error             any    `json:"error"`
}

// SubmitOrder posts a prepared order. The IPN notification id is attached here
// when the builder left it empty, so registration happens lazily on the first
// submission in a 24h window.
func (c *Client) SubmitOrder(ctx context.Context, order interfaces.GatewayOrder) (*interfaces.GatewayOrderResponse, error) {
	token := c.creds.AccessToken(ctx)
	if token == "" {
		return nil, ErrNoAccessToken
	}

	if order.NotificationID == "" {
		order.NotificationID = c.creds.NotificationID(ctx)
	}

	var out submitOrderResponse
	if err := c.post(ctx, token, "/api/Transactions/SubmitOrderRequest", order, &out); err != nil {
		return nil, err
	}
	if out.Error != nil {
		log.Printf("[payment][gateway] submit order business error merchant_reference=%s err=%v", order.ID, out.Error)
		return nil, ErrGatewayBusiness
	}
	if out.RedirectURL == "" {
		log.Printf("[payment][gateway] submit order response missing redirect_url merchant_reference=%s", order.ID)
		return nil, ErrMissingRedirect
	}
	if out.OrderTrackingID == "" {
		// Without a tracking id the payment could never be reconciled; a record
		// in that state would serve stored snapshots forever.
		log.Printf("[payment][gateway] submit order response missing order_tracking_id merchant_reference=%s", order.ID)
		return nil, ErrMalformedReply
	}

	log.Printf("[payment][gateway] order submitted merchant_reference=%s tracking_id=%s", order.ID, out.OrderTrackingID)
	return &interfaces.GatewayOrderResponse{
		OrderTrackingID:   out.OrderTrackingID,
		MerchantReference: out.MerchantReference,
		RedirectURL:       out.RedirectURL,
	}, nil
}

type transactionStatusResponse struct {
	StatusCode               int    `json:"status_code"`
	PaymentMethod            string `json:"payment_method"`
	ConfirmationCode         string `json:"confirmation_code"`
	TransactionID            string `json:"transaction_id"`
	PaymentStatusDescription string `json:"payment_status_description"`
	Error                    any    `json:"error"`
}

func (c *Client) GetTransactionStatus(ctx context.Context, orderTrackingID string) (*interfaces.GatewayTransactionStatus, error) {
	token := c.creds.AccessToken(ctx)
	if token == "" {
		return nil, ErrNoAccessToken
	}

	u := c.cfg.BaseURL + "/api/Transactions/GetTransactionStatus?orderTrackingId=" + url.QueryEscape(orderTrackingID)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("pesapal: build status request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] status query failed tracking_id=%s err=%v", orderTrackingID, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[payment][gateway] status query rejected tracking_id=%s status=%d", orderTrackingID, resp.StatusCode)
		return nil, ErrGatewayRejected
	}

	var out transactionStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("[payment][gateway] status response decode failed tracking_id=%s err=%v", orderTrackingID, err)
		return nil, ErrMalformedReply
	}
	return toTransactionStatus(out), nil
}

// ConfirmTransaction validates an IPN against the gateway. The response shape
// matches GetTransactionStatus.
func (c *Client) ConfirmTransaction(ctx context.Context, orderTrackingID string) (*interfaces.GatewayTransactionStatus, error) {
	token := c.creds.AccessToken(ctx)
	if token == "" {
		return nil, ErrNoAccessToken
	}

	var out transactionStatusResponse
	body := map[string]string{"orderTrackingId": orderTrackingID}
	if err := c.post(ctx, token, "/api/Transactions/ConfirmTransaction", body, &out); err != nil {
		log.Printf("[payment][gateway] ipn confirmation failed tracking_id=%s err=%v", orderTrackingID, err)
		return nil, err
	}
	return toTransactionStatus(out), nil
}

func (c *Client) post(ctx context.Context, token, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("pesapal: marshal request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("pesapal: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] request failed path=%s err=%v", path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[payment][gateway] request rejected path=%s status=%d", path, resp.StatusCode)
		return ErrGatewayRejected
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("[payment][gateway] response decode failed path=%s err=%v", path, err)
		return ErrMalformedReply
	}
	return nil
}

func toTransactionStatus(out transactionStatusResponse) *interfaces.GatewayTransactionStatus {
	// Pesapal answers with confirmation_code; some sandbox responses carry
	// transaction_id instead.
	code := out.ConfirmationCode
	if code == "" {
		code = out.TransactionID
	}
	return &interfaces.GatewayTransactionStatus{
		StatusCode:               out.StatusCode,
		PaymentMethod:            out.PaymentMethod,
		ConfirmationCode:         code,
		PaymentStatusDescription: out.PaymentStatusDescription,
	}
}
