package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"mbg_backend/internal/infrastructure/cache"
	"mbg_backend/internal/usecase/interfaces"
)

// newGatewayServer serves the auth endpoint plus a caller-provided handler for
// everything else.
func newGatewayServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/Auth/RequestToken":
			_ = json.NewEncoder(w).Encode(map[string]any{"token": "tok-1", "expires_in": "3600"})
		case "/api/URLSetup/RegisterIPN":
			_ = json.NewEncoder(w).Encode(map[string]any{"ipn_id": "ipn-1"})
		default:
			handler(w, r)
		}
	}))
}

func newTestClient(srvURL string) *Client {
	cfg := testConfig(srvURL)
	return NewClient(cfg, NewCredentialCache(cfg, cache.NewMemoryCache()))
}

func testOrder() interfaces.GatewayOrder {
	return interfaces.GatewayOrder{
		ID:             "mref-1",
		Currency:       "KES",
		Amount:         5000,
		Description:    "Workshop",
		CallbackURL:    "https://api.test/callback",
		NotificationID: "ipn-override",
		BillingAddress: interfaces.GatewayBillingAddress{
			EmailAddress: "jane@test.com",
			PhoneNumber:  "254712345678",
			CountryCode:  "KE",
			FirstName:    "Jane",
			LastName:     "Doe",
		},
	}
}

func TestClient_SubmitOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/Transactions/SubmitOrderRequest" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
				t.Errorf("unexpected authorization %q", got)
			}
			var order interfaces.GatewayOrder
			_ = json.NewDecoder(r.Body).Decode(&order)
			if order.ID != "mref-1" || order.Amount != 5000 {
				t.Errorf("unexpected order payload: %+v", order)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"order_tracking_id":  "trk-1",
				"merchant_reference": "mref-1",
				"redirect_url":       "https://pay.pesapal.com/x",
			})
		})
		defer srv.Close()

		resp, err := newTestClient(srv.URL).SubmitOrder(context.Background(), testOrder())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.OrderTrackingID != "trk-1" || resp.RedirectURL != "https://pay.pesapal.com/x" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("attaches notification id when absent", func(t *testing.T) {
		srv := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
			var order interfaces.GatewayOrder
			_ = json.NewDecoder(r.Body).Decode(&order)
			if order.NotificationID != "ipn-1" {
				t.Errorf("expected lazily registered notification id, got %q", order.NotificationID)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"order_tracking_id": "trk-1",
				"redirect_url":      "https://pay",
			})
		})
		defer srv.Close()

		order := testOrder()
		order.NotificationID = ""
		if _, err := newTestClient(srv.URL).SubmitOrder(context.Background(), order); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("business error", func(t *testing.T) {
		srv := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{"code": "invalid_currency"},
			})
		})
		defer srv.Close()

		_, err := newTestClient(srv.URL).SubmitOrder(context.Background(), testOrder())
		if !errors.Is(err, ErrGatewayBusiness) {
			t.Fatalf("expected ErrGatewayBusiness, got %v", err)
		}
	})

	t.Run("missing redirect url", func(t *testing.T) {
		srv := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"order_tracking_id": "trk-1"})
		})
		defer srv.Close()

		_, err := newTestClient(srv.URL).SubmitOrder(context.Background(), testOrder())
		if !errors.Is(err, ErrMissingRedirect) {
			t.Fatalf("expected ErrMissingRedirect, got %v", err)
		}
	})

	t.Run("missing tracking id", func(t *testing.T) {
		srv := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"redirect_url": "https://pay"})
		})
		defer srv.Close()

		_, err := newTestClient(srv.URL).SubmitOrder(context.Background(), testOrder())
		if !errors.Is(err, ErrMalformedReply) {
			t.Fatalf("expected ErrMalformedReply, got %v", err)
		}
	})

	t.Run("retries transient server errors", func(t *testing.T) {
		var attempts int32
		srv := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"order_tracking_id": "trk-1",
				"redirect_url":      "https://pay",
			})
		})
		defer srv.Close()

		if _, err := newTestClient(srv.URL).SubmitOrder(context.Background(), testOrder()); err != nil {
			t.Fatalf("expected retry to succeed, got %v", err)
		}
		if n := atomic.LoadInt32(&attempts); n != 2 {
			t.Fatalf("expected 2 attempts, got %d", n)
		}
	})

	t.Run("no access token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).SubmitOrder(context.Background(), testOrder())
		if !errors.Is(err, ErrNoAccessToken) {
			t.Fatalf("expected ErrNoAccessToken, got %v", err)
		}
	})
}

func TestClient_GetTransactionStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/Transactions/GetTransactionStatus" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("orderTrackingId"); got != "trk-1" {
				t.Errorf("unexpected tracking id %q", got)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status_code":                1,
				"payment_method":             "MPESA",
				"confirmation_code":          "txn-1",
				"payment_status_description": "Completed",
			})
		})
		defer srv.Close()

		ts, err := newTestClient(srv.URL).GetTransactionStatus(context.Background(), "trk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ts.StatusCode != 1 || ts.PaymentMethod != "MPESA" || ts.ConfirmationCode != "txn-1" {
			t.Fatalf("unexpected status: %+v", ts)
		}
	})

	t.Run("transaction id fallback", func(t *testing.T) {
		srv := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status_code":    1,
				"transaction_id": "txn-2",
			})
		})
		defer srv.Close()

		ts, err := newTestClient(srv.URL).GetTransactionStatus(context.Background(), "trk-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ts.ConfirmationCode != "txn-2" {
			t.Fatalf("expected transaction_id fallback, got %+v", ts)
		}
	})
}

func TestClient_ConfirmTransaction(t *testing.T) {
	srv := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Transactions/ConfirmTransaction" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["orderTrackingId"] != "trk-1" {
			t.Errorf("unexpected body: %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"status_code": 2, "payment_status_description": "Failed"})
	})
	defer srv.Close()

	ts, err := newTestClient(srv.URL).ConfirmTransaction(context.Background(), "trk-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.StatusCode != 2 {
		t.Fatalf("unexpected status: %+v", ts)
	}
}
