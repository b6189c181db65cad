package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mbg_backend/internal/adapter/http/handlers/mocks"
	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T, uc usecase.IPaymentUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(uc, "https://www.mbg.test/")

	r := gin.New()
	r.POST("/v1/payments/events/registrations/:registration_id/initiate", h.InitiateEventPayment)
	r.POST("/v1/payments/programs/registrations/:registration_id/initiate", h.InitiateProgramPayment)
	r.GET("/v1/payments/events/:payment_id", h.GetEventPayment)
	r.GET("/v1/payments/programs/:payment_id", h.GetProgramPayment)
	r.GET("/v1/payments/pesapal/callback", h.Callback)
	r.POST("/v1/payments/pesapal/ipn", h.IPN)
	return r
}

func TestPaymentHandler_InitiateEventPayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().InitiateEventPayment(gomock.Any(), "reg-1").Return(entities.Payment{
			ID:         "pay-1",
			Status:     entities.PaymentStatusInitiated,
			PaymentURL: "https://pay.pesapal.com/x",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/events/registrations/reg-1/initiate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" || body["redirect_url"] != "https://pay.pesapal.com/x" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("registration not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().InitiateEventPayment(gomock.Any(), "missing").Return(entities.Payment{}, usecase.ErrRegistrationNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/events/registrations/missing/initiate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("free event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().InitiateEventPayment(gomock.Any(), "reg-1").Return(entities.Payment{}, usecase.ErrEventIsFree)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/events/registrations/reg-1/initiate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "EVENT_IS_FREE") {
			t.Fatalf("expected EVENT_IS_FREE code, got body: %s", w.Body.String())
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().InitiateEventPayment(gomock.Any(), "reg-1").Return(entities.Payment{}, usecase.ErrGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/events/registrations/reg-1/initiate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_InitiateProgramPayment(t *testing.T) {
	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().InitiateProgramPayment(gomock.Any(), "reg-1").Return(entities.Payment{}, usecase.ErrPaymentAlreadyCompleted)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/programs/registrations/reg-1/initiate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetEventPayment(t *testing.T) {
	t.Run("success includes gateway reachability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().GetEventPaymentStatus(gomock.Any(), "pay-1").Return(usecase.PaymentStatusView{
			Payment:          entities.Payment{ID: "pay-1", Status: entities.PaymentStatusInitiated},
			GatewayReachable: false,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/events/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["gateway_reachable"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().GetEventPaymentStatus(gomock.Any(), "missing").Return(usecase.PaymentStatusView{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/events/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Callback(t *testing.T) {
	t.Run("redirects to domain result page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().HandleCallback(gomock.Any(), "trk-1").Return(usecase.CallbackResult{
			Domain:  entities.PaymentDomainEvent,
			Payment: entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCompleted},
			Message: "Payment received. Thank you!",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pesapal/callback?OrderTrackingId=trk-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		loc := w.Header().Get("Location")
		if !strings.HasPrefix(loc, "https://www.mbg.test/events/payment-result?") {
			t.Fatalf("unexpected redirect: %s", loc)
		}
		if !strings.Contains(loc, "status=completed") || !strings.Contains(loc, "message=") {
			t.Fatalf("expected status and message in redirect: %s", loc)
		}
	})

	t.Run("unknown payment still redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().HandleCallback(gomock.Any(), "bogus").Return(usecase.CallbackResult{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pesapal/callback?OrderTrackingId=bogus", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		loc := w.Header().Get("Location")
		if !strings.HasPrefix(loc, "https://www.mbg.test/payment-result?") {
			t.Fatalf("expected generic result page, got: %s", loc)
		}
		if !strings.Contains(loc, "status=unknown") {
			t.Fatalf("expected unknown status in redirect: %s", loc)
		}
	})
}

func TestPaymentHandler_IPN(t *testing.T) {
	t.Run("acks processed notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().HandleIPN(gomock.Any(), "trk-1").Return(usecase.IPNResult{}, nil)

		payload := `{"OrderTrackingId":"trk-1","OrderNotificationType":"IPNCHANGE"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pesapal/ipn", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["orderTrackingId"] != "trk-1" || body["orderNotificationType"] != "IPNCHANGE" {
			t.Fatalf("unexpected ack: %s", w.Body.String())
		}
		if body["status"] != float64(200) {
			t.Fatalf("expected ack status 200, got: %s", w.Body.String())
		}
	})

	t.Run("tracking id falls back to query string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().HandleIPN(gomock.Any(), "trk-2").Return(usecase.IPNResult{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pesapal/ipn?OrderTrackingId=trk-2&OrderNotificationType=IPNCHANGE", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "trk-2") {
			t.Fatalf("unexpected ack: %s", w.Body.String())
		}
	})

	t.Run("unknown payment is acked as final", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().HandleIPN(gomock.Any(), "bogus").Return(usecase.IPNResult{}, usecase.ErrPaymentNotFound)

		payload := `{"OrderTrackingId":"bogus"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pesapal/ipn", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != float64(200) {
			t.Fatalf("expected final ack, got: %s", w.Body.String())
		}
	})

	t.Run("gateway trouble requests redelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(t, uc)

		uc.EXPECT().HandleIPN(gomock.Any(), "trk-1").Return(usecase.IPNResult{}, usecase.ErrGatewayUnavailable)

		payload := `{"OrderTrackingId":"trk-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pesapal/ipn", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected HTTP 200 even on redelivery request, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != float64(500) {
			t.Fatalf("expected redelivery status 500, got: %s", w.Body.String())
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidRegistrationID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentID, http.StatusBadRequest},
		{usecase.ErrEventIsFree, http.StatusBadRequest},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrRegistrationNotFound, http.StatusNotFound},
		{usecase.ErrEventNotFound, http.StatusNotFound},
		{usecase.ErrProgramNotFound, http.StatusNotFound},
		{usecase.ErrPaymentAlreadyCompleted, http.StatusConflict},
		{usecase.ErrGatewayUnavailable, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
