package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mbg_backend/internal/adapter/http/handlers/mocks"
	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newContactRouter(t *testing.T, uc usecase.IContactUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewContactHandler(uc)

	r := gin.New()
	r.POST("/v1/contact", h.Create)
	return r
}

func TestContactHandler_Create(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		r := newContactRouter(t, uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		r := newContactRouter(t, uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ContactMessage{}, usecase.ErrInvalidContactMessage)

		payload := `{"name":"Jane Doe"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		r := newContactRouter(t, uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, msg entities.ContactMessage) (entities.ContactMessage, error) {
				if msg.Email != "jane@test.com" {
					t.Errorf("unexpected email %q", msg.Email)
				}
				msg.ID = "msg-1"
				return msg, nil
			})

		payload := `{"name":"Jane Doe","email":"jane@test.com","message":"I would like to learn more."}`
		req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "msg-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		r := newContactRouter(t, uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.ContactMessage{}, errors.New("dynamo down"))

		payload := `{"name":"Jane Doe","email":"jane@test.com","message":"hello"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
