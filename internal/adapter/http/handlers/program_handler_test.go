package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mbg_backend/internal/adapter/http/handlers/mocks"
	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProgramRouter(t *testing.T, programs usecase.IProgramUseCase, regs usecase.IProgramRegistrationUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewProgramHandler(programs, regs)

	r := gin.New()
	r.GET("/v1/programs", h.ListPrograms)
	r.GET("/v1/programs/:id", h.GetProgram)
	r.POST("/v1/programs/:id/registrations", h.CreateRegistration)
	return r
}

func TestProgramHandler_ListPrograms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	programs := mocks.NewMockIProgramUseCase(ctrl)
	regs := mocks.NewMockIProgramRegistrationUseCase(ctrl)
	r := newProgramRouter(t, programs, regs)

	programs.EXPECT().List(gomock.Any()).Return([]entities.Program{
		{ID: "prog-1", Title: "Business Foundations", Price: "KES 25,000"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/programs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "prog-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestProgramHandler_GetProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	programs := mocks.NewMockIProgramUseCase(ctrl)
	regs := mocks.NewMockIProgramRegistrationUseCase(ctrl)
	r := newProgramRouter(t, programs, regs)

	programs.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Program{}, usecase.ErrProgramNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/programs/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProgramHandler_CreateRegistration(t *testing.T) {
	t.Run("program not accepting enrollments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		programs := mocks.NewMockIProgramUseCase(ctrl)
		regs := mocks.NewMockIProgramRegistrationUseCase(ctrl)
		r := newProgramRouter(t, programs, regs)

		regs.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.ProgramRegistration{}, usecase.ErrRegistrationClosed)

		payload := `{"full_name":"Jane Doe","email":"jane@test.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/programs/prog-1/registrations", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success starts unpaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		programs := mocks.NewMockIProgramUseCase(ctrl)
		regs := mocks.NewMockIProgramRegistrationUseCase(ctrl)
		r := newProgramRouter(t, programs, regs)

		regs.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, reg entities.ProgramRegistration) (entities.ProgramRegistration, error) {
				if reg.ProgramID != "prog-1" {
					t.Errorf("expected program id from url, got %q", reg.ProgramID)
				}
				reg.ID = "reg-1"
				return reg, nil
			})

		payload := `{"full_name":"Jane Doe","email":"jane@test.com","phone_number":"0712345678"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/programs/prog-1/registrations", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "reg-1" || body["paid"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
