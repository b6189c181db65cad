package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "mbg_backend/internal/adapter/http/dto/request"
	response "mbg_backend/internal/adapter/http/dto/response"
	"mbg_backend/internal/usecase"
	"mbg_backend/pkg"
)

// ProgramHandler serves the program catalog and program enrollments.

type ProgramHandler struct {
	programs      usecase.IProgramUseCase
	registrations usecase.IProgramRegistrationUseCase
}

func NewProgramHandler(programs usecase.IProgramUseCase, registrations usecase.IProgramRegistrationUseCase) *ProgramHandler {
	return &ProgramHandler{programs: programs, registrations: registrations}
}

func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	programs, err := h.programs.List(c.Request.Context())
	if err != nil {
		appErr := mapProgramError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPrograms(programs))
}

func (h *ProgramHandler) GetProgram(c *gin.Context) {
	prog, err := h.programs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProgramError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProgram(prog))
}

func (h *ProgramHandler) CreateRegistration(c *gin.Context) {
	var payload request.ProgramRegistrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistrationPayload.HTTPStatus, errInvalidRegistrationPayload.ToHTTPError())
		return
	}

	reg, err := h.registrations.Register(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapProgramError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProgramRegistration(reg))
}

func mapProgramError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProgramID), errors.Is(err, usecase.ErrInvalidRegistrationID), errors.Is(err, usecase.ErrInvalidRegistration):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProgramNotFound):
		return pkg.NewDomainErrorSimple("PROGRAM_NOT_FOUND", "Program not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegistrationClosed):
		return pkg.NewDomainErrorSimple("REGISTRATION_CLOSED", "This program is not accepting enrollments", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
