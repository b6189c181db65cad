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

var errInvalidRegistrationPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRATION_INPUT", "Invalid registration payload", http.StatusBadRequest)

// EventHandler serves the event catalog and event registrations.

type EventHandler struct {
	events        usecase.IEventUseCase
	registrations usecase.IEventRegistrationUseCase
}

func NewEventHandler(events usecase.IEventUseCase, registrations usecase.IEventRegistrationUseCase) *EventHandler {
	return &EventHandler{events: events, registrations: registrations}
}

// ListEvents returns every event ordered by start date.
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.events.List(c.Request.Context())
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEvents(events))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	ev, err := h.events.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEvent(ev))
}

func (h *EventHandler) ListRegistrations(c *gin.Context) {
	regs, err := h.registrations.ListByEventID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEventRegistrations(regs))
}

// CreateRegistration signs one person up for the event in the URL. Free events
// come back confirmed; paid events come back pending with a payment waiting to
// be initiated.
func (h *EventHandler) CreateRegistration(c *gin.Context) {
	var payload request.EventRegistrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistrationPayload.HTTPStatus, errInvalidRegistrationPayload.ToHTTPError())
		return
	}

	reg, err := h.registrations.Register(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEventRegistration(reg))
}

func mapEventError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventID), errors.Is(err, usecase.ErrInvalidRegistrationID), errors.Is(err, usecase.ErrInvalidRegistration):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegistrationClosed):
		return pkg.NewDomainErrorSimple("REGISTRATION_CLOSED", "Registration is closed for this event", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
