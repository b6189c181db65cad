package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	request "mbg_backend/internal/adapter/http/dto/request"
	response "mbg_backend/internal/adapter/http/dto/response"
	"mbg_backend/internal/domain/entities"
	"mbg_backend/internal/usecase"
	"mbg_backend/pkg"
)

// PaymentHandler exposes the three reconciliation triggers over HTTP: the
// initiate/poll endpoints consumed by the frontend, the browser callback
// redirect and the Pesapal IPN.
//
// The callback endpoint never answers JSON: a payer's browser lands on it, so
// every outcome, including "payment not found", becomes a 302 to a frontend
// result page.

type PaymentHandler struct {
	usecase     usecase.IPaymentUseCase
	frontendURL string
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, frontendURL string) *PaymentHandler {
	return &PaymentHandler{usecase: uc, frontendURL: strings.TrimRight(frontendURL, "/")}
}

// InitiateEventPayment submits (or re-submits) the payment for an event
// registration and returns the record with the hosted payment page URL.
func (h *PaymentHandler) InitiateEventPayment(c *gin.Context) {
	p, err := h.usecase.InitiateEventPayment(c.Request.Context(), c.Param("registration_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *PaymentHandler) InitiateProgramPayment(c *gin.Context) {
	p, err := h.usecase.InitiateProgramPayment(c.Request.Context(), c.Param("registration_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetEventPayment is the frontend poll: it reconciles against the gateway
// before answering.
func (h *PaymentHandler) GetEventPayment(c *gin.Context) {
	view, err := h.usecase.GetEventPaymentStatus(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentStatus(view))
}

func (h *PaymentHandler) GetProgramPayment(c *gin.Context) {
	view, err := h.usecase.GetProgramPaymentStatus(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentStatus(view))
}

// Callback handles the redirect from Pesapal's hosted page. Pesapal sends the
// payer here with OrderTrackingId and OrderMerchantReference in the query; the
// outcome in the query string is not trusted, the use case re-queries.
func (h *PaymentHandler) Callback(c *gin.Context) {
	trackingID := c.Query("OrderTrackingId")

	result, err := h.usecase.HandleCallback(c.Request.Context(), trackingID)
	if err != nil {
		h.redirectToResult(c, "", "unknown", "We could not find this payment. Contact support if you were charged.")
		return
	}
	h.redirectToResult(c, result.Domain, string(result.Payment.Status), result.Message)
}

func (h *PaymentHandler) redirectToResult(c *gin.Context, domain entities.PaymentDomain, status, message string) {
	path := "/payment-result"
	switch domain {
	case entities.PaymentDomainEvent:
		path = "/events/payment-result"
	case entities.PaymentDomainProgram:
		path = "/programs/payment-result"
	}

	q := url.Values{}
	q.Set("status", status)
	q.Set("message", message)
	c.Redirect(http.StatusFound, h.frontendURL+path+"?"+q.Encode())
}

// IPN handles Pesapal's server-to-server notification. The tracking id may
// arrive in the JSON body or, for older configurations, in the query string.
// The ack body's status field tells Pesapal whether to redeliver.
func (h *PaymentHandler) IPN(c *gin.Context) {
	var payload request.IPNRequest
	_ = c.ShouldBindJSON(&payload)
	if payload.OrderTrackingID == "" {
		payload.OrderTrackingID = c.Query("OrderTrackingId")
	}
	if payload.OrderNotificationType == "" {
		payload.OrderNotificationType = c.Query("OrderNotificationType")
	}

	ack := response.IPNAck{
		OrderNotificationType: payload.OrderNotificationType,
		OrderTrackingID:       payload.OrderTrackingID,
		Status:                http.StatusOK,
	}
	if _, err := h.usecase.HandleIPN(c.Request.Context(), payload.OrderTrackingID); err != nil {
		// Not-found and bad input are final; only gateway trouble is worth a
		// redelivery.
		if errors.Is(err, usecase.ErrGatewayUnavailable) {
			ack.Status = http.StatusInternalServerError
		}
	}
	c.JSON(http.StatusOK, ack)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidRegistrationID), errors.Is(err, usecase.ErrInvalidTrackingID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProgramNotFound):
		return pkg.NewDomainErrorSimple("PROGRAM_NOT_FOUND", "Program not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAlreadyCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_COMPLETED", "Payment has already been completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrEventIsFree):
		return pkg.NewDomainErrorSimple("EVENT_IS_FREE", "This event does not require payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway is unavailable, try again shortly", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
