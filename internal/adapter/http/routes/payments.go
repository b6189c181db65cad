package routes

import (
	"github.com/gin-gonic/gin"

	"mbg_backend/internal/adapter/http/handlers"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/events/registrations/:registration_id/initiate", paymentHandler.InitiateEventPayment)
		payments.GET("/events/:payment_id", paymentHandler.GetEventPayment)
		payments.POST("/programs/registrations/:registration_id/initiate", paymentHandler.InitiateProgramPayment)
		payments.GET("/programs/:payment_id", paymentHandler.GetProgramPayment)

		// Pesapal drives these two: the payer's browser lands on the callback,
		// the gateway's servers post the IPN.
		payments.GET("/pesapal/callback", paymentHandler.Callback)
		payments.POST("/pesapal/callback", paymentHandler.Callback)
		payments.POST("/pesapal/ipn", paymentHandler.IPN)
	}
}
