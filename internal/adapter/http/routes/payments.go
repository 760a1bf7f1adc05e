package routes

import (
	"pagove/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, groupHandler *handlers.GroupHandler) {
	payments := rg.Group("/payments")

	payments.GET("/banks", paymentHandler.ListBanks)

	payments.POST("/references", paymentHandler.GenerateReference)
	payments.POST("/references/:reference_number/confirm", paymentHandler.ConfirmReference)
	payments.GET("/references/:reference_number", paymentHandler.GetReference)

	payments.POST("/groups", groupHandler.InitiateGroup)
	payments.POST("/groups/confirm/:reference_number", groupHandler.ConfirmPartialPayment)
	payments.GET("/groups/:group_id", groupHandler.GetGroupStatus)
	payments.DELETE("/groups/:group_id", groupHandler.CancelGroup)
}
