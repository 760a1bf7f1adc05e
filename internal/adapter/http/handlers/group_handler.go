package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pagove/internal/adapter/http/dto/request"
	response "pagove/internal/adapter/http/dto/response"
	"pagove/internal/domain/entities"
	"pagove/internal/usecase"
	"pagove/pkg"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for multi-method payment groups.

type GroupHandler struct {
	groups        usecase.IGroupUseCase
	confirmations usecase.IConfirmationUseCase
}

func NewGroupHandler(groups usecase.IGroupUseCase, confirmations usecase.IConfirmationUseCase) *GroupHandler {
	return &GroupHandler{groups: groups, confirmations: confirmations}
}

// InitiateGroup creates a payment group and one reference per electronic method.
func (h *GroupHandler) InitiateGroup(c *gin.Context) {
	var payload request.InitiateGroupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[group][handler] initiate start user_id=%s service_id=%s methods=%d", payload.UserID, payload.ServiceID, len(payload.Methods))

	allocations := make([]usecase.MethodAllocation, 0, len(payload.Methods))
	for _, m := range payload.Methods {
		allocations = append(allocations, usecase.MethodAllocation{
			Method:   entities.PaymentMethod(m.Method),
			Amount:   m.Amount,
			BankCode: m.BankCode,
		})
	}

	init, err := h.groups.Initiate(
		c.Request.Context(),
		payload.UserID,
		entities.ServiceType(payload.ServiceType),
		payload.ServiceID,
		payload.TotalAmount,
		allocations,
	)
	if err != nil {
		log.Printf("[group][handler] initiate failed user_id=%s err=%v", payload.UserID, err)
		appErr := mapGroupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[group][handler] initiate done group_id=%s references=%d", init.Group.ID, len(init.References))

	c.JSON(http.StatusCreated, response.FromGroupInitiation(init))
}

// ConfirmPartialPayment confirms one reference belonging to a group.
func (h *GroupHandler) ConfirmPartialPayment(c *gin.Context) {
	referenceNumber := c.Param("reference_number")
	var payload request.ConfirmReferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[group][handler] confirm start reference=%s user_id=%s", referenceNumber, payload.UserID)

	result, err := h.confirmations.Confirm(c.Request.Context(), referenceNumber, payload.UserID, payload.BankCode)
	if err != nil {
		log.Printf("[group][handler] confirm failed reference=%s err=%v", referenceNumber, err)
		appErr := mapGroupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[group][handler] confirm done reference=%s outcome=%s", referenceNumber, result.Outcome)

	c.JSON(http.StatusOK, response.FromConfirmationResult(result))
}

// GetGroupStatus returns the group aggregate and its references.
func (h *GroupHandler) GetGroupStatus(c *gin.Context) {
	groupID := c.Param("group_id")
	userID := c.Query("user_id")

	detail, err := h.groups.GetStatus(c.Request.Context(), groupID, userID)
	if err != nil {
		appErr := mapGroupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGroupStatus(detail))
}

// CancelGroup cancels an incomplete group and expires its pending references.
func (h *GroupHandler) CancelGroup(c *gin.Context) {
	groupID := c.Param("group_id")
	userID := c.Query("user_id")
	log.Printf("[group][handler] cancel start group_id=%s user_id=%s", groupID, userID)

	if _, err := h.groups.Cancel(c.Request.Context(), groupID, userID); err != nil {
		log.Printf("[group][handler] cancel failed group_id=%s err=%v", groupID, err)
		appErr := mapGroupError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CancelGroupResponse{Status: "cancelled"})
}

func mapGroupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMethods):
		return pkg.NewDomainErrorSimple("INVALID_METHODS", "Payment methods are invalid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGroupAmountMismatch):
		return pkg.NewDomainErrorSimple("GROUP_AMOUNT_MISMATCH", "Method amounts do not sum to the total", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGroupAlreadyComplete):
		return pkg.NewDomainErrorSimple("GROUP_ALREADY_COMPLETE", "Payment group is already complete", http.StatusConflict)
	case errors.Is(err, usecase.ErrGroupConflict):
		return pkg.NewDomainError("GROUP_CONFLICT", "Payment group was updated concurrently, retry", err, http.StatusConflict)
	default:
		return mapPaymentError(err)
	}
}
