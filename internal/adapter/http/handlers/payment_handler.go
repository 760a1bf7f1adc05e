package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pagove/internal/adapter/http/dto/request"
	response "pagove/internal/adapter/http/dto/response"
	"pagove/internal/domain/entities"
	"pagove/internal/usecase"
	"pagove/internal/usecase/interfaces"
	"pagove/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for single payment references.

type PaymentHandler struct {
	references    usecase.IReferenceUseCase
	confirmations usecase.IConfirmationUseCase
}

func NewPaymentHandler(references usecase.IReferenceUseCase, confirmations usecase.IConfirmationUseCase) *PaymentHandler {
	return &PaymentHandler{references: references, confirmations: confirmations}
}

// GenerateReference issues a new payment reference for an order.
func (h *PaymentHandler) GenerateReference(c *gin.Context) {
	var payload request.GenerateReferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] generate start user_id=%s service_type=%s service_id=%s", payload.UserID, payload.ServiceType, payload.ServiceID)

	ref, err := h.references.GenerateReference(
		c.Request.Context(),
		payload.UserID,
		entities.ServiceType(payload.ServiceType),
		payload.ServiceID,
		payload.Amount,
		entities.PaymentMethod(payload.PaymentMethod),
		payload.BankCode,
	)
	if err != nil {
		log.Printf("[payment][handler] generate failed user_id=%s err=%v", payload.UserID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentReference(ref))
}

// ConfirmReference verifies a reference against its bank validator.
func (h *PaymentHandler) ConfirmReference(c *gin.Context) {
	referenceNumber := c.Param("reference_number")
	var payload request.ConfirmReferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm start reference=%s user_id=%s", referenceNumber, payload.UserID)

	result, err := h.confirmations.Confirm(c.Request.Context(), referenceNumber, payload.UserID, payload.BankCode)
	if err != nil {
		log.Printf("[payment][handler] confirm failed reference=%s err=%v", referenceNumber, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm done reference=%s outcome=%s", referenceNumber, result.Outcome)

	c.JSON(http.StatusOK, response.FromConfirmationResult(result))
}

// GetReference returns a single reference, scoped to its owner.
func (h *PaymentHandler) GetReference(c *gin.Context) {
	referenceNumber := c.Param("reference_number")
	userID := c.Query("user_id")

	ref, err := h.references.GetReference(c.Request.Context(), referenceNumber, userID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentReference(ref))
}

// ListBanks returns the registered bank validators' metadata.
func (h *PaymentHandler) ListBanks(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromBankInfos(h.references.ListSupportedBanks()))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidServiceType),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrUnsupportedBank):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_BANK", "Bank code is not supported", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReferenceNotFound):
		return pkg.NewDomainErrorSimple("REFERENCE_NOT_FOUND", "Payment reference not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOwnershipMismatch):
		return pkg.NewDomainErrorSimple("OWNERSHIP_MISMATCH", "Resource belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAlreadyProcessed):
		return pkg.NewDomainErrorSimple("REFERENCE_ALREADY_PROCESSED", "Reference was already processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrReferenceExpired):
		return pkg.NewDomainErrorSimple("REFERENCE_EXPIRED", "Reference expired", http.StatusGone)
	case errors.Is(err, usecase.ErrBankUnavailable):
		return pkg.NewDomainErrorSimple("BANK_UNAVAILABLE", "Bank validator unavailable, retry later", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGroupNotFound):
		return pkg.NewDomainErrorSimple("GROUP_NOT_FOUND", "Payment group not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGroupClosed):
		return pkg.NewDomainErrorSimple("GROUP_CLOSED", "Payment group no longer accepts confirmations", http.StatusConflict)
	case errors.Is(err, usecase.ErrGenerationExhausted):
		return pkg.NewDomainError("GENERATION_EXHAUSTED", "Could not allocate a unique reference", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
