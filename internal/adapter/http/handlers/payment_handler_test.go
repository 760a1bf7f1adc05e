package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pagove/internal/adapter/http/handlers/mocks"
	"pagove/internal/domain/entities"
	"pagove/internal/usecase"
	"pagove/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_GenerateReference(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refs := mocks.NewMockIReferenceUseCase(ctrl)
		h := NewPaymentHandler(refs, nil)

		r := gin.New()
		r.POST("/v1/payments/references", h.GenerateReference)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/references", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported bank", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refs := mocks.NewMockIReferenceUseCase(ctrl)
		h := NewPaymentHandler(refs, nil)

		r := gin.New()
		r.POST("/v1/payments/references", h.GenerateReference)

		refs.EXPECT().GenerateReference(gomock.Any(), "user-1", entities.ServiceTypeRide, "svc-1", 50.0, entities.PaymentMethodTransfer, "9999").
			Return(entities.PaymentReference{}, interfaces.ErrUnsupportedBank)

		body := `{"user_id":"user-1","service_type":"ride","service_id":"svc-1","amount":50,"payment_method":"transfer","bank_code":"9999"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/references", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "UNSUPPORTED_BANK" {
			t.Fatalf("expected UNSUPPORTED_BANK code, got %v", resp["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refs := mocks.NewMockIReferenceUseCase(ctrl)
		h := NewPaymentHandler(refs, nil)

		r := gin.New()
		r.POST("/v1/payments/references", h.GenerateReference)

		now := time.Now().UTC()
		refs.EXPECT().GenerateReference(gomock.Any(), "user-1", entities.ServiceTypeRide, "svc-1", 75.50, entities.PaymentMethodTransfer, "").
			Return(entities.PaymentReference{
				ReferenceNumber: "20250310120000123456",
				BankCode:        "0102",
				Amount:          75.50,
				Currency:        "VES",
				UserID:          "user-1",
				ServiceType:     entities.ServiceTypeRide,
				ServiceID:       "svc-1",
				PaymentMethod:   entities.PaymentMethodTransfer,
				Status:          entities.ReferenceStatusPending,
				ExpiresAt:       now.Add(24 * time.Hour),
				CreatedAt:       now,
			}, nil)

		body := `{"user_id":"user-1","service_type":"ride","service_id":"svc-1","amount":75.50,"payment_method":"transfer"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/references", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["reference_number"] != "20250310120000123456" {
			t.Fatalf("unexpected reference_number: %v", resp["reference_number"])
		}
		if resp["status"] != "pending" {
			t.Fatalf("expected pending status, got %v", resp["status"])
		}
	})
}

func TestPaymentHandler_ConfirmReference(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("expired reference maps to 410", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		confirmations := mocks.NewMockIConfirmationUseCase(ctrl)
		h := NewPaymentHandler(nil, confirmations)

		r := gin.New()
		r.POST("/v1/payments/references/:reference_number/confirm", h.ConfirmReference)

		confirmations.EXPECT().Confirm(gomock.Any(), "20250310120000123456", "user-1", "").
			Return(usecase.ConfirmationResult{}, usecase.ErrReferenceExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/references/20250310120000123456/confirm", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("bank unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		confirmations := mocks.NewMockIConfirmationUseCase(ctrl)
		h := NewPaymentHandler(nil, confirmations)

		r := gin.New()
		r.POST("/v1/payments/references/:reference_number/confirm", h.ConfirmReference)

		confirmations.EXPECT().Confirm(gomock.Any(), "20250310120000123456", "user-1", "").
			Return(usecase.ConfirmationResult{}, usecase.ErrBankUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/references/20250310120000123456/confirm", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		confirmations := mocks.NewMockIConfirmationUseCase(ctrl)
		h := NewPaymentHandler(nil, confirmations)

		r := gin.New()
		r.POST("/v1/payments/references/:reference_number/confirm", h.ConfirmReference)

		result := usecase.ConfirmationResult{
			Outcome: usecase.OutcomeConfirmed,
			Reference: entities.PaymentReference{
				ReferenceNumber: "20250310120000123456",
				Status:          entities.ReferenceStatusConfirmed,
			},
			Transaction: &entities.BankTransaction{ID: "tx-1", BankTransactionID: "0102-abc"},
		}
		confirmations.EXPECT().Confirm(gomock.Any(), "20250310120000123456", "user-1", "0102").Return(result, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/references/20250310120000123456/confirm", bytes.NewBufferString(`{"user_id":"user-1","bank_code":"0102"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["outcome"] != "confirmed" {
			t.Fatalf("expected confirmed outcome, got %v", resp["outcome"])
		}
	})
}

func TestPaymentHandler_GetReference(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ownership mismatch maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refs := mocks.NewMockIReferenceUseCase(ctrl)
		h := NewPaymentHandler(refs, nil)

		r := gin.New()
		r.GET("/v1/payments/references/:reference_number", h.GetReference)

		refs.EXPECT().GetReference(gomock.Any(), "20250310120000123456", "intruder").
			Return(entities.PaymentReference{}, usecase.ErrOwnershipMismatch)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/references/20250310120000123456?user_id=intruder", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refs := mocks.NewMockIReferenceUseCase(ctrl)
		h := NewPaymentHandler(refs, nil)

		r := gin.New()
		r.GET("/v1/payments/references/:reference_number", h.GetReference)

		refs.EXPECT().GetReference(gomock.Any(), "20250310120000123456", "user-1").
			Return(entities.PaymentReference{}, usecase.ErrReferenceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/references/20250310120000123456?user_id=user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListBanks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	refs := mocks.NewMockIReferenceUseCase(ctrl)
	h := NewPaymentHandler(refs, nil)

	r := gin.New()
	r.GET("/v1/payments/banks", h.ListBanks)

	refs.EXPECT().ListSupportedBanks().Return([]entities.BankInfo{
		{Code: "0102", Name: "Banco de Venezuela", SupportedMethods: []entities.PaymentMethod{entities.PaymentMethodTransfer}},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/banks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 1 || resp[0]["code"] != "0102" {
		t.Fatalf("unexpected banks payload: %v", resp)
	}
}
