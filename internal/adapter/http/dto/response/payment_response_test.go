package response

import (
	"testing"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase"
)

func TestFromConfirmationResult(t *testing.T) {
	t.Run("omits absent transaction and group", func(t *testing.T) {
		out := FromConfirmationResult(usecase.ConfirmationResult{
			Outcome:   usecase.OutcomePending,
			Reference: entities.PaymentReference{ReferenceNumber: "20250310120000123456"},
			Message:   "payment not found",
		})
		if out.Outcome != "pending" {
			t.Fatalf("expected pending outcome, got %s", out.Outcome)
		}
		if out.Transaction != nil || out.Group != nil {
			t.Fatalf("expected nil transaction and group")
		}
	})

	t.Run("carries transaction and group when present", func(t *testing.T) {
		out := FromConfirmationResult(usecase.ConfirmationResult{
			Outcome:     usecase.OutcomeConfirmed,
			Reference:   entities.PaymentReference{ReferenceNumber: "20250310120000123456"},
			Transaction: &entities.BankTransaction{ID: "tx-1", BankTransactionID: "0102-abc", ConfirmedAmount: 50},
			Group:       &entities.PaymentGroup{ID: "group-1", PaidAmount: 25, RemainingAmount: 75.50},
		})
		if out.Transaction == nil || out.Transaction.ID != "tx-1" {
			t.Fatalf("expected transaction in response, got %+v", out.Transaction)
		}
		if out.Group == nil || out.Group.RemainingAmount != 75.50 {
			t.Fatalf("expected group in response, got %+v", out.Group)
		}
	})
}

func TestFromPaymentReferences_Empty(t *testing.T) {
	out := FromPaymentReferences(nil)
	if out == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(out) != 0 {
		t.Fatalf("expected no elements, got %d", len(out))
	}
}
