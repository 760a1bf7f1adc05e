package banks

import (
	"context"
	"strings"
	"testing"

	"pagove/internal/domain/entities"
)

func TestMockBankValidator_VerifyPayment(t *testing.T) {
	t.Run("always confirms at rate 1", func(t *testing.T) {
		v := NewMockBankValidator("0102", "Banco de Venezuela", []entities.PaymentMethod{entities.PaymentMethodTransfer}, 1.0)

		validation, err := v.VerifyPayment(context.Background(), "20250310120000123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !validation.Confirmed {
			t.Fatalf("expected confirmation at success rate 1.0")
		}
		if !strings.HasPrefix(validation.TransactionID, "0102-") {
			t.Fatalf("transaction id must carry the bank code, got %q", validation.TransactionID)
		}
		if validation.Amount <= 0 {
			t.Fatalf("expected positive confirmed amount, got %.2f", validation.Amount)
		}
	})

	t.Run("never confirms at rate 0", func(t *testing.T) {
		v := NewMockBankValidator("0105", "Banco Mercantil", []entities.PaymentMethod{entities.PaymentMethodTransfer}, 0)

		validation, err := v.VerifyPayment(context.Background(), "20250310120000123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if validation.Confirmed {
			t.Fatalf("expected no confirmation at success rate 0")
		}
		if validation.Message == "" {
			t.Fatalf("expected explanatory message")
		}
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		v := NewMockBankValidator("0102", "Banco de Venezuela", []entities.PaymentMethod{entities.PaymentMethodTransfer}, 1.0)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := v.VerifyPayment(ctx, "20250310120000123456"); err == nil {
			t.Fatalf("expected context error")
		}
	})

	t.Run("confirmed amount is stable per reference", func(t *testing.T) {
		v := NewMockBankValidator("0102", "Banco de Venezuela", []entities.PaymentMethod{entities.PaymentMethodTransfer}, 1.0)

		first, err := v.VerifyPayment(context.Background(), "20250310120000123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := v.VerifyPayment(context.Background(), "20250310120000123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Amount != second.Amount {
			t.Fatalf("amounts differ across verifications: %.2f vs %.2f", first.Amount, second.Amount)
		}
	})
}

func TestMockBankValidator_Describe(t *testing.T) {
	methods := []entities.PaymentMethod{entities.PaymentMethodTransfer, entities.PaymentMethodZelle}
	v := NewMockBankValidator("0134", "Banesco", methods, 0.88)

	info := v.Describe()
	if info.Code != "0134" || info.Name != "Banesco" {
		t.Fatalf("unexpected bank info: %+v", info)
	}
	if len(info.SupportedMethods) != 2 {
		t.Fatalf("expected 2 supported methods, got %d", len(info.SupportedMethods))
	}
}
