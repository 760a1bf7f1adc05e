package banks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

// WalletBankCode is the pseudo bank code the wallet validator registers under.
const WalletBankCode = "0000"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrWalletValidatorNotConfigured = errors.New("wallet validator not configured")

// WalletValidator confirms wallet top-up payments against Mercado Pago.
//
// Wallet charges are created client-side with the reference number as
// external_reference; verification searches for an approved payment carrying
// that reference.

type WalletValidator struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IBankValidator = (*WalletValidator)(nil)

func NewWalletValidator(accessToken string) (*WalletValidator, error) {
	if isWalletValidatorMockEnabled() {
		log.Printf("[banks][wallet] mock mode enabled")
		return &WalletValidator{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[banks][wallet] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[banks][wallet] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[banks][wallet] Mercado Pago client initialized")

	return &WalletValidator{client: payment.NewClient(cfg)}, nil
}

func (v *WalletValidator) VerifyPayment(ctx context.Context, referenceNumber string) (entities.PaymentValidation, error) {
	if v != nil && v.mockMode {
		log.Printf("[banks][wallet] mock verify reference=%s", referenceNumber)
		return entities.PaymentValidation{
			Confirmed:     true,
			TransactionID: fmt.Sprintf("%s-%d", WalletBankCode, time.Now().UTC().UnixNano()),
			Amount:        derivedAmount(referenceNumber),
			Timestamp:     time.Now().UTC(),
			Message:       "payment approved (mock)",
		}, nil
	}

	if v == nil || v.client == nil {
		log.Printf("[banks][wallet] validator not configured")
		return entities.PaymentValidation{}, ErrWalletValidatorNotConfigured
	}

	log.Printf("[banks][wallet] verify start reference=%s", referenceNumber)
	resp, err := v.client.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{
			"external_reference": referenceNumber,
		},
	})
	if err != nil {
		log.Printf("[banks][wallet] sdk search failed reference=%s err=%v", referenceNumber, err)
		return entities.PaymentValidation{}, err
	}

	for _, res := range resp.Results {
		if res.Status != "approved" {
			continue
		}
		raw, _ := json.Marshal(res)
		log.Printf("[banks][wallet] verify success reference=%s provider_payment_id=%d payload_len=%d", referenceNumber, res.ID, len(raw))
		return entities.PaymentValidation{
			Confirmed:     true,
			TransactionID: fmt.Sprintf("%d", res.ID),
			Amount:        res.TransactionAmount,
			Timestamp:     time.Now().UTC(),
			Message:       "payment approved by Mercado Pago",
		}, nil
	}

	log.Printf("[banks][wallet] no approved payment reference=%s results=%d", referenceNumber, len(resp.Results))
	return entities.PaymentValidation{
		Confirmed: false,
		Message:   "no approved Mercado Pago payment for this reference",
	}, nil
}

func (v *WalletValidator) Describe() entities.BankInfo {
	return entities.BankInfo{
		Code:             WalletBankCode,
		Name:             "Pago Wallet (Mercado Pago)",
		SupportedMethods: []entities.PaymentMethod{entities.PaymentMethodWallet},
	}
}

func isWalletValidatorMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
