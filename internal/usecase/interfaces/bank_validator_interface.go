package interfaces

import (
	"context"
	"errors"

	"pagove/internal/domain/entities"
)

var ErrUnsupportedBank = errors.New("unsupported bank code")

// IBankValidator is the pluggable per-bank confirmation contract.
//
// VerifyPayment asks the bank whether the reference was paid. Implementations
// may be slow, wrong, or unavailable; callers bound the call with a context
// deadline and treat transport errors as "unknown", not "failed".
type IBankValidator interface {
	VerifyPayment(ctx context.Context, referenceNumber string) (entities.PaymentValidation, error)
	Describe() entities.BankInfo
}

// IBankValidatorRegistry maps bank codes to validator instances.
//
// New banks are added by registering another validator under its code; no
// calling code changes.
type IBankValidatorRegistry interface {
	GetValidator(bankCode string) (IBankValidator, error)
	ListBanks() []entities.BankInfo
}
