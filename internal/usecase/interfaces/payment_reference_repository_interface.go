package interfaces

import (
	"context"
	"time"

	"pagove/internal/domain/entities"
)

// IPaymentReferenceRepository abstracts DynamoDB persistence for PaymentReference.
//
// Conditional-write convention (as across the repository layer): methods that
// race on a condition return a zero-value entity with a nil error when the
// condition was not met, so callers can distinguish "lost the race" from
// infrastructure failures.

type IPaymentReferenceRepository interface {
	// Create persists a new reference. Returns a zero-value entity when a
	// reference with the same number already exists.
	Create(ctx context.Context, ref entities.PaymentReference) (entities.PaymentReference, error)
	GetByReferenceNumber(ctx context.Context, referenceNumber string) (entities.PaymentReference, error)
	ListByGroupID(ctx context.Context, groupID string) ([]entities.PaymentReference, error)

	// TransitionStatus moves a reference from one observed status to another.
	// The write is conditioned on the reference still holding the from status;
	// a zero-value entity means another writer transitioned it first.
	TransitionStatus(ctx context.Context, referenceNumber string, from, to entities.ReferenceStatus, at time.Time) (entities.PaymentReference, error)

	// ConfirmWithBankTransaction commits pending -> confirmed together with
	// the BankTransaction record in a single transactional write, so the
	// reference is never confirmed without its transaction nor vice versa.
	ConfirmWithBankTransaction(ctx context.Context, referenceNumber string, tx entities.BankTransaction) (entities.PaymentReference, error)
}
