package interfaces

import (
	"context"

	"pagove/internal/domain/entities"
)

// IPaymentGroupRepository abstracts DynamoDB persistence for PaymentGroup.
//
// The group aggregates are recomputed with a read-modify-write cycle; Update
// is conditioned on the version the caller read, which serializes concurrent
// confirmations of distinct references in the same group.

type IPaymentGroupRepository interface {
	Create(ctx context.Context, g entities.PaymentGroup) (entities.PaymentGroup, error)
	GetByID(ctx context.Context, id string) (entities.PaymentGroup, error)

	// Update writes the aggregate fields carried by g conditioned on
	// g.Version being the stored version. A zero-value entity means the
	// version moved underneath the caller, who should re-read and retry.
	Update(ctx context.Context, g entities.PaymentGroup) (entities.PaymentGroup, error)
}
