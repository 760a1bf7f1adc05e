package interfaces

import (
	"context"

	"pagove/internal/domain/entities"
)

// IBankTransactionRepository abstracts DynamoDB persistence for BankTransaction.
//
// Bank transactions are written through the reference repository's
// transactional confirm; this contract covers the read side plus standalone
// writes in tooling/tests.

type IBankTransactionRepository interface {
	Create(ctx context.Context, tx entities.BankTransaction) (entities.BankTransaction, error)
	GetByReferenceNumber(ctx context.Context, referenceNumber string) (entities.BankTransaction, error)
}
