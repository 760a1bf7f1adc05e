package banks

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sync"
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MockBankValidator simulates a bank confirmation endpoint with a fixed
// success probability. Each bank in the reference deployment gets its own
// instance with its own rate, so integration behavior differs per bank the
// way the real validators do.
//
// The randomness lives here, behind the IBankValidator interface; the
// confirmation path itself stays deterministic and is tested with doubles.

type MockBankValidator struct {
	code        string
	name        string
	methods     []entities.PaymentMethod
	successRate float64

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

var _ interfaces.IBankValidator = (*MockBankValidator)(nil)

func NewMockBankValidator(code, name string, methods []entities.PaymentMethod, successRate float64) *MockBankValidator {
	return &MockBankValidator{
		code:        code,
		name:        name,
		methods:     methods,
		successRate: successRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
	}
}

func (v *MockBankValidator) VerifyPayment(ctx context.Context, referenceNumber string) (entities.PaymentValidation, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentValidation{}, err
	}

	v.mu.Lock()
	confirmed := v.rng.Float64() < v.successRate
	v.mu.Unlock()

	if !confirmed {
		return entities.PaymentValidation{
			Confirmed: false,
			Message:   fmt.Sprintf("no confirmation found for reference at %s", v.name),
		}, nil
	}

	return entities.PaymentValidation{
		Confirmed:     true,
		TransactionID: fmt.Sprintf("%s-%s", v.code, uuid.NewString()),
		Amount:        derivedAmount(referenceNumber),
		Timestamp:     v.now().UTC(),
		Message:       fmt.Sprintf("payment confirmed by %s", v.name),
	}, nil
}

func (v *MockBankValidator) Describe() entities.BankInfo {
	return entities.BankInfo{
		Code:             v.code,
		Name:             v.name,
		SupportedMethods: v.methods,
	}
}

// derivedAmount is stable per reference so repeated verifications of the
// same reference report the same confirmed amount.
func derivedAmount(referenceNumber string) float64 {
	h := fnv.New32a()
	h.Write([]byte(referenceNumber))
	cents := h.Sum32() % 1_000_000
	return float64(cents)/100.0 + 1.0
}
