package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"
	"pagove/pkg/refnum"
)

var (
	ErrInvalidUserID        = errors.New("invalid user_id")
	ErrInvalidServiceType   = errors.New("invalid service_type")
	ErrInvalidServiceID     = errors.New("invalid service_id")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidPaymentMethod = errors.New("invalid payment_method")
	ErrReferenceNotFound    = errors.New("payment reference not found")
	ErrOwnershipMismatch    = errors.New("resource does not belong to requesting user")
	ErrGenerationExhausted  = errors.New("reference number generation exhausted")
)

const (
	maxGenerationAttempts  = 10
	defaultReferenceExpiry = 24 * time.Hour
	defaultCurrency        = "VES"
)

// IReferenceUseCase exposes single-payment reference operations.

type IReferenceUseCase interface {
	GenerateReference(ctx context.Context, userID string, serviceType entities.ServiceType, serviceID string, amount float64, method entities.PaymentMethod, bankCode string) (entities.PaymentReference, error)
	GetReference(ctx context.Context, referenceNumber, userID string) (entities.PaymentReference, error)
	ListSupportedBanks() []entities.BankInfo
}

type ReferenceUseCase struct {
	refRepo  interfaces.IPaymentReferenceRepository
	registry interfaces.IBankValidatorRegistry

	now func() time.Time
}

var _ IReferenceUseCase = (*ReferenceUseCase)(nil)

func NewReferenceUseCase(refRepo interfaces.IPaymentReferenceRepository, registry interfaces.IBankValidatorRegistry) *ReferenceUseCase {
	return &ReferenceUseCase{refRepo: refRepo, registry: registry, now: time.Now}
}

func (u *ReferenceUseCase) GenerateReference(ctx context.Context, userID string, serviceType entities.ServiceType, serviceID string, amount float64, method entities.PaymentMethod, bankCode string) (entities.PaymentReference, error) {
	userID = strings.TrimSpace(userID)
	serviceID = strings.TrimSpace(serviceID)
	bankCode = strings.TrimSpace(bankCode)

	if userID == "" {
		return entities.PaymentReference{}, ErrInvalidUserID
	}
	if !serviceType.Valid() {
		return entities.PaymentReference{}, ErrInvalidServiceType
	}
	if serviceID == "" {
		return entities.PaymentReference{}, ErrInvalidServiceID
	}
	if amount <= 0 {
		return entities.PaymentReference{}, ErrInvalidAmount
	}
	if method == "" {
		method = entities.PaymentMethodTransfer
	}
	// Cash carries no reference; there is nothing for a bank to validate.
	if !method.Valid() || method == entities.PaymentMethodCash {
		return entities.PaymentReference{}, ErrInvalidPaymentMethod
	}

	resolvedBank, err := resolveBankCode(u.registry, method, bankCode)
	if err != nil {
		return entities.PaymentReference{}, err
	}

	now := u.now().UTC()
	ref := entities.PaymentReference{
		BankCode:      resolvedBank,
		Amount:        amount,
		Currency:      defaultCurrency,
		UserID:        userID,
		ServiceType:   serviceType,
		ServiceID:     serviceID,
		PaymentMethod: method,
		Status:        entities.ReferenceStatusPending,
		ExpiresAt:     now.Add(defaultReferenceExpiry),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := generateUniqueReference(ctx, u.refRepo, ref)
	if err != nil {
		log.Printf("[reference][usecase] generate failed user_id=%s service_id=%s err=%v", userID, serviceID, err)
		return entities.PaymentReference{}, err
	}
	log.Printf("[reference][usecase] generate success reference=%s bank=%s amount=%.2f user_id=%s", created.ReferenceNumber, created.BankCode, created.Amount, userID)
	return created, nil
}

func (u *ReferenceUseCase) GetReference(ctx context.Context, referenceNumber, userID string) (entities.PaymentReference, error) {
	referenceNumber = strings.TrimSpace(referenceNumber)
	userID = strings.TrimSpace(userID)
	if referenceNumber == "" {
		return entities.PaymentReference{}, ErrReferenceNotFound
	}
	if userID == "" {
		return entities.PaymentReference{}, ErrInvalidUserID
	}

	ref, err := u.refRepo.GetByReferenceNumber(ctx, referenceNumber)
	if err != nil {
		return entities.PaymentReference{}, err
	}
	if ref.ReferenceNumber == "" {
		return entities.PaymentReference{}, ErrReferenceNotFound
	}
	if ref.UserID != userID {
		return entities.PaymentReference{}, ErrOwnershipMismatch
	}
	return ref, nil
}

func (u *ReferenceUseCase) ListSupportedBanks() []entities.BankInfo {
	return u.registry.ListBanks()
}

// generateUniqueReference allocates a reference number that is unique in the
// store. Collisions are vanishingly rare (8 random digits inside one second);
// the bounded retry is a safety valve, not a performance path.
func generateUniqueReference(ctx context.Context, repo interfaces.IPaymentReferenceRepository, ref entities.PaymentReference) (entities.PaymentReference, error) {
	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		num, err := refnum.Generate()
		if err != nil {
			return entities.PaymentReference{}, err
		}

		existing, err := repo.GetByReferenceNumber(ctx, num)
		if err != nil {
			return entities.PaymentReference{}, err
		}
		if existing.ReferenceNumber != "" {
			continue
		}

		ref.ReferenceNumber = num
		created, err := repo.Create(ctx, ref)
		if err != nil {
			return entities.PaymentReference{}, err
		}
		if created.ReferenceNumber == "" {
			// Lost a create race on the same number; try another.
			continue
		}
		return created, nil
	}
	return entities.PaymentReference{}, ErrGenerationExhausted
}

// resolveBankCode validates an explicit bank code against the registry, or
// picks the first registered bank supporting the method when none was given.
func resolveBankCode(registry interfaces.IBankValidatorRegistry, method entities.PaymentMethod, bankCode string) (string, error) {
	if bankCode != "" {
		v, err := registry.GetValidator(bankCode)
		if err != nil {
			return "", err
		}
		if !supportsMethod(v.Describe(), method) {
			return "", interfaces.ErrUnsupportedBank
		}
		return bankCode, nil
	}
	for _, info := range registry.ListBanks() {
		if supportsMethod(info, method) {
			return info.Code, nil
		}
	}
	return "", interfaces.ErrUnsupportedBank
}

func supportsMethod(info entities.BankInfo, method entities.PaymentMethod) bool {
	for _, m := range info.SupportedMethods {
		if m == method {
			return true
		}
	}
	return false
}
