package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAlreadyProcessed = errors.New("reference already processed")
	ErrReferenceExpired = errors.New("reference expired")
	ErrBankUnavailable  = errors.New("bank validator unavailable")
)

const validatorTimeout = 10 * time.Second

// ConfirmationOutcome distinguishes the three user-visible results of a
// confirmation attempt. "pending" is the common delayed-bank case and is not
// an error.
type ConfirmationOutcome string

const (
	OutcomeConfirmed ConfirmationOutcome = "confirmed"
	OutcomePending   ConfirmationOutcome = "pending"
	OutcomeRejected  ConfirmationOutcome = "rejected"
)

type ConfirmationResult struct {
	Outcome     ConfirmationOutcome
	Reference   entities.PaymentReference
	Transaction *entities.BankTransaction
	Group       *entities.PaymentGroup
	Message     string
}

// IConfirmationUseCase orchestrates single-reference confirmation.

type IConfirmationUseCase interface {
	Confirm(ctx context.Context, referenceNumber, userID, bankCodeOverride string) (ConfirmationResult, error)
}

type ConfirmationUseCase struct {
	refRepo    interfaces.IPaymentReferenceRepository
	txRepo     interfaces.IBankTransactionRepository
	groupRepo  interfaces.IPaymentGroupRepository
	registry   interfaces.IBankValidatorRegistry
	groups     IGroupUseCase
	settlement interfaces.ISettlementNotifier
	dispatcher interfaces.INotificationDispatcher

	now func() time.Time
}

var _ IConfirmationUseCase = (*ConfirmationUseCase)(nil)

func NewConfirmationUseCase(
	refRepo interfaces.IPaymentReferenceRepository,
	txRepo interfaces.IBankTransactionRepository,
	groupRepo interfaces.IPaymentGroupRepository,
	registry interfaces.IBankValidatorRegistry,
	groups IGroupUseCase,
	settlement interfaces.ISettlementNotifier,
	dispatcher interfaces.INotificationDispatcher,
) *ConfirmationUseCase {
	return &ConfirmationUseCase{
		refRepo:    refRepo,
		txRepo:     txRepo,
		groupRepo:  groupRepo,
		registry:   registry,
		groups:     groups,
		settlement: settlement,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Confirm runs the reference state machine: ownership and expiry checks, a
// bounded validator call, then the conditional pending -> confirmed commit.
//
// Concurrency: the commit is conditioned on the status observed by the store,
// so of two concurrent calls exactly one performs the transition; the loser
// re-reads and returns the winner's result.
func (u *ConfirmationUseCase) Confirm(ctx context.Context, referenceNumber, userID, bankCodeOverride string) (ConfirmationResult, error) {
	referenceNumber = strings.TrimSpace(referenceNumber)
	userID = strings.TrimSpace(userID)
	bankCodeOverride = strings.TrimSpace(bankCodeOverride)
	log.Printf("[confirmation][usecase] confirm start reference=%s user_id=%s", referenceNumber, userID)

	if referenceNumber == "" {
		return ConfirmationResult{}, ErrReferenceNotFound
	}
	if userID == "" {
		return ConfirmationResult{}, ErrInvalidUserID
	}

	ref, err := u.refRepo.GetByReferenceNumber(ctx, referenceNumber)
	if err != nil {
		return ConfirmationResult{}, err
	}
	if ref.ReferenceNumber == "" {
		return ConfirmationResult{}, ErrReferenceNotFound
	}
	if ref.UserID != userID {
		return ConfirmationResult{}, ErrOwnershipMismatch
	}

	if ref.Status != entities.ReferenceStatusPending {
		if ref.Status == entities.ReferenceStatusConfirmed {
			// Idempotent short-circuit: repeated client retries get the
			// original successful result.
			return u.confirmedResult(ctx, ref)
		}
		return ConfirmationResult{}, ErrAlreadyProcessed
	}

	now := u.now().UTC()
	if ref.IsExpired(now) {
		return u.expire(ctx, ref, now)
	}

	if ref.GroupID != "" {
		g, err := u.groupRepo.GetByID(ctx, ref.GroupID)
		if err != nil {
			return ConfirmationResult{}, err
		}
		if g.ID == "" {
			return ConfirmationResult{}, ErrGroupNotFound
		}
		if !g.Open(now) {
			return ConfirmationResult{}, ErrGroupClosed
		}
	}

	bankCode := ref.BankCode
	if bankCodeOverride != "" {
		bankCode = bankCodeOverride
	}
	validator, err := u.registry.GetValidator(bankCode)
	if err != nil {
		return ConfirmationResult{}, err
	}

	vctx, cancel := context.WithTimeout(ctx, validatorTimeout)
	defer cancel()
	validation, err := validator.VerifyPayment(vctx, referenceNumber)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			// Unknown, not failed: the reference stays pending and the
			// caller may retry.
			log.Printf("[confirmation][usecase] validator unavailable reference=%s bank=%s err=%v", referenceNumber, bankCode, err)
			return ConfirmationResult{}, ErrBankUnavailable
		}
		log.Printf("[confirmation][usecase] validator hard failure reference=%s bank=%s err=%v", referenceNumber, bankCode, err)
		failed, terr := u.refRepo.TransitionStatus(ctx, referenceNumber, entities.ReferenceStatusPending, entities.ReferenceStatusFailed, now)
		if terr != nil {
			return ConfirmationResult{}, terr
		}
		if failed.ReferenceNumber != "" {
			ref = failed
		}
		return ConfirmationResult{
			Outcome:   OutcomeRejected,
			Reference: ref,
			Message:   err.Error(),
		}, nil
	}

	if !validation.Confirmed {
		log.Printf("[confirmation][usecase] not yet confirmed reference=%s bank=%s message=%q", referenceNumber, bankCode, validation.Message)
		return ConfirmationResult{
			Outcome:   OutcomePending,
			Reference: ref,
			Message:   validation.Message,
		}, nil
	}

	tx := buildBankTransaction(ref, bankCode, validation, now)
	updated, err := u.refRepo.ConfirmWithBankTransaction(ctx, referenceNumber, tx)
	if err != nil {
		return ConfirmationResult{}, err
	}
	if updated.ReferenceNumber == "" {
		// Another confirm call won the transition while the validator ran.
		return u.resolveLostRace(ctx, referenceNumber)
	}
	log.Printf("[confirmation][usecase] confirm success reference=%s bank=%s bank_tx=%s amount=%.2f", referenceNumber, bankCode, tx.BankTransactionID, tx.ConfirmedAmount)

	result := ConfirmationResult{
		Outcome:     OutcomeConfirmed,
		Reference:   updated,
		Transaction: &tx,
		Message:     validation.Message,
	}

	if updated.GroupID != "" {
		g, err := u.groups.OnReferenceConfirmed(ctx, updated)
		if err != nil {
			// The confirmation is committed; the aggregate recompute retries
			// on the next confirmation or status read.
			log.Printf("[confirmation][usecase] group recompute failed reference=%s group_id=%s err=%v", referenceNumber, updated.GroupID, err)
		} else {
			result.Group = &g
		}
		return result, nil
	}

	if err := u.settlement.OnPaymentCompleted(ctx, updated.ServiceType, updated.ServiceID); err != nil {
		log.Printf("[confirmation][usecase] settlement notify failed reference=%s err=%v", referenceNumber, err)
	}
	if err := u.dispatcher.Notify(ctx, updated.UserID, "payment_confirmed", "Payment confirmed",
		"Your payment was confirmed by the bank.",
		map[string]interface{}{"reference_number": updated.ReferenceNumber, "amount": updated.Amount},
		[]string{"push"}); err != nil {
		log.Printf("[confirmation][usecase] notification dispatch failed reference=%s err=%v", referenceNumber, err)
	}
	return result, nil
}

func (u *ConfirmationUseCase) expire(ctx context.Context, ref entities.PaymentReference, now time.Time) (ConfirmationResult, error) {
	expired, err := u.refRepo.TransitionStatus(ctx, ref.ReferenceNumber, entities.ReferenceStatusPending, entities.ReferenceStatusExpired, now)
	if err != nil {
		return ConfirmationResult{}, err
	}
	if expired.ReferenceNumber == "" {
		// Lost the transition; if a concurrent confirm slipped in just before
		// the window closed, honor it.
		current, err := u.refRepo.GetByReferenceNumber(ctx, ref.ReferenceNumber)
		if err != nil {
			return ConfirmationResult{}, err
		}
		if current.Status == entities.ReferenceStatusConfirmed {
			return u.confirmedResult(ctx, current)
		}
	}
	log.Printf("[confirmation][usecase] reference expired reference=%s", ref.ReferenceNumber)
	return ConfirmationResult{}, ErrReferenceExpired
}

func (u *ConfirmationUseCase) resolveLostRace(ctx context.Context, referenceNumber string) (ConfirmationResult, error) {
	current, err := u.refRepo.GetByReferenceNumber(ctx, referenceNumber)
	if err != nil {
		return ConfirmationResult{}, err
	}
	if current.Status == entities.ReferenceStatusConfirmed {
		return u.confirmedResult(ctx, current)
	}
	return ConfirmationResult{}, ErrAlreadyProcessed
}

func (u *ConfirmationUseCase) confirmedResult(ctx context.Context, ref entities.PaymentReference) (ConfirmationResult, error) {
	result := ConfirmationResult{
		Outcome:   OutcomeConfirmed,
		Reference: ref,
		Message:   "payment already confirmed",
	}
	tx, err := u.txRepo.GetByReferenceNumber(ctx, ref.ReferenceNumber)
	if err != nil {
		return ConfirmationResult{}, err
	}
	if tx.ReferenceNumber != "" {
		result.Transaction = &tx
	}
	return result, nil
}

func buildBankTransaction(ref entities.PaymentReference, bankCode string, validation entities.PaymentValidation, now time.Time) entities.BankTransaction {
	confirmedAmount := validation.Amount
	if confirmedAmount == 0 {
		confirmedAmount = ref.Amount
	}
	confirmedAt := validation.Timestamp
	if confirmedAt.IsZero() {
		confirmedAt = now
	}
	raw, _ := json.Marshal(validation)
	return entities.BankTransaction{
		ID:                uuid.NewString(),
		ReferenceNumber:   ref.ReferenceNumber,
		BankCode:          bankCode,
		BankTransactionID: validation.TransactionID,
		ConfirmedAmount:   confirmedAmount,
		RawResponse:       raw,
		ConfirmedAt:       confirmedAt.UTC(),
		CreatedAt:         now,
	}
}
