package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrGroupNotFound        = errors.New("payment group not found")
	ErrGroupAmountMismatch  = errors.New("method amounts do not sum to total")
	ErrGroupAlreadyComplete = errors.New("payment group already complete")
	ErrGroupClosed          = errors.New("payment group no longer accepts confirmations")
	ErrInvalidMethods       = errors.New("invalid payment methods")
	ErrGroupConflict        = errors.New("payment group update conflict")
)

const (
	defaultGroupExpiry  = 24 * time.Hour
	amountEpsilon       = 0.01
	maxAggregateRetries = 5
)

// MethodAllocation is one rail of a multi-method payment.
type MethodAllocation struct {
	Method   entities.PaymentMethod
	Amount   float64
	BankCode string
}

type GroupInitiation struct {
	Group      entities.PaymentGroup
	References []entities.PaymentReference
	CashAmount float64
}

type GroupStatusDetail struct {
	Group               entities.PaymentGroup
	References          []entities.PaymentReference
	TotalReferences     int
	ConfirmedReferences int
	PendingReferences   int
	ConfirmationRate    float64
}

// IGroupUseCase coordinates multi-method payment groups.

type IGroupUseCase interface {
	Initiate(ctx context.Context, userID string, serviceType entities.ServiceType, serviceID string, totalAmount float64, methods []MethodAllocation) (GroupInitiation, error)
	OnReferenceConfirmed(ctx context.Context, ref entities.PaymentReference) (entities.PaymentGroup, error)
	Cancel(ctx context.Context, groupID, userID string) (entities.PaymentGroup, error)
	GetStatus(ctx context.Context, groupID, userID string) (GroupStatusDetail, error)
}

type GroupUseCase struct {
	groupRepo  interfaces.IPaymentGroupRepository
	refRepo    interfaces.IPaymentReferenceRepository
	registry   interfaces.IBankValidatorRegistry
	settlement interfaces.ISettlementNotifier
	dispatcher interfaces.INotificationDispatcher

	now func() time.Time
}

var _ IGroupUseCase = (*GroupUseCase)(nil)

func NewGroupUseCase(
	groupRepo interfaces.IPaymentGroupRepository,
	refRepo interfaces.IPaymentReferenceRepository,
	registry interfaces.IBankValidatorRegistry,
	settlement interfaces.ISettlementNotifier,
	dispatcher interfaces.INotificationDispatcher,
) *GroupUseCase {
	return &GroupUseCase{
		groupRepo:  groupRepo,
		refRepo:    refRepo,
		registry:   registry,
		settlement: settlement,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Initiate validates the method split, persists the group, and allocates one
// reference per electronic method. Nothing is persisted when validation
// fails, so a bad split leaves no trace.
func (u *GroupUseCase) Initiate(ctx context.Context, userID string, serviceType entities.ServiceType, serviceID string, totalAmount float64, methods []MethodAllocation) (GroupInitiation, error) {
	userID = strings.TrimSpace(userID)
	serviceID = strings.TrimSpace(serviceID)
	log.Printf("[group][usecase] initiate start user_id=%s service_type=%s service_id=%s total=%.2f methods=%d", userID, serviceType, serviceID, totalAmount, len(methods))

	if userID == "" {
		return GroupInitiation{}, ErrInvalidUserID
	}
	if !serviceType.Valid() {
		return GroupInitiation{}, ErrInvalidServiceType
	}
	if serviceID == "" {
		return GroupInitiation{}, ErrInvalidServiceID
	}
	if totalAmount <= 0 {
		return GroupInitiation{}, ErrInvalidAmount
	}
	if len(methods) == 0 {
		return GroupInitiation{}, ErrInvalidMethods
	}

	sum := 0.0
	cashAmount := 0.0
	electronic := make([]MethodAllocation, 0, len(methods))
	for i, m := range methods {
		if !m.Method.Valid() {
			return GroupInitiation{}, fmt.Errorf("%w: method %d", ErrInvalidMethods, i)
		}
		if m.Amount <= 0 {
			return GroupInitiation{}, fmt.Errorf("%w: method %d", ErrInvalidAmount, i)
		}
		sum += m.Amount
		if m.Method == entities.PaymentMethodCash {
			cashAmount += m.Amount
			continue
		}
		bank, err := resolveBankCode(u.registry, m.Method, strings.TrimSpace(m.BankCode))
		if err != nil {
			return GroupInitiation{}, err
		}
		m.BankCode = bank
		electronic = append(electronic, m)
	}
	if math.Abs(sum-totalAmount) > amountEpsilon {
		return GroupInitiation{}, ErrGroupAmountMismatch
	}

	now := u.now().UTC()
	group := entities.PaymentGroup{
		ID:              uuid.NewString(),
		UserID:          userID,
		ServiceType:     serviceType,
		ServiceID:       serviceID,
		TotalAmount:     totalAmount,
		PaidAmount:      0,
		RemainingAmount: totalAmount,
		CashAmount:      round2(cashAmount),
		Currency:        defaultCurrency,
		Status:          entities.GroupStatusIncomplete,
		ExpiresAt:       now.Add(defaultGroupExpiry),
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         1,
	}

	created, err := u.groupRepo.Create(ctx, group)
	if err != nil {
		log.Printf("[group][usecase] group create failed user_id=%s err=%v", userID, err)
		return GroupInitiation{}, err
	}

	refs := make([]entities.PaymentReference, 0, len(electronic))
	for _, m := range electronic {
		ref := entities.PaymentReference{
			BankCode:      m.BankCode,
			Amount:        m.Amount,
			Currency:      defaultCurrency,
			UserID:        userID,
			ServiceType:   serviceType,
			ServiceID:     serviceID,
			PaymentMethod: m.Method,
			IsPartial:     true,
			GroupID:       created.ID,
			Status:        entities.ReferenceStatusPending,
			ExpiresAt:     created.ExpiresAt,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		allocated, err := generateUniqueReference(ctx, u.refRepo, ref)
		if err != nil {
			// The group stays incomplete with fewer references and expires
			// by window; nothing was confirmed yet.
			log.Printf("[group][usecase] reference allocation failed group_id=%s method=%s err=%v", created.ID, m.Method, err)
			return GroupInitiation{}, err
		}
		refs = append(refs, allocated)
	}
	log.Printf("[group][usecase] initiate success group_id=%s references=%d cash=%.2f", created.ID, len(refs), cashAmount)

	// A cash-only split has nothing left to confirm electronically.
	if len(electronic) == 0 {
		recomputed, err := u.recompute(ctx, created.ID)
		if err != nil {
			return GroupInitiation{}, err
		}
		created = recomputed
	}

	if err := u.dispatcher.Notify(ctx, userID, "payment_group_created", "Multiple payment initiated",
		fmt.Sprintf("Payment of %.2f %s split across %d methods.", totalAmount, created.Currency, len(methods)),
		map[string]interface{}{"group_id": created.ID, "total_amount": totalAmount, "cash_amount": cashAmount, "expires_at": created.ExpiresAt},
		[]string{"push"}); err != nil {
		log.Printf("[group][usecase] notification dispatch failed group_id=%s err=%v", created.ID, err)
	}

	return GroupInitiation{Group: created, References: refs, CashAmount: round2(cashAmount)}, nil
}

// OnReferenceConfirmed recomputes the group aggregates after one of its
// references confirmed. Invoked by the confirmation use case.
func (u *GroupUseCase) OnReferenceConfirmed(ctx context.Context, ref entities.PaymentReference) (entities.PaymentGroup, error) {
	if ref.GroupID == "" {
		return entities.PaymentGroup{}, ErrGroupNotFound
	}
	return u.recompute(ctx, ref.GroupID)
}

// recompute is the single atomic read-modify-write over the group aggregates.
// The version-conditioned update serializes concurrent confirmations: a loser
// re-reads and recomputes, so no confirmed amount is ever lost.
//
// Cash credit rule: the pledged cash amount counts as paid only once every
// electronic reference in the group confirmed (cash is collected at hand-off
// after the electronic portion clears). A group with no electronic
// references therefore completes on its first recompute.
func (u *GroupUseCase) recompute(ctx context.Context, groupID string) (entities.PaymentGroup, error) {
	for attempt := 0; attempt < maxAggregateRetries; attempt++ {
		g, err := u.groupRepo.GetByID(ctx, groupID)
		if err != nil {
			return entities.PaymentGroup{}, err
		}
		if g.ID == "" {
			return entities.PaymentGroup{}, ErrGroupNotFound
		}
		if g.Status != entities.GroupStatusIncomplete {
			return g, nil
		}

		refs, err := u.refRepo.ListByGroupID(ctx, groupID)
		if err != nil {
			return entities.PaymentGroup{}, err
		}

		electronicPaid := 0.0
		allConfirmed := true
		for _, r := range refs {
			if r.Status == entities.ReferenceStatusConfirmed {
				electronicPaid += r.Amount
			} else {
				allConfirmed = false
			}
		}

		paid := round2(electronicPaid)
		if allConfirmed {
			paid = round2(paid + g.CashAmount)
		}
		remaining := round2(g.TotalAmount - paid)
		if remaining <= amountEpsilon {
			remaining = 0
		}

		g.PaidAmount = paid
		g.RemainingAmount = remaining
		g.CompletedAt = nil
		completing := remaining == 0
		if completing {
			now := u.now().UTC()
			g.Status = entities.GroupStatusComplete
			g.CompletedAt = &now
		}

		updated, err := u.groupRepo.Update(ctx, g)
		if err != nil {
			return entities.PaymentGroup{}, err
		}
		if updated.ID == "" {
			// Version moved underneath us; re-read and recompute.
			continue
		}

		if completing {
			// Only the writer that performed incomplete -> complete reaches
			// this branch, so settlement fires exactly once per group.
			log.Printf("[group][usecase] group complete group_id=%s paid=%.2f", updated.ID, updated.PaidAmount)
			if err := u.settlement.OnPaymentCompleted(ctx, updated.ServiceType, updated.ServiceID); err != nil {
				log.Printf("[group][usecase] settlement notify failed group_id=%s err=%v", updated.ID, err)
			}
			if err := u.dispatcher.Notify(ctx, updated.UserID, "payment_group_completed", "Payment complete",
				"All payments for your order were confirmed.",
				map[string]interface{}{"group_id": updated.ID, "total_amount": updated.TotalAmount},
				[]string{"push"}); err != nil {
				log.Printf("[group][usecase] notification dispatch failed group_id=%s err=%v", updated.ID, err)
			}
		}
		return updated, nil
	}
	return entities.PaymentGroup{}, ErrGroupConflict
}

// Cancel expires every pending reference in the group and marks the group
// cancelled. Cancelling an already cancelled group is a no-op; cancelling a
// complete group fails.
func (u *GroupUseCase) Cancel(ctx context.Context, groupID, userID string) (entities.PaymentGroup, error) {
	groupID = strings.TrimSpace(groupID)
	userID = strings.TrimSpace(userID)
	if groupID == "" {
		return entities.PaymentGroup{}, ErrGroupNotFound
	}
	if userID == "" {
		return entities.PaymentGroup{}, ErrInvalidUserID
	}

	for attempt := 0; attempt < maxAggregateRetries; attempt++ {
		g, err := u.groupRepo.GetByID(ctx, groupID)
		if err != nil {
			return entities.PaymentGroup{}, err
		}
		if g.ID == "" {
			return entities.PaymentGroup{}, ErrGroupNotFound
		}
		if g.UserID != userID {
			return entities.PaymentGroup{}, ErrOwnershipMismatch
		}
		if g.Status == entities.GroupStatusComplete {
			return entities.PaymentGroup{}, ErrGroupAlreadyComplete
		}
		if g.Status == entities.GroupStatusCancelled {
			return g, nil
		}

		refs, err := u.refRepo.ListByGroupID(ctx, groupID)
		if err != nil {
			return entities.PaymentGroup{}, err
		}
		now := u.now().UTC()
		for _, r := range refs {
			if r.Status != entities.ReferenceStatusPending {
				continue
			}
			if _, err := u.refRepo.TransitionStatus(ctx, r.ReferenceNumber, entities.ReferenceStatusPending, entities.ReferenceStatusExpired, now); err != nil {
				return entities.PaymentGroup{}, err
			}
		}

		g.Status = entities.GroupStatusCancelled
		g.CompletedAt = nil
		updated, err := u.groupRepo.Update(ctx, g)
		if err != nil {
			return entities.PaymentGroup{}, err
		}
		if updated.ID == "" {
			// A concurrent confirmation bumped the version; re-check state.
			continue
		}
		log.Printf("[group][usecase] cancel success group_id=%s user_id=%s", groupID, userID)
		return updated, nil
	}
	return entities.PaymentGroup{}, ErrGroupConflict
}

// GetStatus returns the group, its references, and derived statistics. An
// incomplete group past its window is presented as expired; the stored row
// is left untouched and the confirm path independently refuses it.
func (u *GroupUseCase) GetStatus(ctx context.Context, groupID, userID string) (GroupStatusDetail, error) {
	groupID = strings.TrimSpace(groupID)
	userID = strings.TrimSpace(userID)
	if groupID == "" {
		return GroupStatusDetail{}, ErrGroupNotFound
	}
	if userID == "" {
		return GroupStatusDetail{}, ErrInvalidUserID
	}

	g, err := u.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return GroupStatusDetail{}, err
	}
	if g.ID == "" {
		return GroupStatusDetail{}, ErrGroupNotFound
	}
	if g.UserID != userID {
		return GroupStatusDetail{}, ErrOwnershipMismatch
	}

	refs, err := u.refRepo.ListByGroupID(ctx, groupID)
	if err != nil {
		return GroupStatusDetail{}, err
	}

	if g.Status == entities.GroupStatusIncomplete && g.IsExpired(u.now().UTC()) {
		g.Status = entities.GroupStatusExpired
	}

	detail := GroupStatusDetail{
		Group:           g,
		References:      refs,
		TotalReferences: len(refs),
	}
	for _, r := range refs {
		switch r.Status {
		case entities.ReferenceStatusConfirmed:
			detail.ConfirmedReferences++
		case entities.ReferenceStatusPending:
			detail.PendingReferences++
		}
	}
	if detail.TotalReferences > 0 {
		detail.ConfirmationRate = round2(float64(detail.ConfirmedReferences) / float64(detail.TotalReferences))
	}
	return detail, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
