package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pagove/internal/domain/entities"
	mock_interfaces "pagove/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var confirmNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func pendingReference() entities.PaymentReference {
	return entities.PaymentReference{
		ReferenceNumber: "20250310120000123456",
		BankCode:        "0102",
		Amount:          50,
		Currency:        "VES",
		UserID:          "user-1",
		ServiceType:     entities.ServiceTypeRide,
		ServiceID:       "svc-1",
		PaymentMethod:   entities.PaymentMethodTransfer,
		Status:          entities.ReferenceStatusPending,
		ExpiresAt:       confirmNow.Add(time.Hour),
		CreatedAt:       confirmNow.Add(-time.Hour),
	}
}

// stubGroupUseCase records OnReferenceConfirmed calls for the group branch.
type stubGroupUseCase struct {
	group entities.PaymentGroup
	err   error
	calls int
}

func (s *stubGroupUseCase) Initiate(context.Context, string, entities.ServiceType, string, float64, []MethodAllocation) (GroupInitiation, error) {
	return GroupInitiation{}, errors.New("not implemented")
}

func (s *stubGroupUseCase) OnReferenceConfirmed(_ context.Context, _ entities.PaymentReference) (entities.PaymentGroup, error) {
	s.calls++
	return s.group, s.err
}

func (s *stubGroupUseCase) Cancel(context.Context, string, string) (entities.PaymentGroup, error) {
	return entities.PaymentGroup{}, errors.New("not implemented")
}

func (s *stubGroupUseCase) GetStatus(context.Context, string, string) (GroupStatusDetail, error) {
	return GroupStatusDetail{}, errors.New("not implemented")
}

func TestConfirmationUseCase_Confirm_Validations(t *testing.T) {
	t.Run("empty reference number", func(t *testing.T) {
		uc := NewConfirmationUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Confirm(context.Background(), " ", "user-1", "")
		if !errors.Is(err, ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("empty user id", func(t *testing.T) {
		uc := NewConfirmationUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Confirm(context.Background(), "20250310120000123456", "", "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("reference not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
		uc := NewConfirmationUseCase(refRepo, nil, nil, nil, nil, nil, nil)

		refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), "20250310120000123456").Return(entities.PaymentReference{}, nil)

		_, err := uc.Confirm(context.Background(), "20250310120000123456", "user-1", "")
		if !errors.Is(err, ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("ownership mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
		uc := NewConfirmationUseCase(refRepo, nil, nil, nil, nil, nil, nil)

		ref := pendingReference()
		refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)

		_, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "intruder", "")
		if !errors.Is(err, ErrOwnershipMismatch) {
			t.Fatalf("expected ErrOwnershipMismatch, got %v", err)
		}
	})
}

func TestConfirmationUseCase_Confirm_Idempotent(t *testing.T) {
	// A second confirm on an already confirmed reference returns the original
	// result without touching the bank or writing anything.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
	txRepo := mock_interfaces.NewMockIBankTransactionRepository(ctrl)
	registry := mock_interfaces.NewMockIBankValidatorRegistry(ctrl)
	settlement := mock_interfaces.NewMockISettlementNotifier(ctrl)
	uc := NewConfirmationUseCase(refRepo, txRepo, nil, registry, nil, settlement, nil)

	ref := pendingReference()
	ref.Status = entities.ReferenceStatusConfirmed
	tx := entities.BankTransaction{ID: "tx-1", ReferenceNumber: ref.ReferenceNumber, BankTransactionID: "0102-abc", ConfirmedAmount: 50}

	refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
	txRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(tx, nil)

	result, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeConfirmed {
		t.Fatalf("expected confirmed outcome, got %s", result.Outcome)
	}
	if result.Transaction == nil || result.Transaction.ID != "tx-1" {
		t.Fatalf("expected original bank transaction, got %+v", result.Transaction)
	}
}

func TestConfirmationUseCase_Confirm_TerminalStates(t *testing.T) {
	for _, status := range []entities.ReferenceStatus{entities.ReferenceStatusExpired, entities.ReferenceStatusFailed} {
		t.Run(string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
			uc := NewConfirmationUseCase(refRepo, nil, nil, nil, nil, nil, nil)

			ref := pendingReference()
			ref.Status = status
			refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)

			_, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
			if !errors.Is(err, ErrAlreadyProcessed) {
				t.Fatalf("expected ErrAlreadyProcessed, got %v", err)
			}
		})
	}
}

func TestConfirmationUseCase_Confirm_Expired(t *testing.T) {
	t.Run("expires lazily without calling the bank", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
		registry := mock_interfaces.NewMockIBankValidatorRegistry(ctrl)
		uc := NewConfirmationUseCase(refRepo, nil, nil, registry, nil, nil, nil)
		uc.now = func() time.Time { return confirmNow }

		ref := pendingReference()
		ref.ExpiresAt = confirmNow.Add(-time.Minute)
		expired := ref
		expired.Status = entities.ReferenceStatusExpired

		refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
		refRepo.EXPECT().TransitionStatus(gomock.Any(), ref.ReferenceNumber, entities.ReferenceStatusPending, entities.ReferenceStatusExpired, confirmNow).Return(expired, nil)

		_, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
		if !errors.Is(err, ErrReferenceExpired) {
			t.Fatalf("expected ErrReferenceExpired, got %v", err)
		}
	})

	t.Run("concurrent confirm beat the expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
		txRepo := mock_interfaces.NewMockIBankTransactionRepository(ctrl)
		uc := NewConfirmationUseCase(refRepo, txRepo, nil, nil, nil, nil, nil)
		uc.now = func() time.Time { return confirmNow }

		ref := pendingReference()
		ref.ExpiresAt = confirmNow.Add(-time.Second)
		confirmed := ref
		confirmed.Status = entities.ReferenceStatusConfirmed

		refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
		refRepo.EXPECT().TransitionStatus(gomock.Any(), ref.ReferenceNumber, entities.ReferenceStatusPending, entities.ReferenceStatusExpired, confirmNow).Return(entities.PaymentReference{}, nil)
		refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(confirmed, nil)
		txRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(entities.BankTransaction{ReferenceNumber: ref.ReferenceNumber}, nil)

		result, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Outcome != OutcomeConfirmed {
			t.Fatalf("expected confirmed outcome, got %s", result.Outcome)
		}
	})
}

func TestConfirmationUseCase_Confirm_ValidatorUnavailable(t *testing.T) {
	// A validator timeout leaves the reference pending and surfaces a
	// retryable error.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
	registry := mock_interfaces.NewMockIBankValidatorRegistry(ctrl)
	validator := mock_interfaces.NewMockIBankValidator(ctrl)
	uc := NewConfirmationUseCase(refRepo, nil, nil, registry, nil, nil, nil)
	uc.now = func() time.Time { return confirmNow }

	ref := pendingReference()
	refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
	registry.EXPECT().GetValidator("0102").Return(validator, nil)
	validator.EXPECT().VerifyPayment(gomock.Any(), ref.ReferenceNumber).Return(entities.PaymentValidation{}, context.DeadlineExceeded)

	_, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
	if !errors.Is(err, ErrBankUnavailable) {
		t.Fatalf("expected ErrBankUnavailable, got %v", err)
	}
}

func TestConfirmationUseCase_Confirm_ValidatorHardFailure(t *testing.T) {
	// A non-timeout validator error moves the reference to failed and reports
	// a rejected outcome, not an error.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
	registry := mock_interfaces.NewMockIBankValidatorRegistry(ctrl)
	validator := mock_interfaces.NewMockIBankValidator(ctrl)
	uc := NewConfirmationUseCase(refRepo, nil, nil, registry, nil, nil, nil)
	uc.now = func() time.Time { return confirmNow }

	ref := pendingReference()
	failed := ref
	failed.Status = entities.ReferenceStatusFailed

	refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
	registry.EXPECT().GetValidator("0102").Return(validator, nil)
	validator.EXPECT().VerifyPayment(gomock.Any(), ref.ReferenceNumber).Return(entities.PaymentValidation{}, errors.New("account blocked"))
	refRepo.EXPECT().TransitionStatus(gomock.Any(), ref.ReferenceNumber, entities.ReferenceStatusPending, entities.ReferenceStatusFailed, confirmNow).Return(failed, nil)

	result, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeRejected {
		t.Fatalf("expected rejected outcome, got %s", result.Outcome)
	}
	if result.Reference.Status != entities.ReferenceStatusFailed {
		t.Fatalf("expected failed reference, got %s", result.Reference.Status)
	}
}

func TestConfirmationUseCase_Confirm_BankNotYetConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
	registry := mock_interfaces.NewMockIBankValidatorRegistry(ctrl)
	validator := mock_interfaces.NewMockIBankValidator(ctrl)
	uc := NewConfirmationUseCase(refRepo, nil, nil, registry, nil, nil, nil)
	uc.now = func() time.Time { return confirmNow }

	ref := pendingReference()
	refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
	registry.EXPECT().GetValidator("0102").Return(validator, nil)
	validator.EXPECT().VerifyPayment(gomock.Any(), ref.ReferenceNumber).
		Return(entities.PaymentValidation{Confirmed: false, Message: "payment not found"}, nil)

	result, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomePending {
		t.Fatalf("expected pending outcome, got %s", result.Outcome)
	}
	if result.Reference.Status != entities.ReferenceStatusPending {
		t.Fatalf("reference must stay pending, got %s", result.Reference.Status)
	}
}

func TestConfirmationUseCase_Confirm_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
	registry := mock_interfaces.NewMockIBankValidatorRegistry(ctrl)
	validator := mock_interfaces.NewMockIBankValidator(ctrl)
	settlement := mock_interfaces.NewMockISettlementNotifier(ctrl)
	dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
	uc := NewConfirmationUseCase(refRepo, nil, nil, registry, nil, settlement, dispatcher)
	uc.now = func() time.Time { return confirmNow }

	ref := pendingReference()
	confirmed := ref
	confirmed.Status = entities.ReferenceStatusConfirmed
	confirmed.ConfirmedAt = &confirmNow

	refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
	registry.EXPECT().GetValidator("0102").Return(validator, nil)
	validator.EXPECT().VerifyPayment(gomock.Any(), ref.ReferenceNumber).
		Return(entities.PaymentValidation{Confirmed: true, TransactionID: "0102-abc", Amount: 50}, nil)
	refRepo.EXPECT().ConfirmWithBankTransaction(gomock.Any(), ref.ReferenceNumber, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, tx entities.BankTransaction) (entities.PaymentReference, error) {
			if tx.BankTransactionID != "0102-abc" {
				t.Fatalf("expected bank transaction id 0102-abc, got %s", tx.BankTransactionID)
			}
			if tx.ConfirmedAmount != 50 {
				t.Fatalf("expected confirmed amount 50, got %.2f", tx.ConfirmedAmount)
			}
			return confirmed, nil
		})
	settlement.EXPECT().OnPaymentCompleted(gomock.Any(), entities.ServiceTypeRide, "svc-1").Return(nil)
	dispatcher.EXPECT().Notify(gomock.Any(), "user-1", "payment_confirmed", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeConfirmed {
		t.Fatalf("expected confirmed outcome, got %s", result.Outcome)
	}
	if result.Transaction == nil {
		t.Fatalf("expected bank transaction in result")
	}
}

func TestConfirmationUseCase_Confirm_LostCommitRace(t *testing.T) {
	// Two clients confirm the same reference; the loser of the conditional
	// commit returns the winner's result and fires no settlement of its own.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
	txRepo := mock_interfaces.NewMockIBankTransactionRepository(ctrl)
	registry := mock_interfaces.NewMockIBankValidatorRegistry(ctrl)
	validator := mock_interfaces.NewMockIBankValidator(ctrl)
	settlement := mock_interfaces.NewMockISettlementNotifier(ctrl)
	dispatcher := mock_interfaces.NewMockINotificationDispatcher(ctrl)
	uc := NewConfirmationUseCase(refRepo, txRepo, nil, registry, nil, settlement, dispatcher)
	uc.now = func() time.Time { return confirmNow }

	ref := pendingReference()
	confirmed := ref
	confirmed.Status = entities.ReferenceStatusConfirmed

	refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
	registry.EXPECT().GetValidator("0102").Return(validator, nil)
	validator.EXPECT().VerifyPayment(gomock.Any(), ref.ReferenceNumber).
		Return(entities.PaymentValidation{Confirmed: true, TransactionID: "0102-abc"}, nil)
	refRepo.EXPECT().ConfirmWithBankTransaction(gomock.Any(), ref.ReferenceNumber, gomock.Any()).Return(entities.PaymentReference{}, nil)
	refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(confirmed, nil)
	txRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).
		Return(entities.BankTransaction{ID: "tx-winner", ReferenceNumber: ref.ReferenceNumber}, nil)

	result, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeConfirmed {
		t.Fatalf("expected confirmed outcome, got %s", result.Outcome)
	}
	if result.Transaction == nil || result.Transaction.ID != "tx-winner" {
		t.Fatalf("expected winner's transaction, got %+v", result.Transaction)
	}
}

func TestConfirmationUseCase_Confirm_GroupBranch(t *testing.T) {
	t.Run("closed group refuses confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
		groupRepo := mock_interfaces.NewMockIPaymentGroupRepository(ctrl)
		uc := NewConfirmationUseCase(refRepo, nil, groupRepo, nil, nil, nil, nil)
		uc.now = func() time.Time { return confirmNow }

		ref := pendingReference()
		ref.GroupID = "group-1"
		ref.IsPartial = true

		refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
		groupRepo.EXPECT().GetByID(gomock.Any(), "group-1").
			Return(entities.PaymentGroup{ID: "group-1", Status: entities.GroupStatusCancelled, ExpiresAt: confirmNow.Add(time.Hour)}, nil)

		_, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
		if !errors.Is(err, ErrGroupClosed) {
			t.Fatalf("expected ErrGroupClosed, got %v", err)
		}
	})

	t.Run("confirmed partial recomputes the group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
		groupRepo := mock_interfaces.NewMockIPaymentGroupRepository(ctrl)
		registry := mock_interfaces.NewMockIBankValidatorRegistry(ctrl)
		validator := mock_interfaces.NewMockIBankValidator(ctrl)
		groups := &stubGroupUseCase{group: entities.PaymentGroup{ID: "group-1", PaidAmount: 25, RemainingAmount: 75.50}}
		uc := NewConfirmationUseCase(refRepo, nil, groupRepo, registry, groups, nil, nil)
		uc.now = func() time.Time { return confirmNow }

		ref := pendingReference()
		ref.GroupID = "group-1"
		ref.IsPartial = true
		ref.Amount = 25
		confirmed := ref
		confirmed.Status = entities.ReferenceStatusConfirmed

		refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
		groupRepo.EXPECT().GetByID(gomock.Any(), "group-1").
			Return(entities.PaymentGroup{ID: "group-1", Status: entities.GroupStatusIncomplete, ExpiresAt: confirmNow.Add(time.Hour)}, nil)
		registry.EXPECT().GetValidator("0102").Return(validator, nil)
		validator.EXPECT().VerifyPayment(gomock.Any(), ref.ReferenceNumber).
			Return(entities.PaymentValidation{Confirmed: true, TransactionID: "0102-abc"}, nil)
		refRepo.EXPECT().ConfirmWithBankTransaction(gomock.Any(), ref.ReferenceNumber, gomock.Any()).Return(confirmed, nil)

		result, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if groups.calls != 1 {
			t.Fatalf("expected one group recompute, got %d", groups.calls)
		}
		if result.Group == nil || result.Group.RemainingAmount != 75.50 {
			t.Fatalf("expected recomputed group in result, got %+v", result.Group)
		}
	})
}

func TestConfirmationUseCase_Confirm_BankOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	refRepo := mock_interfaces.NewMockIPaymentReferenceRepository(ctrl)
	registry := mock_interfaces.NewMockIBankValidatorRegistry(ctrl)
	validator := mock_interfaces.NewMockIBankValidator(ctrl)
	uc := NewConfirmationUseCase(refRepo, nil, nil, registry, nil, nil, nil)
	uc.now = func() time.Time { return confirmNow }

	ref := pendingReference()
	refRepo.EXPECT().GetByReferenceNumber(gomock.Any(), ref.ReferenceNumber).Return(ref, nil)
	registry.EXPECT().GetValidator("0134").Return(validator, nil)
	validator.EXPECT().VerifyPayment(gomock.Any(), ref.ReferenceNumber).
		Return(entities.PaymentValidation{Confirmed: false, Message: "payment not found"}, nil)

	result, err := uc.Confirm(context.Background(), ref.ReferenceNumber, "user-1", "0134")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomePending {
		t.Fatalf("expected pending outcome, got %s", result.Outcome)
	}
}
