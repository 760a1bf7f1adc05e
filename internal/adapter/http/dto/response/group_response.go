package response

import (
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase"
)

type PaymentGroupResponse struct {
	ID              string     `json:"id"`
	ServiceType     string     `json:"service_type"`
	ServiceID       string     `json:"service_id"`
	TotalAmount     float64    `json:"total_amount"`
	PaidAmount      float64    `json:"paid_amount"`
	RemainingAmount float64    `json:"remaining_amount"`
	CashAmount      float64    `json:"cash_amount"`
	Currency        string     `json:"currency"`
	Status          string     `json:"status"`
	ExpiresAt       time.Time  `json:"expires_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromPaymentGroup(g entities.PaymentGroup) PaymentGroupResponse {
	return PaymentGroupResponse{
		ID:              g.ID,
		ServiceType:     string(g.ServiceType),
		ServiceID:       g.ServiceID,
		TotalAmount:     g.TotalAmount,
		PaidAmount:      g.PaidAmount,
		RemainingAmount: g.RemainingAmount,
		CashAmount:      g.CashAmount,
		Currency:        g.Currency,
		Status:          string(g.Status),
		ExpiresAt:       g.ExpiresAt,
		CompletedAt:     g.CompletedAt,
		CreatedAt:       g.CreatedAt,
	}
}

type InitiateGroupResponse struct {
	GroupID    string                     `json:"group_id"`
	Group      PaymentGroupResponse       `json:"group"`
	References []PaymentReferenceResponse `json:"references"`
	CashAmount float64                    `json:"cash_amount"`
	ExpiresAt  time.Time                  `json:"expires_at"`
}

func FromGroupInitiation(init usecase.GroupInitiation) InitiateGroupResponse {
	return InitiateGroupResponse{
		GroupID:    init.Group.ID,
		Group:      FromPaymentGroup(init.Group),
		References: FromPaymentReferences(init.References),
		CashAmount: init.CashAmount,
		ExpiresAt:  init.Group.ExpiresAt,
	}
}

type GroupStatusResponse struct {
	Group               PaymentGroupResponse       `json:"group"`
	Payments            []PaymentReferenceResponse `json:"payments"`
	TotalReferences     int                        `json:"total_references"`
	ConfirmedReferences int                        `json:"confirmed_references"`
	PendingReferences   int                        `json:"pending_references"`
	ConfirmationRate    float64                    `json:"confirmation_rate"`
}

func FromGroupStatus(detail usecase.GroupStatusDetail) GroupStatusResponse {
	return GroupStatusResponse{
		Group:               FromPaymentGroup(detail.Group),
		Payments:            FromPaymentReferences(detail.References),
		TotalReferences:     detail.TotalReferences,
		ConfirmedReferences: detail.ConfirmedReferences,
		PendingReferences:   detail.PendingReferences,
		ConfirmationRate:    detail.ConfirmationRate,
	}
}

type CancelGroupResponse struct {
	Status string `json:"status"`
}
