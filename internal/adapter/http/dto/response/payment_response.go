package response

import (
	"time"

	"pagove/internal/domain/entities"
	"pagove/internal/usecase"
)

type PaymentReferenceResponse struct {
	ReferenceNumber string     `json:"reference_number"`
	BankCode        string     `json:"bank_code"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	ServiceType     string     `json:"service_type"`
	ServiceID       string     `json:"service_id"`
	PaymentMethod   string     `json:"payment_method"`
	IsPartial       bool       `json:"is_partial"`
	GroupID         string     `json:"group_id,omitempty"`
	Status          string     `json:"status"`
	ExpiresAt       time.Time  `json:"expires_at"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromPaymentReference(ref entities.PaymentReference) PaymentReferenceResponse {
	return PaymentReferenceResponse{
		ReferenceNumber: ref.ReferenceNumber,
		BankCode:        ref.BankCode,
		Amount:          ref.Amount,
		Currency:        ref.Currency,
		ServiceType:     string(ref.ServiceType),
		ServiceID:       ref.ServiceID,
		PaymentMethod:   string(ref.PaymentMethod),
		IsPartial:       ref.IsPartial,
		GroupID:         ref.GroupID,
		Status:          string(ref.Status),
		ExpiresAt:       ref.ExpiresAt,
		ConfirmedAt:     ref.ConfirmedAt,
		CreatedAt:       ref.CreatedAt,
	}
}

func FromPaymentReferences(refs []entities.PaymentReference) []PaymentReferenceResponse {
	out := make([]PaymentReferenceResponse, 0, len(refs))
	for _, r := range refs {
		out = append(out, FromPaymentReference(r))
	}
	return out
}

type BankTransactionResponse struct {
	ID                string    `json:"id"`
	ReferenceNumber   string    `json:"reference_number"`
	BankCode          string    `json:"bank_code"`
	BankTransactionID string    `json:"bank_transaction_id"`
	ConfirmedAmount   float64   `json:"confirmed_amount"`
	ConfirmedAt       time.Time `json:"confirmed_at"`
}

func FromBankTransaction(tx entities.BankTransaction) BankTransactionResponse {
	return BankTransactionResponse{
		ID:                tx.ID,
		ReferenceNumber:   tx.ReferenceNumber,
		BankCode:          tx.BankCode,
		BankTransactionID: tx.BankTransactionID,
		ConfirmedAmount:   tx.ConfirmedAmount,
		ConfirmedAt:       tx.ConfirmedAt,
	}
}

type ConfirmationResponse struct {
	Outcome     string                   `json:"outcome"`
	Message     string                   `json:"message,omitempty"`
	Reference   PaymentReferenceResponse `json:"reference"`
	Transaction *BankTransactionResponse `json:"transaction,omitempty"`
	Group       *PaymentGroupResponse    `json:"group,omitempty"`
}

func FromConfirmationResult(res usecase.ConfirmationResult) ConfirmationResponse {
	out := ConfirmationResponse{
		Outcome:   string(res.Outcome),
		Message:   res.Message,
		Reference: FromPaymentReference(res.Reference),
	}
	if res.Transaction != nil {
		tx := FromBankTransaction(*res.Transaction)
		out.Transaction = &tx
	}
	if res.Group != nil {
		g := FromPaymentGroup(*res.Group)
		out.Group = &g
	}
	return out
}

type BankInfoResponse struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	SupportedMethods []string `json:"supported_methods"`
}

func FromBankInfos(infos []entities.BankInfo) []BankInfoResponse {
	out := make([]BankInfoResponse, 0, len(infos))
	for _, info := range infos {
		methods := make([]string, 0, len(info.SupportedMethods))
		for _, m := range info.SupportedMethods {
			methods = append(methods, string(m))
		}
		out = append(out, BankInfoResponse{Code: info.Code, Name: info.Name, SupportedMethods: methods})
	}
	return out
}
