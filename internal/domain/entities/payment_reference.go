package entities

import "time"

// ReferenceStatus represents the lifecycle of a payment reference.
//
// Domain notes:
//   - A reference is created pending and moves to exactly one terminal state.
//   - confirmed/expired/failed are final; nothing transitions back to pending.
//
type ReferenceStatus string

const (
	ReferenceStatusPending   ReferenceStatus = "pending"
	ReferenceStatusConfirmed ReferenceStatus = "confirmed"
	ReferenceStatusExpired   ReferenceStatus = "expired"
	ReferenceStatusFailed    ReferenceStatus = "failed"
)

// ServiceType identifies the kind of order a payment settles.
type ServiceType string

const (
	ServiceTypeRide     ServiceType = "ride"
	ServiceTypeDelivery ServiceType = "delivery"
	ServiceTypeErrand   ServiceType = "errand"
	ServiceTypeParcel   ServiceType = "parcel"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeRide, ServiceTypeDelivery, ServiceTypeErrand, ServiceTypeParcel:
		return true
	}
	return false
}

// PaymentMethod is one of the out-of-band rails a user can pay through.
type PaymentMethod string

const (
	PaymentMethodTransfer  PaymentMethod = "transfer"
	PaymentMethodPagoMovil PaymentMethod = "pago_movil"
	PaymentMethodZelle     PaymentMethod = "zelle"
	PaymentMethodBitcoin   PaymentMethod = "bitcoin"
	PaymentMethodCash      PaymentMethod = "cash"
	PaymentMethodWallet    PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodTransfer, PaymentMethodPagoMovil, PaymentMethodZelle,
		PaymentMethodBitcoin, PaymentMethodCash, PaymentMethodWallet:
		return true
	}
	return false
}

// PaymentReference is a single out-of-band payment attempt persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: reference_number
//   - GSI1 (group_id-index): group_id
//
// Monetary representation:
//   - Amount is the exact amount the user must transfer for this rail.
//
type PaymentReference struct {
	ReferenceNumber string          `json:"reference_number"`
	BankCode        string          `json:"bank_code"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency"`
	UserID          string          `json:"user_id"`
	ServiceType     ServiceType     `json:"service_type"`
	ServiceID       string          `json:"service_id"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	IsPartial       bool            `json:"is_partial"`
	GroupID         string          `json:"group_id,omitempty"`
	Status          ReferenceStatus `json:"status"`
	ExpiresAt       time.Time       `json:"expires_at"`
	ConfirmedAt     *time.Time      `json:"confirmed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsExpired reports whether the reference window elapsed at the given instant.
func (r PaymentReference) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
