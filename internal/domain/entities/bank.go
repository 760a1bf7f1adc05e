package entities

import "time"

// BankInfo describes a registered bank validator for client discovery.
type BankInfo struct {
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	SupportedMethods []PaymentMethod `json:"supported_methods"`
}

// PaymentValidation is the answer a bank validator gives for one reference.
//
// Confirmed=false with a nil error means the bank has not (yet) seen the
// payment; banks commonly confirm with delay, so this is not a failure.
type PaymentValidation struct {
	Confirmed     bool      `json:"confirmed"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Amount        float64   `json:"amount,omitempty"`
	Timestamp     time.Time `json:"timestamp,omitempty"`
	Message       string    `json:"message,omitempty"`
}
