package entities

import (
	"encoding/json"
	"time"
)

// BankTransaction is the immutable record of a successful bank confirmation.
//
// Storage model (DynamoDB):
//   - PK: reference_number (one-to-one with the confirmed reference)
//
// Validator payload:
//   - RawResponse keeps the original validator answer (JSON) for audit.
//     It is written once, as the terminal step of a confirmation, and never
//     mutated afterward.
//
type BankTransaction struct {
	ID                string          `json:"id"`
	ReferenceNumber   string          `json:"reference_number"`
	BankCode          string          `json:"bank_code"`
	BankTransactionID string          `json:"bank_transaction_id"`
	ConfirmedAmount   float64         `json:"confirmed_amount"`
	RawResponse       json.RawMessage `json:"raw_response,omitempty"`
	ConfirmedAt       time.Time       `json:"confirmed_at"`
	CreatedAt         time.Time       `json:"created_at"`
}
