package entities

import "time"

// GroupStatus represents the lifecycle of a multi-method payment group.
type GroupStatus string

const (
	GroupStatusIncomplete GroupStatus = "incomplete"
	GroupStatusComplete   GroupStatus = "complete"
	GroupStatusCancelled  GroupStatus = "cancelled"
	GroupStatusExpired    GroupStatus = "expired"
)

// PaymentGroup aggregates several payment methods covering one total charge.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Aggregate invariants:
//   - PaidAmount + RemainingAmount == TotalAmount
//   - Status == complete iff RemainingAmount == 0
//   - CashAmount is the portion pledged in cash; it carries no reference and
//     is credited only once every electronic reference in the group confirmed.
//
// Concurrency:
//   - Version backs the conditional read-modify-write of the aggregates;
//     every update must carry the version it read.
//
type PaymentGroup struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	ServiceType     ServiceType `json:"service_type"`
	ServiceID       string      `json:"service_id"`
	TotalAmount     float64     `json:"total_amount"`
	PaidAmount      float64     `json:"paid_amount"`
	RemainingAmount float64     `json:"remaining_amount"`
	CashAmount      float64     `json:"cash_amount"`
	Currency        string      `json:"currency"`
	Status          GroupStatus `json:"status"`
	ExpiresAt       time.Time   `json:"expires_at"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Version         int64       `json:"-"`
}

// IsExpired reports whether the group window elapsed at the given instant.
func (g PaymentGroup) IsExpired(now time.Time) bool {
	return now.After(g.ExpiresAt)
}

// Open reports whether the group can still accept confirmations.
func (g PaymentGroup) Open(now time.Time) bool {
	return g.Status == GroupStatusIncomplete && !g.IsExpired(now)
}
