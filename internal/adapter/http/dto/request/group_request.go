package request

// PaymentMethodAllocationRequest is one rail of a multi-method payment.
// bank_code is ignored for cash.
type PaymentMethodAllocationRequest struct {
	Method   string  `json:"method" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	BankCode string  `json:"bank_code"`
}

// InitiateGroupRequest is the payload for multi-method payment initiation.
// The method amounts must sum to total_amount.
type InitiateGroupRequest struct {
	UserID      string                           `json:"user_id" binding:"required"`
	ServiceType string                           `json:"service_type" binding:"required"`
	ServiceID   string                           `json:"service_id" binding:"required"`
	TotalAmount float64                          `json:"total_amount" binding:"required"`
	Methods     []PaymentMethodAllocationRequest `json:"methods" binding:"required"`
}
