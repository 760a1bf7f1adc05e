package request

// GenerateReferenceRequest is the payload for single-payment reference
// issuance. payment_method defaults to "transfer"; bank_code defaults to the
// first registered bank supporting the method.
type GenerateReferenceRequest struct {
	UserID        string  `json:"user_id" binding:"required"`
	ServiceType   string  `json:"service_type" binding:"required"`
	ServiceID     string  `json:"service_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
	BankCode      string  `json:"bank_code"`
}

// ConfirmReferenceRequest carries the requesting user and an optional bank
// override (the user may have paid through a different bank than the one the
// reference was issued for).
type ConfirmReferenceRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	BankCode string `json:"bank_code"`
}
