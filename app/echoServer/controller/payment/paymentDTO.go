package payment

type PayReq struct {
	InvoiceID string  `json:"invoice_id" validate:"required,inv_id"`
	Method    string  `json:"method" validate:"required,oneof=cash card transfer"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Reference *string `json:"reference,omitempty"`
}
