// model/payment.go
package model

import "time"

type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayCard     PaymentMethod = "card"
	PayTransfer PaymentMethod = "transfer"
)

// Payment rows are append-only: never updated or deleted once recorded.
type Payment struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoice_id"`
	Method    PaymentMethod `json:"method"`
	Amount    float64       `json:"amount"`
	Reference *string       `json:"reference,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
