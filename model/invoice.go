// model/invoice.go
package model

import "time"

type PaymentStatus string

const (
	InvoiceUnpaid  PaymentStatus = "unpaid"
	InvoicePartial PaymentStatus = "partial"
	InvoicePaid    PaymentStatus = "paid"
)

type Invoice struct {
	ID            string        `json:"id"`
	ReservationID string        `json:"reservation_id"`
	IssueDate     time.Time     `json:"issue_date"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// DerivePaymentStatus is the only legal way to compute an invoice's payment
// status from the sum of its payments. Overpayment still reads as paid.
func DerivePaymentStatus(paidTotal, totalAmount float64) PaymentStatus {
	switch {
	case paidTotal >= totalAmount:
		return InvoicePaid
	case paidTotal > 0:
		return InvoicePartial
	default:
		return InvoiceUnpaid
	}
}
