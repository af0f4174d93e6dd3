// model/reservation.go
package model

import "time"

type ReservationStatus string

const (
	ReservationReserved  ReservationStatus = "Reserved"
	ReservationActive    ReservationStatus = "Active"
	ReservationCompleted ReservationStatus = "Completed"
	ReservationCancelled ReservationStatus = "Cancelled"
)

type Reservation struct {
	ID                string            `json:"id"`
	CustomerLicenseNo string            `json:"customer_license_no"`
	CarID             string            `json:"car_id"`
	StartDate         time.Time         `json:"start_date"`
	EndDate           time.Time         `json:"end_date"`
	Status            ReservationStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
}

// RentalDays is the whole-day span of [start,end], never less than one.
// Checkout and return days both count as occupied.
func RentalDays(start, end time.Time) int {
	days := int(end.Sub(start) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days
}
