// Package metrics holds the process-wide Prometheus counters for the
// booking lifecycle. Exposed on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gearup_reservations_created_total",
		Help: "Reservations successfully created.",
	})

	ReservationConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gearup_reservation_conflicts_total",
		Help: "Reservation attempts rejected by the overlap check.",
	})

	RentalsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gearup_rentals_started_total",
		Help: "Reservations transitioned to Active.",
	})

	RentalsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gearup_rentals_closed_total",
		Help: "Rentals transitioned to Completed.",
	})

	PaymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gearup_payments_recorded_total",
		Help: "Payments appended against invoices.",
	})
)
