// model/car.go
package model

import "time"

type CarStatus string

const (
	CarAvailable   CarStatus = "Available"
	CarReserved    CarStatus = "Reserved"
	CarRented      CarStatus = "Rented"
	CarMaintenance CarStatus = "Maintenance"
)

// CanStartRental reports whether a car in this status may begin a rental.
func (s CarStatus) CanStartRental() bool {
	return s == CarAvailable || s == CarReserved
}

type Car struct {
	ID           string    `json:"id"`
	PlateNo      string    `json:"plate_no"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Category     string    `json:"category"`
	FuelType     string    `json:"fuel_type"`
	Color        string    `json:"color"`
	Seats        int       `json:"seats"`
	Transmission string    `json:"transmission"`
	PricePerDay  float64   `json:"price_per_day"`
	Status       CarStatus `json:"status"`
	PhotoURL     string    `json:"photo_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// CarFilter narrows GET /cars listings. Zero values mean "no filter".
type CarFilter struct {
	Category     string
	Seats        int
	Transmission string
	MinPrice     *float64
	MaxPrice     *float64
}
