package car

type UpdateCarReq struct {
	Brand        *string  `json:"brand,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,gte=1980"`
	Category     *string  `json:"category,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	PricePerDay  *float64 `json:"price_per_day,omitempty" validate:"omitempty,gt=0"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=Available Reserved Rented Maintenance"`
}
