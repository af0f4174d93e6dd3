package rental

type StartRentalReq struct {
	ReservationID string `json:"reservation_id" validate:"required,res_id"`
}

type CloseRentalReq struct {
	ReservationID string  `json:"reservation_id" validate:"required,res_id"`
	DamageFee     float64 `json:"damage_fee" validate:"gte=0"`
	RefuelFee     float64 `json:"refuel_fee" validate:"gte=0"`
}
