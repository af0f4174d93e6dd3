package model

type Employee struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"` // employee | admin
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PasswordHash string `json:"-"`
}

// StaffLoginReq represents staff login payload
// swagger:model StaffLoginReq
type StaffLoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=employee admin"`
}
