// model/customer.go
package model

import "time"

type Customer struct {
	LicenseNo     string    `json:"license_no"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	LicenseExpiry time.Time `json:"license_expiry"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// SignupReq represents customer registration payload
// swagger:model SignupReq
type SignupReq struct {
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	LastName      string  `json:"last_name" validate:"required,max=100"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         *string `json:"phone,omitempty"`
	LicenseNo     string  `json:"license_no" validate:"required"`
	LicenseExpiry string  `json:"license_expiry" validate:"required,datetime=2006-01-02"`
	DateOfBirth   string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Password      string  `json:"password" validate:"required,min=6,max=128"`
}

// LoginReq represents customer login payload
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetByLicenseReq resets a password when email + license number match.
// swagger:model ResetByLicenseReq
type ResetByLicenseReq struct {
	Email       string `json:"email" validate:"required,email"`
	LicenseNo   string `json:"license_no" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=128"`
}
