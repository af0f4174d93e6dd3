package auth

import (
	"context"
	"errors"

	"github.com/Fahadd2/GearUp/model"
	"github.com/Fahadd2/GearUp/util/database"

	"github.com/jackc/pgx/v5"
)

type Repo interface {
	CreateCustomer(ctx context.Context, c *model.Customer) error
	CustomerByEmail(ctx context.Context, email string) (*model.Customer, error)
	CustomerByLicense(ctx context.Context, licenseNo string) (*model.Customer, error)
	UpdateCustomerPassword(ctx context.Context, licenseNo, passwordHash string) error
	EmployeeByEmailRole(ctx context.Context, email, role string) (*model.Employee, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db: db} }

func (r *repo) CreateCustomer(ctx context.Context, c *model.Customer) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO customers (
			license_no, first_name, last_name, email, phone,
			license_expiry, date_of_birth, password_hash
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		c.LicenseNo, c.FirstName, c.LastName, c.Email, c.Phone,
		c.LicenseExpiry, c.DateOfBirth, c.PasswordHash,
	).Scan(&c.CreatedAt)
}

// CustomerByEmail returns (nil, nil) when no customer matches.
func (r *repo) CustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	c := &model.Customer{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT license_no, first_name, last_name, email, phone,
		       license_expiry, date_of_birth, COALESCE(password_hash,''), created_at
		FROM customers
		WHERE lower(email) = lower($1)`,
		email,
	).Scan(&c.LicenseNo, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.LicenseExpiry, &c.DateOfBirth, &c.PasswordHash, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) CustomerByLicense(ctx context.Context, licenseNo string) (*model.Customer, error) {
	c := &model.Customer{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT license_no, first_name, last_name, email, phone,
		       license_expiry, date_of_birth, COALESCE(password_hash,''), created_at
		FROM customers
		WHERE license_no = $1`,
		licenseNo,
	).Scan(&c.LicenseNo, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.LicenseExpiry, &c.DateOfBirth, &c.PasswordHash, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) UpdateCustomerPassword(ctx context.Context, licenseNo, passwordHash string) error {
	_, err := r.db.Pool.Exec(ctx, `
		UPDATE customers
		SET password_hash = $2
		WHERE license_no = $1`,
		licenseNo, passwordHash)
	return err
}

// EmployeeByEmailRole returns (nil, nil) when no employee matches both.
func (r *repo) EmployeeByEmailRole(ctx context.Context, email, role string) (*model.Employee, error) {
	e := &model.Employee{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT emp_id, email, lower(role), COALESCE(password_hash,''), first_name, last_name
		FROM employees
		WHERE lower(email) = lower($1)
		  AND lower(role) = lower($2)
		LIMIT 1`,
		email, role,
	).Scan(&e.ID, &e.Email, &e.Role, &e.PasswordHash, &e.FirstName, &e.LastName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}
