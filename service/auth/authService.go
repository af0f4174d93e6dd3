package auth

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/Fahadd2/GearUp/model"
	authrepo "github.com/Fahadd2/GearUp/repository/auth"
	"github.com/Fahadd2/GearUp/util/hash"
	jwtutil "github.com/Fahadd2/GearUp/util/jwt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadInput     ErrCode = "BAD_INPUT"
	ErrInvalidCreds ErrCode = "INVALID_CREDS"
	ErrEmailTaken   ErrCode = "EMAIL_TAKEN"
	ErrLicenseTaken ErrCode = "LICENSE_TAKEN"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode        { return e.code }
func makeErr(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

const minSignupAge = 17

type Service interface {
	Signup(ctx context.Context, req model.SignupReq) (*model.Customer, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.Customer, string, error)
	StaffLogin(ctx context.Context, req model.StaffLoginReq) (*model.Employee, string, error)
	ResetByLicense(ctx context.Context, req model.ResetByLicenseReq) error
}

type service struct {
	r          authrepo.Repo
	secret     string
	ttlMinutes int
	now        func() time.Time
}

func New(r authrepo.Repo, secret string, ttlMinutes int) Service {
	return &service{r: r, secret: secret, ttlMinutes: ttlMinutes, now: time.Now}
}

func (s *service) Signup(ctx context.Context, req model.SignupReq) (*model.Customer, string, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, "", makeErr(ErrBadInput, "invalid date_of_birth format (YYYY-MM-DD)")
	}
	licExp, err := time.Parse("2006-01-02", req.LicenseExpiry)
	if err != nil {
		return nil, "", makeErr(ErrBadInput, "invalid license_expiry format (YYYY-MM-DD)")
	}

	today := s.today()
	if age(dob, today) < minSignupAge {
		return nil, "", makeErr(ErrBadInput, "you must be at least 17 years old to sign up")
	}
	if !licExp.After(today) {
		return nil, "", makeErr(ErrBadInput, "license expiry must be a future date")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Pre-checks give friendlier errors; the unique constraints still back them up.
	if existing, err := s.r.CustomerByEmail(ctx, email); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", makeErr(ErrEmailTaken, "email already registered")
	}
	if existing, err := s.r.CustomerByLicense(ctx, req.LicenseNo); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", makeErr(ErrLicenseTaken, "license number already registered")
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	c := &model.Customer{
		LicenseNo:     req.LicenseNo,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         email,
		Phone:         req.Phone,
		LicenseExpiry: licExp,
		DateOfBirth:   dob,
		PasswordHash:  hashed,
	}
	if err := s.r.CreateCustomer(ctx, c); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, "", derr
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, c.LicenseNo, c.Email, s.ttlMinutes)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.Customer, string, error) {
	c, err := s.r.CustomerByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, "", err
	}
	if c == nil || c.PasswordHash == "" || !hash.Check(c.PasswordHash, req.Password) {
		return nil, "", makeErr(ErrInvalidCreds, "invalid email or password")
	}
	token, err := jwtutil.Issue(s.secret, c.LicenseNo, c.Email, s.ttlMinutes)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}

func (s *service) StaffLogin(ctx context.Context, req model.StaffLoginReq) (*model.Employee, string, error) {
	e, err := s.r.EmployeeByEmailRole(ctx,
		strings.ToLower(strings.TrimSpace(req.Email)),
		strings.ToLower(strings.TrimSpace(req.Role)))
	if err != nil {
		return nil, "", err
	}
	if e == nil || e.PasswordHash == "" || !hash.Check(e.PasswordHash, req.Password) {
		return nil, "", makeErr(ErrInvalidCreds, "invalid credentials or role")
	}
	token, err := jwtutil.Issue(s.secret, e.ID, e.Email, s.ttlMinutes)
	if err != nil {
		return nil, "", err
	}
	return e, token, nil
}

func (s *service) ResetByLicense(ctx context.Context, req model.ResetByLicenseReq) error {
	c, err := s.r.CustomerByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return err
	}
	if c == nil || normalizeLicense(c.LicenseNo) != normalizeLicense(req.LicenseNo) {
		return makeErr(ErrInvalidCreds, "invalid email or license number")
	}
	hashed, err := hash.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.r.UpdateCustomerPassword(ctx, c.LicenseNo, hashed)
}

func (s *service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func age(dob, today time.Time) int {
	years := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}
	return years
}

// normalizeLicense drops spaces/dashes and uppercases, so "ab-12 3" == "AB123".
func normalizeLicense(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)

		if strings.Contains(cn, "email") || strings.Contains(msg, "email") {
			return makeErr(ErrEmailTaken, "email already registered")
		}
		if strings.Contains(cn, "license") || strings.Contains(msg, "license") {
			return makeErr(ErrLicenseTaken, "license number already registered")
		}
		return makeErr(ErrBadInput, "duplicate value")
	}
	return nil
}
