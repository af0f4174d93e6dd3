// service/auth/auth_service_test.go
package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Fahadd2/GearUp/model"
	authrepo "github.com/Fahadd2/GearUp/repository/auth"
	"github.com/Fahadd2/GearUp/util/hash"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	customerByEmailFn   func(ctx context.Context, email string) (*model.Customer, error)
	customerByLicenseFn func(ctx context.Context, lic string) (*model.Customer, error)
	createCustomerFn    func(ctx context.Context, c *model.Customer) error
	updatePasswordFn    func(ctx context.Context, lic, h string) error
	employeeFn          func(ctx context.Context, email, role string) (*model.Employee, error)
}

var _ authrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) CustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if m.customerByEmailFn == nil {
		return nil, nil
	}
	return m.customerByEmailFn(ctx, email)
}

func (m *mockRepo) CustomerByLicense(ctx context.Context, lic string) (*model.Customer, error) {
	if m.customerByLicenseFn == nil {
		return nil, nil
	}
	return m.customerByLicenseFn(ctx, lic)
}

func (m *mockRepo) CreateCustomer(ctx context.Context, c *model.Customer) error {
	if m.createCustomerFn == nil {
		return nil
	}
	return m.createCustomerFn(ctx, c)
}

func (m *mockRepo) UpdateCustomerPassword(ctx context.Context, lic, h string) error {
	if m.updatePasswordFn == nil {
		return nil
	}
	return m.updatePasswordFn(ctx, lic, h)
}

func (m *mockRepo) EmployeeByEmailRole(ctx context.Context, email, role string) (*model.Employee, error) {
	if m.employeeFn == nil {
		return nil, nil
	}
	return m.employeeFn(ctx, email, role)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

func newSvc(m *mockRepo) *service {
	s := New(m, "test-secret", 60).(*service)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func validSignup() model.SignupReq {
	return model.SignupReq{
		FirstName:     "Dana",
		LastName:      "Kerr",
		Email:         "USER@Example.COM",
		LicenseNo:     "DL-5501",
		LicenseExpiry: "2030-06-01",
		DateOfBirth:   "2000-01-15",
		Password:      "supersecret",
	}
}

// --- signup ---

func TestSignup_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createCustomerFn: func(ctx context.Context, c *model.Customer) error {
			c.CreatedAt = time.Now()
			return nil
		},
	}
	svc := newSvc(m)

	cust, tok, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)
	require.NotNil(t, cust)
	require.NotEmpty(t, tok)
	require.Equal(t, "user@example.com", cust.Email)
	require.Equal(t, "DL-5501", cust.LicenseNo)
	require.NotEmpty(t, cust.PasswordHash)
	require.NotEqual(t, "supersecret", cust.PasswordHash)
}

func TestSignup_Underage(t *testing.T) {
	svc := newSvc(&mockRepo{})
	req := validSignup()
	req.DateOfBirth = "2010-03-02" // turns 16 the day after "now"

	_, _, err := svc.Signup(context.Background(), req)
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestSignup_SeventeenExactlyTodayAllowed(t *testing.T) {
	m := &mockRepo{}
	svc := newSvc(m)
	req := validSignup()
	req.DateOfBirth = "2009-03-01"

	_, _, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)
}

func TestSignup_ExpiredLicense(t *testing.T) {
	svc := newSvc(&mockRepo{})
	req := validSignup()
	req.LicenseExpiry = "2026-03-01" // today, not strictly future

	_, _, err := svc.Signup(context.Background(), req)
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestSignup_EmailTaken(t *testing.T) {
	m := &mockRepo{
		customerByEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return &model.Customer{Email: email}, nil
		},
	}
	svc := newSvc(m)

	_, _, err := svc.Signup(context.Background(), validSignup())
	require.Error(t, err)
	require.Equal(t, ErrEmailTaken, Code(err))
}

func TestSignup_LicenseTaken(t *testing.T) {
	m := &mockRepo{
		customerByLicenseFn: func(ctx context.Context, lic string) (*model.Customer, error) {
			return &model.Customer{LicenseNo: lic}, nil
		},
	}
	svc := newSvc(m)

	_, _, err := svc.Signup(context.Background(), validSignup())
	require.Error(t, err)
	require.Equal(t, ErrLicenseTaken, Code(err))
}

func TestSignup_CreateError(t *testing.T) {
	m := &mockRepo{
		createCustomerFn: func(ctx context.Context, c *model.Customer) error {
			return errors.New("db down")
		},
	}
	svc := newSvc(m)

	_, _, err := svc.Signup(context.Background(), validSignup())
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}

// --- login ---

func TestLogin_Success(t *testing.T) {
	pw := "supersecret"
	hashed := mustHash(t, pw)
	m := &mockRepo{
		customerByEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return &model.Customer{LicenseNo: "DL-7", Email: "user@example.com", PasswordHash: hashed}, nil
		},
	}
	svc := newSvc(m)

	cust, tok, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "User@Example.com",
		Password: pw,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.Equal(t, "DL-7", cust.LicenseNo)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newSvc(&mockRepo{})

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "missing@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed := mustHash(t, "correct-password")
	m := &mockRepo{
		customerByEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return &model.Customer{LicenseNo: "DL-7", Email: email, PasswordHash: hashed}, nil
		},
	}
	svc := newSvc(m)

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

// --- staff login ---

func TestStaffLogin_Success(t *testing.T) {
	hashed := mustHash(t, "staffpw")
	m := &mockRepo{
		employeeFn: func(ctx context.Context, email, role string) (*model.Employee, error) {
			require.Equal(t, "admin", role)
			return &model.Employee{ID: "EMP-3", Email: email, Role: role, PasswordHash: hashed}, nil
		},
	}
	svc := newSvc(m)

	emp, tok, err := svc.StaffLogin(context.Background(), model.StaffLoginReq{
		Email:    "boss@example.com",
		Password: "staffpw",
		Role:     "admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.Equal(t, "EMP-3", emp.ID)
}

func TestStaffLogin_RoleMismatch(t *testing.T) {
	// repo finds nothing for that email+role pair
	svc := newSvc(&mockRepo{})

	_, _, err := svc.StaffLogin(context.Background(), model.StaffLoginReq{
		Email:    "boss@example.com",
		Password: "staffpw",
		Role:     "employee",
	})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

// --- reset by license ---

func TestResetByLicense_NormalizesLicense(t *testing.T) {
	var updatedLic, updatedHash string
	m := &mockRepo{
		customerByEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return &model.Customer{LicenseNo: "DL-55 01", Email: email}, nil
		},
		updatePasswordFn: func(ctx context.Context, lic, h string) error {
			updatedLic, updatedHash = lic, h
			return nil
		},
	}
	svc := newSvc(m)

	err := svc.ResetByLicense(context.Background(), model.ResetByLicenseReq{
		Email:       "user@example.com",
		LicenseNo:   "dl5501",
		NewPassword: "newsecret",
	})
	require.NoError(t, err)
	require.Equal(t, "DL-55 01", updatedLic)
	require.True(t, hash.Check(updatedHash, "newsecret"))
}

func TestResetByLicense_Mismatch(t *testing.T) {
	m := &mockRepo{
		customerByEmailFn: func(ctx context.Context, email string) (*model.Customer, error) {
			return &model.Customer{LicenseNo: "DL-5501", Email: email}, nil
		},
	}
	svc := newSvc(m)

	err := svc.ResetByLicense(context.Background(), model.ResetByLicenseReq{
		Email:       "user@example.com",
		LicenseNo:   "DL-9999",
		NewPassword: "newsecret",
	})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestCodeExtractor(t *testing.T) {
	require.Equal(t, ErrEmailTaken, Code(makeErr(ErrEmailTaken, "x")))
	require.Equal(t, ErrCode(""), Code(errors.New("plain")))
}
