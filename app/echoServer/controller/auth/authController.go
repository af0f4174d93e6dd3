// app/echoServer/controller/auth/authController.go
package auth

import (
	"log/slog"
	"net/http"

	"github.com/Fahadd2/GearUp/model"
	authsvc "github.com/Fahadd2/GearUp/service/auth"
	jwtutil "github.com/Fahadd2/GearUp/util/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc       authsvc.Service
	V         *validator.Validate
	Log       *slog.Logger
	JWTSecret string
}

// Signup registers a new customer
// @Summary      Customer signup
// @Description  Register a customer (age >= 17, future license expiry) and issue a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.SignupReq  true  "Signup payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "email/license already registered"
// @Router       /auth/signup [post]
func (h *Controller) Signup(c echo.Context) error {
	var req model.SignupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	cust, token, err := h.Svc.Signup(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		case authsvc.ErrEmailTaken, authsvc.ErrLicenseTaken:
			return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("signup", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"token":    token,
		"customer": cust,
	})
}

// Login authenticates a customer
// @Summary      Customer login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /auth/login [post]
func (h *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	cust, token, err := h.Svc.Login(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrInvalidCreds:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid email or password"})
		default:
			h.Log.Error("login", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"customer": echo.Map{
			"license_no": cust.LicenseNo,
			"email":      cust.Email,
			"first_name": cust.FirstName,
			"last_name":  cust.LastName,
		},
	})
}

// StaffLogin authenticates an employee or admin
// @Summary      Staff login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.StaffLoginReq  true  "Staff login payload"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /auth/staff_login [post]
func (h *Controller) StaffLogin(c echo.Context) error {
	var req model.StaffLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	emp, token, err := h.Svc.StaffLogin(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrInvalidCreds:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials or role"})
		default:
			h.Log.Error("staff login", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token":    token,
		"employee": emp,
	})
}

// ResetByLicense resets a password when email and license number match
// @Summary      Password reset by license
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.ResetByLicenseReq  true  "Reset payload"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /auth/reset_by_license [post]
func (h *Controller) ResetByLicense(c echo.Context) error {
	var req model.ResetByLicenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	if err := h.Svc.ResetByLicense(c.Request().Context(), req); err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrInvalidCreds:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid email or license number"})
		default:
			h.Log.Error("reset by license", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "message": "password has been reset"})
}

// Me echoes the verified token's identity
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /auth/me [get]
func (h *Controller) Me(c echo.Context) error {
	claims, err := jwtutil.ParseAuth(c.Request().Header.Get("Authorization"), h.JWTSecret)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "not authenticated"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"sub":   claims["sub"],
		"email": claims["email"],
	})
}

// Logout is a stateless no-op; clients drop their token.
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /auth/logout [post]
func (h *Controller) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
