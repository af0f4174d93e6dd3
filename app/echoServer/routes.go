package echoServer

import (
	"net/http"

	authctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/auth"
	carctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/car"
	dashctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/dashboard"
	invoicectrl "github.com/Fahadd2/GearUp/app/echoServer/controller/invoice"
	paymentctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/payment"
	rentalctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/rental"
	reservationctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/reservation"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth        *authctrl.Controller
	Car         *carctrl.Controller
	Reservation *reservationctrl.Controller
	Rental      *rentalctrl.Controller
	Payment     *paymentctrl.Controller
	Invoice     *invoicectrl.Controller
	Dashboard   *dashctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/auth/signup", c.Auth.Signup)
	e.POST("/auth/login", c.Auth.Login)
	e.POST("/auth/staff_login", c.Auth.StaffLogin)
	e.POST("/auth/reset_by_license", c.Auth.ResetByLicense)
	e.POST("/auth/logout", c.Auth.Logout)
	e.GET("/auth/me", c.Auth.Me)

	e.GET("/cars", c.Car.List)

	requireJWT := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(c.JWTSecret),
		TokenLookup: "header:Authorization",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return jwt.MapClaims{}
		},
	})

	// Customer: booking requires a bearer identity (sub = license number).
	res := e.Group("/reservations", requireJWT, requireSubject)
	res.POST("/create_auth", c.Reservation.Create)

	// Staff desk operations.
	staff := e.Group("", requireJWT, requireSubject)
	staff.PUT("/cars/:id", c.Car.Update)
	staff.POST("/rentals/start", c.Rental.Start)
	staff.POST("/rentals/close", c.Rental.Close)
	staff.POST("/payments/pay", c.Payment.Pay)
	staff.GET("/invoices", c.Invoice.List)
	staff.GET("/dashboard/kpis", c.Dashboard.KPIs)
	staff.GET("/dashboard/revenue", c.Dashboard.Revenue)
}

// requireSubject rejects tokens without a usable sub claim after echo-jwt
// has verified the signature.
func requireSubject(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		tok, ok := ctx.Get("user").(*jwt.Token)
		if !ok || tok == nil {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		return next(ctx)
	}
}
