// Package main GearUp API.
//
// @title           GearUp Car Rental API
// @version         1.0
// @description     Car rental service (auth, cars, reservations, rentals, invoices, payments).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Fahadd2/GearUp/app/echoServer"
	authctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/auth"
	carctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/car"
	dashctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/dashboard"
	invoicectrl "github.com/Fahadd2/GearUp/app/echoServer/controller/invoice"
	paymentctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/payment"
	rentalctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/rental"
	reservationctrl "github.com/Fahadd2/GearUp/app/echoServer/controller/reservation"
	"github.com/Fahadd2/GearUp/app/echoServer/validation"
	"github.com/Fahadd2/GearUp/config"
	authrepo "github.com/Fahadd2/GearUp/repository/auth"
	bookingrepo "github.com/Fahadd2/GearUp/repository/booking"
	carrepo "github.com/Fahadd2/GearUp/repository/car"
	dashrepo "github.com/Fahadd2/GearUp/repository/dashboard"
	invoicerepo "github.com/Fahadd2/GearUp/repository/invoice"
	paymentrepo "github.com/Fahadd2/GearUp/repository/payment"
	rentalrepo "github.com/Fahadd2/GearUp/repository/rental"
	authsvc "github.com/Fahadd2/GearUp/service/auth"
	bookingsvc "github.com/Fahadd2/GearUp/service/booking"
	carsvc "github.com/Fahadd2/GearUp/service/car"
	dashsvc "github.com/Fahadd2/GearUp/service/dashboard"
	invoicesvc "github.com/Fahadd2/GearUp/service/invoice"
	paymentsvc "github.com/Fahadd2/GearUp/service/payment"
	rentalsvc "github.com/Fahadd2/GearUp/service/rental"
	"github.com/Fahadd2/GearUp/util/database"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	_ = godotenv.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ar := authrepo.New(db)
	cr := carrepo.New(db)
	br := bookingrepo.New()
	rr := rentalrepo.New()
	pr := paymentrepo.New()
	ir := invoicerepo.New(db)
	dr := dashrepo.New(db)

	// services
	as := authsvc.New(ar, cfg.JWTSecret, cfg.JWTExpiresMin)
	cs := carsvc.New(cr)
	bs := bookingsvc.New(db.Pool, br)
	rs := rentalsvc.New(db.Pool, rr)
	ps := paymentsvc.New(db.Pool, pr)
	is := invoicesvc.New(ir)
	ds := dashsvc.New(dr)

	// controllers
	val := validation.New()
	authC := &authctrl.Controller{Svc: as, V: val.V, Log: log, JWTSecret: cfg.JWTSecret}
	carC := &carctrl.Controller{Svc: cs, V: val.V, Log: log}
	reservationC := &reservationctrl.Controller{Svc: bs, V: val.V, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: val.V, Log: log}
	paymentC := &paymentctrl.Controller{Svc: ps, V: val.V, Log: log}
	invoiceC := &invoicectrl.Controller{Svc: is, Log: log}
	dashC := &dashctrl.Controller{Svc: ds, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = val

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "API is running",
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:        authC,
		Car:         carC,
		Reservation: reservationC,
		Rental:      rentalC,
		Payment:     paymentC,
		Invoice:     invoiceC,
		Dashboard:   dashC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
