// Package main Bibliotech API.
//
// @title           Bibliotech API
// @version         1.0
// @description     library management service (catalog, users, loans, dashboard).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/edlesonjrr/Bibliotech/app/echoServer"
	authctrl "github.com/edlesonjrr/Bibliotech/app/echoServer/controller/auth"
	bookctrl "github.com/edlesonjrr/Bibliotech/app/echoServer/controller/book"
	loanctrl "github.com/edlesonjrr/Bibliotech/app/echoServer/controller/loan"
	reportctrl "github.com/edlesonjrr/Bibliotech/app/echoServer/controller/report"
	userctrl "github.com/edlesonjrr/Bibliotech/app/echoServer/controller/user"
	"github.com/edlesonjrr/Bibliotech/app/echoServer/validation"
	"github.com/edlesonjrr/Bibliotech/config"
	authsvc "github.com/edlesonjrr/Bibliotech/service/auth"
	catalogsvc "github.com/edlesonjrr/Bibliotech/service/catalog"
	loansvc "github.com/edlesonjrr/Bibliotech/service/loan"
	membersvc "github.com/edlesonjrr/Bibliotech/service/member"
	reportsvc "github.com/edlesonjrr/Bibliotech/service/report"
	"github.com/edlesonjrr/Bibliotech/store"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// store: all state is in memory, seeded with the fixture
	lib := store.New(store.Seed())

	// services
	as := authsvc.New(lib, cfg.JWTSecret)
	cs := catalogsvc.New(lib)
	ms := membersvc.New(lib)
	ls := loansvc.New(lib)
	rs := reportsvc.New(lib)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: cs, V: v, Log: log}
	userC := &userctrl.Controller{Svc: ms, V: v, Log: log}
	loanC := &loanctrl.Controller{Svc: ls, V: v, Log: log}
	reportC := &reportctrl.Controller{Svc: rs, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:   authC,
		Book:   bookC,
		User:   userC,
		Loan:   loanC,
		Report: reportC,

		Users:     lib,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
