package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	authctrl "github.com/edlesonjrr/Bibliotech/app/echoServer/controller/auth"
	bookctrl "github.com/edlesonjrr/Bibliotech/app/echoServer/controller/book"
	loanctrl "github.com/edlesonjrr/Bibliotech/app/echoServer/controller/loan"
	reportctrl "github.com/edlesonjrr/Bibliotech/app/echoServer/controller/report"
	userctrl "github.com/edlesonjrr/Bibliotech/app/echoServer/controller/user"
)

type C struct {
	Auth   *authctrl.Controller
	Book   *bookctrl.Controller
	User   *userctrl.Controller
	Loan   *loanctrl.Controller
	Report *reportctrl.Controller

	Users     UserResolver
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
	}))
	auth.Use(ResolveCurrentUser(c.Users))

	// Books
	auth.GET("/books", c.Book.List)
	auth.GET("/books/search", c.Book.Search)
	auth.GET("/books/:id", c.Book.Detail)
	// Staff endpoints
	auth.POST("/books", c.Book.Create)
	auth.PUT("/books/:id", c.Book.Update)
	auth.DELETE("/books/:id", c.Book.Delete)

	// Users
	auth.GET("/users", c.User.List)
	auth.GET("/users/:id", c.User.Detail)
	auth.POST("/users", c.User.Create)
	auth.PUT("/users/:id", c.User.Update)
	auth.DELETE("/users/:id", c.User.Delete)

	// Loans
	auth.GET("/loans", c.Loan.List)
	auth.GET("/loans/my", c.Loan.My)
	auth.POST("/loans", c.Loan.Create)
	auth.POST("/loans/:id/return", c.Loan.Return)

	// Reports
	auth.GET("/stats", c.Report.Stats)
	auth.GET("/dashboard", c.Report.Dashboard)
}
