// app/echoServer/middleware.go
package echoServer

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/edlesonjrr/Bibliotech/app/echoServer/jwtx"
	"github.com/edlesonjrr/Bibliotech/model"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

// UserResolver turns the verified token subject into the current user. A
// subject that no longer resolves, or resolves to a deactivated account,
// loses access immediately regardless of token expiry.
type UserResolver interface {
	UserByID(id string) (model.User, bool)
}

func ResolveCurrentUser(r UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, err := jwtx.UserIDFromToken(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			u, ok := r.UserByID(uid)
			if !ok || !u.IsActive {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			jwtx.SetCurrentUser(c, &u)
			return next(c)
		}
	}
}
