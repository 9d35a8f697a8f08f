// app/echoServer/jwtx/user.go
package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/edlesonjrr/Bibliotech/model"
)

const currentUserKey = "current_user"

// UserIDFromToken extracts the subject from the echo-jwt token in context.
func UserIDFromToken(c echo.Context) (string, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return "", errors.New("no jwt token in context")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid jwt claims")
	}
	if s, ok := claims["sub"].(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("sub missing in claims")
}

// SetCurrentUser stores the resolved user for the rest of the request.
func SetCurrentUser(c echo.Context, u *model.User) {
	c.Set(currentUserKey, u)
}

// CurrentUser returns the authenticated user, or nil when the request has no
// session. Policy predicates treat nil as "no capability".
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(currentUserKey).(*model.User)
	return u
}
