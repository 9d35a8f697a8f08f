package user

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/edlesonjrr/Bibliotech/app/echoServer/jwtx"
	"github.com/edlesonjrr/Bibliotech/model"
	"github.com/edlesonjrr/Bibliotech/policy"
	membersvc "github.com/edlesonjrr/Bibliotech/service/member"
)

type Controller struct {
	Svc membersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/users  (admin, librarian)
func (h *Controller) List(c echo.Context) error {
	if !policy.CanViewAllUsers(jwtx.CurrentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("user list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/users/:id  (admin, librarian)
func (h *Controller) Detail(c echo.Context) error {
	if !policy.CanViewAllUsers(jwtx.CurrentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.Log.Error("user detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if row == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}
	return c.JSON(http.StatusOK, row)
}

// POST /v1/users  (admin)
func (h *Controller) Create(c echo.Context) error {
	if !policy.CanManageUsers(jwtx.CurrentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var req CreateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	u, err := h.Svc.Create(c.Request().Context(), req.toUser())
	if err != nil {
		if membersvc.Code(err) == membersvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		}
		h.Log.Error("user create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, u)
}

// PUT /v1/users/:id  (admin)
func (h *Controller) Update(c echo.Context) error {
	if !policy.CanManageUsers(jwtx.CurrentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var patch model.UserPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.Svc.Update(c.Request().Context(), c.Param("id"), patch); err != nil {
		if membersvc.Code(err) == membersvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		}
		h.Log.Error("user update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DELETE /v1/users/:id  (admin)
func (h *Controller) Delete(c echo.Context) error {
	if !policy.CanManageUsers(jwtx.CurrentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	if err := h.Svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if membersvc.Code(err) == membersvc.ErrHasActiveLoans {
			return c.JSON(http.StatusConflict, echo.Map{"message": "user has active loans"})
		}
		h.Log.Error("user delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}
