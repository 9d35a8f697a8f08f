package loan

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/edlesonjrr/Bibliotech/app/echoServer/jwtx"
	"github.com/edlesonjrr/Bibliotech/policy"
	loansvc "github.com/edlesonjrr/Bibliotech/service/loan"
)

type Controller struct {
	Svc loansvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/loans
func (h *Controller) Create(c echo.Context) error {
	var req CreateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	ln, err := h.Svc.Create(c.Request().Context(), jwtx.CurrentUser(c), req.BookID, req.UserID)
	if err != nil {
		switch loansvc.Code(err) {
		case loansvc.ErrNoCopies:
			return c.JSON(http.StatusConflict, echo.Map{"message": "no copies available"})
		case loansvc.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		case loansvc.ErrUserNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		case loansvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		default:
			h.Log.Error("loan create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, ln)
}

// POST /v1/loans/:id/return
func (h *Controller) Return(c echo.Context) error {
	ln, err := h.Svc.Return(c.Request().Context(), jwtx.CurrentUser(c), c.Param("id"))
	if err != nil {
		switch loansvc.Code(err) {
		case loansvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case loansvc.ErrAlreadyReturned:
			return c.JSON(http.StatusConflict, echo.Map{"message": "loan already returned"})
		case loansvc.ErrLoanNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "loan not found"})
		default:
			h.Log.Error("loan return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, ln)
}

// GET /v1/loans/my
func (h *Controller) My(c echo.Context) error {
	cu := jwtx.CurrentUser(c)
	if cu == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	rows, err := h.Svc.MyLoans(c.Request().Context(), cu.ID)
	if err != nil {
		h.Log.Error("my loans", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/loans?status=&q=  (admin, librarian)
func (h *Controller) List(c echo.Context) error {
	if !policy.CanManageAllLoans(jwtx.CurrentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	rows, err := h.Svc.List(c.Request().Context(), loansvc.Filter{
		Status: c.QueryParam("status"),
		Query:  c.QueryParam("q"),
	})
	if err != nil {
		h.Log.Error("loan list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
