package book

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/edlesonjrr/Bibliotech/app/echoServer/jwtx"
	"github.com/edlesonjrr/Bibliotech/model"
	"github.com/edlesonjrr/Bibliotech/policy"
	catalogsvc "github.com/edlesonjrr/Bibliotech/service/catalog"
)

type Controller struct {
	Svc catalogsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/books
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/books/search?q=
func (h *Controller) Search(c echo.Context) error {
	rows, err := h.Svc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		h.Log.Error("book search error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/books/:id
func (h *Controller) Detail(c echo.Context) error {
	row, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.Log.Error("book detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if row == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}
	return c.JSON(http.StatusOK, row)
}

// POST /v1/books  (admin, librarian)
func (h *Controller) Create(c echo.Context) error {
	if !policy.CanManageBooks(jwtx.CurrentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	b, err := h.Svc.Create(c.Request().Context(), req.toBook())
	if err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		}
		h.Log.Error("book create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, b)
}

// PUT /v1/books/:id  (admin, librarian)
func (h *Controller) Update(c echo.Context) error {
	if !policy.CanManageBooks(jwtx.CurrentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var patch model.BookPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.Svc.Update(c.Request().Context(), c.Param("id"), patch); err != nil {
		h.Log.Error("book update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DELETE /v1/books/:id  (admin, librarian)
func (h *Controller) Delete(c echo.Context) error {
	if !policy.CanManageBooks(jwtx.CurrentUser(c)) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	if err := h.Svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if catalogsvc.Code(err) == catalogsvc.ErrHasActiveLoans {
			return c.JSON(http.StatusConflict, echo.Map{"message": "book has active loans"})
		}
		h.Log.Error("book delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}
