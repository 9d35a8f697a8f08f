package report

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	reportsvc "github.com/edlesonjrr/Bibliotech/service/report"
)

type Controller struct {
	Svc reportsvc.Service
	Log *slog.Logger
}

// GET /v1/stats
func (h *Controller) Stats(c echo.Context) error {
	s, err := h.Svc.Stats(c.Request().Context())
	if err != nil {
		h.Log.Error("stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, s)
}

// GET /v1/dashboard
func (h *Controller) Dashboard(c echo.Context) error {
	d, err := h.Svc.Dashboard(c.Request().Context())
	if err != nil {
		h.Log.Error("dashboard", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, d)
}
