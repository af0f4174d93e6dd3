package dashboard

import (
	"log/slog"
	"net/http"

	ds "github.com/Fahadd2/GearUp/service/dashboard"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ds.Service
	Log *slog.Logger
}

// KPIs returns the staff dashboard counters
// @Summary      Dashboard KPIs
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /dashboard/kpis [get]
func (h *Controller) KPIs(c echo.Context) error {
	k, err := h.Svc.KPIs(c.Request().Context())
	if err != nil {
		h.Log.Error("dashboard kpis", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, k)
}

// Revenue returns paid/pending/current-month revenue totals
// @Summary      Revenue stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /dashboard/revenue [get]
func (h *Controller) Revenue(c echo.Context) error {
	v, err := h.Svc.Revenue(c.Request().Context())
	if err != nil {
		h.Log.Error("dashboard revenue", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, v)
}
