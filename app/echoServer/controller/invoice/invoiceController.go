package invoice

import (
	"log/slog"
	"net/http"
	"strconv"

	is "github.com/Fahadd2/GearUp/service/invoice"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc is.Service
	Log *slog.Logger
}

// List returns recent invoices joined with their reservations
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "max rows (default 100, cap 200)"
// @Success      200  {object}  map[string]any
// @Router       /invoices [get]
func (h *Controller) List(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid limit"})
		}
		limit = n
	}

	rows, err := h.Svc.List(c.Request().Context(), limit)
	if err != nil {
		h.Log.Error("invoice list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
