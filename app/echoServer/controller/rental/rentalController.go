package rental

import (
	"log/slog"
	"net/http"

	rs "github.com/Fahadd2/GearUp/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Start transitions a Reserved reservation to Active
// @Summary      Start rental
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  StartRentalReq  true  "Start payload"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any "reservation not found"
// @Failure      409  {object}  map[string]any "wrong reservation or car state"
// @Router       /rentals/start [post]
func (h *Controller) Start(c echo.Context) error {
	var req StartRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	if err := h.Svc.Start(c.Request().Context(), req.ReservationID); err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		case rs.ErrNotReserved, rs.ErrCarUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("rental start", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "message": "Rental started"})
}

// Close transitions an Active rental to Completed and finalizes the invoice
// @Summary      Close rental
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  CloseRentalReq  true  "Close payload"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any "reservation not found"
// @Failure      409  {object}  map[string]any "reservation not active"
// @Router       /rentals/close [post]
func (h *Controller) Close(c echo.Context) error {
	var req CloseRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	total, err := h.Svc.Close(c.Request().Context(), req.ReservationID, req.DamageFee, req.RefuelFee)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrBadFee:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
		case rs.ErrNotActive:
			return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("rental close", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "message": "Rental closed", "total": total})
}
