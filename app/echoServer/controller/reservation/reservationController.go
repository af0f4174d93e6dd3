package reservation

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Fahadd2/GearUp/app/echoServer/jwtx"
	bs "github.com/Fahadd2/GearUp/service/booking"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Create books a car for the authenticated customer
// @Summary      Create reservation
// @Description  Checks availability under a car-row lock and creates reservation + invoice atomically
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  CreateReservationReq  true  "Reservation payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "car not found"
// @Failure      409  {object}  map[string]any "car not available for selected dates"
// @Router       /reservations/create_auth [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	licenseNo, err := jwtx.SubjectFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "not authenticated"})
	}

	// Formats already validated by the datetime tag.
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	out, err := h.Svc.Create(c.Request().Context(), licenseNo, req.CarID, start, end)
	if err != nil {
		switch bs.Code(err) {
		case bs.ErrBadDates:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		case bs.ErrCarNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		case bs.ErrUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "car not available for selected dates"})
		default:
			h.Log.Error("reservation create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"reservation_id": out.ReservationID,
		"invoice_id":     out.InvoiceID,
		"total_amount":   out.TotalAmount,
	})
}
