package car

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Fahadd2/GearUp/model"
	carrepo "github.com/Fahadd2/GearUp/repository/car"
	cs "github.com/Fahadd2/GearUp/service/car"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc cs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// List returns the car inventory with optional filters
// @Summary      List cars
// @Tags         cars
// @Produce      json
// @Param        category      query  string  false  "category"
// @Param        seats         query  int     false  "minimum seats"
// @Param        transmission  query  string  false  "transmission"
// @Param        min_price     query  number  false  "minimum price per day"
// @Param        max_price     query  number  false  "maximum price per day"
// @Success      200  {object}  map[string]any
// @Router       /cars [get]
func (h *Controller) List(c echo.Context) error {
	var f model.CarFilter
	f.Category = c.QueryParam("category")
	f.Transmission = c.QueryParam("transmission")

	if v := c.QueryParam("seats"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid seats"})
		}
		f.Seats = n
	}
	if v := c.QueryParam("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid min_price"})
		}
		f.MinPrice = &p
	}
	if v := c.QueryParam("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid max_price"})
		}
		f.MaxPrice = &p
	}

	cars, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("car list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": cars})
}

// Update applies a partial update to a car (staff only)
// @Summary      Update car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string        true  "car id (CAR-n)"
// @Param        payload  body  UpdateCarReq  true  "fields to update"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "car not found"
// @Router       /cars/{id} [put]
func (h *Controller) Update(c echo.Context) error {
	carID := c.Param("id")

	var req UpdateCarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	fields := carrepo.UpdateFields{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Category:     req.Category,
		Transmission: req.Transmission,
		PricePerDay:  req.PricePerDay,
		Status:       req.Status,
	}

	if err := h.Svc.Update(c.Request().Context(), carID, fields); err != nil {
		switch cs.Code(err) {
		case cs.ErrNoFields:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "no fields to update"})
		case cs.ErrBadValue:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid field value"})
		case cs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		default:
			h.Log.Error("car update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Car updated successfully", "car_id": carID})
}
