package payment

import (
	"log/slog"
	"net/http"

	"github.com/Fahadd2/GearUp/model"
	ps "github.com/Fahadd2/GearUp/service/payment"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ps.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Pay appends a payment against an invoice
// @Summary      Record payment
// @Description  Appends a payment row and recomputes the invoice payment status under a row lock
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  PayReq  true  "Payment payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "invoice not found"
// @Router       /payments/pay [post]
func (h *Controller) Pay(c echo.Context) error {
	var req PayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Record(c.Request().Context(),
		req.InvoiceID, model.PaymentMethod(req.Method), req.Amount, req.Reference)
	if err != nil {
		switch ps.Code(err) {
		case ps.ErrBadAmount:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		case ps.ErrInvoiceNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "invoice not found"})
		default:
			h.Log.Error("payment record", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ok":         true,
		"invoice_id": req.InvoiceID,
		"payment_id": out.PaymentID,
		"status":     out.Status,
		"paid_total": out.PaidTotal,
	})
}
