package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "buffet_pizzas/internal/adapter/http/dto/response"
	"buffet_pizzas/internal/usecase"
	"buffet_pizzas/pkg"

	"github.com/gin-gonic/gin"
)

// DepositPaymentHandler processes the entrada payment of a booking through
// the payment provider.

type DepositPaymentHandler struct {
	usecase usecase.IDepositPaymentUseCase
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc}
}

// CreateDepositPayment godoc
// @Summary      Charge the booking deposit through the payment provider
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Booking id"
// @Success      200 {object} response.DepositPaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /bookings/{id}/deposit-payments [post]
func (h *DepositPaymentHandler) CreateDepositPayment(c *gin.Context) {
	bookingID := c.Param("id")
	log.Printf("[payment][handler] create start booking_id=%s", bookingID)

	payload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload booking_id=%s err=%v", bookingID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), bookingID, payload)
	if err != nil {
		log.Printf("[payment][handler] create failed booking_id=%s err=%v", bookingID, err)
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success booking_id=%s payment_id=%s status=%s", bookingID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// ListDepositPayments godoc
// @Summary      List deposit payments of a booking
// @Tags         payments
// @Produce      json
// @Param        id path string true "Booking id"
// @Success      200 {array} response.DepositPaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /bookings/{id}/deposit-payments [get]
func (h *DepositPaymentHandler) ListDepositPayments(c *gin.Context) {
	bookingID := c.Param("id")

	payments, err := h.usecase.ListByBookingID(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayments(payments))
}

// readProviderPayload accepts either the raw provider request body or an
// envelope with a provider_payload field; an empty body means defaults only.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotConfirmed):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_CONFIRMED", "Deposit can only be charged on a confirmed booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
