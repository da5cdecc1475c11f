package handlers

import (
	"context"
	"errors"
	"net/http"

	request "buffet_pizzas/internal/adapter/http/dto/request"
	response "buffet_pizzas/internal/adapter/http/dto/response"
	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/pricing"
	"buffet_pizzas/internal/usecase"
	"buffet_pizzas/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

// BookingHandler handles the booking lifecycle endpoints: the public quote
// form plus the admin listing, editing, confirmation and deposit override.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
	config  usecase.IPricingConfigUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase, config usecase.IPricingConfigUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc, config: config}
}

// CreateQuote godoc
// @Summary      Create a booking from the public quote form
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload body request.QuoteRequest true "Quote form"
// @Success      201 {object} response.BookingResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /quotes [post]
func (h *BookingHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.CreateFromQuote(c.Request.Context(), payload.ToBooking())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, h.withQuote(c.Request.Context(), booking))
}

// ListBookings godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200 {array} response.BookingResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// GetBooking godoc
// @Summary      Get one booking with its computed quote
// @Tags         bookings
// @Produce      json
// @Param        id path string true "Booking id"
// @Success      200 {object} response.BookingResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.withQuote(c.Request.Context(), booking))
}

// UpdateBooking godoc
// @Summary      Edit booking fields
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id path string true "Booking id"
// @Param        payload body request.BookingUpdateRequest true "Booking fields"
// @Success      200 {object} response.BookingResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /bookings/{id} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var payload request.BookingUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.Update(c.Request.Context(), payload.ToBooking(c.Param("id")))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.withQuote(c.Request.Context(), booking))
}

// ConfirmBooking godoc
// @Summary      Confirm a booking
// @Tags         bookings
// @Produce      json
// @Param        id path string true "Booking id"
// @Success      200 {object} response.BookingResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /bookings/{id}/confirm [patch]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.patchStatus(c, h.usecase.Confirm)
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Param        id path string true "Booking id"
// @Success      200 {object} response.BookingResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /bookings/{id}/cancel [patch]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

// SetDepositOverride godoc
// @Summary      Set or clear the manual deposit override
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id path string true "Booking id"
// @Param        payload body request.DepositOverrideRequest true "Deposit value, raw decimal string"
// @Success      200 {object} response.BookingResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /bookings/{id}/deposit [put]
func (h *BookingHandler) SetDepositOverride(c *gin.Context) {
	var payload request.DepositOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.SetDepositOverride(c.Request.Context(), c.Param("id"), payload.Value)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.withQuote(c.Request.Context(), booking))
}

func (h *BookingHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Booking, error),
) {
	booking, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.withQuote(c.Request.Context(), booking))
}

// withQuote decorates a booking with its current money breakdown. A config
// read failure degrades to the plain booking payload rather than failing the
// whole request.
func (h *BookingHandler) withQuote(ctx context.Context, b entities.Booking) response.BookingResponse {
	if h.config == nil {
		return response.FromBooking(b)
	}
	cfg, err := h.config.Get(ctx)
	if err != nil {
		return response.FromBooking(b)
	}
	total := pricing.ComputeTotal(b.Adults, b.Children, nil, cfg)
	return response.FromBookingWithQuote(b, pricing.ComputeQuote(total, cfg, b.DepositOverride))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidGuestCount),
		errors.Is(err, usecase.ErrInvalidEventDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDepositValue):
		return pkg.NewDomainErrorSimple("INVALID_DEPOSIT_VALUE", "Deposit value must be a decimal number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
