package routes

import (
	"net/http"

	"buffet_pizzas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathBookings  = "/bookings"
	PathConfig    = "/config"
	PathPageViews = "/pageviews"
)

func addBuffetRoutes(
	rg *gin.RouterGroup,
	bookingHandler *handlers.BookingHandler,
	configHandler *handlers.PricingConfigHandler,
	documentHandler *handlers.DocumentHandler,
	paymentHandler *handlers.DepositPaymentHandler,
	pageViewHandler *handlers.PageViewHandler,
) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Site publico: formulario de orçamento e contador de visitas.
	rg.POST(PathQuotes, bookingHandler.CreateQuote)
	pageViews := rg.Group(PathPageViews)
	{
		pageViews.POST("", pageViewHandler.RecordPageView)
		pageViews.GET("/summary", pageViewHandler.PageViewSummary)
	}

	// Console administrativo.
	bookings := rg.Group(PathBookings)
	{
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PATCH("/:id", bookingHandler.UpdateBooking)
		bookings.PATCH("/:id/confirm", bookingHandler.ConfirmBooking)
		bookings.PATCH("/:id/cancel", bookingHandler.CancelBooking)
		bookings.PUT("/:id/deposit", bookingHandler.SetDepositOverride)

		bookings.POST("/:id/documents/contract", documentHandler.GenerateContract)
		bookings.POST("/:id/documents/receipt", documentHandler.GenerateReceipt)

		bookings.POST("/:id/deposit-payments", paymentHandler.CreateDepositPayment)
		bookings.GET("/:id/deposit-payments", paymentHandler.ListDepositPayments)
	}

	config := rg.Group(PathConfig)
	{
		config.GET("/pricing", configHandler.GetPricingConfig)
		config.PUT("/pricing", configHandler.UpdatePricingConfig)
	}
}
