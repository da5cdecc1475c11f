package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "buffet_pizzas/internal/adapter/http/dto/request"
	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/usecase"
	"buffet_pizzas/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler generates the contract and receipt PDFs for a booking. The
// response body is the PDF itself; nothing is stored server-side.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// GenerateContract godoc
// @Summary      Generate the service contract PDF
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        id path string true "Booking id"
// @Param        payload body request.DocumentRequest false "Additional items and installments"
// @Success      200 {file} binary
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /bookings/{id}/documents/contract [post]
func (h *DocumentHandler) GenerateContract(c *gin.Context) {
	h.generate(c, entities.DocumentKindContrato)
}

// GenerateReceipt godoc
// @Summary      Generate the deposit receipt PDF
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        id path string true "Booking id"
// @Param        payload body request.DocumentRequest false "Additional items and installments"
// @Success      200 {file} binary
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /bookings/{id}/documents/receipt [post]
func (h *DocumentHandler) GenerateReceipt(c *gin.Context) {
	h.generate(c, entities.DocumentKindRecibo)
}

func (h *DocumentHandler) generate(c *gin.Context, kind entities.DocumentKind) {
	bookingID := c.Param("id")

	// An empty body is a valid request: a document without extra items.
	var payload request.DocumentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Printf("[document][handler] invalid payload booking_id=%s err=%v", bookingID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	doc, err := h.usecase.Generate(c.Request.Context(), kind, bookingID, payload.ToItems(), payload.ToInstallments())
	if err != nil {
		log.Printf("[document][handler] generate failed kind=%s booking_id=%s err=%v", kind, bookingID, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, "application/pdf", doc.PDF)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentKind):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_KIND", "Unknown document kind", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
