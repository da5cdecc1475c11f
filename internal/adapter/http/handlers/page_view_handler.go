package handlers

import (
	"errors"
	"net/http"

	request "buffet_pizzas/internal/adapter/http/dto/request"
	response "buffet_pizzas/internal/adapter/http/dto/response"
	"buffet_pizzas/internal/usecase"
	"buffet_pizzas/pkg"

	"github.com/gin-gonic/gin"
)

// PageViewHandler is the analytics surface: one endpoint to record a public
// page hit and one to read the aggregated counters.

type PageViewHandler struct {
	usecase usecase.IPageViewUseCase
}

func NewPageViewHandler(uc usecase.IPageViewUseCase) *PageViewHandler {
	return &PageViewHandler{usecase: uc}
}

// RecordPageView godoc
// @Summary      Record one hit on a public page
// @Tags         pageviews
// @Accept       json
// @Produce      json
// @Param        payload body request.PageViewRequest true "Page path"
// @Success      200 {object} response.PageViewResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /pageviews [post]
func (h *PageViewHandler) RecordPageView(c *gin.Context) {
	var payload request.PageViewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAGEVIEW_INPUT", "Invalid pageview payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	view, err := h.usecase.Record(c.Request.Context(), payload.Path)
	if err != nil {
		appErr := mapPageViewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPageView(view))
}

// PageViewSummary godoc
// @Summary      Read the daily counters for every tracked page
// @Tags         pageviews
// @Produce      json
// @Success      200 {array} response.PageViewResponse
// @Router       /pageviews/summary [get]
func (h *PageViewHandler) PageViewSummary(c *gin.Context) {
	views, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapPageViewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPageViews(views))
}

func mapPageViewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPagePath):
		return pkg.NewDomainErrorSimple("INVALID_PAGE_PATH", "Path must start with /", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
