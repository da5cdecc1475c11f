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

// PricingConfigHandler exposes the per-head prices and deposit percentage.

type PricingConfigHandler struct {
	usecase usecase.IPricingConfigUseCase
}

func NewPricingConfigHandler(uc usecase.IPricingConfigUseCase) *PricingConfigHandler {
	return &PricingConfigHandler{usecase: uc}
}

// GetPricingConfig godoc
// @Summary      Read the current pricing configuration
// @Tags         config
// @Produce      json
// @Success      200 {object} response.PricingConfigResponse
// @Router       /config/pricing [get]
func (h *PricingConfigHandler) GetPricingConfig(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapPricingConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricingConfig(cfg))
}

// UpdatePricingConfig godoc
// @Summary      Update the pricing configuration
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        payload body request.PricingConfigRequest true "Pricing configuration"
// @Success      200 {object} response.PricingConfigResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /config/pricing [put]
func (h *PricingConfigHandler) UpdatePricingConfig(c *gin.Context) {
	var payload request.PricingConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid pricing config payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cfg, err := h.usecase.Update(c.Request.Context(), payload.ToPricingConfig())
	if err != nil {
		appErr := mapPricingConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricingConfig(cfg))
}

func mapPricingConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPricingConfig):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_CONFIG", "Prices must be positive and percent between 0 and 100", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
