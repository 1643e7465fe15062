package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/SscSPs/landed_cost_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

type landedCostHandler struct {
	landedCostService portssvc.LandedCostSvc
}

// RegisterLandedCostRoutes registers the calculateLandedCost query.
func RegisterLandedCostRoutes(queries gin.IRoutes, landedCostService portssvc.LandedCostSvc) {
	registerValidators()
	h := &landedCostHandler{landedCostService: landedCostService}
	queries.GET("/calculateLandedCost", h.calculateLandedCost)
}

// calculateLandedCost godoc
// @Summary Landed cost of a product delivered into a country
// @Description total = (price + duty + tax) converted from baseCurrencyCode to targetCurrencyCode
// @Tags landed-cost
// @Produce json
// @Param productId query string true "Product ID"
// @Param countryId query string true "Country ID"
// @Param targetCurrencyCode query string true "Currency to price in"
// @Param baseCurrencyCode query string true "Currency the conversion starts from"
// @Success 200 {object} dto.LandedCostResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string "Product, country or rate not found"
// @Router /calculateLandedCost [get]
func (h *landedCostHandler) calculateLandedCost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CalculateLandedCostParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	productID, err := parseUUID("productId", params.ProductID)
	if err != nil {
		respondError(c, logger, err, "Invalid productId")
		return
	}
	countryID, err := parseUUID("countryId", params.CountryID)
	if err != nil {
		respondError(c, logger, err, "Invalid countryId")
		return
	}

	logger = logger.With(
		slog.String("product_id", params.ProductID),
		slog.String("country_id", params.CountryID))

	cost, err := h.landedCostService.CalculateLandedCost(c.Request.Context(),
		productID, countryID, params.TargetCurrencyCode, params.BaseCurrencyCode)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate landed cost")
		return
	}
	respond(c, http.StatusOK, dto.ToLandedCostResponse(cost))
}
