package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/SscSPs/landed_cost_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to directed currency pairs.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// RegisterCurrencyRoutes registers the currency queries and mutations.
func RegisterCurrencyRoutes(queries, mutations gin.IRoutes, currencyService portssvc.CurrencySvcFacade) {
	registerValidators()
	h := newCurrencyHandler(currencyService)

	queries.GET("/currencies", h.currencies)
	queries.GET("/currency", h.currency)
	queries.GET("/currenciesBy", h.currenciesBy)
	queries.GET("/currenciesByBaseCode", h.currenciesByBaseCode)
	queries.GET("/currenciesByTargetCode", h.currenciesByTargetCode)

	mutations.POST("/addCurrency", h.addCurrency)
	mutations.POST("/updateCurrencyById/:id", h.updateCurrencyByID)
	mutations.POST("/updateCurrencyRateToLiveById/:id", h.updateCurrencyRateToLiveByID)
	mutations.POST("/deleteCurrencyById/:id", h.deleteCurrencyByID)
}

// currencies godoc
// @Summary List all currency pairs
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) currencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.Currencies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}
	respond(c, http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// currency godoc
// @Summary Get the directed pair baseCode -> targetCode
// @Description The reverse pair is never consulted. A missing pair yields null data.
// @Tags currencies
// @Produce json
// @Param baseCode query string true "Base currency code"
// @Param targetCode query string true "Target currency code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string
// @Router /currency [get]
func (h *currencyHandler) currency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	baseCode, err := requiredQuery(c, "baseCode")
	if err != nil {
		respondError(c, logger, err, "Missing base code")
		return
	}
	targetCode, err := requiredQuery(c, "targetCode")
	if err != nil {
		respondError(c, logger, err, "Missing target code")
		return
	}

	currency, err := h.currencyService.Currency(c.Request.Context(), baseCode, targetCode)
	if err != nil {
		respondError(c, logger, err, "Failed to get currency")
		return
	}
	if currency == nil {
		respond(c, http.StatusOK, nil)
		return
	}
	respond(c, http.StatusOK, dto.ToCurrencyResponse(currency))
}

// currenciesBy godoc
// @Summary Filter currency pairs by base or target code
// @Description At most one of baseCode or targetCode may be given. None lists every pair.
// @Tags currencies
// @Produce json
// @Param baseCode query string false "Base currency code"
// @Param targetCode query string false "Target currency code"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string
// @Router /currenciesBy [get]
func (h *currencyHandler) currenciesBy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.CurrencyPairQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	currencies, err := h.currencyService.CurrenciesBy(c.Request.Context(), q.BaseCode, q.TargetCode)
	if err != nil {
		respondError(c, logger, err, "Failed to filter currencies")
		return
	}
	respond(c, http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// currenciesByBaseCode godoc
// @Summary Currency pairs converting from baseCode
// @Tags currencies
// @Produce json
// @Param baseCode query string true "Base currency code"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string
// @Router /currenciesByBaseCode [get]
func (h *currencyHandler) currenciesByBaseCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	baseCode, err := requiredQuery(c, "baseCode")
	if err != nil {
		respondError(c, logger, err, "Missing base code")
		return
	}
	currencies, err := h.currencyService.CurrenciesByBaseCode(c.Request.Context(), baseCode)
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies by base code")
		return
	}
	respond(c, http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// currenciesByTargetCode godoc
// @Summary Currency pairs converting into targetCode
// @Tags currencies
// @Produce json
// @Param targetCode query string true "Target currency code"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string
// @Router /currenciesByTargetCode [get]
func (h *currencyHandler) currenciesByTargetCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	targetCode, err := requiredQuery(c, "targetCode")
	if err != nil {
		respondError(c, logger, err, "Missing target code")
		return
	}
	currencies, err := h.currencyService.CurrenciesByTargetCode(c.Request.Context(), targetCode)
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies by target code")
		return
	}
	respond(c, http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// addCurrency godoc
// @Summary Create a directed currency pair
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Pair details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Pair already exists"
// @Security BearerAuth
// @Router /addCurrency [post]
func (h *currencyHandler) addCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	currency, err := h.currencyService.AddCurrency(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add currency")
		return
	}
	logger.Info("Currency pair added",
		slog.String("currency_id", currency.CurrencyID.String()),
		slog.String("base_code", currency.BaseCode.String()),
		slog.String("target_code", currency.TargetCode.String()))
	respond(c, http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// updateCurrencyById godoc
// @Summary Update a currency pair
// @Tags currencies
// @Accept json
// @Produce json
// @Param id path string true "Currency ID"
// @Param currency body dto.UpdateCurrencyRequest true "Fields to change"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Pair already exists"
// @Security BearerAuth
// @Router /updateCurrencyById/{id} [post]
func (h *currencyHandler) updateCurrencyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := pathUUID(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid currency id")
		return
	}
	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	currency, err := h.currencyService.UpdateCurrencyByID(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update currency")
		return
	}
	respond(c, http.StatusOK, dto.ToCurrencyResponse(currency))
}

// updateCurrencyRateToLiveById godoc
// @Summary Refresh a pair's rate from the live provider
// @Tags currencies
// @Produce json
// @Param id path string true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string "Live rate provider failure"
// @Security BearerAuth
// @Router /updateCurrencyRateToLiveById/{id} [post]
func (h *currencyHandler) updateCurrencyRateToLiveByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := pathUUID(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid currency id")
		return
	}

	currency, err := h.currencyService.UpdateCurrencyRateToLiveByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to refresh currency rate")
		return
	}
	respond(c, http.StatusOK, dto.ToCurrencyResponse(currency))
}

// deleteCurrencyById godoc
// @Summary Delete a currency pair
// @Description A missing pair is reported with success=false, not an error status.
// @Tags currencies
// @Produce json
// @Param id path string true "Currency ID"
// @Success 200 {object} dto.DeleteItemResponse
// @Security BearerAuth
// @Router /deleteCurrencyById/{id} [post]
func (h *currencyHandler) deleteCurrencyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := pathUUID(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid currency id")
		return
	}
	result, err := h.currencyService.DeleteCurrencyByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to delete currency")
		return
	}
	respond(c, http.StatusOK, dto.ToDeleteItemResponse(result))
}
