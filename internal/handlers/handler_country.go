package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/SscSPs/landed_cost_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// countryHandler handles HTTP requests related to countries.
type countryHandler struct {
	countryService portssvc.CountrySvcFacade
}

func newCountryHandler(cs portssvc.CountrySvcFacade) *countryHandler {
	return &countryHandler{countryService: cs}
}

// RegisterCountryRoutes registers the country queries on queries and the mutations on mutations.
func RegisterCountryRoutes(queries, mutations gin.IRoutes, countryService portssvc.CountrySvcFacade) {
	registerValidators()
	h := newCountryHandler(countryService)

	queries.GET("/countries", h.countries)
	queries.GET("/country", h.country)
	queries.GET("/countryById/:id", h.countryByID)
	queries.GET("/countryByName", h.countryByName)
	queries.GET("/countryByCode", h.countryByCode)

	mutations.POST("/addCountry", h.addCountry)
	mutations.POST("/updateCountry", h.updateCountry)
	mutations.POST("/updateCountryById/:id", h.updateCountryByID)
	mutations.POST("/updateCountryByName", h.updateCountryByName)
	mutations.POST("/deleteCountryById/:id", h.deleteCountryByID)
}

// countries godoc
// @Summary List countries
// @Tags countries
// @Produce json
// @Success 200 {array} dto.CountryResponse
// @Failure 500 {object} map[string]string
// @Router /countries [get]
func (h *countryHandler) countries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	countries, err := h.countryService.Countries(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list countries")
		return
	}
	respond(c, http.StatusOK, dto.ToListCountryResponse(countries))
}

// country godoc
// @Summary Get one country
// @Description Exactly one of id, name or code must be given. A missing country yields null data.
// @Tags countries
// @Produce json
// @Param id query string false "Country ID"
// @Param name query string false "Country name"
// @Param code query string false "Currency code"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string
// @Router /country [get]
func (h *countryHandler) country(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := queryUUIDPtr(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid country id")
		return
	}
	country, err := h.countryService.Country(c.Request.Context(), id, queryPtr(c, "name"), queryPtr(c, "code"))
	if err != nil {
		respondError(c, logger, err, "Failed to get country")
		return
	}
	if country == nil {
		respond(c, http.StatusOK, nil)
		return
	}
	respond(c, http.StatusOK, dto.ToCountryResponse(country))
}

// countryById godoc
// @Summary Get a country by id
// @Tags countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string
// @Router /countryById/{id} [get]
func (h *countryHandler) countryByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := pathUUID(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid country id")
		return
	}
	country, err := h.countryService.CountryByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to get country by id")
		return
	}
	if country == nil {
		respond(c, http.StatusOK, nil)
		return
	}
	respond(c, http.StatusOK, dto.ToCountryResponse(country))
}

// countryByName godoc
// @Summary Get a country by name
// @Tags countries
// @Produce json
// @Param name query string true "Country name"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string
// @Router /countryByName [get]
func (h *countryHandler) countryByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	name, err := requiredQuery(c, "name")
	if err != nil {
		respondError(c, logger, err, "Missing country name")
		return
	}
	country, err := h.countryService.CountryByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, logger, err, "Failed to get country by name")
		return
	}
	if country == nil {
		respond(c, http.StatusOK, nil)
		return
	}
	respond(c, http.StatusOK, dto.ToCountryResponse(country))
}

// countryByCode godoc
// @Summary Get a country by currency code
// @Tags countries
// @Produce json
// @Param code query string true "Currency code"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string
// @Router /countryByCode [get]
func (h *countryHandler) countryByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	code, err := requiredQuery(c, "code")
	if err != nil {
		respondError(c, logger, err, "Missing country code")
		return
	}
	country, err := h.countryService.CountryByCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, logger, err, "Failed to get country by code")
		return
	}
	if country == nil {
		respond(c, http.StatusOK, nil)
		return
	}
	respond(c, http.StatusOK, dto.ToCountryResponse(country))
}

// addCountry godoc
// @Summary Create a country
// @Tags countries
// @Accept json
// @Produce json
// @Param country body dto.CreateCountryRequest true "Country details"
// @Success 201 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /addCountry [post]
func (h *countryHandler) addCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	country, err := h.countryService.AddCountry(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add country")
		return
	}
	logger.Info("Country added", slog.String("country_id", country.CountryID.String()))
	respond(c, http.StatusCreated, dto.ToCountryResponse(country))
}

// updateCountry godoc
// @Summary Update a country by id or name
// @Description Exactly one of id or name must be given. Omitted body fields keep their value.
// @Tags countries
// @Accept json
// @Produce json
// @Param id query string false "Country ID"
// @Param name query string false "Country name"
// @Param country body dto.UpdateCountryRequest true "Fields to change"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /updateCountry [post]
func (h *countryHandler) updateCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := queryUUIDPtr(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid country id")
		return
	}
	var req dto.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	country, err := h.countryService.UpdateCountry(c.Request.Context(), id, queryPtr(c, "name"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update country")
		return
	}
	respond(c, http.StatusOK, dto.ToCountryResponse(country))
}

// updateCountryById godoc
// @Summary Update a country by id
// @Tags countries
// @Accept json
// @Produce json
// @Param id path string true "Country ID"
// @Param country body dto.UpdateCountryRequest true "Fields to change"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /updateCountryById/{id} [post]
func (h *countryHandler) updateCountryByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := pathUUID(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid country id")
		return
	}
	var req dto.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	country, err := h.countryService.UpdateCountryByID(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update country")
		return
	}
	respond(c, http.StatusOK, dto.ToCountryResponse(country))
}

// updateCountryByName godoc
// @Summary Update a country by name
// @Tags countries
// @Accept json
// @Produce json
// @Param name query string true "Country name"
// @Param country body dto.UpdateCountryRequest true "Fields to change"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /updateCountryByName [post]
func (h *countryHandler) updateCountryByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	name, err := requiredQuery(c, "name")
	if err != nil {
		respondError(c, logger, err, "Missing country name")
		return
	}
	var req dto.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	country, err := h.countryService.UpdateCountryByName(c.Request.Context(), name, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update country")
		return
	}
	respond(c, http.StatusOK, dto.ToCountryResponse(country))
}

// deleteCountryById godoc
// @Summary Delete a country
// @Description A missing country is reported with success=false, not an error status.
// @Tags countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} dto.DeleteItemResponse
// @Security BearerAuth
// @Router /deleteCountryById/{id} [post]
func (h *countryHandler) deleteCountryByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := pathUUID(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid country id")
		return
	}
	result, err := h.countryService.DeleteCountryByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to delete country")
		return
	}
	respond(c, http.StatusOK, dto.ToDeleteItemResponse(result))
}
