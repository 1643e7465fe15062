package handlers_test

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func landedCostURL(productID, countryID, target, base string) string {
	return fmt.Sprintf("/api/v1/calculateLandedCost?productId=%s&countryId=%s&targetCurrencyCode=%s&baseCurrencyCode=%s",
		productID, countryID, target, base)
}

func (suite *HandlerTestSuite) TestCalculateLandedCost_RoundsForDisplay() {
	productID, countryID := uuid.New(), uuid.New()
	suite.mockLandedCost.On("CalculateLandedCost", mock.Anything, productID, countryID, "USD", "EUR").
		Return(&domain.LandedCost{TotalCost: decimal.RequireFromString("1177.2345")}, nil).Once()

	w := suite.get(landedCostURL(productID.String(), countryID.String(), "USD", "EUR"))

	suite.Equal(http.StatusOK, w.Code)
	var got dto.LandedCostResponse
	suite.decode(w, &got)
	suite.Equal("1177.23", got.TotalCost.String())
	suite.mockLandedCost.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCalculateLandedCost_BadParameters() {
	cases := map[string]string{
		"missing product":  "/api/v1/calculateLandedCost?countryId=" + uuid.NewString() + "&targetCurrencyCode=USD&baseCurrencyCode=EUR",
		"invalid uuid":     landedCostURL("abc", uuid.NewString(), "USD", "EUR"),
		"invalid currency": landedCostURL(uuid.NewString(), uuid.NewString(), "US", "EUR"),
		"missing base":     "/api/v1/calculateLandedCost?productId=" + uuid.NewString() + "&countryId=" + uuid.NewString() + "&targetCurrencyCode=USD",
	}
	for name, url := range cases {
		suite.Run(name, func() {
			w := suite.get(url)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockLandedCost.AssertNotCalled(suite.T(), "CalculateLandedCost",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCalculateLandedCost_NotFound() {
	productID, countryID := uuid.New(), uuid.New()
	suite.mockLandedCost.On("CalculateLandedCost", mock.Anything, productID, countryID, "TAT", "COR").
		Return(nil, apperrors.NewNotFoundError("no conversion rate found for COR to TAT")).Once()

	w := suite.get(landedCostURL(productID.String(), countryID.String(), "TAT", "COR"))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("no conversion rate found for COR to TAT", suite.decode(w, nil).Error)
}

func (suite *HandlerTestSuite) TestCalculateLandedCost_UppercaseIDsMatchOtherRoutes() {
	productID, countryID := uuid.New(), uuid.New()
	upperCountry := strings.ToUpper(countryID.String())
	suite.mockLandedCost.On("CalculateLandedCost", mock.Anything, productID, countryID, "USD", "EUR").
		Return(&domain.LandedCost{TotalCost: decimal.NewFromInt(10)}, nil).Once()
	suite.mockCountries.On("CountryByID", mock.Anything, countryID).Return(canada(), nil).Once()

	w := suite.get(landedCostURL(strings.ToUpper(productID.String()), upperCountry, "USD", "EUR"))
	suite.Equal(http.StatusOK, w.Code)

	w = suite.get("/api/v1/countryById/" + upperCountry)
	suite.Equal(http.StatusOK, w.Code)

	suite.mockLandedCost.AssertExpectations(suite.T())
	suite.mockCountries.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCalculateLandedCost_InvalidCountryID() {
	w := suite.get(landedCostURL(uuid.NewString(), "not-a-uuid", "USD", "EUR"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("countryId must be a valid UUID", suite.decode(w, nil).Error)
}
