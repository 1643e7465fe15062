package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func eurUSD() *domain.CurrencyPair {
	return &domain.CurrencyPair{
		CurrencyID:     uuid.New(),
		BaseCode:       "EUR",
		TargetCode:     "USD",
		ConversionRate: decimal.RequireFromString("1.08"),
	}
}

func (suite *HandlerTestSuite) TestCurrencies() {
	suite.mockCurrencies.On("Currencies", mock.Anything).Return([]domain.CurrencyPair{*eurUSD()}, nil).Once()

	w := suite.get("/api/v1/currencies")

	suite.Equal(http.StatusOK, w.Code)
	var got []dto.CurrencyResponse
	suite.decode(w, &got)
	suite.Require().Len(got, 1)
	suite.Equal("EUR", got[0].BaseCode)
	suite.True(got[0].ConversionRate.Equal(decimal.RequireFromString("1.08")))
}

func (suite *HandlerTestSuite) TestCurrency_Directed() {
	pair := eurUSD()
	suite.mockCurrencies.On("Currency", mock.Anything, "EUR", "USD").Return(pair, nil).Once()
	suite.mockCurrencies.On("Currency", mock.Anything, "USD", "EUR").Return(nil, nil).Once()

	w := suite.get("/api/v1/currency?baseCode=EUR&targetCode=USD")
	suite.Equal(http.StatusOK, w.Code)
	var got dto.CurrencyResponse
	suite.decode(w, &got)
	suite.Equal(pair.CurrencyID.String(), got.ID)

	w = suite.get("/api/v1/currency?baseCode=USD&targetCode=EUR")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":null}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCurrency_RequiresBothCodes() {
	w := suite.get("/api/v1/currency?baseCode=EUR")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("targetCode is required", suite.decode(w, nil).Error)
	suite.mockCurrencies.AssertNotCalled(suite.T(), "Currency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCurrenciesBy() {
	suite.mockCurrencies.On("CurrenciesBy", mock.Anything, strPtr("EUR"), (*string)(nil)).
		Return([]domain.CurrencyPair{*eurUSD()}, nil).Once()

	w := suite.get("/api/v1/currenciesBy?baseCode=EUR")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCurrencies.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCurrenciesBy_BothCodes() {
	suite.mockCurrencies.On("CurrenciesBy", mock.Anything, strPtr("EUR"), strPtr("USD")).
		Return(nil, apperrors.NewInvalidArgumentError("currenciesBy: Too many arguments present")).Once()

	w := suite.get("/api/v1/currenciesBy?baseCode=EUR&targetCode=USD")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("currenciesBy: Too many arguments present", suite.decode(w, nil).Error)
}

func (suite *HandlerTestSuite) TestCurrenciesBy_InvalidCode() {
	w := suite.get("/api/v1/currenciesBy?targetCode=US")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCurrencies.AssertNotCalled(suite.T(), "CurrenciesBy", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCurrenciesByBaseAndTargetCode() {
	suite.mockCurrencies.On("CurrenciesByBaseCode", mock.Anything, "EUR").Return([]domain.CurrencyPair{}, nil).Once()
	suite.mockCurrencies.On("CurrenciesByTargetCode", mock.Anything, "USD").Return([]domain.CurrencyPair{*eurUSD()}, nil).Once()

	w := suite.get("/api/v1/currenciesByBaseCode?baseCode=EUR")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":[]}`, w.Body.String())

	w = suite.get("/api/v1/currenciesByTargetCode?targetCode=USD")
	suite.Equal(http.StatusOK, w.Code)
	var got []dto.CurrencyResponse
	suite.decode(w, &got)
	suite.Len(got, 1)

	suite.mockCurrencies.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAddCurrency_Duplicate() {
	suite.mockCurrencies.On("AddCurrency", mock.Anything, mock.AnythingOfType("dto.CreateCurrencyRequest")).
		Return(nil, apperrors.NewConflictError("currency pair EUR->USD already exists")).Once()

	w := suite.post("/api/v1/addCurrency", map[string]any{"baseCode": "EUR", "targetCode": "USD", "conversionRate": "1.08"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("currency pair EUR->USD already exists", suite.decode(w, nil).Error)
}

func (suite *HandlerTestSuite) TestAddCurrency() {
	pair := eurUSD()
	suite.mockCurrencies.On("AddCurrency", mock.Anything, mock.MatchedBy(func(r dto.CreateCurrencyRequest) bool {
		return r.BaseCode == "EUR" && r.TargetCode == "USD" && r.ConversionRate != nil && r.ConversionRate.Equal(decimal.RequireFromString("1.08"))
	})).Return(pair, nil).Once()

	w := suite.post("/api/v1/addCurrency", map[string]any{"baseCode": "EUR", "targetCode": "USD", "conversionRate": 1.08})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockCurrencies.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAddCurrency_MissingRate() {
	w := suite.post("/api/v1/addCurrency", map[string]any{"baseCode": "USD", "targetCode": "EUR"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decode(w, nil).Error, "Invalid request format")
	suite.mockCurrencies.AssertNotCalled(suite.T(), "AddCurrency", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUpdateCurrencyByID() {
	pair := eurUSD()
	suite.mockCurrencies.On("UpdateCurrencyByID", mock.Anything, pair.CurrencyID, mock.MatchedBy(func(r dto.UpdateCurrencyRequest) bool {
		return r.ConversionRate != nil && r.BaseCode == nil && r.TargetCode == nil
	})).Return(pair, nil).Once()

	w := suite.post("/api/v1/updateCurrencyById/"+pair.CurrencyID.String(), map[string]any{"conversionRate": "1.10"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCurrencies.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateCurrencyRateToLiveByID_ProviderFailure() {
	id := uuid.New()
	suite.mockCurrencies.On("UpdateCurrencyRateToLiveByID", mock.Anything, id).
		Return(nil, apperrors.NewExternalError("live rate request failed", errors.New("dial tcp: refused"))).Once()

	w := suite.post("/api/v1/updateCurrencyRateToLiveById/"+id.String(), nil)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Equal("live rate request failed", suite.decode(w, nil).Error)
}

func (suite *HandlerTestSuite) TestDeleteCurrencyByID() {
	id := uuid.New()
	idStr := id.String()
	suite.mockCurrencies.On("DeleteCurrencyByID", mock.Anything, id).Return(&domain.DeleteItemResponse{
		Success:       true,
		Message:       "'EUR->USD' has been successfully deleted.",
		DeletedItemID: &idStr,
	}, nil).Once()

	w := suite.post("/api/v1/deleteCurrencyById/"+idStr, nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.DeleteItemResponse
	suite.decode(w, &got)
	suite.Equal("'EUR->USD' has been successfully deleted.", got.Message)
}
