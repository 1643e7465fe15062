package handlers_test

import (
	"net/http"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const zeroUUID = "00000000-0000-0000-0000-000000000000"

func nilDelete() *domain.DeleteItemResponse {
	return &domain.DeleteItemResponse{Success: false, Message: "unable to find country with the id " + zeroUUID}
}

func canada() *domain.Country {
	return &domain.Country{
		CountryID: uuid.New(),
		Name:      "Canada",
		Code:      "CAD",
		DutyRate:  decimal.NewFromFloat(3.5),
		TaxRate:   decimal.NewFromInt(5),
	}
}

func (suite *HandlerTestSuite) TestCountries() {
	existing := canada()
	suite.mockCountries.On("Countries", mock.Anything).Return([]domain.Country{*existing}, nil).Once()

	w := suite.get("/api/v1/countries")

	suite.Equal(http.StatusOK, w.Code)
	var got []dto.CountryResponse
	suite.decode(w, &got)
	suite.Require().Len(got, 1)
	suite.Equal(existing.CountryID.String(), got[0].ID)
	suite.Equal("CAD", got[0].Code)
	suite.True(got[0].DutyRate.Equal(decimal.NewFromFloat(3.5)))
}

func (suite *HandlerTestSuite) TestCountries_InternalErrorIsHidden() {
	suite.mockCountries.On("Countries", mock.Anything).Return(nil, assert.AnError).Once()

	w := suite.get("/api/v1/countries")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("internal server error", suite.decode(w, nil).Error)
}

func (suite *HandlerTestSuite) TestCountry_PassesOptionalArguments() {
	existing := canada()
	suite.mockCountries.On("Country", mock.Anything, (*uuid.UUID)(nil), (*string)(nil), strPtr("cad")).
		Return(existing, nil).Once()

	w := suite.get("/api/v1/country?code=cad")

	suite.Equal(http.StatusOK, w.Code)
	var got dto.CountryResponse
	suite.decode(w, &got)
	suite.Equal("Canada", got.Name)
	suite.mockCountries.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCountry_NoArguments() {
	suite.mockCountries.On("Country", mock.Anything, (*uuid.UUID)(nil), (*string)(nil), (*string)(nil)).
		Return(nil, apperrors.NewInvalidArgumentError("country: No arguments present")).Once()

	w := suite.get("/api/v1/country")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("country: No arguments present", suite.decode(w, nil).Error)
}

func (suite *HandlerTestSuite) TestCountry_InvalidIDQuery() {
	w := suite.get("/api/v1/country?id=nope")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("id must be a valid UUID", suite.decode(w, nil).Error)
	suite.mockCountries.AssertNotCalled(suite.T(), "Country", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCountryByID_MissingYieldsNullData() {
	id := uuid.New()
	suite.mockCountries.On("CountryByID", mock.Anything, id).Return(nil, nil).Once()

	w := suite.get("/api/v1/countryById/" + id.String())

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":null}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCountryByID_BadPath() {
	w := suite.get("/api/v1/countryById/123")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCountries.AssertNotCalled(suite.T(), "CountryByID", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCountryByName() {
	existing := canada()
	suite.mockCountries.On("CountryByName", mock.Anything, "Canada").Return(existing, nil).Once()

	w := suite.get("/api/v1/countryByName?name=Canada")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCountries.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCountryByCode_RequiresCode() {
	w := suite.get("/api/v1/countryByCode")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("code is required", suite.decode(w, nil).Error)
}

func (suite *HandlerTestSuite) TestAddCountry() {
	existing := canada()
	req := dto.CreateCountryRequest{
		Name:     "Canada",
		Code:     "CAD",
		DutyRate: decimalPtr(decimal.NewFromFloat(3.5)),
		TaxRate:  decimalPtr(decimal.NewFromInt(5)),
	}
	suite.mockCountries.On("AddCountry", mock.Anything, mock.MatchedBy(func(r dto.CreateCountryRequest) bool {
		return r.Name == req.Name && r.Code == req.Code &&
			r.DutyRate != nil && r.DutyRate.Equal(*req.DutyRate) &&
			r.TaxRate != nil && r.TaxRate.Equal(*req.TaxRate)
	})).Return(existing, nil).Once()

	w := suite.post("/api/v1/addCountry", req)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.CountryResponse
	suite.decode(w, &got)
	suite.Equal(existing.CountryID.String(), got.ID)
	suite.mockCountries.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAddCountry_InvalidCodeRejectedByBinding() {
	w := suite.post("/api/v1/addCountry", map[string]any{"name": "Nowhere", "code": "N0"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decode(w, nil).Error, "Invalid request format")
	suite.mockCountries.AssertNotCalled(suite.T(), "AddCountry", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAddCountry_MissingRates() {
	bodies := map[string]map[string]any{
		"no dutyRate": {"name": "X", "code": "XXX", "taxRate": 5},
		"no taxRate":  {"name": "X", "code": "XXX", "dutyRate": 0},
		"no rates":    {"name": "X", "code": "XXX"},
	}
	for name, body := range bodies {
		suite.Run(name, func() {
			w := suite.post("/api/v1/addCountry", body)

			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Contains(suite.decode(w, nil).Error, "Invalid request format")
		})
	}
	suite.mockCountries.AssertNotCalled(suite.T(), "AddCountry", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAddCountry_ZeroRatesAccepted() {
	suite.mockCountries.On("AddCountry", mock.Anything, mock.MatchedBy(func(r dto.CreateCountryRequest) bool {
		return r.DutyRate != nil && r.DutyRate.IsZero() && r.TaxRate != nil && r.TaxRate.IsZero()
	})).Return(canada(), nil).Once()

	w := suite.post("/api/v1/addCountry", map[string]any{"name": "X", "code": "XXX", "dutyRate": 0, "taxRate": "0"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockCountries.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateCountry_ByNameQuery() {
	existing := canada()
	suite.mockCountries.On("UpdateCountry", mock.Anything, (*uuid.UUID)(nil), strPtr("Canada"), mock.MatchedBy(func(r dto.UpdateCountryRequest) bool {
		return r.TaxRate != nil && r.TaxRate.Equal(decimal.NewFromInt(13)) && r.Name == nil
	})).Return(existing, nil).Once()

	w := suite.post("/api/v1/updateCountry?name=Canada", map[string]any{"taxRate": 13})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCountries.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateCountryByID_NotFound() {
	id := uuid.New()
	suite.mockCountries.On("UpdateCountryByID", mock.Anything, id, mock.Anything).
		Return(nil, apperrors.NewNotFoundError("Country with id "+id.String()+" not found.")).Once()

	w := suite.post("/api/v1/updateCountryById/"+id.String(), map[string]any{"name": "x"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Country with id "+id.String()+" not found.", suite.decode(w, nil).Error)
}

func (suite *HandlerTestSuite) TestUpdateCountryByName_RequiresName() {
	w := suite.post("/api/v1/updateCountryByName", map[string]any{"taxRate": 1})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCountries.AssertNotCalled(suite.T(), "UpdateCountryByName", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDeleteCountryByID_Missing() {
	suite.mockCountries.On("DeleteCountryByID", mock.Anything, uuid.Nil).Return(nilDelete(), nil).Once()

	w := suite.post("/api/v1/deleteCountryById/"+zeroUUID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.DeleteItemResponse
	suite.decode(w, &got)
	suite.False(got.Success)
	suite.Nil(got.DeletedItemID)
	suite.Equal("unable to find country with the id "+zeroUUID, got.Message)
}
