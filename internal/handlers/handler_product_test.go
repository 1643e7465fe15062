package handlers_test

import (
	"net/http"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func decimalEq(want string) any {
	w := decimal.RequireFromString(want)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(w) })
}

func (suite *HandlerTestSuite) TestProducts() {
	suite.mockProducts.On("Products", mock.Anything).Return([]domain.Product{
		{ProductID: uuid.New(), Name: "Widget", Price: decimal.NewFromInt(1000), CurrencyCode: "USD"},
	}, nil).Once()

	w := suite.get("/api/v1/products")

	suite.Equal(http.StatusOK, w.Code)
	var got []dto.ProductResponse
	suite.decode(w, &got)
	suite.Require().Len(got, 1)
	suite.Equal("USD", got[0].CurrencyCode)
}

func (suite *HandlerTestSuite) TestProduct_TooManyArguments() {
	id := uuid.New()
	suite.mockProducts.On("Product", mock.Anything, &id, strPtr("Widget")).
		Return(nil, apperrors.NewInvalidArgumentError("product: Too many arguments present")).Once()

	w := suite.get("/api/v1/product?id=" + id.String() + "&name=Widget")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("product: Too many arguments present", suite.decode(w, nil).Error)
}

func (suite *HandlerTestSuite) TestProductByName_MissingYieldsNullData() {
	suite.mockProducts.On("ProductByName", mock.Anything, "Ghost").Return(nil, nil).Once()

	w := suite.get("/api/v1/productByName?name=Ghost")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":null}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestProductsByPriceLessThanOrEqualTo() {
	suite.mockProducts.On("ProductsByPriceLessThanOrEqualTo", mock.Anything, decimalEq("19.99")).
		Return([]domain.Product{}, nil).Once()

	w := suite.get("/api/v1/productsByPriceLessThanOrEqualTo?maxPrice=19.99")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":[]}`, w.Body.String())
	suite.mockProducts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestProductsByPriceGreaterThanOrEqualTo_MissingBound() {
	w := suite.get("/api/v1/productsByPriceGreaterThanOrEqualTo")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("minPrice is required", suite.decode(w, nil).Error)
}

func (suite *HandlerTestSuite) TestProductsByPrice_NonNumericBound() {
	w := suite.get("/api/v1/productsByPriceLessThanOrEqualTo?maxPrice=cheap")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProducts.AssertNotCalled(suite.T(), "ProductsByPriceLessThanOrEqualTo", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestProductsByPriceBetween() {
	suite.mockProducts.On("ProductsByPriceBetween", mock.Anything, decimalEq("10"), decimalEq("20")).
		Return([]domain.Product{{Name: "Pen", Price: decimal.NewFromInt(15), CurrencyCode: "EUR"}}, nil).Once()

	w := suite.get("/api/v1/productsByPriceBetween?minPrice=10&maxPrice=20")

	suite.Equal(http.StatusOK, w.Code)
	var got []dto.ProductResponse
	suite.decode(w, &got)
	suite.Require().Len(got, 1)
	suite.Equal("Pen", got[0].Name)
}

func (suite *HandlerTestSuite) TestProductsByPriceBetween_InvertedBounds() {
	suite.mockProducts.On("ProductsByPriceBetween", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewInvalidArgumentError("minPrice must not exceed maxPrice")).Once()

	w := suite.get("/api/v1/productsByPriceBetween?minPrice=20&maxPrice=10")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAddProduct() {
	created := &domain.Product{ProductID: uuid.New(), Name: "Gadget", Price: decimal.NewFromFloat(19.99), CurrencyCode: "EUR"}
	suite.mockProducts.On("AddProduct", mock.Anything, mock.MatchedBy(func(r dto.CreateProductRequest) bool {
		return r.Name == "Gadget" && r.CurrencyCode == "eur" && r.Price != nil && r.Price.Equal(decimal.NewFromFloat(19.99))
	})).Return(created, nil).Once()

	w := suite.post("/api/v1/addProduct", map[string]any{"name": "Gadget", "price": "19.99", "currencyCode": "eur"})

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.ProductResponse
	suite.decode(w, &got)
	suite.Equal(created.ProductID.String(), got.ID)
	suite.Equal("EUR", got.CurrencyCode)
}

func (suite *HandlerTestSuite) TestAddProduct_MissingName() {
	w := suite.post("/api/v1/addProduct", map[string]any{"price": 1, "currencyCode": "USD"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProducts.AssertNotCalled(suite.T(), "AddProduct", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAddProduct_MissingPrice() {
	w := suite.post("/api/v1/addProduct", map[string]any{"name": "Gadget", "currencyCode": "USD"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decode(w, nil).Error, "Invalid request format")
	suite.mockProducts.AssertNotCalled(suite.T(), "AddProduct", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUpdateProductByID() {
	existing := &domain.Product{ProductID: uuid.New(), Name: "Widget", Price: decimal.NewFromInt(1200), CurrencyCode: "USD"}
	suite.mockProducts.On("UpdateProductByID", mock.Anything, existing.ProductID, mock.MatchedBy(func(r dto.UpdateProductRequest) bool {
		return r.Price != nil && r.Price.Equal(decimal.NewFromInt(1200)) && r.CurrencyCode == nil
	})).Return(existing, nil).Once()

	w := suite.post("/api/v1/updateProductById/"+existing.ProductID.String(), map[string]any{"price": 1200})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockProducts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeleteProductByID() {
	id := uuid.New()
	idStr := id.String()
	suite.mockProducts.On("DeleteProductByID", mock.Anything, id).Return(&domain.DeleteItemResponse{
		Success:       true,
		Message:       "'Widget' has been successfully deleted.",
		DeletedItemID: &idStr,
	}, nil).Once()

	w := suite.post("/api/v1/deleteProductById/"+idStr, nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.DeleteItemResponse
	suite.decode(w, &got)
	suite.True(got.Success)
	suite.Require().NotNil(got.DeletedItemID)
	suite.Equal(idStr, *got.DeletedItemID)
}
