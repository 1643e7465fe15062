package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/internal/dto"
	"github.com/SscSPs/landed_cost_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to products.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// RegisterProductRoutes registers the product queries and mutations.
func RegisterProductRoutes(queries, mutations gin.IRoutes, productService portssvc.ProductSvcFacade) {
	registerValidators()
	h := newProductHandler(productService)

	queries.GET("/products", h.products)
	queries.GET("/product", h.product)
	queries.GET("/productById/:id", h.productByID)
	queries.GET("/productByName", h.productByName)
	queries.GET("/productsByPriceLessThanOrEqualTo", h.productsByPriceLessThanOrEqualTo)
	queries.GET("/productsByPriceGreaterThanOrEqualTo", h.productsByPriceGreaterThanOrEqualTo)
	queries.GET("/productsByPriceBetween", h.productsByPriceBetween)

	mutations.POST("/addProduct", h.addProduct)
	mutations.POST("/updateProduct", h.updateProduct)
	mutations.POST("/updateProductById/:id", h.updateProductByID)
	mutations.POST("/updateProductByName", h.updateProductByName)
	mutations.POST("/deleteProductById/:id", h.deleteProductByID)
}

// products godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Router /products [get]
func (h *productHandler) products(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.productService.Products(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}
	respond(c, http.StatusOK, dto.ToListProductResponse(products))
}

// product godoc
// @Summary Get one product
// @Description Exactly one of id or name must be given. A missing product yields null data.
// @Tags products
// @Produce json
// @Param id query string false "Product ID"
// @Param name query string false "Product name"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string
// @Router /product [get]
func (h *productHandler) product(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := queryUUIDPtr(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid product id")
		return
	}
	product, err := h.productService.Product(c.Request.Context(), id, queryPtr(c, "name"))
	if err != nil {
		respondError(c, logger, err, "Failed to get product")
		return
	}
	if product == nil {
		respond(c, http.StatusOK, nil)
		return
	}
	respond(c, http.StatusOK, dto.ToProductResponse(product))
}

// productById godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string
// @Router /productById/{id} [get]
func (h *productHandler) productByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := pathUUID(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid product id")
		return
	}
	product, err := h.productService.ProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to get product by id")
		return
	}
	if product == nil {
		respond(c, http.StatusOK, nil)
		return
	}
	respond(c, http.StatusOK, dto.ToProductResponse(product))
}

// productByName godoc
// @Summary Get a product by name
// @Tags products
// @Produce json
// @Param name query string true "Product name"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string
// @Router /productByName [get]
func (h *productHandler) productByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	name, err := requiredQuery(c, "name")
	if err != nil {
		respondError(c, logger, err, "Missing product name")
		return
	}
	product, err := h.productService.ProductByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, logger, err, "Failed to get product by name")
		return
	}
	if product == nil {
		respond(c, http.StatusOK, nil)
		return
	}
	respond(c, http.StatusOK, dto.ToProductResponse(product))
}

// productsByPriceLessThanOrEqualTo godoc
// @Summary Products priced at or below maxPrice
// @Tags products
// @Produce json
// @Param maxPrice query number true "Upper bound"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} map[string]string
// @Router /productsByPriceLessThanOrEqualTo [get]
func (h *productHandler) productsByPriceLessThanOrEqualTo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.PriceRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}
	maxPrice, err := requiredDecimal(q.MaxPrice, "maxPrice")
	if err != nil {
		respondError(c, logger, err, "Invalid price filter")
		return
	}
	products, err := h.productService.ProductsByPriceLessThanOrEqualTo(c.Request.Context(), maxPrice)
	if err != nil {
		respondError(c, logger, err, "Failed to filter products by price")
		return
	}
	respond(c, http.StatusOK, dto.ToListProductResponse(products))
}

// productsByPriceGreaterThanOrEqualTo godoc
// @Summary Products priced at or above minPrice
// @Tags products
// @Produce json
// @Param minPrice query number true "Lower bound"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} map[string]string
// @Router /productsByPriceGreaterThanOrEqualTo [get]
func (h *productHandler) productsByPriceGreaterThanOrEqualTo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.PriceRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}
	minPrice, err := requiredDecimal(q.MinPrice, "minPrice")
	if err != nil {
		respondError(c, logger, err, "Invalid price filter")
		return
	}
	products, err := h.productService.ProductsByPriceGreaterThanOrEqualTo(c.Request.Context(), minPrice)
	if err != nil {
		respondError(c, logger, err, "Failed to filter products by price")
		return
	}
	respond(c, http.StatusOK, dto.ToListProductResponse(products))
}

// productsByPriceBetween godoc
// @Summary Products priced within an inclusive range
// @Tags products
// @Produce json
// @Param minPrice query number true "Lower bound"
// @Param maxPrice query number true "Upper bound"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} map[string]string
// @Router /productsByPriceBetween [get]
func (h *productHandler) productsByPriceBetween(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.PriceRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}
	minPrice, err := requiredDecimal(q.MinPrice, "minPrice")
	if err != nil {
		respondError(c, logger, err, "Invalid price filter")
		return
	}
	maxPrice, err := requiredDecimal(q.MaxPrice, "maxPrice")
	if err != nil {
		respondError(c, logger, err, "Invalid price filter")
		return
	}
	products, err := h.productService.ProductsByPriceBetween(c.Request.Context(), minPrice, maxPrice)
	if err != nil {
		respondError(c, logger, err, "Failed to filter products by price")
		return
	}
	respond(c, http.StatusOK, dto.ToListProductResponse(products))
}

// addProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /addProduct [post]
func (h *productHandler) addProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	product, err := h.productService.AddProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add product")
		return
	}
	logger.Info("Product added", slog.String("product_id", product.ProductID.String()))
	respond(c, http.StatusCreated, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product by id or name
// @Description Exactly one of id or name must be given. Omitted body fields keep their value.
// @Tags products
// @Accept json
// @Produce json
// @Param id query string false "Product ID"
// @Param name query string false "Product name"
// @Param product body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /updateProduct [post]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := queryUUIDPtr(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid product id")
		return
	}
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, queryPtr(c, "name"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update product")
		return
	}
	respond(c, http.StatusOK, dto.ToProductResponse(product))
}

// updateProductById godoc
// @Summary Update a product by id
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /updateProductById/{id} [post]
func (h *productHandler) updateProductByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := pathUUID(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid product id")
		return
	}
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	product, err := h.productService.UpdateProductByID(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update product")
		return
	}
	respond(c, http.StatusOK, dto.ToProductResponse(product))
}

// updateProductByName godoc
// @Summary Update a product by name
// @Tags products
// @Accept json
// @Produce json
// @Param name query string true "Product name"
// @Param product body dto.UpdateProductRequest true "Fields to change"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /updateProductByName [post]
func (h *productHandler) updateProductByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	name, err := requiredQuery(c, "name")
	if err != nil {
		respondError(c, logger, err, "Missing product name")
		return
	}
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	product, err := h.productService.UpdateProductByName(c.Request.Context(), name, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update product")
		return
	}
	respond(c, http.StatusOK, dto.ToProductResponse(product))
}

// deleteProductById godoc
// @Summary Delete a product
// @Description A missing product is reported with success=false, not an error status.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.DeleteItemResponse
// @Security BearerAuth
// @Router /deleteProductById/{id} [post]
func (h *productHandler) deleteProductByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := pathUUID(c, "id")
	if err != nil {
		respondError(c, logger, err, "Invalid product id")
		return
	}
	result, err := h.productService.DeleteProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to delete product")
		return
	}
	respond(c, http.StatusOK, dto.ToDeleteItemResponse(result))
}
