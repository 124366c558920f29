package api

import (
	"net/http"

	"pos-terminal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Category
// @Router /api/v1/catalog/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	cats, err := h.q.Categories(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary Search products
// @Description Case-insensitive name search within a category ("1" is all)
// @Tags catalog
// @Produce json
// @Param search query string false "Name contains"
// @Param category query string false "Category ID"
// @Success 200 {array} queries.ProductView
// @Router /api/v1/catalog/products [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	products, err := h.q.SearchProducts(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Get product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.ProductView
// @Failure 404 {object} httperr.Response
// @Router /api/v1/catalog/products/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	p, err := h.q.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load product")
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Look up barcode
// @Tags catalog
// @Produce json
// @Param code path string true "Barcode"
// @Success 200 {object} queries.ProductView
// @Failure 404 {object} httperr.Response
// @Router /api/v1/catalog/barcodes/{code} [get]
func (h *CatalogHandler) ByBarcode(c *gin.Context) {
	p, err := h.q.GetProductByBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to look up barcode")
		return
	}
	c.JSON(http.StatusOK, p)
}
