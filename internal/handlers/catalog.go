// internal/handlers/catalog.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rubingroup/rubin-backend/internal/i18n"
	"github.com/rubingroup/rubin-backend/internal/models"
	"github.com/rubingroup/rubin-backend/internal/services"
	"github.com/rubingroup/rubin-backend/internal/store"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

// CatalogHandler serves the public storefront read path.
type CatalogHandler struct {
	catalogService *services.CatalogService
	productService *services.ProductService
}

func NewCatalogHandler(catalogService *services.CatalogService, productService *services.ProductService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		productService: productService,
	}
}

// GET /products?brand=&search=
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	brand := c.DefaultQuery("brand", models.BrandAll)
	search := c.Query("search")

	products, err := h.catalogService.ListCatalog(c.Request.Context(), brand, search, lang)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GET /products/:slug
func (h *CatalogHandler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	product, err := h.catalogService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /products/:slug/like
func (h *CatalogHandler) LikeProduct(c *gin.Context) {
	h.updateLikes(c, 1)
}

// POST /products/:slug/unlike
func (h *CatalogHandler) UnlikeProduct(c *gin.Context) {
	h.updateLikes(c, -1)
}

func (h *CatalogHandler) updateLikes(c *gin.Context, delta int64) {
	// The storefront routes by slug, so likes resolve the record first.
	target, err := h.catalogService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	var product *models.Product
	if delta > 0 {
		product, err = h.productService.Like(c.Request.Context(), target.ID)
	} else {
		product, err = h.productService.Unlike(c.Request.Context(), target.ID)
	}

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":    product.ID,
		"likes": product.Likes,
	})
}

// GET /brands
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"brands": models.Brands,
	})
}
