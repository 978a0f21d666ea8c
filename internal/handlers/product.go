// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/rubingroup/rubin-backend/internal/i18n"
	"github.com/rubingroup/rubin-backend/internal/services"
	"github.com/rubingroup/rubin-backend/internal/store"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

// ProductHandler is the admin mutation surface for the catalog.
type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// GET /admin/products
// Unlike the storefront listing, disabled records are included.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// POST /admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "request"), err.Error())
		return
	}

	// Field-level validation before any store call.
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSlugTaken):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductSlugTaken))
		case errors.Is(err, services.ErrEmptySlug):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductBadSlug), nil)
		case errors.Is(err, services.ErrInvalidBrand):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductBadBrand), nil)
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// PUT /admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "request"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		case errors.Is(err, services.ErrSlugTaken):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductSlugTaken))
		case errors.Is(err, services.ErrEmptySlug):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductBadSlug), nil)
		case errors.Is(err, services.ErrInvalidBrand):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductBadBrand), nil)
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// DELETE /admin/products/:id
// Hard delete; the record will not reappear in any later fetch.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

type toggleFlagRequest struct {
	Flag string `json:"flag" validate:"required"`
}

// PATCH /admin/products/:id/flags
func (h *ProductHandler) ToggleFlag(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	var req toggleFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "request"), err.Error())
		return
	}

	product, err := h.productService.ToggleFlag(c.Request.Context(), id, req.Flag)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownFlag):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductBadFlag), nil)
		case errors.Is(err, store.ErrNotFound):
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// POST /admin/products/upload-image
func (h *ProductHandler) UploadImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadProductImage(file, fileHeader)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"image":   result,
	})
}

// GET /admin/products/export
// Spreadsheet snapshot of the catalog for the back office.
func (h *ProductHandler) ExportProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	headers := []string{
		"ID", "NameEn", "NameAr", "DescriptionEn", "DescriptionAr",
		"Brand", "Slug", "Image", "BestSelling", "Featured",
		"NewArrival", "InStock", "Disabled", "Likes", "CreatedAt", "UpdatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.NameEn)
		row.AddCell().SetValue(p.NameAr)
		row.AddCell().SetValue(p.DescriptionEn)
		row.AddCell().SetValue(p.DescriptionAr)
		row.AddCell().SetValue(p.Brand)
		row.AddCell().SetValue(p.Slug)
		row.AddCell().SetValue(p.Image)
		row.AddCell().SetValue(p.BestSelling)
		row.AddCell().SetValue(p.Featured)
		row.AddCell().SetValue(p.NewArrival)
		row.AddCell().SetValue(p.InStock)
		row.AddCell().SetValue(p.Disabled)
		row.AddCell().SetValue(p.Likes)
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
