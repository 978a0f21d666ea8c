// internal/handlers/location.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rubingroup/rubin-backend/internal/i18n"
	"github.com/rubingroup/rubin-backend/internal/services"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

type LocationHandler struct {
	locationService *services.LocationService
}

func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// GET /locations
// Public map data: active locations only.
func (h *LocationHandler) GetPublicLocations(c *gin.Context) {
	locations, err := h.locationService.ListPublic(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"locations": locations,
		"count":     len(locations),
	})
}

// GET /admin/locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationService.ListAll(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"locations": locations,
		"count":     len(locations),
	})
}

// POST /admin/locations
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "request"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidBrand) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductBadBrand), nil)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyLocationCreated),
		"location": location,
	})
}

// PUT /admin/locations/:id
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"), nil)
		return
	}

	var req services.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "request"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLocationNotFound):
			utils.NotFoundResponse(c, i18n.KeyLocationNotFound)
		case errors.Is(err, services.ErrInvalidBrand):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductBadBrand), nil)
		default:
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyLocationUpdated),
		"location": location,
	})
}

// DELETE /admin/locations/:id
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"), nil)
		return
	}

	if err := h.locationService.DeleteLocation(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrLocationNotFound) {
			utils.NotFoundResponse(c, i18n.KeyLocationNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyLocationDeleted),
	})
}
