// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rubingroup/rubin-backend/internal/i18n"
	"github.com/rubingroup/rubin-backend/internal/services"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "request"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.IDToken)
	if err != nil {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"session": result,
	})
}

// POST /auth/verify-admin
// Pre-login admin gate: verifies the provider ID token's admin claim
// without minting a session, so the panel can refuse non-admin accounts
// before the login exchange.
func (h *AuthHandler) VerifyAdmin(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "request"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	admin, err := h.authService.IsAdmin(c.Request.Context(), req.IDToken)
	if err != nil {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"is_admin": admin,
	})
}

// GET /auth/check-admin
// Reports whether the authenticated session carries the admin claim.
func (h *AuthHandler) CheckAdmin(c *gin.Context) {
	uid, exists := utils.GetUIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"uid":      uid,
		"is_admin": utils.GetAdminFromContext(c),
	})
}
