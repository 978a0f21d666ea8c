// internal/handlers/registration.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rubingroup/rubin-backend/internal/i18n"
	"github.com/rubingroup/rubin-backend/internal/models"
	"github.com/rubingroup/rubin-backend/internal/services"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

// RegistrationHandler forwards accepted distributor registrations to the
// intake spreadsheet.
type RegistrationHandler struct {
	sink services.RegistrationSink
}

func NewRegistrationHandler(sink services.RegistrationSink) *RegistrationHandler {
	return &RegistrationHandler{sink: sink}
}

// POST /register
func (h *RegistrationHandler) Register(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "request"), err.Error())
		return
	}

	// Consent gate first: without it no outbound call happens at all.
	if !req.AgreeTerms {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyRegistrationConsent), nil)
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.sink.AppendRegistration(c.Request.Context(), &req); err != nil {
		logrus.WithError(err).Error("Failed to append registration")
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyRegistrationFailed))
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyRegistrationReceived),
	})
}
