// internal/handlers/clients.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rubingroup/rubin-backend/internal/i18n"
	"github.com/rubingroup/rubin-backend/internal/services"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

// ClientsHandler proxies the third-party client feed consumed by the
// storefront's PDF export.
type ClientsHandler struct {
	clientsService *services.ClientsService
}

func NewClientsHandler(clientsService *services.ClientsService) *ClientsHandler {
	return &ClientsHandler{clientsService: clientsService}
}

// GET /clients
func (h *ClientsHandler) GetClients(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	clients, err := h.clientsService.FetchClients(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Client feed fetch failed")
		utils.BadGatewayResponse(c, i18n.T(lang, i18n.KeyClientsFeedFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"clients": clients,
		"count":   len(clients),
	})
}
