// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rubingroup/rubin-backend/internal/config"
	"github.com/rubingroup/rubin-backend/internal/handlers"
	"github.com/rubingroup/rubin-backend/internal/middleware"
	"github.com/rubingroup/rubin-backend/internal/utils"
)

// Dependencies carries the wired services for route registration.
// Construction happens in main so the router stays free of network setup.
type Dependencies struct {
	AuthHandler         *handlers.AuthHandler
	CatalogHandler      *handlers.CatalogHandler
	ProductHandler      *handlers.ProductHandler
	LocationHandler     *handlers.LocationHandler
	RegistrationHandler *handlers.RegistrationHandler
	ClientsHandler      *handlers.ClientsHandler
}

func Initialize(cfg *config.Config, deps Dependencies) *gin.Engine {
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/verify-admin", deps.AuthHandler.VerifyAdmin)
			auth.GET("/check-admin", middleware.AuthRequired(), deps.AuthHandler.CheckAdmin)
		}

		// Public catalog. OptionalAuth attaches session claims when a
		// signed-in visitor browses, so request logs carry the uid.
		products := v1.Group("/products")
		products.Use(middleware.OptionalAuth())
		{
			products.GET("", deps.CatalogHandler.GetCatalog)
			products.GET("/:slug", deps.CatalogHandler.GetProductBySlug)
			products.POST("/:slug/like", middleware.LikeRateLimit(), deps.CatalogHandler.LikeProduct)
			products.POST("/:slug/unlike", middleware.LikeRateLimit(), deps.CatalogHandler.UnlikeProduct)
		}

		v1.GET("/brands", deps.CatalogHandler.GetBrands)
		v1.GET("/locations", deps.LocationHandler.GetPublicLocations)
		v1.GET("/clients", deps.ClientsHandler.GetClients)
		v1.POST("/register", middleware.RegistrationRateLimit(), deps.RegistrationHandler.Register)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			adminProducts := admin.Group("/products")
			{
				adminProducts.GET("", deps.ProductHandler.ListProducts)
				adminProducts.POST("", deps.ProductHandler.CreateProduct)
				adminProducts.GET("/export", deps.ProductHandler.ExportProducts)
				adminProducts.POST("/upload-image", middleware.UploadRateLimit(), deps.ProductHandler.UploadImage)
				adminProducts.PUT("/:id", deps.ProductHandler.UpdateProduct)
				adminProducts.DELETE("/:id", deps.ProductHandler.DeleteProduct)
				adminProducts.PATCH("/:id/flags", deps.ProductHandler.ToggleFlag)
			}

			adminLocations := admin.Group("/locations")
			{
				adminLocations.GET("", deps.LocationHandler.ListLocations)
				adminLocations.POST("", deps.LocationHandler.CreateLocation)
				adminLocations.PUT("/:id", deps.LocationHandler.UpdateLocation)
				adminLocations.DELETE("/:id", deps.LocationHandler.DeleteLocation)
			}
		}
	}

	return r
}
