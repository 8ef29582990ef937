// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/heritage-goods/storefront-backend/internal/cart"
	"github.com/heritage-goods/storefront-backend/internal/commerce"
	"github.com/heritage-goods/storefront-backend/internal/config"
	"github.com/heritage-goods/storefront-backend/internal/handlers"
	"github.com/heritage-goods/storefront-backend/internal/middleware"
	"github.com/heritage-goods/storefront-backend/internal/services"
	"github.com/heritage-goods/storefront-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize commerce platform client and cart state
	commerceClient := commerce.NewClient(cfg.Commerce)
	sessionStore := cart.NewGormSessionStore(db)
	cartManager := cart.NewManager(commerceClient, sessionStore)

	// Initialize services
	catalogService := services.NewCatalogService(commerceClient, cfg.Commerce.CatalogLimit)
	reviewService := services.NewReviewService(db)
	translationService := services.NewTranslationService(db, cfg.Translation)
	checkoutService := services.NewCheckoutService(cfg.Payment)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartManager, checkoutService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	translateHandler := handlers.NewTranslateHandler(translationService)

	// Set session token secret
	utils.SetJWTSecret(cfg.Session.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
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
	v1.Use(middleware.Session(cfg.Session.TTL))
	{
		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:handle", productHandler.GetProduct)
			products.POST("/:handle/resolve", productHandler.ResolveVariant)

			products.GET("/:handle/reviews", reviewHandler.GetReviews)
			products.POST("/:handle/reviews", middleware.ReviewRateLimit(), reviewHandler.SubmitReview)
		}

		// Cart routes
		cartRoutes := v1.Group("/cart")
		{
			cartRoutes.GET("", cartHandler.GetCart)
			cartRoutes.POST("/items", cartHandler.AddItem)
			cartRoutes.PUT("/items/:id", cartHandler.UpdateQuantity)
			cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
			cartRoutes.DELETE("", cartHandler.ClearCart)
		}

		// Checkout hand-off
		v1.POST("/checkout", cartHandler.Checkout)

		// Localized descriptions
		v1.POST("/translate", middleware.TranslateRateLimit(), translateHandler.Translate)
	}

	return r
}
