// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kidsstorytime/storefront-backend/internal/config"
	"github.com/kidsstorytime/storefront-backend/internal/domain/cart"
	"github.com/kidsstorytime/storefront-backend/internal/domain/checkout"
	"github.com/kidsstorytime/storefront-backend/internal/domain/order"
	"github.com/kidsstorytime/storefront-backend/internal/domain/product"
	"github.com/kidsstorytime/storefront-backend/internal/domain/promo"
	"github.com/kidsstorytime/storefront-backend/internal/domain/subscriber"
	"github.com/kidsstorytime/storefront-backend/internal/interfaces/http/handlers"
	"github.com/kidsstorytime/storefront-backend/internal/interfaces/http/middleware"
	"github.com/kidsstorytime/storefront-backend/internal/pkg/email"
	"github.com/kidsstorytime/storefront-backend/internal/pkg/pdf"
)

// SetupRoutes wires every storefront and dashboard endpoint
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	cartService := cart.NewService(cart.NewRedisStore(redisClient), cfg, logger)
	orderService := order.NewService(db)
	promoService := promo.NewService(db)
	productService := product.NewService(db)
	subscriberService := subscriber.NewService(db)
	mailer := email.NewService(cfg, logger)
	checkoutService := checkout.NewService(cfg, cartService, orderService, promoService, mailer, logger)
	pdfService := pdf.NewService(cfg)

	authHandler := handlers.NewAuthHandler(cfg)
	catalogHandler := handlers.NewCatalogHandler()
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService, pdfService)
	promoHandler := handlers.NewPromoHandler(promoService)
	subscriberHandler := handlers.NewSubscriberHandler(subscriberService)

	// Dashboard authentication
	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)

		protected := auth.Group("")
		protected.Use(middleware.AdminAuth(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/me", authHandler.Me)
		}
	}

	// Public catalog
	stories := rg.Group("/stories")
	{
		stories.GET("", catalogHandler.GetStories)
		stories.GET("/special", catalogHandler.GetSpecialStories)
		stories.GET("/:id", catalogHandler.GetStory)
	}

	// Session cart. The session id travels in the X-Session-ID header.
	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.SessionID())
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:storyId", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:storyId", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/open", cartHandler.OpenCart)
		cartGroup.POST("/close", cartHandler.CloseCart)
	}

	// Checkout
	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(middleware.SessionID())
	{
		checkoutGroup.POST("", checkoutHandler.PlaceOrder)
	}

	// Newsletter
	rg.POST("/newsletter/subscribe", subscriberHandler.Subscribe)

	// Dashboard
	admin := rg.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg))
	{
		products := admin.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/export", orderHandler.ExportOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("/:id/pdf", orderHandler.DownloadOrderPDF)
			orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
		}

		promos := admin.Group("/promo-codes")
		{
			promos.GET("", promoHandler.ListPromoCodes)
			promos.POST("", promoHandler.CreatePromoCode)
			promos.PUT("/:id", promoHandler.UpdatePromoCode)
			promos.DELETE("/:id", promoHandler.DeletePromoCode)
		}

		subscribers := admin.Group("/subscribers")
		{
			subscribers.GET("", subscriberHandler.ListSubscribers)
			subscribers.GET("/export", subscriberHandler.ExportSubscribers)
		}
	}
}
