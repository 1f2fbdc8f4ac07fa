// @title Card Shop International API
// @version 1.0
// @description Storefront and CMS backend for the international trading-card shop
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rikimaru63/cardshop-hp-miyabi/config"
	"github.com/rikimaru63/cardshop-hp-miyabi/controllers/ecommerce/search_controller"
	"github.com/rikimaru63/cardshop-hp-miyabi/middleware"
	"github.com/rikimaru63/cardshop-hp-miyabi/routes/cms_routes"
	"github.com/rikimaru63/cardshop-hp-miyabi/routes/ecommerce_routes"
	"github.com/rikimaru63/cardshop-hp-miyabi/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()

	// Wire the catalog search engine to the shop database
	search_controller.Init(services.NewGormProductRepository(config.ShopGorm))

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Admin (CMS) routes, rate limited per IP
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupCategoryRoutes(adminGroup)

	// Public storefront (no rate limiter)
	ecommerce_routes.SetupStorefrontRoutes(api)

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
