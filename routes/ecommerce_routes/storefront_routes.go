package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	store_category "github.com/rikimaru63/cardshop-hp-miyabi/controllers/ecommerce/category_controller"
	store_product "github.com/rikimaru63/cardshop-hp-miyabi/controllers/ecommerce/product_controller"
	store_search "github.com/rikimaru63/cardshop-hp-miyabi/controllers/ecommerce/search_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Faceted search
	store.GET("/search", store_search.SearchProducts)
	store.POST("/search", store_search.SearchProductsAdvanced)

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetProducts)
		products.GET("/:id", store_product.GetProductByID)
	}

	// Category routes
	store.GET("/categories", store_category.GetCategories)
}
