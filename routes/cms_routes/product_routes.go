package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rikimaru63/cardshop-hp-miyabi/controllers/cms/product_controller"
)

func SetupProductRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.POST("", product_controller.CreateProduct)
		products.PATCH("/:id", product_controller.UpdateProduct)
		products.DELETE("/:id", product_controller.DeleteProduct)
	}
}
