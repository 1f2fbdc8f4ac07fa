package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rikimaru63/cardshop-hp-miyabi/controllers/cms/category_controller"
)

func SetupCategoryRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.POST("", category_controller.CreateCategory)
	}
}
