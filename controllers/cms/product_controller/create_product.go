package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rikimaru63/cardshop-hp-miyabi/cache/category_cache"
	"github.com/rikimaru63/cardshop-hp-miyabi/config"
	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Create a catalog product. SKU must be unique; the category must exist. New products are active by default.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product payload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product payload: "+err.Error()))
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Category must exist before attaching products to it
	var category models.Category
	if err := config.ShopGorm.WithContext(ctx).
		First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	gameType, _ := models.ParseGameType(req.GameType)
	condition, _ := models.ParseCardCondition(req.Condition)

	product := models.Product{
		SKU:           req.SKU,
		NameEn:        req.NameEn,
		NameJa:        req.NameJa,
		Description:   req.Description,
		Images:        models.ImageList(req.Images),
		CategoryID:    categoryID,
		GameType:      gameType,
		CardSet:       req.CardSet,
		CardNumber:    req.CardNumber,
		Rarity:        req.Rarity,
		Condition:     condition,
		PsaGrade:      req.PsaGrade,
		BgsGrade:      req.BgsGrade,
		PriceUsd:      req.PriceUsd,
		PriceJpy:      req.PriceJpy,
		StockQuantity: req.StockQuantity,
		Featured:      req.Featured,
		Active:        true,
	}

	if err := config.ShopGorm.WithContext(ctx).Create(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "SKU already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	category_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
