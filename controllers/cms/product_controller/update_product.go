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

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially update a product. Only fields present in the payload change; setting active toggles storefront visibility.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid update payload: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.ShopGorm.WithContext(ctx).
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if req.NameEn != nil {
		product.NameEn = *req.NameEn
	}
	if req.NameJa != nil {
		product.NameJa = req.NameJa
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Images != nil {
		product.Images = models.ImageList(req.Images)
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
			return
		}
		product.CategoryID = categoryID
	}
	if req.GameType != nil {
		if gameType, ok := models.ParseGameType(*req.GameType); ok {
			product.GameType = gameType
		}
	}
	if req.CardSet != nil {
		product.CardSet = req.CardSet
	}
	if req.CardNumber != nil {
		product.CardNumber = req.CardNumber
	}
	if req.Rarity != nil {
		product.Rarity = req.Rarity
	}
	if req.Condition != nil {
		if condition, ok := models.ParseCardCondition(*req.Condition); ok {
			product.Condition = condition
		}
	}
	if req.PsaGrade != nil {
		product.PsaGrade = req.PsaGrade
	}
	if req.BgsGrade != nil {
		product.BgsGrade = req.BgsGrade
	}
	if req.PriceUsd != nil {
		product.PriceUsd = *req.PriceUsd
	}
	if req.PriceJpy != nil {
		product.PriceJpy = *req.PriceJpy
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := config.ShopGorm.WithContext(ctx).Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	category_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
