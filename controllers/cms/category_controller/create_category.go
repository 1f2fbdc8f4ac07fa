package category_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rikimaru63/cardshop-hp-miyabi/cache/category_cache"
	"github.com/rikimaru63/cardshop-hp-miyabi/config"
	"github.com/rikimaru63/cardshop-hp-miyabi/models"
	"github.com/rikimaru63/cardshop-hp-miyabi/utils"
)

// CreateCategory godoc
// @Summary Create a category or subcategory
// @Description Create a category. The slug is derived from the English name when omitted and must be globally unique. A parent, when given, must itself be a top-level category.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category payload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category payload: "+err.Error()))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.NameEn)
	}
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category slug cannot be empty"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var parentID *uuid.UUID
	if req.ParentID != nil && *req.ParentID != "" {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid parent category ID"))
			return
		}

		var parent models.Category
		if err := config.ShopGorm.WithContext(ctx).
			First(&parent, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent category not found"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}
		// Keep the tree two levels deep
		if parent.ParentID != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Parent must be a top-level category"))
			return
		}
		parentID = &id
	}

	category := models.Category{
		NameEn:    req.NameEn,
		NameJa:    req.NameJa,
		Slug:      slug,
		ParentID:  parentID,
		SortOrder: req.SortOrder,
	}

	if err := config.ShopGorm.WithContext(ctx).Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category slug already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	category_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
