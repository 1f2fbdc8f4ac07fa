package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a hierarchical product classification. The slug is the
// stable external identifier used in filter requests, not the id.
// The tree is two levels deep in practice: top category + subcategory.
type Category struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	NameEn    string     `json:"nameEn" gorm:"not null"`
	NameJa    *string    `json:"nameJa,omitempty"`
	Slug      string     `json:"slug" gorm:"not null;uniqueIndex"`
	ParentID  *uuid.UUID `json:"parentId,omitempty" gorm:"type:uuid;index"`
	SortOrder int        `json:"sortOrder" gorm:"not null;default:0"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`

	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryRequest is used when creating a category or subcategory.
// Slug is derived from NameEn when omitted.
type CategoryRequest struct {
	NameEn    string  `json:"nameEn" binding:"required" example:"Pokemon"`
	NameJa    *string `json:"nameJa"`
	Slug      string  `json:"slug" example:"pokemon"`
	ParentID  *string `json:"parentId"`
	SortOrder int     `json:"sortOrder"`
}

// CategoryWithCount extends Category with a product count for the
// storefront category listing.
type CategoryWithCount struct {
	Category
	ProductCount int                 `json:"productCount"`
	Subcats      []CategoryWithCount `json:"subcategories,omitempty"`
}
