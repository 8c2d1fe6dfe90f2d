package handlers

import (
	"net/http"

	"restaurant-manager-api/config"
	"restaurant-manager-api/middleware"
	"restaurant-manager-api/models"

	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ownedCategory resolves a non-deleted category reachable through a
// restaurant the caller owns.
func ownedCategory(c *gin.Context, categoryID string) (*models.Category, bool) {
	ownerID := middleware.GetUserID(c)
	var category models.Category
	err := config.DB.Joins("JOIN restaurants ON restaurants.id = categories.restaurant_id").
		Where("categories.id = ? AND restaurants.user_id = ? AND categories.is_deleted = ?",
			categoryID, ownerID, false).
		First(&category).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return nil, false
	}
	return &category, true
}

// CreateCategory adds a menu category to a restaurant
func CreateCategory(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c, c.Param("id"))
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{RestaurantID: restaurant.ID, Name: req.Name}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// ListCategories returns the restaurant's non-deleted categories
func ListCategories(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c, c.Param("id"))
	if !ok {
		return
	}
	var categories []models.Category
	config.DB.Where("restaurant_id = ? AND is_deleted = ?", restaurant.ID, false).Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// UpdateCategory renames a category
func UpdateCategory(c *gin.Context) {
	category, ok := ownedCategory(c, c.Param("id"))
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config.DB.Model(category).Update("name", req.Name)
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory soft deletes a category
func DeleteCategory(c *gin.Context) {
	category, ok := ownedCategory(c, c.Param("id"))
	if !ok {
		return
	}
	config.DB.Model(category).Update("is_deleted", true)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted", "category_id": category.ID})
}
