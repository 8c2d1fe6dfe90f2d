package handlers

import (
	"net/http"

	"restaurant-manager-api/config"
	"restaurant-manager-api/middleware"
	"restaurant-manager-api/models"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	IsAvailable *bool   `json:"is_available"`
}

// ownedMenuItem resolves a non-deleted menu item reachable through a
// category of a restaurant the caller owns.
func ownedMenuItem(c *gin.Context, itemID string) (*models.MenuItem, bool) {
	ownerID := middleware.GetUserID(c)
	var item models.MenuItem
	err := config.DB.Joins("JOIN categories ON categories.id = menu_items.category_id").
		Joins("JOIN restaurants ON restaurants.id = categories.restaurant_id").
		Where("menu_items.id = ? AND restaurants.user_id = ? AND menu_items.is_deleted = ?",
			itemID, ownerID, false).
		First(&item).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return nil, false
	}
	return &item, true
}

// CreateMenuItem adds an item under a category the caller owns
func CreateMenuItem(c *gin.Context) {
	category, ok := ownedCategory(c, c.Param("id"))
	if !ok {
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item := models.MenuItem{
		CategoryID:   category.ID,
		RestaurantID: category.RestaurantID,
		Name:         req.Name,
		Price:        req.Price,
		IsAvailable:  available,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// ListMenuItems returns the category's non-deleted items
func ListMenuItems(c *gin.Context) {
	category, ok := ownedCategory(c, c.Param("id"))
	if !ok {
		return
	}
	var items []models.MenuItem
	config.DB.Where("category_id = ? AND is_deleted = ?", category.ID, false).Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// UpdateMenuItem updates a menu item (only by the owner)
func UpdateMenuItem(c *gin.Context) {
	item, ok := ownedMenuItem(c, c.Param("id"))
	if !ok {
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields; price changes affect future placements only,
	// already-stored order totals are never recomputed.
	allowed := map[string]bool{"name": true, "price": true, "is_available": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(item).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem soft deletes a menu item. Past order lines keep pointing
// at the row, so historical bills still price it.
func DeleteMenuItem(c *gin.Context) {
	item, ok := ownedMenuItem(c, c.Param("id"))
	if !ok {
		return
	}
	config.DB.Model(item).Update("is_deleted", true)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted", "item_id": item.ID})
}
