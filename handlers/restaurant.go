package handlers

import (
	"net/http"

	"restaurant-manager-api/config"
	"restaurant-manager-api/middleware"
	"restaurant-manager-api/models"

	"github.com/gin-gonic/gin"
)

type CreateRestaurantRequest struct {
	Name     string `json:"name" binding:"required"`
	TimeZone string `json:"time_zone"`
	Currency string `json:"currency"`
	Location string `json:"location" binding:"required"`
}

// ownedRestaurant resolves a non-deleted restaurant belonging to the caller.
// Every restaurant-scoped handler goes through this.
func ownedRestaurant(c *gin.Context, restaurantID string) (*models.Restaurant, bool) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	err := config.DB.Where("id = ? AND user_id = ? AND is_deleted = ?", restaurantID, ownerID, false).
		First(&restaurant).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return nil, false
	}
	return &restaurant, true
}

// CreateRestaurant registers a new restaurant for the logged-in owner
func CreateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.TimeZone == "" {
		req.TimeZone = "Asia/Kolkata"
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}

	restaurant := models.Restaurant{
		UserID:   ownerID,
		Name:     req.Name,
		TimeZone: req.TimeZone,
		Currency: req.Currency,
		Location: req.Location,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// ListRestaurants returns all non-deleted restaurants of the caller
func ListRestaurants(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurants []models.Restaurant
	config.DB.Where("user_id = ? AND is_deleted = ?", ownerID, false).Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant fetches one restaurant owned by the caller
func GetRestaurant(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c, c.Param("id"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateRestaurant updates restaurant details
func UpdateRestaurant(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c, c.Param("id"))
	if !ok {
		return
	}
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{"name": true, "time_zone": true, "currency": true, "location": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(restaurant).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// DeleteRestaurant soft deletes a restaurant; the row stays for billing history
func DeleteRestaurant(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c, c.Param("id"))
	if !ok {
		return
	}
	config.DB.Model(restaurant).Update("is_deleted", true)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted", "restaurant_id": restaurant.ID})
}
