package handlers

import (
	"net/http"

	"restaurant-manager-api/config"
	"restaurant-manager-api/middleware"
	"restaurant-manager-api/models"
	"restaurant-manager-api/ordering"

	"github.com/gin-gonic/gin"
)

type CreateTableRequest struct {
	TableNumber int `json:"table_number" binding:"required,gt=0"`
}

type UpdateTableRequest struct {
	TableNumber *int                `json:"table_number"`
	Status      *models.TableStatus `json:"status"`
}

// ownedTable resolves a non-deleted table belonging to a restaurant the
// caller owns.
func ownedTable(c *gin.Context, tableID string) (*models.RestaurantTable, bool) {
	ownerID := middleware.GetUserID(c)
	var table models.RestaurantTable
	err := config.DB.Joins("JOIN restaurants ON restaurants.id = restaurant_tables.restaurant_id").
		Where("restaurant_tables.id = ? AND restaurants.user_id = ? AND restaurant_tables.is_deleted = ?",
			tableID, ownerID, false).
		First(&table).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return nil, false
	}
	return &table, true
}

// CreateTable adds a table to a restaurant, starting AVAILABLE
func CreateTable(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c, c.Param("id"))
	if !ok {
		return
	}
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table := models.RestaurantTable{
		RestaurantID: restaurant.ID,
		TableNumber:  req.TableNumber,
		Status:       models.TableAvailable,
	}
	if err := config.DB.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Table created", "table": table})
}

// ListTables returns the restaurant's non-deleted tables
func ListTables(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c, c.Param("id"))
	if !ok {
		return
	}
	var tables []models.RestaurantTable
	config.DB.Where("restaurant_id = ? AND is_deleted = ?", restaurant.ID, false).Find(&tables)
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

// UpdateTable changes a table's number and/or status. Status changes are
// validated against the table-state transition rules.
func UpdateTable(c *gin.Context) {
	table, ok := ownedTable(c, c.Param("id"))
	if !ok {
		return
	}
	var req UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{}
	if req.TableNumber != nil {
		update["table_number"] = *req.TableNumber
	}
	if req.Status != nil {
		if err := ordering.CanTransition(table.Status, *req.Status); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":          err.Error(),
				"current_status": table.Status,
			})
			return
		}
		update["status"] = *req.Status
	}
	if len(update) > 0 {
		config.DB.Model(table).Updates(update)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table updated", "table": table})
}

// DeleteTable soft deletes a table
func DeleteTable(c *gin.Context) {
	table, ok := ownedTable(c, c.Param("id"))
	if !ok {
		return
	}
	config.DB.Model(table).Update("is_deleted", true)
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted", "table_id": table.ID})
}

// GetTableStates returns the table status transition rules (public)
func GetTableStates(c *gin.Context) {
	var info []gin.H
	for _, t := range ordering.AllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"transitions": info,
		"statuses": []models.TableStatus{
			models.TableAvailable, models.TableOccupied,
			models.TableReserved, models.TableInactive,
		},
		"description": "Restaurant table seating state machine",
	})
}
