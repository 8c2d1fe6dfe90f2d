package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-manager-api/config"
	"restaurant-manager-api/middleware"
	"restaurant-manager-api/ordering"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	TableID uint                   `json:"table_id" binding:"required"`
	Items   []ordering.ItemRequest `json:"items"`
}

// orderingStatus maps the ordering package's error taxonomy onto HTTP
func orderingStatus(err error) int {
	switch {
	case errors.Is(err, ordering.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ordering.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PlaceOrder merges items into the table's open order, opening one if needed
func PlaceOrder(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	restaurantID, err := strconv.ParseUint(c.Param("restaurantID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := ordering.PlaceOrder(config.DB, ownerID, uint(restaurantID), req.TableID, req.Items)
	if err != nil {
		c.JSON(orderingStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// CloseOrder marks an open order completed so the table can start a new tab
func CloseOrder(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	restaurantID, err := strconv.ParseUint(c.Param("restaurantID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}
	orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := ordering.CloseOrder(config.DB, ownerID, uint(restaurantID), uint(orderID))
	if err != nil {
		c.JSON(orderingStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order closed", "order": order})
}

// GetBill compiles the itemized bill for a table by its user-facing number
func GetBill(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	restaurantID, err := strconv.ParseUint(c.Param("restaurantID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}
	tableNumber, err := strconv.Atoi(c.Param("tableNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table number"})
		return
	}

	bill, err := ordering.CompileBill(config.DB, ownerID, uint(restaurantID), tableNumber)
	if err != nil {
		c.JSON(orderingStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bill)
}
