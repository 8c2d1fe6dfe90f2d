package ordering

import (
	"errors"

	"restaurant-manager-api/models"

	"gorm.io/gorm"
)

// ItemRequest is one requested line: a menu item and how many of it.
type ItemRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// PlaceOrder merges the requested items into the table's open order,
// creating one if the table has none. Each line is appended as its own
// row — identical menu items are never consolidated — and the order's
// cached total grows by price × quantity per line, priced at placement
// time. The whole call is one transaction: if any item fails to resolve,
// nothing is persisted, including a freshly created order.
func PlaceOrder(db *gorm.DB, ownerID, restaurantID, tableID uint, items []ItemRequest) (*models.Order, error) {
	var restaurant models.Restaurant
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", restaurantID, ownerID, false).
		First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("Restaurant not found")
		}
		return nil, err
	}

	var table models.RestaurantTable
	if err := db.Where("id = ? AND restaurant_id = ? AND is_deleted = ?", tableID, restaurantID, false).
		First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidf("Please select table number")
		}
		return nil, err
	}

	for _, req := range items {
		if req.Quantity <= 0 {
			return nil, invalidf("Quantity must be positive for menu item %d", req.MenuItemID)
		}
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := openOrder(tx, restaurantID, table.ID, &order); err != nil {
			return err
		}

		total := order.TotalAmount
		for _, req := range items {
			// The item must be reachable through a category of this
			// restaurant and still in the live catalog.
			var menuItem models.MenuItem
			err := tx.Joins("JOIN categories ON categories.id = menu_items.category_id").
				Where("menu_items.id = ? AND categories.restaurant_id = ? AND menu_items.is_deleted = ?",
					req.MenuItemID, restaurantID, false).
				First(&menuItem).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFoundf("Menu item %d not found", req.MenuItemID)
				}
				return err
			}

			line := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: menuItem.ID,
				Quantity:   req.Quantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
			total += menuItem.Price * float64(req.Quantity)
		}

		order.TotalAmount = total
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_amount", total).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Items").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// openOrder finds the table's open order or creates one with total 0.
// Creation can collide with a concurrent placement on the partial unique
// index over open orders; the loser re-reads the surviving row.
func openOrder(tx *gorm.DB, restaurantID, tableID uint, order *models.Order) error {
	err := tx.Where("restaurant_id = ? AND table_id = ? AND is_completed = ?", restaurantID, tableID, false).
		First(order).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	*order = models.Order{RestaurantID: restaurantID, TableID: tableID, TotalAmount: 0}
	if createErr := tx.Create(order).Error; createErr != nil {
		return tx.Where("restaurant_id = ? AND table_id = ? AND is_completed = ?", restaurantID, tableID, false).
			First(order).Error
	}
	return nil
}

// CloseOrder marks an open order completed. The next placement at the same
// table starts a fresh order; bills keep counting closed orders, so the
// table's bill covers the full visit history.
func CloseOrder(db *gorm.DB, ownerID, restaurantID, orderID uint) (*models.Order, error) {
	var restaurant models.Restaurant
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", restaurantID, ownerID, false).
		First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("Restaurant not found")
		}
		return nil, err
	}

	var order models.Order
	if err := db.Where("id = ? AND restaurant_id = ? AND is_completed = ?", orderID, restaurantID, false).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("Open order %d not found", orderID)
		}
		return nil, err
	}

	if err := db.Model(&order).Update("is_completed", true).Error; err != nil {
		return nil, err
	}
	order.IsCompleted = true
	return &order, nil
}
