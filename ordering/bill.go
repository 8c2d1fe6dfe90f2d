package ordering

import (
	"errors"

	"restaurant-manager-api/models"

	"gorm.io/gorm"
)

// BillLine is one priced entry on a bill.
type BillLine struct {
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Bill is the flattened, priced report for one table.
type Bill struct {
	RestaurantName string     `json:"restaurant_name"`
	TableNumber    int        `json:"table_number"`
	GrandTotal     float64    `json:"grand_total"`
	OrderedItems   []BillLine `json:"ordered_items"`
}

// CompileBill gathers every order for the table — open or closed — and
// flattens them into priced lines, ordered by order then by insertion
// within each order. The menu-item join is deliberately unfiltered: a
// soft-deleted item still appears on the bill at its current price. The
// bill reflects history; ordering reflects the current catalog.
func CompileBill(db *gorm.DB, ownerID, restaurantID uint, tableNumber int) (*Bill, error) {
	var restaurant models.Restaurant
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", restaurantID, ownerID, false).
		First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("Restaurant not found")
		}
		return nil, err
	}

	var table models.RestaurantTable
	if err := db.Where("table_number = ? AND restaurant_id = ? AND is_deleted = ?", tableNumber, restaurantID, false).
		First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("Table number %d not found", tableNumber)
		}
		return nil, err
	}

	var orders []models.Order
	if err := db.Where("table_id = ? AND restaurant_id = ?", table.ID, restaurantID).
		Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, notFoundf("No orders found for table %d", tableNumber)
	}

	bill := &Bill{
		RestaurantName: restaurant.Name,
		TableNumber:    table.TableNumber,
		OrderedItems:   []BillLine{},
	}

	for _, order := range orders {
		var items []models.OrderItem
		if err := db.Preload("MenuItem").Where("order_id = ?", order.ID).
			Order("id").Find(&items).Error; err != nil {
			return nil, err
		}
		for _, item := range items {
			lineTotal := item.MenuItem.Price * float64(item.Quantity)
			bill.GrandTotal += lineTotal
			bill.OrderedItems = append(bill.OrderedItems, BillLine{
				ItemName:   item.MenuItem.Name,
				Quantity:   item.Quantity,
				UnitPrice:  item.MenuItem.Price,
				TotalPrice: lineTotal,
			})
		}
	}
	return bill, nil
}
