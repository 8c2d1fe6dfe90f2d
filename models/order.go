package models

import "time"

// Order is the running tab for a table. At most one open (is_completed =
// false) order exists per (restaurant, table) pair; a partial unique index
// created in config.InitDB backs that invariant.
type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	RestaurantID uint        `json:"restaurant_id" gorm:"not null"`
	Restaurant   Restaurant  `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	TableID      uint        `json:"table_id" gorm:"not null"`
	Table        RestaurantTable `json:"table,omitempty" gorm:"foreignKey:TableID"`
	TotalAmount  float64     `json:"total_amount" gorm:"default:0"` // cached sum of line totals at placement prices
	IsCompleted  bool        `json:"is_completed" gorm:"default:false"`
	Items        []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// OrderItem is one line in an order. Lines are append-only: repeated
// placements of the same menu item produce separate rows, never a merge.
type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null;default:1"`
}
