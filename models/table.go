package models

// TableStatus represents the seating state of a restaurant table
type TableStatus string

const (
	TableAvailable TableStatus = "AVAILABLE"
	TableOccupied  TableStatus = "OCCUPIED"
	TableReserved  TableStatus = "RESERVED"
	TableInactive  TableStatus = "INACTIVE"
)

type RestaurantTable struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	RestaurantID uint        `json:"restaurant_id" gorm:"not null"`
	TableNumber  int         `json:"table_number" gorm:"not null"`
	Status       TableStatus `json:"status" gorm:"not null;default:'AVAILABLE'"`
	IsDeleted    bool        `json:"is_deleted" gorm:"default:false"`
}
