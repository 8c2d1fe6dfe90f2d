package models

import "time"

type Restaurant struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"not null"`
	Owner      User       `json:"owner,omitempty" gorm:"foreignKey:UserID"`
	Name       string     `json:"name" gorm:"not null"`
	TimeZone   string     `json:"time_zone" gorm:"default:'Asia/Kolkata'"`
	Currency   string     `json:"currency" gorm:"default:'INR'"` // stored label only, never converted
	Location   string     `json:"location" gorm:"not null"`
	IsDeleted  bool       `json:"is_deleted" gorm:"default:false"`
	Categories []Category `json:"categories,omitempty" gorm:"foreignKey:RestaurantID"`
	Tables     []RestaurantTable `json:"tables,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type Category struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Name         string     `json:"name" gorm:"not null"`
	IsDeleted    bool       `json:"is_deleted" gorm:"default:false"`
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:CategoryID"`
}

type MenuItem struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	CategoryID   uint    `json:"category_id" gorm:"not null"`
	RestaurantID uint    `json:"restaurant_id" gorm:"not null"` // denormalized from the category
	Name         string  `json:"name" gorm:"not null"`
	Price        float64 `json:"price" gorm:"not null"`
	IsAvailable  bool    `json:"is_available" gorm:"default:true"`
	IsDeleted    bool    `json:"is_deleted" gorm:"default:false"`
}
