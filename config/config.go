package config

import (
	"log"
	"os"

	"restaurant-manager-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_manager_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads a .env file if one exists; real env vars win either way.
func LoadEnv() {
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_manager_super_secret_2024"))
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant_manager.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate applies the schema. Split out from InitDB so tests can run it
// against their own database handle.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Category{},
		&models.MenuItem{},
		&models.RestaurantTable{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	// One open order per table. AutoMigrate cannot express a partial
	// index, so it is created raw; placement relies on this to close the
	// find-or-create race.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_one_open_per_table
		 ON orders(restaurant_id, table_id) WHERE is_completed = false`,
	).Error
}
