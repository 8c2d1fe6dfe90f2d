package ordering

import (
	"path/filepath"
	"testing"

	"restaurant-manager-api/config"
	"restaurant-manager-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixture is a seeded single-restaurant world for order tests.
type fixture struct {
	db         *gorm.DB
	owner      models.User
	restaurant models.Restaurant
	category   models.Category
	table      models.RestaurantTable
	dosa       models.MenuItem // price 10
	chai       models.MenuItem // price 5
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{db: db}
	f.owner = models.User{Email: "owner@example.com", PasswordHash: "x", FullName: "Owner", Phone: "1", Role: models.RoleOwner, IsActive: true}
	mustCreate(t, db, &f.owner)

	f.restaurant = models.Restaurant{UserID: f.owner.ID, Name: "Udupi Palace", TimeZone: "Asia/Kolkata", Currency: "INR", Location: "Bangalore"}
	mustCreate(t, db, &f.restaurant)

	f.category = models.Category{RestaurantID: f.restaurant.ID, Name: "South Indian"}
	mustCreate(t, db, &f.category)

	f.table = models.RestaurantTable{RestaurantID: f.restaurant.ID, TableNumber: 4, Status: models.TableAvailable}
	mustCreate(t, db, &f.table)

	f.dosa = models.MenuItem{CategoryID: f.category.ID, RestaurantID: f.restaurant.ID, Name: "Masala Dosa", Price: 10, IsAvailable: true}
	mustCreate(t, db, &f.dosa)

	f.chai = models.MenuItem{CategoryID: f.category.ID, RestaurantID: f.restaurant.ID, Name: "Chai", Price: 5, IsAvailable: true}
	mustCreate(t, db, &f.chai)

	return f
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("seed %T: %v", value, err)
	}
}

func (f *fixture) reloadOrder(t *testing.T, id uint) *models.Order {
	t.Helper()
	var order models.Order
	if err := f.db.Preload("Items").First(&order, id).Error; err != nil {
		t.Fatalf("reload order %d: %v", id, err)
	}
	return &order
}
