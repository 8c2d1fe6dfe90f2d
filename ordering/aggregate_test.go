package ordering

import (
	"errors"
	"testing"

	"restaurant-manager-api/models"
)

func TestPlaceOrderZeroItemsCreatesEmptyOrder(t *testing.T) {
	f := newFixture(t)

	order, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, nil)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.ID == 0 {
		t.Error("expected a persisted order with a stable id")
	}
	if order.TotalAmount != 0 {
		t.Errorf("total = %v, want 0", order.TotalAmount)
	}
	if len(order.Items) != 0 {
		t.Errorf("items = %d, want 0", len(order.Items))
	}
	if order.IsCompleted {
		t.Error("new order should be open")
	}
}

func TestPlaceOrderComputesTotal(t *testing.T) {
	f := newFixture(t)

	order, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, []ItemRequest{
		{MenuItemID: f.dosa.ID, Quantity: 2},
		{MenuItemID: f.chai.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.TotalAmount != 25 {
		t.Errorf("total = %v, want 25", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Errorf("items = %d, want 2", len(order.Items))
	}
}

func TestPlaceOrderAccumulatesIntoOpenOrder(t *testing.T) {
	f := newFixture(t)

	first, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, []ItemRequest{
		{MenuItemID: f.dosa.ID, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("first PlaceOrder: %v", err)
	}

	second, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, []ItemRequest{
		{MenuItemID: f.chai.ID, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("second PlaceOrder: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected the open order to be reused: ids %d, %d", first.ID, second.ID)
	}
	if second.TotalAmount != 35 { // 2*10 + 3*5, never reset
		t.Errorf("total = %v, want 35", second.TotalAmount)
	}
	if len(second.Items) != 2 {
		t.Errorf("items = %d, want 2", len(second.Items))
	}
}

func TestPlaceOrderDuplicateLinesAreNotMerged(t *testing.T) {
	f := newFixture(t)

	order, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, []ItemRequest{
		{MenuItemID: f.dosa.ID, Quantity: 1},
		{MenuItemID: f.dosa.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if len(order.Items) != 2 {
		t.Errorf("items = %d, want 2 separate lines for the same menu item", len(order.Items))
	}
	if order.TotalAmount != 20 {
		t.Errorf("total = %v, want 20", order.TotalAmount)
	}
}

func TestPlaceOrderForeignMenuItemRollsBackEverything(t *testing.T) {
	f := newFixture(t)

	// Another owner's restaurant with its own catalog
	other := models.User{Email: "other@example.com", PasswordHash: "x", FullName: "Other", Phone: "2", Role: models.RoleOwner, IsActive: true}
	mustCreate(t, f.db, &other)
	otherRestaurant := models.Restaurant{UserID: other.ID, Name: "Elsewhere", Location: "Mumbai"}
	mustCreate(t, f.db, &otherRestaurant)
	otherCategory := models.Category{RestaurantID: otherRestaurant.ID, Name: "Drinks"}
	mustCreate(t, f.db, &otherCategory)
	foreign := models.MenuItem{CategoryID: otherCategory.ID, RestaurantID: otherRestaurant.ID, Name: "Lassi", Price: 7, IsAvailable: true}
	mustCreate(t, f.db, &foreign)

	order, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, []ItemRequest{
		{MenuItemID: f.dosa.ID, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("seed PlaceOrder: %v", err)
	}

	_, err = PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, []ItemRequest{
		{MenuItemID: f.chai.ID, Quantity: 1},
		{MenuItemID: foreign.ID, Quantity: 1},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// The valid chai line from the failed call must not survive
	reloaded := f.reloadOrder(t, order.ID)
	if reloaded.TotalAmount != 20 {
		t.Errorf("total = %v, want 20 (unchanged)", reloaded.TotalAmount)
	}
	if len(reloaded.Items) != 1 {
		t.Errorf("items = %d, want 1 (failed call rolled back)", len(reloaded.Items))
	}
}

func TestPlaceOrderRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)

	for _, qty := range []int{0, -1} {
		_, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, []ItemRequest{
			{MenuItemID: f.dosa.ID, Quantity: qty},
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("quantity %d: err = %v, want ErrInvalidInput", qty, err)
		}
	}

	// Nothing was written
	var count int64
	f.db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders = %d, want 0", count)
	}
}

func TestPlaceOrderUnknownRestaurantOrTable(t *testing.T) {
	f := newFixture(t)

	if _, err := PlaceOrder(f.db, f.owner.ID, 9999, f.table.ID, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown restaurant: err = %v, want ErrNotFound", err)
	}

	if _, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, 9999, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown table: err = %v, want ErrInvalidInput", err)
	}

	// A soft-deleted table behaves like a missing one
	f.db.Model(&f.table).Update("is_deleted", true)
	if _, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("deleted table: err = %v, want ErrInvalidInput", err)
	}
}

func TestPlaceOrderRejectsSoftDeletedMenuItem(t *testing.T) {
	f := newFixture(t)

	f.db.Model(&f.dosa).Update("is_deleted", true)

	_, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, []ItemRequest{
		{MenuItemID: f.dosa.ID, Quantity: 1},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCloseOrderThenPlaceStartsFreshOrder(t *testing.T) {
	f := newFixture(t)

	first, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, []ItemRequest{
		{MenuItemID: f.dosa.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	closed, err := CloseOrder(f.db, f.owner.ID, f.restaurant.ID, first.ID)
	if err != nil {
		t.Fatalf("CloseOrder: %v", err)
	}
	if !closed.IsCompleted {
		t.Error("order should be completed after close")
	}

	// Closing twice is a NotFound on the open order
	if _, err := CloseOrder(f.db, f.owner.ID, f.restaurant.ID, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second close: err = %v, want ErrNotFound", err)
	}

	second, err := PlaceOrder(f.db, f.owner.ID, f.restaurant.ID, f.table.ID, []ItemRequest{
		{MenuItemID: f.chai.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("PlaceOrder after close: %v", err)
	}
	if second.ID == first.ID {
		t.Error("placement after close must open a new order")
	}
	if second.TotalAmount != 5 {
		t.Errorf("fresh order total = %v, want 5", second.TotalAmount)
	}
}
