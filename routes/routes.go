package routes

import (
	"restaurant-manager-api/handlers"
	"restaurant-manager-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Table state machine info (great for docs/Postman)
		public.GET("/table-states", handlers.GetTableStates)
	}

	// ── Owner routes ───────────────────────────────────────────────
	owner := r.Group("/api")
	owner.Use(middleware.AuthRequired())
	{
		owner.GET("/profile", handlers.GetProfile)

		// Restaurant management
		owner.POST("/restaurants", handlers.CreateRestaurant)
		owner.GET("/restaurants", handlers.ListRestaurants)
		owner.GET("/restaurants/:id", handlers.GetRestaurant)
		owner.PUT("/restaurants/:id", handlers.UpdateRestaurant)
		owner.DELETE("/restaurants/:id", handlers.DeleteRestaurant)

		// Categories
		owner.POST("/restaurants/:id/categories", handlers.CreateCategory)
		owner.GET("/restaurants/:id/categories", handlers.ListCategories)
		owner.PUT("/categories/:id", handlers.UpdateCategory)
		owner.DELETE("/categories/:id", handlers.DeleteCategory)

		// Menu
		owner.POST("/categories/:id/menu", handlers.CreateMenuItem)
		owner.GET("/categories/:id/menu", handlers.ListMenuItems)
		owner.PUT("/menu/:id", handlers.UpdateMenuItem)
		owner.DELETE("/menu/:id", handlers.DeleteMenuItem)

		// Tables
		owner.POST("/restaurants/:id/tables", handlers.CreateTable)
		owner.GET("/restaurants/:id/tables", handlers.ListTables)
		owner.PUT("/tables/:id", handlers.UpdateTable)
		owner.DELETE("/tables/:id", handlers.DeleteTable)

		// Orders & billing
		owner.POST("/orders/:restaurantID", handlers.PlaceOrder)
		owner.PUT("/orders/:restaurantID/:orderID/close", handlers.CloseOrder)
		owner.GET("/orders/:restaurantID/bill/:tableNumber", handlers.GetBill)
	}
}
