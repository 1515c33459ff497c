package main

import (
	"log"
	"time"

	"restaurant_orders/internal/cart"
	"restaurant_orders/internal/config"
	"restaurant_orders/internal/database"
	"restaurant_orders/internal/handlers"
	"restaurant_orders/internal/migrations"
	"restaurant_orders/internal/redis"
	"restaurant_orders/internal/repository"
	"restaurant_orders/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize Redis; carts degrade to in-memory snapshots if unavailable
	var snapshotStorage cart.SnapshotStorage
	var redisClient *redis.Client
	redisClient, err = redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Redis unavailable, cart snapshots will not survive restarts: %v", err)
		snapshotStorage = cart.NewMemorySnapshotStorage()
	} else {
		snapshotStorage = cart.NewRedisSnapshotStorage(redisClient.Raw())
		defer redisClient.Close()
	}

	// Cart stores, one per session
	carts := cart.NewManager(snapshotStorage, cfg.CartKeyPrefix, cfg.TaxRate)
	defer carts.Flush()

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Initialize services
	menuService := services.NewMenuService(menuRepo, cfg.UseMockMenu, cfg.DevMode)
	checkoutService := services.NewCheckoutService(carts, orderRepo, orderItemRepo, cfg.TaxRate)
	reservationService := services.NewReservationService(reservationRepo)

	var authService services.AuthService
	if redisClient != nil {
		authService = services.NewAuthService(userRepo, redisClient, time.Duration(cfg.SessionTTL)*time.Second)
	}

	// Initialize handlers
	cartHandler := handlers.NewCartHandler(carts, menuService, checkoutService)
	menuHandler := handlers.NewMenuHandler(menuService)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	// Setup routes
	router := gin.Default()

	var authHandler *handlers.AuthHandler
	if authService != nil {
		authHandler = handlers.NewAuthHandler(authService)
		router.Use(authHandler.Middleware())
	} else {
		log.Println("Auth endpoints disabled: no session store available")
	}

	api := router.Group("/api")
	{
		api.GET("/menu/items", menuHandler.GetMenuItems)
		api.GET("/menu/items/:id", menuHandler.GetMenuItemByID)
		api.GET("/menu/categories", menuHandler.GetCategories)
		api.GET("/menu/categories/:id/items", menuHandler.GetMenuItemsByCategory)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PUT("/cart/items/:line_id", cartHandler.UpdateQuantity)
		api.PUT("/cart/items/:line_id/instructions", cartHandler.UpdateInstructions)
		api.DELETE("/cart/items/:line_id", cartHandler.RemoveItem)
		api.DELETE("/cart", cartHandler.ClearCart)
		api.POST("/cart/open", cartHandler.OpenCart)
		api.POST("/cart/close", cartHandler.CloseCart)
		api.POST("/cart/toggle", cartHandler.ToggleCart)

		api.POST("/checkout", cartHandler.Checkout)
		api.GET("/orders", cartHandler.GetOrders)

		api.POST("/reservations", reservationHandler.CreateReservation)
		api.GET("/reservations", reservationHandler.ListReservations)
		api.GET("/reservations/:id", reservationHandler.GetReservation)
		api.POST("/reservations/:id/confirm", reservationHandler.ConfirmReservation)
		api.POST("/reservations/:id/cancel", reservationHandler.CancelReservation)
	}

	if authHandler != nil {
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.CurrentUser)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
