package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stockroom/internal/handler"
	"go-stockroom/internal/middleware"
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/internal/ws"
	"go-stockroom/pkg/config"
	"go-stockroom/pkg/database"
	"go-stockroom/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	if err := migrate(db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(zlog)
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	roleRepo := repository.NewRoleRepo(db)
	entityRepo := repository.NewEntityRepo(db)
	relationshipRepo := repository.NewRelationshipRepo(db)
	userRepo := repository.NewUserRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	productRepo := repository.NewProductRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	stocktakingRepo := repository.NewStocktakingRepo(db)
	usageLogRepo := repository.NewUsageLogRepo(db)

	secret := []byte(cfg.SecretKey)

	roleService := service.NewRoleService(roleRepo, usageLogRepo, zlog)
	entityService := service.NewEntityService(entityRepo, relationshipRepo, roleRepo, usageLogRepo, db, zlog)
	authService := service.NewAuthService(userRepo, secret)
	userService := service.NewUserService(userRepo, entityRepo, usageLogRepo, zlog)
	inventoryService := service.NewInventoryService(inventoryRepo, productRepo, usageLogRepo, db, wsHub, zlog)
	stocktakingService := service.NewStocktakingService(stocktakingRepo, inventoryRepo, warehouseRepo, usageLogRepo, zlog)
	dashboardService := service.NewDashboardService(inventoryRepo)

	// 5. Seed reserved roles when this deployment manages them
	if cfg.ManageReservedRoles {
		if err := roleService.EnsureReservedRoles(); err != nil {
			zlog.Fatal("failed to seed reserved roles", zap.Error(err))
		}
	}

	authHandler := handler.NewAuthHandler(authService)
	roleHandler := handler.NewRoleHandler(roleService)
	entityHandler := handler.NewEntityHandler(entityService, entityRepo, relationshipRepo)
	userHandler := handler.NewUserHandler(userService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseRepo)
	productHandler := handler.NewProductHandler(productRepo)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	stocktakingHandler := handler.NewStocktakingHandler(stocktakingService)
	usageLogHandler := handler.NewUsageLogHandler(usageLogRepo)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stockroom v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowedOrigins}))
	app.Use(middleware.TrackRequest(zlog))

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo, secret), authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo, secret))

	// Roles
	protected.Get("/roles", roleHandler.GetRoles)
	protected.Get("/roles/:id", roleHandler.GetRole)
	protected.Post("/roles", roleHandler.CreateRole)
	protected.Put("/roles/:id", roleHandler.UpdateRole)
	protected.Delete("/roles/:id", roleHandler.DeleteRole)
	protected.Post("/roles/:id/restore", roleHandler.RestoreRole)

	// Entities
	protected.Get("/entities", entityHandler.GetEntities)
	protected.Get("/entities/:id", entityHandler.GetEntity)
	protected.Post("/entities", entityHandler.CreateEntity)
	protected.Put("/entities/:id", entityHandler.UpdateEntity)
	protected.Delete("/entities/:id", entityHandler.DeleteEntity)
	protected.Post("/entities/:id/restore", entityHandler.RestoreEntity)

	// Entity role assignments
	protected.Get("/entities/:id/roles", entityHandler.GetRoleAssignments)
	protected.Post("/entities/:id/roles", entityHandler.AssignRole)
	protected.Delete("/entities/:id/roles/:assignmentId", entityHandler.UnassignRole)

	// Entity relationships
	protected.Get("/entities/:id/relationships", entityHandler.GetRelationships)
	protected.Post("/relationships", entityHandler.AddRelationship)
	protected.Delete("/relationships/:relationshipId", entityHandler.RemoveRelationship)
	protected.Get("/relationship-types", entityHandler.GetRelationshipTypes)
	protected.Post("/relationship-types", entityHandler.CreateRelationshipType)

	// Entity types and tags
	protected.Get("/entity-types", entityHandler.GetEntityTypes)
	protected.Post("/entity-types", entityHandler.CreateEntityType)
	protected.Get("/tags", entityHandler.GetTags)
	protected.Post("/tags", entityHandler.CreateTag)

	// Users
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", userHandler.CreateUser)
	protected.Put("/users/:id", userHandler.UpdateUser)
	protected.Delete("/users/:id", userHandler.DeleteUser)

	// Warehouses
	protected.Get("/warehouses", warehouseHandler.GetWarehouses)
	protected.Get("/warehouses/:id", warehouseHandler.GetWarehouse)
	protected.Post("/warehouses", warehouseHandler.CreateWarehouse)
	protected.Put("/warehouses/:id", warehouseHandler.UpdateWarehouse)
	protected.Delete("/warehouses/:id", warehouseHandler.DeleteWarehouse)
	protected.Post("/warehouses/:id/restore", warehouseHandler.RestoreWarehouse)
	protected.Get("/warehouses/:id/partners", warehouseHandler.GetPartners)
	protected.Post("/warehouses/:id/partners", warehouseHandler.AddPartner)
	protected.Delete("/warehouses/:id/partners/:partnerId", warehouseHandler.RemovePartner)

	// Products
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)
	protected.Post("/products/:id/restore", productHandler.RestoreProduct)

	// Product categories and attributes
	protected.Get("/categories", productHandler.GetCategories)
	protected.Get("/categories/:id", productHandler.GetCategory)
	protected.Post("/categories", productHandler.CreateCategory)
	protected.Put("/categories/:id", productHandler.UpdateCategory)
	protected.Delete("/categories/:id", productHandler.DeleteCategory)
	protected.Get("/attributes/:id", productHandler.GetAttributes)
	protected.Post("/attributes", productHandler.CreateAttributes)
	protected.Post("/shared-attributes", productHandler.CreateSharedAttributes)

	// Inventories
	protected.Get("/inventories", inventoryHandler.GetInventories)
	protected.Get("/inventories/:id", inventoryHandler.GetInventory)
	protected.Post("/inventories", inventoryHandler.CreateInventory)
	protected.Put("/inventories/:id", inventoryHandler.UpdateInventory)
	protected.Delete("/inventories/:id", inventoryHandler.DeleteInventory)
	protected.Post("/inventories/:id/restore", inventoryHandler.RestoreInventory)
	protected.Get("/inventories/:id/history", inventoryHandler.GetHistory)
	protected.Post("/inventories/transfer", inventoryHandler.Transfer)

	// Stocktakings
	protected.Get("/stocktakings", stocktakingHandler.GetStocktakings)
	protected.Get("/stocktakings/:id", stocktakingHandler.GetStocktaking)
	protected.Post("/stocktakings", stocktakingHandler.CreateStocktaking)

	// Usage logs
	protected.Get("/usage-logs", usageLogHandler.GetLogs)
	protected.Get("/usage-logs/user/:userId", usageLogHandler.GetLogsByUser)
	protected.Get("/usage-logs/target/:kind/:id", usageLogHandler.GetLogsByTarget)

	// Dashboard
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
	protected.Get("/dashboard/stock-movement", dashboardHandler.GetStockMovement)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}
	zlog.Info("server exited")
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Role{},
		&model.EntityType{},
		&model.ContactNumber{},
		&model.ContactInfo{},
		&model.Tag{},
		&model.Entity{},
		&model.RelationshipType{},
		&model.EntityRelationship{},
		&model.RoleAssignment{},
		&model.User{},
		&model.Warehouse{},
		&model.WarehousePartner{},
		&model.ProductCategory{},
		&model.Product{},
		&model.SharedAttributes{},
		&model.ProductAttributes{},
		&model.Inventory{},
		&model.InventoryHistory{},
		&model.Stocktaking{},
		&model.StocktakingItem{},
		&model.EntityUsageLog{},
	)
}
