package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-shop-api/internal/handler"
	"go-shop-api/internal/middleware"
	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"
	"go-shop-api/internal/service"
	"go-shop-api/internal/ws"
	"go-shop-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// 1. Load Env
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	if err := db.AutoMigrate(&model.User{}, &model.Product{}, &model.ProductImage{}); err != nil {
		log.Fatal().Err(err).Msg("auto migration failed")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./static/products"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", uploadDir).Msg("cannot create upload dir")
	}
	hostURL := os.Getenv("HOST_URL")
	if hostURL == "" {
		hostURL = "http://localhost:3000"
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)

	authService := service.NewAuthService(userRepo, log.With().Str("component", "auth").Logger())
	productService := service.NewProductService(productRepo, db, wsHub, log.With().Str("component", "products").Logger())

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	fileHandler := handler.NewFileHandler(uploadDir, hostURL)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Shop API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/:term", productHandler.GetProduct)
	api.Get("/files/product/:imageName", fileHandler.GetProductImage)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	protected.Post("/products", middleware.RequireRole(model.RoleAdmin), productHandler.CreateProduct)
	protected.Patch("/products/:id", middleware.RequireRole(model.RoleAdmin), productHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequireRole(model.RoleAdmin), productHandler.DeleteProduct)

	protected.Post("/files/product", fileHandler.UploadProductImage)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register(c)
		defer wsHub.Unregister(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server exited")
}
