package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"printperfect-backend/internal/config"
	"printperfect-backend/internal/database"
	"printperfect-backend/internal/filestore"
	"printperfect-backend/internal/handlers"
	"printperfect-backend/internal/middleware"
	"printperfect-backend/internal/storage"
	"printperfect-backend/internal/telemetry"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Pick the repository backend. Without DATABASE_URL everything lives in
	// process memory and is lost on restart.
	var repo storage.Repository
	if cfg.DatabaseURL != "" {
		migrator, err := database.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		migrator.Close()

		pgRepo, err := storage.NewPostgresRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize database repository: %v", err)
		}
		defer pgRepo.Close()
		repo = pgRepo
	} else {
		log.Println("Warning: DATABASE_URL not set, using in-memory storage. All data is lost on restart.")
		repo = storage.NewMemoryRepository()
	}

	// Pick the file-store backend for uploaded image binaries.
	var files filestore.Store
	switch cfg.StorageBackend {
	case "supabase":
		files, err = filestore.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize Supabase storage: %v", err)
		}
	default:
		files, err = filestore.NewLocalStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
	}

	uploadHandler := handlers.NewUploadHandler(repo, files)
	imagesHandler := handlers.NewImagesHandler(repo, files)
	ordersHandler := handlers.NewOrdersHandler(repo)
	authHandler := handlers.NewAuthHandler(repo, cfg)

	router := gin.Default()
	router.Use(telemetry.Middleware())

	router.GET("/health", handlers.HealthHandler)
	router.GET("/metrics", gin.WrapH(telemetry.Handler()))

	api := router.Group("/api")

	api.GET("/pricing", handlers.PricingHandler)

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.POST("/images/upload", uploadHandler.Upload)
	api.GET("/images/file/:fileName", imagesHandler.GetImageFile)
	api.GET("/images/:id", imagesHandler.GetImage)

	api.POST("/orders", ordersHandler.CreateOrder)
	api.GET("/orders/:id", ordersHandler.GetOrder)
	api.GET("/orders", middleware.AuthMiddleware(cfg), ordersHandler.ListOrders)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
