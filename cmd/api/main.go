package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"property-portfolio/internal/cleanup"
	"property-portfolio/internal/config"
	"property-portfolio/internal/database"
	"property-portfolio/internal/handlers"
	"property-portfolio/internal/imagestore"
	"property-portfolio/internal/repository"
	"property-portfolio/internal/scheduler"
	"property-portfolio/internal/search"
	"property-portfolio/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}

	// Initialize database
	db, err := database.New(appConfig.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Printf("Database ready (%s)", appConfig.Database.Type)

	// Make sure the upload directories exist before the first request
	for _, dir := range []string{"owners", "properties"} {
		if err := os.MkdirAll(appConfig.Images.UploadPath+"/"+dir, 0o755); err != nil {
			log.Fatalf("Failed to create upload directory: %v", err)
		}
	}

	// Initialize search (optional)
	var searchClient *search.Client
	if host := getEnvOrConfig(appConfig.Search.Meilisearch.Host, "MEILISEARCH_HOST", ""); host != "" {
		apiKey := getEnvOrConfig(appConfig.Search.Meilisearch.APIKey, "MEILISEARCH_KEY", "")
		searchClient = search.NewClient(host, apiKey)
		if err := searchClient.InitIndex(); err != nil {
			log.Printf("Warning: failed to initialize search index: %v", err)
		} else {
			log.Printf("Search index ready at %s", host)
		}
	} else {
		log.Println("Search is not configured; /api/search will be unavailable")
	}

	// Repositories share the one connection for the process lifetime
	gormDB := db.Gorm()
	owners := repository.NewOwners(gormDB)
	ownerImages := repository.NewOwnerImages(gormDB)
	properties := repository.NewProperties(gormDB)
	propertyImages := repository.NewPropertyImages(gormDB)
	traces := repository.NewTraces(gormDB)

	files := imagestore.New(appConfig.Images)

	ownerService := service.NewOwners(owners, ownerImages, files)
	propertyService := service.NewProperties(properties, owners, propertyImages, files, searchClient)
	traceService := service.NewTraces(traces, properties)

	// Orphan image cleanup
	cleanupService := cleanup.NewService(gormDB, appConfig.Images.UploadPath)
	appScheduler := scheduler.NewScheduler(cleanupService, appConfig.Cleanup)
	if err := appScheduler.Start(); err != nil {
		log.Printf("Warning: failed to start scheduler: %v", err)
	}
	defer appScheduler.Stop()

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", healthCheck)

	// Uploaded images are served back as static files
	r.Static(appConfig.Images.BasePath, appConfig.Images.UploadPath)

	api := r.Group("/api")
	handlers.NewOwnersHandler(ownerService).Register(api)
	handlers.NewPropertiesHandler(propertyService).Register(api)
	handlers.NewTracesHandler(traceService).Register(api)

	admin := r.Group("/api/admin")
	handlers.NewAdminHandler(gormDB, cleanupService).Register(admin)

	port := getEnv("PORT", appConfig.Server.Port)
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrConfig returns config value if set, otherwise falls back to environment variable, then default
func getEnvOrConfig(configValue, envKey, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, defaultValue)
}
