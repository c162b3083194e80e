package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"warehouse/internal/advisory"
	"warehouse/internal/handlers"
	"warehouse/internal/repositories"
	"warehouse/internal/services"
	"warehouse/pkg/events"
)

// NewApp builds the Fiber application with all dependencies wired. The
// returned cleanup function releases the store and broker connections and
// must be called on shutdown.
func NewApp() (*fiber.App, func(), error) {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "warehouse")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("ADVISORY_URL", "")
	viper.SetDefault("ADVISORY_API_KEY", "")
	viper.AutomaticEnv()

	// --- Store connection ---
	// Connect is lazy: if the store is unreachable the process keeps serving
	// (requests fail with server errors) and recovers once it appears.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(viper.GetString("MONGO_URI")))
	if err != nil {
		return nil, nil, err
	}
	go func() {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pingCancel()
		if err := mongoClient.Ping(pingCtx, readpref.Primary()); err != nil {
			log.WithError(err).Warn("store not reachable yet, continuing to serve")
		} else {
			log.Info("connected to MongoDB")
		}
	}()
	db := mongoClient.Database(viper.GetString("MONGO_DB"))

	// --- Event publisher (optional) ---
	var publisher services.EventPublisher
	var mqClient *events.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = events.NewClient(events.Config{URL: url})
		if err != nil {
			log.WithError(err).Warn("event publishing disabled: RabbitMQ unavailable")
		} else {
			publisher = mqClient
		}
	}

	// --- Repositories ---
	productRepo := repositories.NewMongoProductRepository(db)
	garageRepo := repositories.NewMongoGarageRepository(db)

	// --- Services ---
	productService := services.NewProductService(productRepo, publisher)
	garageService := services.NewGarageService(garageRepo, publisher)

	// --- Advisory collaborator ---
	advisor := advisory.NewHTTPAdvisor(
		viper.GetString("ADVISORY_URL"),
		viper.GetString("ADVISORY_API_KEY"),
	)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	garageHandler := handlers.NewGarageHandler(garageService)
	dashboardHandler := handlers.NewDashboardHandler(productService, garageService, advisor)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	productHandler.RegisterRoutes(app)
	garageHandler.RegisterRoutes(app)
	dashboardHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	cleanup := func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.WithError(err).Error("error disconnecting from MongoDB")
		}
		if mqClient != nil {
			if err := mqClient.Close(); err != nil {
				log.WithError(err).Error("error closing RabbitMQ client")
			}
		}
	}

	return app, cleanup, nil
}

func main() {
	app, cleanup, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	defer cleanup()

	appPort := viper.GetString("APP_PORT")
	log.Infof("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("error during Fiber shutdown")
	}

	log.Info("Server gracefully stopped")
}
