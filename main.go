// main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/charankanumuri/proshop96/config"
	"github.com/charankanumuri/proshop96/controllers"
	"github.com/charankanumuri/proshop96/data"
	"github.com/charankanumuri/proshop96/logger"
	"github.com/charankanumuri/proshop96/repository"
	"github.com/charankanumuri/proshop96/routes"
	"github.com/charankanumuri/proshop96/services"
	"github.com/charankanumuri/proshop96/utils"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "import sample users and products, then exit")
	flag.Parse()

	cfg := config.New()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	utils.JwtKey = []byte(cfg.JWTSecret)

	ctx := context.Background()

	// Connect to MongoDB
	client, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Log.Fatal("Error connecting to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Log.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	db := client.Database(cfg.Database)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	if *seed {
		if err := data.Seed(ctx, userRepo, productRepo); err != nil {
			logger.Log.Fatal("Error seeding data", zap.Error(err))
		}
		logger.Log.Info("Sample data imported")
		return
	}

	// Initialize services
	emailService := utils.NewEmailService(cfg.PostmarkAPIToken, cfg.EmailSender)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, emailService)

	// Initialize controllers
	userController := controllers.NewUserController(userService)
	productController := controllers.NewProductController(productService)
	orderController := controllers.NewOrderController(orderService)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userRepo, userController, productController, orderController)

	// Start the server
	logger.Log.Info("Server is running", zap.String("port", cfg.Port))
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
