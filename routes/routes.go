package routes

import (
	"github.com/charankanumuri/proshop96/controllers"
	"github.com/charankanumuri/proshop96/middleware"
	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, users middleware.UserFinder, userController *controllers.UserController, productController *controllers.ProductController, orderController *controllers.OrderController) {
	auth := middleware.Auth(users)

	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/users", userController.Register).Methods("POST")
	api.HandleFunc("/users/login", userController.Login).Methods("POST")
	api.HandleFunc("/products", productController.GetProducts).Methods("GET")
	api.HandleFunc("/products/top", productController.GetTopProducts).Methods("GET")
	api.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Authenticated routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth)
	protected.HandleFunc("/users/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/users/profile", userController.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/products/{id}/reviews", productController.CreateProductReview).Methods("POST")
	protected.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	protected.HandleFunc("/orders/myorders", orderController.GetMyOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")
	protected.HandleFunc("/orders/{id}/pay", orderController.PayOrder).Methods("PUT")

	// Admin routes
	admin := api.PathPrefix("").Subrouter()
	admin.Use(auth)
	admin.Use(middleware.Admin)
	admin.HandleFunc("/users", userController.GetUsers).Methods("GET")
	admin.HandleFunc("/users/{id}", userController.GetUserByID).Methods("GET")
	admin.HandleFunc("/users/{id}", userController.UpdateUser).Methods("PUT")
	admin.HandleFunc("/users/{id}", userController.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", productController.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/deliver", orderController.DeliverOrder).Methods("PUT")
}
