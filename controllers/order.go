package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/charankanumuri/proshop96/middleware"
	"github.com/charankanumuri/proshop96/models"
	"github.com/charankanumuri/proshop96/services"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderLifecycle is the order service surface consumed by the controller
type OrderLifecycle interface {
	Create(ctx context.Context, caller models.AuthUser, input services.CreateOrderInput) (*models.Order, error)
	GetByID(ctx context.Context, caller models.AuthUser, id primitive.ObjectID) (*models.Order, error)
	MarkPaid(ctx context.Context, caller models.AuthUser, id primitive.ObjectID, payment models.PaymentResult) (*models.Order, error)
	MarkDelivered(ctx context.Context, caller models.AuthUser, id primitive.ObjectID) (*models.Order, error)
	ListMine(ctx context.Context, caller models.AuthUser) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
}

// OrderController handles order-related requests
type OrderController struct {
	svc OrderLifecycle
}

// NewOrderController creates a new OrderController
func NewOrderController(svc OrderLifecycle) *OrderController {
	return &OrderController{svc: svc}
}

// CreateOrder handles POST /api/orders
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var input services.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := oc.svc.Create(r.Context(), caller, input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// GetOrderByID handles GET /api/orders/{id}
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := oc.svc.GetByID(r.Context(), caller, id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// paymentRequest is the PayPal capture payload sent by the client
type paymentRequest struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	UpdateTime string `json:"update_time"`
	Payer      struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
}

// PayOrder handles PUT /api/orders/{id}/pay
func (oc *OrderController) PayOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var payment paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := oc.svc.MarkPaid(r.Context(), caller, id, models.PaymentResult{
		ID:           payment.ID,
		Status:       payment.Status,
		UpdateTime:   payment.UpdateTime,
		EmailAddress: payment.Payer.EmailAddress,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// DeliverOrder handles PUT /api/orders/{id}/deliver (admin only)
func (oc *OrderController) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := oc.svc.MarkDelivered(r.Context(), caller, id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// GetMyOrders handles GET /api/orders/myorders
func (oc *OrderController) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	orders, err := oc.svc.ListMine(r.Context(), caller)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// GetOrders handles GET /api/orders (admin only)
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := oc.svc.ListAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}
