package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charankanumuri/proshop96/logger"
	"github.com/charankanumuri/proshop96/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// OrderRepository is the interface for interacting with order storage
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	Save(ctx context.Context, order *models.Order) (*models.Order, error)
}

// UserFinder resolves order owners for display
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// OrderMailer sends the payment confirmation email
type OrderMailer interface {
	SendOrderPaidEmail(toEmail string, order *models.Order) error
}

// CreateOrderInput carries the client-supplied fields of a new order.
// Shipping, tax and total price are taken as given; the items subtotal is
// recomputed server-side from the line items.
type CreateOrderInput struct {
	OrderItems      []models.OrderItem     `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ItemsPrice      float64                `json:"itemsPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	TotalPrice      float64                `json:"totalPrice"`
}

// OrderService implements the order lifecycle: create, pay, deliver, list.
// Every operation takes the resolved caller explicitly.
type OrderService struct {
	orders OrderRepository
	users  UserFinder
	mailer OrderMailer
}

// NewOrderService creates a new OrderService instance
func NewOrderService(orders OrderRepository, users UserFinder, mailer OrderMailer) *OrderService {
	return &OrderService{
		orders: orders,
		users:  users,
		mailer: mailer,
	}
}

// Create persists a new unpaid, undelivered order owned by the caller
func (os *OrderService) Create(ctx context.Context, caller models.AuthUser, input CreateOrderInput) (*models.Order, error) {
	if len(input.OrderItems) == 0 {
		return nil, models.ErrEmptyOrder
	}

	order := &models.Order{
		UserID:          caller.ID,
		OrderItems:      input.OrderItems,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		ItemsPrice:      ItemsPrice(input.OrderItems),
		ShippingPrice:   input.ShippingPrice,
		TaxPrice:        input.TaxPrice,
		TotalPrice:      input.TotalPrice,
		CreatedAt:       time.Now(),
	}

	order, err := os.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	logger.Log.Info("order created",
		zap.String("order", order.ID.Hex()),
		zap.String("user", caller.ID.Hex()))

	return order, nil
}

// GetByID returns an order with its owner resolved for display. Orders are
// visible only to their owner or an administrator.
func (os *OrderService) GetByID(ctx context.Context, caller models.AuthUser, id primitive.ObjectID) (*models.Order, error) {
	order, err := os.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID != caller.ID && !caller.IsAdmin {
		return nil, models.ErrNotOrderOwner
	}

	owner, err := os.users.FindByID(ctx, order.UserID)
	if err != nil {
		if !errors.Is(err, models.ErrUserNotFound) {
			return nil, fmt.Errorf("resolve order owner: %w", err)
		}
		logger.Log.Warn("order owner no longer exists", zap.String("order", id.Hex()))
		return order, nil
	}

	order.User = &models.OrderUser{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	return order, nil
}

// MarkPaid records a payment confirmation on an order. A repeated
// confirmation overwrites the previous one so that payment retries are
// accepted.
func (os *OrderService) MarkPaid(ctx context.Context, caller models.AuthUser, id primitive.ObjectID, payment models.PaymentResult) (*models.Order, error) {
	order, err := os.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = &payment

	order, err = os.orders.Save(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("save paid order: %w", err)
	}

	logger.Log.Info("order paid",
		zap.String("order", order.ID.Hex()),
		zap.String("payment", payment.ID))

	os.sendPaidEmail(ctx, order)

	return order, nil
}

// MarkDelivered records delivery of a paid order
func (os *OrderService) MarkDelivered(ctx context.Context, caller models.AuthUser, id primitive.ObjectID) (*models.Order, error) {
	order, err := os.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.IsPaid {
		return nil, models.ErrOrderNotPaid
	}

	now := time.Now()
	order.IsDelivered = true
	order.DeliveredAt = &now

	order, err = os.orders.Save(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("save delivered order: %w", err)
	}

	logger.Log.Info("order delivered", zap.String("order", order.ID.Hex()))

	return order, nil
}

// ListMine returns the caller's orders
func (os *OrderService) ListMine(ctx context.Context, caller models.AuthUser) ([]models.Order, error) {
	return os.orders.FindByUserID(ctx, caller.ID)
}

// ListAll returns every order with its owner's id and name resolved
func (os *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := os.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// resolve each owner once
	owners := make(map[primitive.ObjectID]*models.OrderUser)
	for i := range orders {
		userID := orders[i].UserID
		owner, ok := owners[userID]
		if !ok {
			user, err := os.users.FindByID(ctx, userID)
			if err != nil {
				if !errors.Is(err, models.ErrUserNotFound) {
					return nil, fmt.Errorf("resolve order owner: %w", err)
				}
				owners[userID] = nil
				continue
			}
			owner = &models.OrderUser{ID: user.ID, Name: user.Name}
			owners[userID] = owner
		}
		orders[i].User = owner
	}

	return orders, nil
}

func (os *OrderService) sendPaidEmail(ctx context.Context, order *models.Order) {
	if os.mailer == nil {
		return
	}

	owner, err := os.users.FindByID(ctx, order.UserID)
	if err != nil {
		logger.Log.Warn("lookup owner for confirmation email",
			zap.String("order", order.ID.Hex()), zap.Error(err))
		return
	}

	go func(email string, order models.Order) {
		if err := os.mailer.SendOrderPaidEmail(email, &order); err != nil {
			logger.Log.Error("send confirmation email",
				zap.String("order", order.ID.Hex()), zap.Error(err))
		}
	}(owner.Email, *order)
}
