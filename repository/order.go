package repository

import (
	"context"
	"errors"

	"github.com/charankanumuri/proshop96/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository stores orders in the orders collection
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{collection: db.Collection("orders")}
}

// Create inserts a new order and returns it with its assigned id
func (or *OrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := or.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	order.ID = result.InsertedID.(primitive.ObjectID)
	return order, nil
}

// FindByID returns the order with the given id
func (or *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var order models.Order
	err := or.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

// FindByUserID returns all orders owned by the given user
func (or *OrderRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return or.find(ctx, bson.M{"user": userID})
}

// FindAll returns every order in storage
func (or *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return or.find(ctx, bson.M{})
}

// Save replaces the stored order with the given one
func (or *OrderRepository) Save(ctx context.Context, order *models.Order) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := or.collection.ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, models.ErrOrderNotFound
	}

	return order, nil
}

func (or *OrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := or.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
