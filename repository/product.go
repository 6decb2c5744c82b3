package repository

import (
	"context"
	"errors"

	"github.com/charankanumuri/proshop96/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository stores products in the products collection
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

// keywordFilter builds a case-insensitive name filter; an empty keyword
// matches everything.
func keywordFilter(keyword string) bson.M {
	if keyword == "" {
		return bson.M{}
	}
	return bson.M{"name": bson.M{"$regex": keyword, "$options": "i"}}
}

// Count returns the number of products matching the keyword
func (pr *ProductRepository) Count(ctx context.Context, keyword string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return pr.collection.CountDocuments(ctx, keywordFilter(keyword))
}

// Find returns a page of products matching the keyword
func (pr *ProductRepository) Find(ctx context.Context, keyword string, limit, skip int64) ([]models.Product, error) {
	opts := options.Find().SetLimit(limit).SetSkip(skip)
	return pr.find(ctx, keywordFilter(keyword), opts)
}

// FindTop returns the highest rated products, up to the given limit
func (pr *ProductRepository) FindTop(ctx context.Context, limit int64) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(limit)
	return pr.find(ctx, bson.M{}, opts)
}

// FindByID returns the product with the given id
func (pr *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var product models.Product
	err := pr.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}

	return &product, nil
}

// Create inserts a new product and returns it with its assigned id
func (pr *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := pr.collection.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	return product, nil
}

// Save replaces the stored product with the given one
func (pr *ProductRepository) Save(ctx context.Context, product *models.Product) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := pr.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, models.ErrProductNotFound
	}

	return product, nil
}

// Delete removes the product with the given id
func (pr *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := pr.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrProductNotFound
	}

	return nil
}

func (pr *ProductRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := pr.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}
