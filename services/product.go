package services

import (
	"context"
	"fmt"
	"time"

	"github.com/charankanumuri/proshop96/logger"
	"github.com/charankanumuri/proshop96/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	productPageSize = 10
	topProductCount = 3
)

// ProductRepository is the interface for interacting with product storage
type ProductRepository interface {
	Count(ctx context.Context, keyword string) (int64, error)
	Find(ctx context.Context, keyword string, limit, skip int64) ([]models.Product, error)
	FindTop(ctx context.Context, limit int64) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UpdateProductInput carries the editable fields of a product
type UpdateProductInput struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	CountInStock int     `json:"countInStock"`
}

// ReviewInput carries a new product review
type ReviewInput struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// ProductService implements catalog browsing and admin product management
type ProductService struct {
	products ProductRepository
}

// NewProductService creates a new ProductService instance
func NewProductService(products ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List returns one page of products whose name matches the keyword
func (ps *ProductService) List(ctx context.Context, keyword string, page int64) (*models.ProductPage, error) {
	if page < 1 {
		page = 1
	}

	count, err := ps.products.Count(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	products, err := ps.products.Find(ctx, keyword, productPageSize, productPageSize*(page-1))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	pages := (count + productPageSize - 1) / productPageSize

	return &models.ProductPage{Products: products, Page: page, Pages: pages}, nil
}

// Top returns the highest rated products
func (ps *ProductService) Top(ctx context.Context) ([]models.Product, error) {
	return ps.products.FindTop(ctx, topProductCount)
}

// GetByID returns a single product
func (ps *ProductService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return ps.products.FindByID(ctx, id)
}

// Create inserts a placeholder product for the admin to edit afterwards
func (ps *ProductService) Create(ctx context.Context, caller models.AuthUser) (*models.Product, error) {
	product := &models.Product{
		UserID:      caller.ID,
		Name:        "Sample Name",
		Image:       "/images/sample.jpg",
		Brand:       "Sample Brand",
		Category:    "Sample Category",
		Description: "Sample Description",
		Reviews:     []models.Review{},
		CreatedAt:   time.Now(),
	}

	product, err := ps.products.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	logger.Log.Info("product created", zap.String("product", product.ID.Hex()))

	return product, nil
}

// Update replaces the editable fields of a product
func (ps *ProductService) Update(ctx context.Context, id primitive.ObjectID, input UpdateProductInput) (*models.Product, error) {
	product, err := ps.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Description = input.Description
	product.Image = input.Image
	product.Brand = input.Brand
	product.Category = input.Category
	product.CountInStock = input.CountInStock

	return ps.products.Save(ctx, product)
}

// Delete removes a product
func (ps *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return ps.products.Delete(ctx, id)
}

// AddReview appends a review by the caller and refreshes the product's
// review count and mean rating. Each user may review a product once.
func (ps *ProductService) AddReview(ctx context.Context, caller models.AuthUser, id primitive.ObjectID, input ReviewInput) error {
	product, err := ps.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	for _, review := range product.Reviews {
		if review.User == caller.ID {
			return models.ErrAlreadyReviewed
		}
	}

	product.Reviews = append(product.Reviews, models.Review{
		User:      caller.ID,
		Name:      caller.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	})

	product.NumReviews = len(product.Reviews)
	sum := 0.0
	for _, review := range product.Reviews {
		sum += review.Rating
	}
	product.Rating = sum / float64(len(product.Reviews))

	if _, err := ps.products.Save(ctx, product); err != nil {
		return fmt.Errorf("save reviewed product: %w", err)
	}

	return nil
}
