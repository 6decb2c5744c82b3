package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charankanumuri/proshop96/middleware"
	"github.com/charankanumuri/proshop96/models"
	"github.com/charankanumuri/proshop96/services"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductCatalog is the product service surface consumed by the controller
type ProductCatalog interface {
	List(ctx context.Context, keyword string, page int64) (*models.ProductPage, error)
	Top(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, caller models.AuthUser) (*models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, input services.UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddReview(ctx context.Context, caller models.AuthUser, id primitive.ObjectID, input services.ReviewInput) error
}

// ProductController handles product-related requests
type ProductController struct {
	svc ProductCatalog
}

// NewProductController creates a new ProductController
func NewProductController(svc ProductCatalog) *ProductController {
	return &ProductController{svc: svc}
}

// GetProducts handles GET /api/products?keyword=&pageNumber=
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	page, err := strconv.ParseInt(r.URL.Query().Get("pageNumber"), 10, 64)
	if err != nil {
		page = 1
	}

	result, err := pc.svc.List(r.Context(), keyword, page)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetTopProducts handles GET /api/products/top
func (pc *ProductController) GetTopProducts(w http.ResponseWriter, r *http.Request) {
	products, err := pc.svc.Top(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// GetProductByID handles GET /api/products/{id}
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := pc.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /api/products (admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	product, err := pc.svc.Create(r.Context(), caller)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/{id} (admin only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var input services.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := pc.svc.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/{id} (admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := pc.svc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Product removed")
}

// CreateProductReview handles POST /api/products/{id}/reviews
func (pc *ProductController) CreateProductReview(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var input services.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := pc.svc.AddReview(r.Context(), caller, id, input); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, "Review added")
}
