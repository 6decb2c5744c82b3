package data

import (
	"context"
	"fmt"
	"time"

	"github.com/charankanumuri/proshop96/models"
	"golang.org/x/crypto/bcrypt"
)

type userStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

type productStore interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
}

var sampleUsers = []models.User{
	{Name: "Admin User", Email: "admin@example.com", IsAdmin: true},
	{Name: "user1", Email: "user1@example.com"},
	{Name: "user2", Email: "user2@example.com"},
	{Name: "user3", Email: "user3@example.com"},
}

var sampleProducts = []models.Product{
	{
		Name:         "Airpods Wireless Bluetooth Headphones",
		Image:        "/images/airpods.jpg",
		Brand:        "Apple",
		Category:     "Electronics",
		Description:  "Bluetooth technology lets you connect it with compatible devices wirelessly",
		Price:        89.99,
		CountInStock: 10,
	},
	{
		Name:         "iPhone 11 Pro 256GB Memory",
		Image:        "/images/phone.jpg",
		Brand:        "Apple",
		Category:     "Electronics",
		Description:  "Introducing the iPhone 11 Pro. A transformative triple-camera system",
		Price:        599.99,
		CountInStock: 7,
	},
	{
		Name:         "Cannon EOS 80D DSLR Camera",
		Image:        "/images/camera.jpg",
		Brand:        "Cannon",
		Category:     "Electronics",
		Description:  "Characterized by versatile imaging specs, further clarified by a pair of robust focusing systems",
		Price:        929.99,
		CountInStock: 5,
	},
	{
		Name:         "Sony Playstation 4 Pro White Version",
		Image:        "/images/playstation.jpg",
		Brand:        "Sony",
		Category:     "Electronics",
		Description:  "The ultimate home entertainment center starts with PlayStation",
		Price:        399.99,
		CountInStock: 11,
	},
	{
		Name:         "Logitech G-Series Gaming Mouse",
		Image:        "/images/mouse.jpg",
		Brand:        "Logitech",
		Category:     "Electronics",
		Description:  "Get a better handle on your games with this Logitech LIGHTSYNC gaming mouse",
		Price:        49.99,
		CountInStock: 7,
	},
	{
		Name:         "Amazon Echo Dot 3rd Generation",
		Image:        "/images/alexa.jpg",
		Brand:        "Amazon",
		Category:     "Electronics",
		Description:  "Meet Echo Dot, our most popular smart speaker with a fabric design",
		Price:        29.99,
		CountInStock: 0,
	},
}

// Seed imports the sample users and products. The first created user, the
// admin, becomes the owner of every sample product.
func Seed(ctx context.Context, users userStore, products productStore) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash sample password: %w", err)
	}

	var admin *models.User
	for i := range sampleUsers {
		user := sampleUsers[i]
		user.Password = string(hashed)
		created, err := users.Create(ctx, &user)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", user.Email, err)
		}
		if admin == nil {
			admin = created
		}
	}

	for i := range sampleProducts {
		product := sampleProducts[i]
		product.UserID = admin.ID
		product.Reviews = []models.Review{}
		product.CreatedAt = time.Now()
		if _, err := products.Create(ctx, &product); err != nil {
			return fmt.Errorf("seed product %s: %w", product.Name, err)
		}
	}

	return nil
}
