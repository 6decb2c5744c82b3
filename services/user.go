package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/charankanumuri/proshop96/logger"
	"github.com/charankanumuri/proshop96/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface for interacting with user storage
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// RegisterInput carries a new account request
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileInput carries optional profile changes; empty fields are
// left unchanged.
type UpdateProfileInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserInput carries an admin edit of a user
type UpdateUserInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// UserService implements registration, authentication and user management
type UserService struct {
	users UserRepository
}

// NewUserService creates a new UserService instance
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a new non-admin account with a hashed password
func (us *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	_, err := us.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, models.ErrUserExists
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
	}

	user, err = us.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Log.Info("user registered", zap.String("user", user.ID.Hex()))

	return user, nil
}

// Authenticate verifies credentials and returns the matching user
func (us *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := us.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID returns a single user
func (us *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return us.users.FindByID(ctx, id)
}

// UpdateProfile applies the caller's profile changes and returns the
// updated user
func (us *UserService) UpdateProfile(ctx context.Context, caller models.AuthUser, input UpdateProfileInput) (*models.User, error) {
	user, err := us.users.FindByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	return us.users.Save(ctx, user)
}

// List returns every user
func (us *UserService) List(ctx context.Context) ([]models.User, error) {
	return us.users.FindAll(ctx)
}

// Update applies an admin edit to a user
func (us *UserService) Update(ctx context.Context, id primitive.ObjectID, input UpdateUserInput) (*models.User, error) {
	user, err := us.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	user.IsAdmin = input.IsAdmin

	return us.users.Save(ctx, user)
}

// Delete removes a user
func (us *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return us.users.Delete(ctx, id)
}
