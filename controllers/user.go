package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/charankanumuri/proshop96/middleware"
	"github.com/charankanumuri/proshop96/models"
	"github.com/charankanumuri/proshop96/services"
	"github.com/charankanumuri/proshop96/utils"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserAccounts is the user service surface consumed by the controller
type UserAccounts interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, caller models.AuthUser, input services.UpdateProfileInput) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, input services.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserController handles user-related requests
type UserController struct {
	svc UserAccounts
}

// NewUserController creates a new UserController
func NewUserController(svc UserAccounts) *UserController {
	return &UserController{svc: svc}
}

// userResponse is the profile shape returned by auth endpoints
type userResponse struct {
	ID      primitive.ObjectID `json:"_id"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	IsAdmin bool               `json:"isAdmin"`
	Token   string             `json:"token,omitempty"`
}

func newUserResponse(user *models.User, withToken bool) (userResponse, error) {
	resp := userResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}

	if withToken {
		token, err := utils.GenerateJWT(user.ID.Hex(), user.IsAdmin)
		if err != nil {
			return userResponse{}, err
		}
		resp.Token = token
	}

	return resp, nil
}

// Register handles POST /api/users
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	user, err := uc.svc.Register(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	resp, err := newUserResponse(user, true)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/users/login
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := uc.svc.Authenticate(r.Context(), creds.Email, creds.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	resp, err := newUserResponse(user, true)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetProfile handles GET /api/users/profile
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	user, err := uc.svc.GetByID(r.Context(), caller.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	resp, err := newUserResponse(user, false)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// UpdateProfile handles PUT /api/users/profile
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var input services.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := uc.svc.UpdateProfile(r.Context(), caller, input)
	if err != nil {
		respondError(w, err)
		return
	}

	resp, err := newUserResponse(user, true)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// GetUsers handles GET /api/users (admin only)
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uc.svc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// GetUserByID handles GET /api/users/{id} (admin only)
func (uc *UserController) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := uc.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/{id} (admin only)
func (uc *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var input services.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := uc.svc.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}

	resp, err := newUserResponse(user, false)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// DeleteUser handles DELETE /api/users/{id} (admin only)
func (uc *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := uc.svc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "User removed")
}
