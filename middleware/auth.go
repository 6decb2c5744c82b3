package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/charankanumuri/proshop96/models"
	"github.com/charankanumuri/proshop96/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// UserFinder resolves the token's user against storage
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// CallerFromContext returns the authenticated caller attached by Auth
func CallerFromContext(ctx context.Context) (models.AuthUser, bool) {
	caller, ok := ctx.Value(UserContextKey).(models.AuthUser)
	return caller, ok
}

// WithCaller attaches a caller to the context. Used by Auth and by handler
// tests.
func WithCaller(ctx context.Context, caller models.AuthUser) context.Context {
	return context.WithValue(ctx, UserContextKey, caller)
}

// Auth verifies the Bearer token, resolves the user it names and attaches
// the caller identity to the request context
func Auth(users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header missing")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "Invalid Authorization header format")
				return
			}

			claims, err := utils.ParseJWT(parts[1])
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			userID, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			caller := models.AuthUser{
				ID:      user.ID,
				Name:    user.Name,
				Email:   user.Email,
				IsAdmin: user.IsAdmin,
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

// Admin ensures that the caller has admin privileges
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		if !ok || !caller.IsAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not authorized as an admin"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
