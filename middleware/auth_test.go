package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charankanumuri/proshop96/models"
	"github.com/charankanumuri/proshop96/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUserFinder struct {
	user *models.User
	err  error
}

func (s *stubUserFinder) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func TestAuth(t *testing.T) {
	utils.JwtKey = []byte("test-secret")

	user := &models.User{
		ID:      primitive.NewObjectID(),
		Name:    "user1",
		Email:   "user1@example.com",
		IsAdmin: false,
	}
	token, err := utils.GenerateJWT(user.ID.Hex(), user.IsAdmin)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		finder     *stubUserFinder
		wantStatus int
		wantCaller bool
	}{
		{
			name:       "missing_header",
			authHeader: "",
			finder:     &stubUserFinder{user: user},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed_header",
			authHeader: "Token abc",
			finder:     &stubUserFinder{user: user},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid_token",
			authHeader: "Bearer not.a.token",
			finder:     &stubUserFinder{user: user},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown_user",
			authHeader: "Bearer " + token,
			finder:     &stubUserFinder{err: models.ErrUserNotFound},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid_token",
			authHeader: "Bearer " + token,
			finder:     &stubUserFinder{user: user},
			wantStatus: http.StatusOK,
			wantCaller: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCaller *models.AuthUser
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if caller, ok := CallerFromContext(r.Context()); ok {
					gotCaller = &caller
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			Auth(tt.finder)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCaller {
				require.NotNil(t, gotCaller)
				assert.Equal(t, user.ID, gotCaller.ID)
				assert.Equal(t, user.Email, gotCaller.Email)
			} else {
				assert.Nil(t, gotCaller)
			}
		})
	}
}

func TestAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin_caller_passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req = req.WithContext(WithCaller(req.Context(), models.AuthUser{ID: primitive.NewObjectID(), IsAdmin: true}))

		rec := httptest.NewRecorder()
		Admin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non_admin_caller_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req = req.WithContext(WithCaller(req.Context(), models.AuthUser{ID: primitive.NewObjectID()}))

		rec := httptest.NewRecorder()
		Admin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing_caller_is_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)

		rec := httptest.NewRecorder()
		Admin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
