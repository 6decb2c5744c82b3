package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charankanumuri/proshop96/logger"
	"github.com/charankanumuri/proshop96/models"
	"go.uber.org/zap"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("encode response", zap.Error(err))
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondError maps the service error taxonomy onto HTTP statuses with a
// {message} body. Unclassified errors surface as a generic 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrEmptyOrder):
		respondMessage(w, http.StatusBadRequest, "No order items")
	case errors.Is(err, models.ErrOrderNotPaid):
		respondMessage(w, http.StatusBadRequest, "Order is not paid")
	case errors.Is(err, models.ErrOrderNotFound):
		respondMessage(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, models.ErrProductNotFound):
		respondMessage(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, models.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrNotOrderOwner):
		respondMessage(w, http.StatusForbidden, "Not authorized to view this order")
	case errors.Is(err, models.ErrUserExists):
		respondMessage(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, models.ErrInvalidCredentials):
		respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, models.ErrAlreadyReviewed):
		respondMessage(w, http.StatusBadRequest, "Product already reviewed")
	default:
		logger.Log.Error("request failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
