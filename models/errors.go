package models

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyOrder         = errors.New("no order items")
	ErrOrderNotPaid       = errors.New("order is not paid")
	ErrNotOrderOwner      = errors.New("order belongs to another user")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyReviewed    = errors.New("product already reviewed")
)
