package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user in the system
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	IsAdmin  bool               `bson:"isAdmin" json:"isAdmin"`
}

// AuthUser is the caller identity resolved by the auth middleware and
// passed explicitly into every service operation.
type AuthUser struct {
	ID      primitive.ObjectID
	Name    string
	Email   string
	IsAdmin bool
}
