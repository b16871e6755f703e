// Package models defines core domain types
package models

import (
	"time"
)

// User represents a registered account. The username is the identity key
// across every store and never changes after registration.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a new user with the given credentials hash
func NewUser(username, passwordHash string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
