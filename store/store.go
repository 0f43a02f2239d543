package store

import (
	"errors"

	"vibe-eats/models"
)

var (
	// ErrEmailTaken is returned by Create when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("user not found")
)

// UserPatch carries a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Password *string      `json:"password"`
	Role     *models.Role `json:"role"`
}

// UserStore is the storage contract the handlers depend on. The demo ships a
// single in-memory implementation; tests substitute their own.
type UserStore interface {
	// Create adds a user with a fresh id. Role defaults to Customer when empty.
	Create(name, email, password string, role models.Role) (*models.User, error)

	// FindByCredentials does an exact plaintext match on email and password.
	FindByCredentials(email, password string) (*models.User, error)

	// List returns all users in insertion order.
	List() []models.User

	// Update shallow-merges the patch over the record with the given id.
	Update(id int64, patch UserPatch) (*models.User, error)

	// Delete removes the record if present and reports the id back either way.
	Delete(id int64) int64
}
