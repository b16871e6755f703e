package storage

import (
	"errors"

	"github.com/findosh/onecart/internal/models"
)

// ErrDuplicateUsername is returned when registering a username that exists
var ErrDuplicateUsername = errors.New("username already exists")

// UserStore holds registered accounts keyed by username
type UserStore struct {
	users *keyedStore[*models.User]
}

// NewUserStore creates an empty user store
func NewUserStore() *UserStore {
	return &UserStore{users: newKeyedStore[*models.User]()}
}

// Create inserts a new user. The existence check and insert are atomic so
// two concurrent registrations of the same username cannot both succeed.
func (s *UserStore) Create(user *models.User) error {
	var err error
	s.users.update(user.Username, func(existing *models.User, ok bool) (*models.User, bool) {
		if ok {
			err = ErrDuplicateUsername
			return existing, true
		}
		return user, true
	})
	return err
}

// Get retrieves a user by username
func (s *UserStore) Get(username string) (*models.User, bool) {
	return s.users.get(username)
}

// Count returns the number of registered users
func (s *UserStore) Count() int {
	return s.users.size()
}
