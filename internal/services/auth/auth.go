// Package auth provides authentication services
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/findosh/onecart/internal/config"
	"github.com/findosh/onecart/internal/models"
	"github.com/findosh/onecart/internal/storage"
)

var (
	ErrInvalidInput       = errors.New("username and password required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username/password")
	ErrSessionActive      = errors.New("already logged in on another device")
	ErrInvalidToken       = errors.New("invalid token")
)

// dummyHash is compared against when the username is unknown, so a failed
// login costs one bcrypt comparison whether or not the account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("onecart-dummy"), bcrypt.DefaultCost)

// Service handles registration, login, token validation and logout.
// It enforces the single-device rule: a username holds at most one live
// token, and a second login is rejected rather than displacing the first.
type Service struct {
	cfg      *config.Config
	users    *storage.UserStore
	sessions *storage.SessionStore
}

// NewService creates a new auth service
func NewService(cfg *config.Config, users *storage.UserStore, sessions *storage.SessionStore) *Service {
	return &Service{
		cfg:      cfg,
		users:    users,
		sessions: sessions,
	}
}

// Register creates a new user account. The raw password is hashed with
// bcrypt and discarded.
func (s *Service) Register(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(username, string(hash))
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and claims the user's single session slot.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials;
// a correct password while another session is live returns
// ErrSessionActive and leaves the existing session untouched.
func (s *Service) Login(username, password string) (string, error) {
	user, found := s.users.Get(username)

	hash := dummyHash
	if found {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !found {
		return "", ErrInvalidCredentials
	}

	token, err := s.mintToken(username)
	if err != nil {
		return "", fmt.Errorf("failed to create token: %w", err)
	}

	if err := s.sessions.Claim(username, token); err != nil {
		return "", ErrSessionActive
	}

	return token, nil
}

// Authenticate resolves a bearer token to its username. The token must be
// a valid signed JWT and must equal the currently registered token for
// that username; a token superseded by logout fails here even though its
// signature still verifies.
func (s *Service) Authenticate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", ErrInvalidToken
	}

	current, ok := s.sessions.Token(username)
	if !ok || current != tokenString {
		return "", ErrInvalidToken
	}

	return username, nil
}

// Logout releases the user's session slot. It is idempotent: logging out
// a user with no active session succeeds as a no-op.
func (s *Service) Logout(username string) {
	s.sessions.Release(username)
}

func (s *Service) mintToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"jti": generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func generateJTI() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
