package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chirpnet/chirp/internal/db"
	"github.com/chirpnet/chirp/internal/models"
)

// AuthService handles registration and credential verification. Session
// lifecycle is the caller's responsibility; login has no side effect on
// the store.
type AuthService struct {
	db    *gorm.DB
	users *db.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(database *gorm.DB) *AuthService {
	repo := db.NewRepository(database)
	return &AuthService{
		db:    database,
		users: db.NewUserRepository(repo),
	}
}

// Login verifies a username/password pair and returns the user record.
// Fails with ErrUserNotFound when the username is unknown and
// ErrInvalidPassword when the hash check fails.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return user, nil
}

// Register creates a new user with a hashed password. Fails with
// ErrUsernameTaken or ErrEmailTaken on duplicates. Registration does not
// imply login.
func (s *AuthService) Register(ctx context.Context, username, email, password, fullName string) (*models.User, error) {
	var user *models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := db.NewUserRepository(db.NewRepository(tx))

		existing, err := users.GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("lookup username: %w", err)
		}
		if existing != nil {
			return ErrUsernameTaken
		}

		existing, err = users.GetByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("lookup email: %w", err)
		}
		if existing != nil {
			return ErrEmailTaken
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user = &models.User{
			Username: username,
			Email:    email,
			Password: string(hash),
			FullName: fullName,
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
