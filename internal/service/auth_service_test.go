package service

import (
	"context"
	"errors"
	"testing"

	"github.com/chirpnet/chirp/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	auth := NewAuthService(gdb)

	user, err := auth.Register(ctx, "alice", "alice@x.com", "pw", "Alice A")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if user.ID == 0 {
		t.Error("Register() should assign an ID")
	}
	if user.Password == "pw" {
		t.Error("Register() must not store the plain password")
	}

	got, err := auth.Login(ctx, "alice", "pw")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if got.Username != "alice" || got.FullName != "Alice A" {
		t.Errorf("Login() returned %q/%q, want alice/Alice A", got.Username, got.FullName)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	auth := NewAuthService(gdb)

	if _, err := auth.Register(ctx, "alice", "alice@x.com", "pw", "Alice A"); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	// Same username, different email
	if _, err := auth.Register(ctx, "alice", "other@x.com", "pw2", "Other"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("Register() with taken username = %v, want ErrUsernameTaken", err)
	}

	// Same email, different username
	if _, err := auth.Register(ctx, "bob", "alice@x.com", "pw2", "Bob"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() with taken email = %v, want ErrEmailTaken", err)
	}

	// Failed registrations must not leave rows behind
	var count int64
	gdb.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 user row after duplicate registrations, got %d", count)
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	auth := NewAuthService(gdb)

	if _, err := auth.Register(ctx, "alice", "alice@x.com", "pw", "Alice A"); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	if _, err := auth.Login(ctx, "nobody", "pw"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Login() for unknown user = %v, want ErrUserNotFound", err)
	}

	if _, err := auth.Login(ctx, "alice", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("Login() with wrong password = %v, want ErrInvalidPassword", err)
	}

	// Failed logins never mutate state
	var count int64
	gdb.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 user row after failed logins, got %d", count)
	}
}
