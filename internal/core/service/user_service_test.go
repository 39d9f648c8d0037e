package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/osmss/inventory-system/internal/core/domain"
	"github.com/osmss/inventory-system/internal/core/ports"
)

func TestAddUser_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubCache(), zerolog.Nop())

	user, err := svc.AddUser(context.Background(), ports.AddUserInput{
		Firstname: "Jane",
		Lastname:  "Porter",
		Username:  "jporter",
		Password:  "hunter2hunter2",
		Role:      domain.RoleStaff,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if user.PasswordHash == "hunter2hunter2" {
		t.Fatal("password must not be stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")) != nil {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestUpdateUser_InvalidatesReleaserCache(t *testing.T) {
	u := testUser()
	repo := newStubUserRepo(u)
	cache := newStubCache()
	cache.releasers[u.ID] = "Jane Porter"
	svc := NewUserService(repo, cache, zerolog.Nop())

	updated, err := svc.UpdateUser(context.Background(), u.ID, ports.UpdateUserInput{
		Firstname: "Janet",
		Lastname:  "Porter",
		Username:  "jporter",
		Role:      domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if updated.Firstname != "Janet" || updated.Role != domain.RoleAdmin {
		t.Errorf("expected updated fields, got %+v", updated)
	}
	if _, ok := cache.releasers[u.ID]; ok {
		t.Error("expected releaser cache entry to be dropped after update")
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubCache(), zerolog.Nop())

	_, err := svc.UpdateUser(context.Background(), 99, ports.UpdateUserInput{
		Firstname: "Nobody",
		Lastname:  "Here",
		Username:  "nobody",
		Role:      domain.RoleStaff,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
}
