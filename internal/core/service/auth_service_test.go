package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/osmss/inventory-system/internal/core/domain"
)

const testSecret = "test-secret"

func credUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &domain.User{
		ID:           3,
		Firstname:    "Ana",
		Lastname:     "Reyes",
		Username:     "areyes",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newStubUserRepo(credUser(t, "s3cretpass"))
	svc := NewAuthService(repo, testSecret, time.Hour)

	token, user, err := svc.Login(context.Background(), "areyes", "s3cretpass")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if user == nil || user.Username != "areyes" {
		t.Fatalf("expected authenticated user, got %+v", user)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		t.Fatalf("expected valid HS256 token, got: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("expected map claims, got %T", parsed.Claims)
	}
	if claims["username"] != "areyes" {
		t.Errorf("expected username claim, got %v", claims["username"])
	}
	if claims["role"] != domain.RoleAdmin {
		t.Errorf("expected role claim %q, got %v", domain.RoleAdmin, claims["role"])
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo(credUser(t, "s3cretpass"))
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "areyes", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testSecret, time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got: %v", err)
	}
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(credUser(t, "s3cretpass")), testSecret, time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "s3cretpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty username: expected ErrInvalidCredentials, got: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "areyes", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got: %v", err)
	}
}
