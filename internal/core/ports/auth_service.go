package ports

import (
	"context"

	"github.com/osmss/inventory-system/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed bearer token
	// plus the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
