package ports

import (
	"context"

	"github.com/osmss/inventory-system/internal/core/domain"
)

// AddUserInput carries the data needed to create a user account.
type AddUserInput struct {
	Firstname string
	Lastname  string
	Username  string
	Role      string
	Password  string
}

// UpdateUserInput carries the editable user fields. Passwords are not
// changed through this path.
type UpdateUserInput struct {
	Firstname string
	Lastname  string
	Username  string
	Role      string
}

// UserService defines use-case operations for user management.
type UserService interface {
	AddUser(ctx context.Context, input AddUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
