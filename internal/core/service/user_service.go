package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/osmss/inventory-system/internal/core/domain"
	"github.com/osmss/inventory-system/internal/core/ports"
)

// ReleaserInvalidator drops a cached display name after a user edit, so
// future ledger entries attribute the new name.
type ReleaserInvalidator interface {
	InvalidateName(ctx context.Context, userID int64) error
}

type userService struct {
	repo      ports.UserRepository
	releasers ReleaserInvalidator
	log       zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(repo ports.UserRepository, releasers ReleaserInvalidator, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, releasers: releasers, log: log}
}

// AddUser creates a user account with the password bcrypt-hashed at rest.
func (s *userService) AddUser(ctx context.Context, in ports.AddUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Username:     in.Username,
		Role:         in.Role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

// UpdateUser edits the mutable user fields. Passwords are not changed here.
func (s *userService) UpdateUser(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Firstname = in.Firstname
	user.Lastname = in.Lastname
	user.Username = in.Username
	user.Role = in.Role
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.releasers.InvalidateName(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("user_id", id).Msg("failed to invalidate releaser cache")
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
