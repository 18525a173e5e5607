package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"swiftparcel-backend-go/internal/db"
	"swiftparcel-backend-go/internal/models"
)

// userService implements UserService on top of the user repository.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Upsert creates the user on first sight and refreshes profile fields on
// every subsequent call. The role of an existing user is never touched here;
// escalation goes through SetRole or the rider activation flow.
func (s *userService) Upsert(ctx context.Context, req models.UpsertUserRequest) (*models.User, bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return nil, false, fmt.Errorf("failed to get user '%s': %w", req.Email, err)
		}
		role := req.Role
		if !models.ValidRole(role) {
			role = models.RoleUser
		}
		newUser := &models.User{
			Email:          req.Email,
			DisplayName:    req.DisplayName,
			PhotoURL:       req.PhotoURL,
			LastSignInTime: req.LastSignInTime,
			Role:           role,
			CreatedAt:      time.Now().UTC(),
		}
		if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
			return nil, false, fmt.Errorf("failed to create user '%s': %w", req.Email, createErr)
		}
		return newUser, true, nil
	}

	user.DisplayName = req.DisplayName
	user.PhotoURL = req.PhotoURL
	user.LastSignInTime = req.LastSignInTime
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to refresh user '%s': %w", req.Email, err)
	}
	return user, false, nil
}

// GetByEmail retrieves a user by email.
func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrUserNotFound, email)
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", email, err)
	}
	return user, nil
}

// List returns all users, or the exact match for emailFilter. An unknown
// filter email yields an empty list, not an error.
func (s *userService) List(ctx context.Context, emailFilter string) ([]*models.User, error) {
	if emailFilter == "" {
		users, err := s.userRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return users, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, emailFilter)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return []*models.User{}, nil
		}
		return nil, fmt.Errorf("failed to look up user '%s': %w", emailFilter, err)
	}
	return []*models.User{user}, nil
}

// RoleOf returns the user's role. Unknown emails default to the plain user
// role; the dashboard polls this endpoint before the profile exists.
func (s *userService) RoleOf(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.RoleUser, nil
		}
		return "", fmt.Errorf("failed to look up role for '%s': %w", email, err)
	}
	return user.Role, nil
}

// SetRole updates an existing user's role after validating the enum.
func (s *userService) SetRole(ctx context.Context, email, role string) error {
	if !models.ValidRole(role) {
		return fmt.Errorf("%w: '%s'", ErrInvalidRole, role)
	}
	if err := s.userRepo.SetRole(ctx, email, role); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrUserNotFound, email)
		}
		return fmt.Errorf("failed to set role for '%s': %w", email, err)
	}
	return nil
}
