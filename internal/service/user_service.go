package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"teamhub/internal/errors"
	"teamhub/internal/model"
	"teamhub/internal/repository"
)

// CreateUserInput carries the fields accepted when creating a user.
type CreateUserInput struct {
	Username        string
	Password        string
	Email           *string
	FirstName       string
	LastName        string
	Role            model.Role
	ProfileImageURL string
}

// UpdateUserInput carries the optional fields of a partial user update.
type UpdateUserInput struct {
	Password        *string
	Email           *string
	FirstName       *string
	LastName        *string
	Role            *model.Role
	ProfileImageURL *string
	IsActive        *bool
}

// UserService handles user management operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, actor model.Role, in CreateUserInput) (*model.User, error)
	Update(ctx context.Context, actor model.Role, id uuid.UUID, in UpdateUserInput) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// List lists all active users.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.ListActive(ctx)
}

// Create creates a new user. Granting the admin role is restricted to
// admin actors.
func (s *userService) Create(ctx context.Context, actor model.Role, in CreateUserInput) (*model.User, error) {
	role := in.Role
	if role == "" {
		role = model.RoleColaborador
	}
	if role == model.RoleAdmin && actor != model.RoleAdmin {
		return nil, errors.ErrForbidden
	}

	existing, err := s.repo.FindByUsername(ctx, in.Username)
	if err == nil && existing != nil {
		return nil, errors.ErrUserExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:        in.Username,
		PasswordHash:    hashed,
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Role:            role,
		ProfileImageURL: in.ProfileImageURL,
		IsActive:        true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return nil, errors.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Update applies a partial update. Escalating anyone to admin is restricted
// to admin actors.
func (s *userService) Update(ctx context.Context, actor model.Role, id uuid.UUID, in UpdateUserInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, err
	}

	if in.Role != nil {
		if *in.Role == model.RoleAdmin && actor != model.RoleAdmin {
			return nil, errors.ErrForbidden
		}
		user.Role = *in.Role
	}
	if in.Password != nil {
		hashed, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	if in.Email != nil {
		user.Email = in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.ProfileImageURL != nil {
		user.ProfileImageURL = *in.ProfileImageURL
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return nil, errors.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// isDuplicateKey detects unique-constraint violations from the driver.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}
