package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"teamhub/internal/auth"
	"teamhub/internal/errors"
	"teamhub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListActive(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &model.User{
		ID:           uuid.New(),
		Username:     "maria",
		PasswordHash: string(hashed),
		FirstName:    "Maria",
		LastName:     "Silva",
		Role:         model.RoleColaborador,
		IsActive:     true,
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := new(MockUserRepository)
	jwtService := auth.NewJWTService("test-secret")
	svc := NewAuthService(repo, jwtService)

	user := activeUser(t, "senha123")
	repo.On("FindByUsername", mock.Anything, "maria").Return(user, nil)

	token, got, err := svc.Login(context.Background(), "maria", "senha123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// The issued token verifies back to the same identity.
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Role, claims.Role)

	repo.AssertExpectations(t)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, auth.NewJWTService("test-secret"))

	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, auth.NewJWTService("test-secret"))

	user := activeUser(t, "senha123")
	user.IsActive = false
	repo.On("FindByUsername", mock.Anything, "maria").Return(user, nil)

	_, _, err := svc.Login(context.Background(), "maria", "senha123")
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, auth.NewJWTService("test-secret"))

	user := activeUser(t, "senha123")
	repo.On("FindByUsername", mock.Anything, "maria").Return(user, nil)

	_, _, err := svc.Login(context.Background(), "maria", "errada")
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestCurrentUserNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo, auth.NewJWTService("test-secret"))

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CurrentUser(context.Background(), id)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
