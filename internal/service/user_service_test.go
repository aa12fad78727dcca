package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"teamhub/internal/errors"
	"teamhub/internal/model"
)

func TestCreateUserEscalationDeniedForLider(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), model.RoleLider, CreateUserInput{
		Username:  "novo",
		Password:  "senha123",
		FirstName: "Novo",
		LastName:  "Admin",
		Role:      model.RoleAdmin,
	})
	assert.ErrorIs(t, err, errors.ErrForbidden)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateUserEscalationAllowedForAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	repo.On("FindByUsername", mock.Anything, "novo").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user, err := svc.Create(context.Background(), model.RoleAdmin, CreateUserInput{
		Username:  "novo",
		Password:  "senha123",
		FirstName: "Novo",
		LastName:  "Admin",
		Role:      model.RoleAdmin,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.NotEqual(t, "senha123", user.PasswordHash)
	repo.AssertExpectations(t)
}

func TestCreateUserDefaultsToColaborador(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	repo.On("FindByUsername", mock.Anything, "novo").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user, err := svc.Create(context.Background(), model.RoleLider, CreateUserInput{
		Username:  "novo",
		Password:  "senha123",
		FirstName: "Novo",
		LastName:  "Membro",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.RoleColaborador, user.Role)
	assert.True(t, user.IsActive)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	existing := &model.User{ID: uuid.New(), Username: "novo"}
	repo.On("FindByUsername", mock.Anything, "novo").Return(existing, nil)

	_, err := svc.Create(context.Background(), model.RoleAdmin, CreateUserInput{
		Username:  "novo",
		Password:  "senha123",
		FirstName: "Novo",
		LastName:  "Membro",
	})
	assert.ErrorIs(t, err, errors.ErrUserExists)
}

func TestUpdateUserEscalationDeniedForLider(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	target := &model.User{ID: uuid.New(), Username: "alvo", Role: model.RoleColaborador}
	repo.On("FindByID", mock.Anything, target.ID).Return(target, nil)

	adminRole := model.RoleAdmin
	_, err := svc.Update(context.Background(), model.RoleLider, target.ID, UpdateUserInput{
		Role: &adminRole,
	})
	assert.ErrorIs(t, err, errors.ErrForbidden)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateUserDeactivate(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo)

	target := &model.User{ID: uuid.New(), Username: "alvo", Role: model.RoleColaborador, IsActive: true}
	repo.On("FindByID", mock.Anything, target.ID).Return(target, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	inactive := false
	user, err := svc.Update(context.Background(), model.RoleAdmin, target.ID, UpdateUserInput{
		IsActive: &inactive,
	})
	assert.NoError(t, err)
	assert.False(t, user.IsActive)
}
