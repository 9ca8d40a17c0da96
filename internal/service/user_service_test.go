package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func TestUserService_Create(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)
	tenantID := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Create(context.Background(), tenantID, service.CreateUserInput{
		Email:    " Manager@Lakshmi.IN ",
		Password: "password123",
		FullName: "Store Manager",
		Role:     domain.RoleManager,
	})

	require.NoError(t, err)
	assert.Equal(t, "manager@lakshmi.in", user.Email)
	assert.Equal(t, tenantID, user.TenantID)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email: "x@y.in", Password: "password123", FullName: "X", Role: "owner",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Update(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)
	tenantID, userID := uuid.New(), uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, userID).Return(&domain.User{
		ID: userID, TenantID: tenantID, Email: "a@b.in", Role: domain.RoleStaff, IsActive: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	role, active := domain.RoleManager, false
	user, err := svc.Update(context.Background(), tenantID, userID, service.UpdateUserInput{Role: &role, IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, user.Role)
	assert.False(t, user.IsActive)

	bad := domain.UserRole("root")
	_, err = svc.Update(context.Background(), tenantID, userID, service.UpdateUserInput{Role: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestUserService_UpdateProfile_RehashesPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)
	tenantID, userID := uuid.New(), uuid.New()

	repo.On("GetByID", mock.Anything, tenantID, userID).Return(&domain.User{ID: userID, PasswordHash: "old"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	pw := "new-password-1"
	user, err := svc.UpdateProfile(context.Background(), tenantID, userID, service.UpdateProfileInput{Password: &pw})

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(pw)))
}
