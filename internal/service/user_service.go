package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/port"
)

const bcryptCost = 12

// CreateUserInput is the DTO for creating a user.
type CreateUserInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	FullName string          `json:"full_name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required"`
}

// UpdateUserInput is the DTO admins use to update a user.
type UpdateUserInput struct {
	Email    *string          `json:"email"`
	FullName *string          `json:"full_name"`
	Role     *domain.UserRole `json:"role"`
	IsActive *bool            `json:"is_active"`
}

// UpdateProfileInput is what a user may change about themselves.
type UpdateProfileInput struct {
	FullName *string `json:"full_name"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// UserService defines the user management contract.
type UserService interface {
	Create(ctx context.Context, tenantID uuid.UUID, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, tenantID, userID uuid.UUID, input UpdateUserInput) (*domain.User, error)
	UpdateProfile(ctx context.Context, tenantID, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error)
	Delete(ctx context.Context, tenantID, userID uuid.UUID) error
}

type userService struct {
	repo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(repo port.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, tenantID uuid.UUID, input CreateUserInput) (*domain.User, error) {
	if !domain.ValidUserRoles[input.Role] {
		return nil, domain.ErrInvalidRole
	}
	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		TenantID:     tenantID,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, tenantID, userID)
}

func (s *userService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *userService) Update(ctx context.Context, tenantID, userID uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil && !domain.ValidUserRoles[*input.Role] {
		return nil, domain.ErrInvalidRole
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	setIf(&user.FullName, input.FullName)
	setIf(&user.Role, input.Role)
	setIf(&user.IsActive, input.IsActive)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, tenantID, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	setIf(&user.FullName, input.FullName)
	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, tenantID, userID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, userID)
}

func hashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}
