package handler

import (
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	TenantSlug string `json:"tenant_slug" binding:"required" example:"lakshmi-jewellers"`
	Email      string `json:"email" binding:"required" example:"owner@lakshmi.in"`
	Password   string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateUserRequest represents the create user request body.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required" example:"counter@lakshmi.in"`
	Password string          `json:"password" binding:"required" example:"securepassword123"`
	FullName string          `json:"full_name" example:"Ravi Kumar"`
	Role     domain.UserRole `json:"role" binding:"required" example:"staff"`
}

// UpdateUserRequest represents the update user request body.
type UpdateUserRequest struct {
	Email    *string          `json:"email,omitempty" example:"ravi@lakshmi.in"`
	FullName *string          `json:"full_name,omitempty" example:"Ravi K."`
	Role     *domain.UserRole `json:"role,omitempty" example:"manager"`
	IsActive *bool            `json:"is_active,omitempty" example:"true"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
