package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(authSvc)

	pair := &service.TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresAt: time.Now().Add(time.Hour)}
	authSvc.On("Login", mock.Anything, service.LoginInput{
		TenantSlug: "lakshmi", Email: "owner@lakshmi.in", Password: "password123",
	}).Return(pair, nil)

	c, w := newContext(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"tenant_slug": "lakshmi", "email": "owner@lakshmi.in", "password": "password123",
	})
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeResponse(t, w).Success)
	authSvc.AssertExpectations(t)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   map[string]string
		svcErr error
		status int
	}{
		{"missing password", map[string]string{"tenant_slug": "lakshmi", "email": "owner@lakshmi.in"}, nil, http.StatusBadRequest},
		{"bad email", map[string]string{"tenant_slug": "lakshmi", "email": "nope", "password": "password123"}, nil, http.StatusBadRequest},
		{"wrong password", map[string]string{"tenant_slug": "lakshmi", "email": "owner@lakshmi.in", "password": "password123"}, domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive business", map[string]string{"tenant_slug": "lakshmi", "email": "owner@lakshmi.in", "password": "password123"}, domain.ErrTenantInactive, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := new(mocks.MockAuthService)
			h := handler.NewAuthHandler(authSvc)
			if tt.svcErr != nil {
				authSvc.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).Return(nil, tt.svcErr)
			}

			c, w := newContext(http.MethodPost, "/api/v1/auth/login", tt.body)
			h.Login(c)

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, decodeResponse(t, w).Success)
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(authSvc)
	authSvc.On("RefreshToken", mock.Anything, "stale").Return(nil, domain.ErrUnauthorized)

	c, w := newContext(http.MethodPost, "/api/v1/auth/refresh", map[string]string{"refresh_token": "stale"})
	h.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeResponse(t, w).Error.Code)
}
