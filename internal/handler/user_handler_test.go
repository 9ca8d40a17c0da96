package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/service"
	"github.com/cloudpospro-design/gold-jwellery-erp/mocks"
)

func TestUserHandler_GetByID_StaffCannotReadOthers(t *testing.T) {
	userSvc := new(mocks.MockUserService)
	h := handler.NewUserHandler(userSvc)

	other := uuid.New()
	c, w := newContext(http.MethodGet, "/api/v1/users/"+other.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: other.String()}}
	setAuthContext(c, uuid.New(), uuid.New(), "staff")

	h.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	userSvc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_GetByID_Self(t *testing.T) {
	userSvc := new(mocks.MockUserService)
	h := handler.NewUserHandler(userSvc)

	tenantID, userID := uuid.New(), uuid.New()
	userSvc.On("GetByID", mock.Anything, tenantID, userID).Return(&domain.User{ID: userID}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/users/"+userID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}
	setAuthContext(c, tenantID, userID, "staff")

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_Delete_Self(t *testing.T) {
	userSvc := new(mocks.MockUserService)
	h := handler.NewUserHandler(userSvc)

	userID := uuid.New()
	c, w := newContext(http.MethodDelete, "/api/v1/users/"+userID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}
	setAuthContext(c, uuid.New(), userID, "admin")

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_UpdateMe(t *testing.T) {
	userSvc := new(mocks.MockUserService)
	h := handler.NewUserHandler(userSvc)

	tenantID, userID := uuid.New(), uuid.New()
	userSvc.On("UpdateProfile", mock.Anything, tenantID, userID, mock.MatchedBy(func(in service.UpdateProfileInput) bool {
		return in.FullName != nil && *in.FullName == "Ravi K."
	})).Return(&domain.User{ID: userID, FullName: "Ravi K."}, nil)

	c, w := newContext(http.MethodPut, "/api/v1/users/me", map[string]string{"full_name": "Ravi K."})
	setAuthContext(c, tenantID, userID, "staff")

	h.UpdateMe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	userSvc.AssertExpectations(t)
}

func TestTenantHandler_UpdateBusiness_IgnoresActivation(t *testing.T) {
	tenantSvc := new(mocks.MockTenantService)
	h := handler.NewTenantHandler(tenantSvc)

	tenantID := uuid.New()
	tenantSvc.On("Update", mock.Anything, tenantID, mock.MatchedBy(func(in service.UpdateTenantInput) bool {
		return in.IsActive == nil && in.State != nil && *in.State == "Karnataka"
	})).Return(&domain.Tenant{ID: tenantID, State: "Karnataka", StateCode: "29"}, nil)

	c, w := newContext(http.MethodPut, "/api/v1/settings/business", map[string]any{"state": "Karnataka", "is_active": false})
	setAuthContext(c, tenantID, uuid.New(), "admin")

	h.UpdateBusiness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	tenantSvc.AssertExpectations(t)
}
