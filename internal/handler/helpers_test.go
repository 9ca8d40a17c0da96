package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/handler"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/middleware"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validator.RegisterBindings(); err != nil {
		panic(err)
	}
	handler.Logger = logger.Discard()
	os.Exit(m.Run())
}

func setAuthContext(c *gin.Context, tenantID, userID uuid.UUID, role string) {
	c.Set(middleware.ContextKeyTenantID, tenantID)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
	c.Set(middleware.ContextKeyEmail, "owner@lakshmi.in")
}

func newContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	var r io.Reader = http.NoBody
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, target, r)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
