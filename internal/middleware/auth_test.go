package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsupply/erp-api/internal/roles"
	"github.com/medsupply/erp-api/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-secret")
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString(ContextUserID),
			"userRole": c.GetString(ContextUserRole),
		})
	})
	return r
}

func perform(r *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w := perform(newAuthRouter(), http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := newAuthRouter()

	w := perform(r, http.MethodGet, "/protected", "token-without-scheme")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(r, http.MethodGet, "/protected", "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	w := perform(newAuthRouter(), http.MethodGet, "/protected", "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewarePassesIdentityThrough(t *testing.T) {
	token, err := utils.GenerateJWT("abc123", "doctor")
	require.NoError(t, err)

	w := perform(newAuthRouter(), http.MethodGet, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"abc123"`)
	assert.Contains(t, w.Body.String(), `"userRole":"doctor"`)
}

func newGatedRouter(required ...roles.Role) (*gin.Engine, *bool) {
	handlerRan := false
	r := gin.New()
	r.POST("/gated", AuthMiddleware(), RequireRoles(required...), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r, &handlerRan
}

func TestRequireRolesForbidsOutsideAllowList(t *testing.T) {
	r, handlerRan := newGatedRouter(roles.Admin, roles.Accountant)

	token, err := utils.GenerateJWT("abc123", "doctor")
	require.NoError(t, err)

	w := perform(r, http.MethodPost, "/gated", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *handlerRan, "gated handler must not run for a forbidden role")
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	r, handlerRan := newGatedRouter(roles.Deliverer)

	token, err := utils.GenerateJWT("abc123", "deliverer")
	require.NoError(t, err)

	w := perform(r, http.MethodPost, "/gated", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *handlerRan)
}

func TestRequireRolesOwnerOverride(t *testing.T) {
	// Owner is not in the allow-list but passes anyway.
	r, handlerRan := newGatedRouter(roles.Deliverer)

	token, err := utils.GenerateJWT("abc123", "owner")
	require.NoError(t, err)

	w := perform(r, http.MethodPost, "/gated", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *handlerRan)
}

func TestRequireRolesRejectsUnknownRole(t *testing.T) {
	r, handlerRan := newGatedRouter(roles.Admin)

	token, err := utils.GenerateJWT("abc123", "patient")
	require.NoError(t, err)

	w := perform(r, http.MethodPost, "/gated", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *handlerRan)
}
