package middlewares

import (
	"encoding/json"
	"gin-tourbooking/constants"
	"gin-tourbooking/models"
	"gin-tourbooking/repositories"
	"gin-tourbooking/services"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthPipeline(t *testing.T) (*gin.Engine, services.IAuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	authService := services.NewAuthService(
		repositories.NewAuthRepository(db),
		"test-secret",
		map[string]bool{"admin@example.com": true},
	)

	r := gin.New()
	r.GET("/me", AuthMiddleware(authService), func(ctx *gin.Context) {
		identity := ctx.MustGet("identity").(*models.Identity)
		ctx.JSON(http.StatusOK, gin.H{"email": identity.Email, "role": identity.Role})
	})
	r.GET("/admin-only", AuthMiddleware(authService), AdminRequired(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, authService
}

func loginToken(t *testing.T, authService services.IAuthService, fullName string, email string) string {
	t.Helper()

	require.NoError(t, authService.Register(fullName, email, "pw123"))
	response, err := authService.Login(email, "pw123")
	require.NoError(t, err)
	return response.Token
}

func doRequest(r *gin.Engine, token string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["message"]
}

func TestMissingTokenRejected(t *testing.T) {
	r, _ := setupAuthPipeline(t)

	w := doRequest(r, "", "/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, constants.ErrNotLoggedIn, messageOf(t, w))
}

func TestMalformedAuthorizationHeaderRejected(t *testing.T) {
	r, authService := setupAuthPipeline(t)
	token := loginToken(t, authService, "Alice", "a@x.com")

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, constants.ErrNotLoggedIn, messageOf(t, w))
}

func TestInvalidTokenRejected(t *testing.T) {
	r, _ := setupAuthPipeline(t)

	w := doRequest(r, "garbage", "/me")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, constants.ErrInvalidToken, messageOf(t, w))
}

func TestValidTokenAttachesIdentity(t *testing.T) {
	r, authService := setupAuthPipeline(t)
	token := loginToken(t, authService, "Alice", "a@x.com")

	w := doRequest(r, token, "/me")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "a@x.com", body["email"])
	assert.Equal(t, constants.RoleUser, body["role"])
}

func TestAdminGateRejectsUserRole(t *testing.T) {
	r, authService := setupAuthPipeline(t)
	token := loginToken(t, authService, "Alice", "a@x.com")

	w := doRequest(r, token, "/admin-only")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, constants.ErrNoAdminPermission, messageOf(t, w))
}

func TestAdminGateAllowsAdminRole(t *testing.T) {
	r, authService := setupAuthPipeline(t)
	token := loginToken(t, authService, "Admin", "admin@example.com")

	w := doRequest(r, token, "/admin-only")
	assert.Equal(t, http.StatusOK, w.Code)
}
