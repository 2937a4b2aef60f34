package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"duty-roster-backend/internal/auth"
	"duty-roster-backend/internal/database/models"
	"duty-roster-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.AuthService, *mocks.MockSoldierRepositoryInterface) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	soldierRepo := mocks.NewMockSoldierRepositoryInterface(ctrl)
	service := auth.NewAuthService(soldierRepo, "test-secret")
	middleware := auth.NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("user")})
	})
	return router, service, soldierRepo
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header is required")
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid authorization header format")
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthSetsUserIdentity(t *testing.T) {
	router, service, soldierRepo := setupAuthRouter(t)

	soldier := &models.Soldier{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Alice Cohen",
		PhoneE164: "+972501234567",
	}
	soldierRepo.EXPECT().GetByPhone("+972501234567").Return(soldier, nil)
	token, _, err := service.Login("+972501234567")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Cohen")
}
