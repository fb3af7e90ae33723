package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/whop-relay/internal/domain/session"
	"github.com/hugohenrick/whop-relay/pkg/whop"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService("segredo", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateToken("user_1", session.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "user_1", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	a, _ := NewJWTService("a", time.Hour)
	b, _ := NewJWTService("b", time.Hour)

	token, err := a.GenerateToken("user_1", session.RoleMember)
	require.NoError(t, err)

	_, err = b.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc, _ := NewJWTService("segredo", time.Hour)

	claims := JWTClaims{
		UserID: "user_1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    issuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func newAuthRouter(svc *JWTService, roles ...string) *gin.Engine {
	router := gin.New()
	handlers := []gin.HandlerFunc{SessionMiddleware(svc)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleAuthMiddleware(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, whop.OnBehalfOf(c.Request.Context()))
	})
	router.GET("/protected", handlers...)
	return router
}

func TestSessionMiddleware(t *testing.T) {
	svc, _ := NewJWTService("segredo", time.Hour)
	token, _ := svc.GenerateToken("user_7", session.RoleMember)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "sem cabeçalho", header: "", status: http.StatusUnauthorized},
		{name: "formato inválido", header: "Token " + token, status: http.StatusUnauthorized},
		{name: "token inválido", header: "Bearer abc", status: http.StatusUnauthorized},
		{name: "token válido", header: "Bearer " + token, status: http.StatusOK, body: "user_7"},
	}

	router := newAuthRouter(svc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRoleAuthMiddleware(t *testing.T) {
	svc, _ := NewJWTService("segredo", time.Hour)
	router := newAuthRouter(svc, string(session.RoleOwner), string(session.RoleAdmin))

	member, _ := svc.GenerateToken("user_1", session.RoleMember)
	owner, _ := svc.GenerateToken("user_2", session.RoleOwner)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+member)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+owner)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
