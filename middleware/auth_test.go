package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(tokens services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	whoami := func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	}
	router.GET("/private", AuthMiddleware(tokens), whoami)
	router.GET("/public", OptionalAuth(tokens), whoami)
	router.GET("/admin", AuthMiddleware(tokens), RequireRole(models.RoleAdmin), whoami)
	return router
}

func serve(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour, services.NewMemoryRevocationStore())
	router := newRouter(tokens)

	author, err := tokens.Issue(&models.User{ID: 7, Username: "alice", Role: models.RoleAuthor})
	require.NoError(t, err)
	admin, err := tokens.Issue(&models.User{ID: 1, Username: "root", Role: models.RoleAdmin})
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		status int
		body   string
	}{
		{"no header", "/private", "", http.StatusUnauthorized, ""},
		{"not bearer", "/private", "Token " + author, http.StatusUnauthorized, ""},
		{"garbage token", "/private", "Bearer nope", http.StatusUnauthorized, ""},
		{"valid token", "/private", "Bearer " + author, http.StatusOK, `{"user_id":7}`},
		{"public anonymous", "/public", "", http.StatusOK, `{"user_id":null}`},
		{"public bad token", "/public", "Bearer nope", http.StatusOK, `{"user_id":null}`},
		{"public valid token", "/public", "Bearer " + author, http.StatusOK, `{"user_id":7}`},
		{"author on admin route", "/admin", "Bearer " + author, http.StatusForbidden, ""},
		{"admin on admin route", "/admin", "Bearer " + admin, http.StatusOK, `{"user_id":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.path, tt.header)
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour, services.NewMemoryRevocationStore())
	router := newRouter(tokens)

	token, err := tokens.Issue(&models.User{ID: 7, Username: "alice", Role: models.RoleAuthor})
	require.NoError(t, err)
	claims, err := tokens.Parse(context.Background(), token)
	require.NoError(t, err)
	require.NoError(t, tokens.Revoke(context.Background(), claims))

	assert.Equal(t, http.StatusUnauthorized, serve(router, "/private", "Bearer "+token).Code)
	assert.JSONEq(t, `{"user_id":null}`, serve(router, "/public", "Bearer "+token).Body.String())
}
