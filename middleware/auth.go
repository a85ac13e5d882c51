package middleware

import (
	"errors"
	"strings"

	"blogicum/helper"
	"blogicum/logger"
	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = helper.NewHTTPHelper()

var errNoToken = errors.New("Authorization header required")

func bearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errNoToken
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", errors.New("Bearer token required")
	}
	return tokenString, nil
}

func setClaims(c *gin.Context, claims *services.Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("role", claims.Role)
	c.Set("claims", claims)
}

// AuthMiddleware rejects requests without a valid, unrevoked token.
func AuthMiddleware(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims, err := tokens.Parse(c.Request.Context(), tokenString)
		if err != nil {
			var unauthorized models.ErrorUnauthorized
			if errors.As(err, &unauthorized) {
				HTTPHelper.SendUnauthorizedError(c, unauthorized.Message, HTTPHelper.EmptyJsonMap())
			} else {
				HTTPHelper.SendInternalError(c, err)
			}
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the viewer when a good token is present and
// otherwise lets the request through as anonymous.
func OptionalAuth(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			c.Next()
			return
		}

		claims, err := tokens.Parse(c.Request.Context(), tokenString)
		if err != nil {
			logger.Info.Printf("ignoring token on %s: %v", c.Request.URL.Path, err)
			c.Next()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			HTTPHelper.SendUnauthorizedError(c, "User role not found", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		role, _ := userRole.(models.UserRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		HTTPHelper.SendForbiddenError(c, "Insufficient permissions", HTTPHelper.EmptyJsonMap())
		c.Abort()
	}
}
