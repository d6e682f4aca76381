package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"movie-reservation/internal/handler/httperr"
	"movie-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxCustomerKey = "customer"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetCustomer(c, identity)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// GetCustomer returns the identity set by RequireAuth.
func GetCustomer(c *gin.Context) (usecase.CustomerIdentity, bool) {
	v, exists := c.Get(ctxCustomerKey)
	if !exists {
		return usecase.CustomerIdentity{}, false
	}

	identity, ok := v.(usecase.CustomerIdentity)
	return identity, ok
}

// SetCustomer stores identity the way RequireAuth does.
func SetCustomer(c *gin.Context, identity usecase.CustomerIdentity) {
	c.Set(ctxCustomerKey, identity)
}
