package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"shopfront/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxOwnerIDKey = "owner_id"
	ctxRoleKey    = "role"

	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// AuthMiddleware authenticates storefront requests. The owner id baked into
// the token is what carts and orders are keyed by.
type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOwnerIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if role != RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetOwnerID(c *gin.Context) (uuid.UUID, bool) {
	ownerID, exists := c.Get(ctxOwnerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := ownerID.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	r, ok := role.(string)
	return r, ok
}
