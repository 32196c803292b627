package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/auth"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// sessionKey is the gin context key holding the decoded UserSession.
const sessionKey = "user_session"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// RequireAuth validates the bearer token and attaches the session to the
// request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			m.unauthorizedResponse(c, "Missing authorization token")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.unauthorizedResponse(c, "Invalid or expired token")
			return
		}

		session := claims.Session()
		session.Permissions = auth.DefaultPermissionsForRole(session.Role)
		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireModule gates a route group on module visibility.
func (m *AuthMiddleware) RequireModule(module string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if !auth.HasModuleAccess(session, module) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

// RequirePermission gates a mutation on a named capability.
func (m *AuthMiddleware) RequirePermission(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if !auth.HasPermission(session, key) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// Fall back to a cookie for browser sessions.
	if token, err := c.Cookie("auth_token"); err == nil {
		return token
	}
	return ""
}

func (m *AuthMiddleware) unauthorizedResponse(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// GetSession returns the decoded session for the request, or nil when the
// request is unauthenticated.
func GetSession(c *gin.Context) *models.UserSession {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, ok := v.(*models.UserSession)
	if !ok {
		return nil
	}
	return session
}
