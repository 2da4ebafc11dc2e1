package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/pkg/cookie"
	"campaign-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey      = "user_id"
	ctxLoginTypeKey   = "login_type"
	ctxAccessTokenKey = "access_token"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts both full and device logins; the validation engine is
// what decides that a device login may not redeem. Requests with no valid
// token at all are rejected here.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		userID, loginType, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setCallerContext(c, userID, loginType, token)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not
// abort on failure. Detail views work anonymously; the verdict just comes
// back "not authenticated".
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, loginType, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			// Invalid token; continue without aborting.
			c.Next()
			return
		}

		setCallerContext(c, userID, loginType, token)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setCallerContext(c *gin.Context, userID uuid.UUID, loginType campaign.LoginType, token string) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxLoginTypeKey, loginType)
	c.Set(ctxAccessTokenKey, token)
	c.Set("jwt_claims", map[string]any{
		"user_id":    userID.String(),
		"login_type": string(loginType),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetLoginType defaults to device login when the request carried no valid
// token, so downstream validation treats the caller as anonymous.
func GetLoginType(c *gin.Context) campaign.LoginType {
	loginType, exists := c.Get(ctxLoginTypeKey)
	if !exists {
		return campaign.LoginDevice
	}

	lt, ok := loginType.(campaign.LoginType)
	if !ok {
		return campaign.LoginDevice
	}
	return lt
}

// GetAccessToken returns the raw bearer token so gateways can forward it.
func GetAccessToken(c *gin.Context) string {
	token, exists := c.Get(ctxAccessTokenKey)
	if !exists {
		return ""
	}

	t, _ := token.(string)
	return t
}
