package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/learnaray/learnaray/internal/domain/contract"
	"github.com/learnaray/learnaray/internal/domain/entity"
	"github.com/learnaray/learnaray/internal/handler/http/dto"
)

// TokenParser parses an access token and returns the embedded user id.
type TokenParser interface {
	ParseAccessToken(token string) (string, error)
}

// SessionReader looks up the live session snapshot for a user id.
type SessionReader interface {
	GetSession(ctx context.Context, userID string) (*entity.User, bool, error)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: message})
}

// AuthMiddleware authenticates requests with the access-token cookie (or a
// bearer header) and requires a live session entry. The resolved user is set
// on the context under "user".
func AuthMiddleware(tokens TokenParser, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if token == "" {
			abortUnauthorized(c, "please login to access this resource")
			return
		}

		userID, err := tokens.ParseAccessToken(token)
		if err != nil {
			abortUnauthorized(c, "access token is not valid")
			return
		}

		user, found, err := sessions.GetSession(c.Request.Context(), userID)
		if err != nil || !found {
			abortUnauthorized(c, "please login to access this resource")
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// RequireAdmin allows only users with the admin role past this point.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("user")
		if !exists {
			abortUnauthorized(c, "please login to access this resource")
			return
		}
		user, ok := v.(*entity.User)
		if !ok || user.Role != entity.UserRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Success: false, Message: "this resource requires the admin role"})
			return
		}
		c.Next()
	}
}

var _ SessionReader = (contract.ISessionCache)(nil)
