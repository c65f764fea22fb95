package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hireai/hireai/internal/dto"
	"github.com/hireai/hireai/internal/service"
)

// ContextUserKey is where the authenticated user lands in the gin context.
const ContextUserKey = "auth_user"

// RequireAuth guards a route group with bearer token authentication. With
// roles given, the user's role must match one of them; with none, any
// authenticated user passes.
func RequireAuth(authSvc service.AuthService, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}

		user, err := authSvc.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if user.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient role"})
				return
			}
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}
