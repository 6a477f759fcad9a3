package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"austay/internal/config"
	domainUser "austay/internal/domain/user"
	"austay/pkg/utils"
)

const CurrentUserKey = "currentUser"

// AuthMiddleware verifies the bearer token and resolves its subject email to
// a stored user. A token whose user no longer exists is rejected like any
// other bad token.
func AuthMiddleware(cfg *config.Config, userRepo domainUser.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := userRepo.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)

		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user stored by AuthMiddleware.
func GetCurrentUser(c *gin.Context) (*domainUser.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domainUser.User)
	return user, ok
}
