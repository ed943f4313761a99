package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"steamwiki/internal/models/db_models"
	"steamwiki/internal/repositories"
	"steamwiki/pkg/utils"
)

const currentUserKey = "current_user"

// AuthMiddleware resolves the bearer session token to a live account.
// Any malformed token, stale claim pair or lookup miss leaves the
// request anonymous; handlers decide what anonymity means per operation.
func AuthMiddleware(userRepo repositories.UserRepository, signer *utils.SessionSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("X-Authorization")
		if authHeader == "" {
			authHeader = c.GetHeader("Authorization")
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			c.Next()
			return
		}

		claims, err := signer.Parse(token)
		if err != nil {
			c.Next()
			return
		}

		accountID, err := uuid.Parse(claims.AccountID)
		if err != nil {
			c.Next()
			return
		}

		user, err := userRepo.FindBySteamAndID(c.Request.Context(), claims.SteamID, accountID)
		if err != nil || user == nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated account or nil for anonymous.
func CurrentUser(c *gin.Context) *db_models.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*db_models.User)
	if !ok {
		return nil
	}
	return user
}
