package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dropu-backend/models"
	"dropu-backend/services"
	"dropu-backend/utils"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	CtxAccountID = "account_id"
	CtxRole      = "role"
)

// RequireAuth decodes the session cookie and, when roles are given, rejects
// identities outside that set. Missing or invalid cookies are 401; a valid
// identity with the wrong role is 403.
func RequireAuth(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(services.SessionCookieName)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			c.Abort()
			return
		}

		id, role, err := services.DecodeSession(value)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid session")
			c.Abort()
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				utils.JSONError(c, http.StatusForbidden, "access denied")
				c.Abort()
				return
			}
		}

		c.Set(CtxAccountID, id)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// AccountID reads the authenticated account id set by RequireAuth.
func AccountID(c *gin.Context) uint {
	v, _ := c.Get(CtxAccountID)
	id, _ := v.(uint)
	return id
}

// SessionRole reads the authenticated role set by RequireAuth.
func SessionRole(c *gin.Context) models.Role {
	v, _ := c.Get(CtxRole)
	role, _ := v.(models.Role)
	return role
}
