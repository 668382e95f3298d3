package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rajabpour4097/businessmanagement/internal/policy"
	"github.com/rajabpour4097/businessmanagement/internal/token"
	"github.com/rajabpour4097/businessmanagement/internal/utils"
)

const identityKey = "identity"

// Identity is the verified caller threaded through the request context
// once the access token has been checked.
type Identity struct {
	UserID   string
	Username string
	Role     policy.Role
}

// Auth verifies the bearer access token and stores the caller's identity
// in the gin context. Requests that fail here never reach a capability
// check.
func Auth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "missing access token", nil))
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccess(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			msg := "invalid access token"
			if errors.Is(err, token.ErrTokenExpired) {
				msg = "access token has expired"
			}
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", msg, nil))
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     policy.Role(claims.Role),
		})
		c.Next()
	}
}

// RequireCapability gates a route on the policy predicate. A caller that
// authenticated but lacks the capability gets 403, never 401.
func RequireCapability(cap policy.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "missing access token", nil))
			c.Abort()
			return
		}

		if !policy.CanAccess(identity.Role, cap) {
			utils.RespondError(c, utils.NewAppError(http.StatusForbidden, "FORBIDDEN", "insufficient role for this operation", nil))
			c.Abort()
			return
		}
		c.Next()
	}
}

// IdentityFrom extracts the verified caller set by Auth.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
