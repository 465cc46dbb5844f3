package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agrofix/storefront-api/pkg/helpers"
	"github.com/agrofix/storefront-api/pkg/response"
)

// CtxAdminIDKey is the gin context key the verified admin identity is
// stored under.
const CtxAdminIDKey = "adminID"

// Auth gates mutating admin operations behind a bearer session token. The
// Authorization header is read with an optional "Bearer " prefix. A missing
// credential is 401; a present but malformed, expired, or badly signed one
// is 403. The signed claim is trusted as-is: there is no per-request admin
// lookup, so a deleted admin's token stays valid until it expires.
func Auth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		token = strings.TrimPrefix(token, "Bearer ")
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "no token provided", nil)
			return
		}
		adminID, err := tokens.Verify(token)
		if err != nil {
			response.Abort(c, http.StatusForbidden, "invalid or expired token", nil)
			return
		}
		c.Set(CtxAdminIDKey, adminID)
		c.Next()
	}
}
