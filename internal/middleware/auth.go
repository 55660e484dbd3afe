package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservations/internal/auth"
)

const ContextIdentity = "identity"

// IdentityMiddleware decodes the bearer token, when there is a valid one,
// and attaches the caller to the request context. It never rejects a
// request; authorization is decided per operation.
func IdentityMiddleware(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := issuer.ExtractIdentity(c.GetHeader("Authorization"))
		if id != nil {
			c.Set(ContextIdentity, id)
			c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), id))
		}
		c.Next()
	}
}
