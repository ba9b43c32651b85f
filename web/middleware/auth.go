// Package middleware provides the gin middleware used by the web server.
package middleware

import (
	"net/http"
	"strings"

	"bioanalytica/web/entity"
	"bioanalytica/web/locale"
	"bioanalytica/web/token"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key under which the guard stores the verified
// token claims.
const ClaimsKey = "claims"

// Auth guards protected endpoints: it rejects requests without a valid
// bearer token before any handler or store is reached, and attaches the
// verified claims to the context for ownership checks.
//
// A missing token is a 401. An invalid or expired token is reported with
// invalidStatus, which is 401 for the API at large and 403 on the
// verify-token endpoint.
func Auth(secret []byte, invalidStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Error{
				Error: locale.I18n(c, "auth.tokenRequired"),
			})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := token.Verify(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(invalidStatus, entity.Error{
				Error: locale.I18n(c, "auth.tokenInvalid"),
			})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the claims attached by Auth, or nil when the request was
// not authenticated.
func GetClaims(c *gin.Context) *token.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}
