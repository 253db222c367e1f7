package middleware

import (
	"net/http"

	"bookingplan/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireRoles only lets through callers holding one of allowedRoles.
// It must run after RequireAuth.
func RequireRoles(allowedRoles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		rc, ok := Caller(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "unauthorized",
				"code":       "unauthorized",
				"request_id": GetRequestID(c),
			})
			return
		}
		if _, ok := allowed[rc.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "role not allowed",
				"code":       "forbidden",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
