package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/pkg/jwt"
	"funkdesk/backend/pkg/redis"
	"funkdesk/backend/pkg/response"
)

// JWTAuth extracts and validates the Bearer access token, checks the redis
// blacklist (skipped when rdb is nil) and injects the principal into the
// context.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "Nicht authentifiziert. Bitte melden Sie sich an.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "Ungültiger Authorization-Header.")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "Token ungültig oder abgelaufen.")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "Ungültiger Token-Typ.")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "Token wurde widerrufen.")
				c.Abort()
				return
			}
			// On a redis error the token is accepted; availability over
			// strict revocation here.
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth allows the request only for the listed roles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "Nicht authentifiziert.")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "Keine Berechtigung für diese Aktion.")
		c.Abort()
	}
}
