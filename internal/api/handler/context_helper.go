package handler

import (
	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

// MustGetUserID extracts user_id from the gin context. When the JWT
// middleware did not inject it a 401 is written and ok is false; the caller
// should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "Nicht authentifiziert.")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "Nicht authentifiziert.")
		return "", false
	}
	return s, true
}

// MustGetRole extracts role from the gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "Nicht authentifiziert.")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "Nicht authentifiziert.")
		return "", false
	}
	return s, true
}

// MustGetPrincipal assembles the caller identity the services authorize
// against. Writes a 401 and returns ok=false when the context is missing
// either part.
func MustGetPrincipal(c *gin.Context) (service.Principal, bool) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return service.Principal{}, false
	}
	role, ok := MustGetRole(c)
	if !ok {
		return service.Principal{}, false
	}
	return service.Principal{UserID: userID, Role: role}, true
}
