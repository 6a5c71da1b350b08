package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/model"
	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

// MaintenanceGate rejects requests with 503 while maintenance mode is
// active. Management users pass through so they can keep working and
// switch the mode back off.
func MaintenanceGate(svc service.MaintenanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, exists := c.Get("role"); exists && role.(string) == model.RoleManagement {
			c.Next()
			return
		}

		if svc.IsActive(c.Request.Context()) {
			response.Error(c, http.StatusServiceUnavailable, 10006, "Das System befindet sich im Wartungsmodus. Bitte versuchen Sie es später erneut.")
			c.Abort()
			return
		}

		c.Next()
	}
}
