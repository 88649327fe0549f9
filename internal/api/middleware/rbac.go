package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carlosmateus/maintenance-system/internal/api/metrics"
)

// RBAC enforces role-based access control on routes whose capability is a
// pure function of the role (e.g. the technician roster is admin-only).
// Ownership-scoped checks live in the services, not here. action names the
// gated operation on the denial counter, in the same label domain the
// handlers use ("update", "delete", ...).
func RBAC(action string, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues(action).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
