package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
)

// ctxActor extracts the actor injected by the Auth middleware and performs a
// fast-fail check before any service call: a known role proves the middleware
// ran and the stored role is one of the two trusted values.
func ctxActor(c echo.Context) (domain.Actor, error) {
	actor, _ := c.Get("actor").(domain.Actor)
	if !domain.KnownRole(actor.Role) {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}
