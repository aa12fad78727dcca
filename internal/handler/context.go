package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"teamhub/internal/errors"
	"teamhub/internal/model"
)

const userContextKey = "currentUser"

// SetCurrentUser stores the authenticated user on the request context.
func SetCurrentUser(c echo.Context, u *model.User) {
	c.Set(userContextKey, u)
}

// CurrentUser returns the authenticated user set by the auth middleware.
func CurrentUser(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(userContextKey).(*model.User)
	return u, ok
}

// respondError translates a service error into the wire error shape.
// Internal detail is logged server-side and never sent to the client.
func respondError(c echo.Context, err error) error {
	he := errors.MapErrorToHTTP(err)
	if he.StatusCode == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}
