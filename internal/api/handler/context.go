package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/localmark/store-directory/internal/core/ports"
)

// ctxActor extracts the identity injected by the Auth middleware. A missing
// role means the middleware never ran for this route — reject with 401
// rather than proceeding unauthenticated.
func ctxActor(c echo.Context) (ports.Actor, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("user_id").(int64)
	email, _ := c.Get("email").(string)
	return ports.Actor{ID: id, Email: email, Role: role}, nil
}

// pathID parses the named path parameter as a positive integer identifier.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
