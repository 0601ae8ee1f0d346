package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// PersonaHeader selects the planning persona when no ?persona= is given.
const PersonaHeader = "Persona"

// Persona returns the persona named by the request, or "" for the default.
func Persona(c echo.Context) string {
	if p := strings.TrimSpace(c.QueryParam("persona")); p != "" {
		return p
	}
	return strings.TrimSpace(c.Request().Header.Get(PersonaHeader))
}

// QueryInt parses an integer query parameter, falling back to def when it
// is absent or malformed.
func QueryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ErrorJSON answers 400 when err wraps one of clientErrs and 500 otherwise.
func ErrorJSON(c echo.Context, err error, clientErrs ...error) error {
	for _, ce := range clientErrs {
		if errors.Is(err, ce) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
