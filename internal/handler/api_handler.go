package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursehub/internal/errors"
	"coursehub/internal/service"
)

// APIHandler serves the read-only JSON endpoints.
type APIHandler struct {
	authService    service.AuthService
	catalogService service.CatalogService
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(authService service.AuthService, catalogService service.CatalogService) *APIHandler {
	return &APIHandler{
		authService:    authService,
		catalogService: catalogService,
	}
}

// Courses returns the catalog as JSON.
func (h *APIHandler) Courses(c echo.Context) error {
	courses, err := h.catalogService.Courses(c.Request().Context())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, courses)
}

// Me returns the authenticated identity. The session middleware has already
// verified the cookie and stored the user id in the context.
func (h *APIHandler) Me(c echo.Context) error {
	id, ok := c.Get("user").(uint)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid session",
			Code:  "INVALID_SESSION",
		})
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), id)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}
