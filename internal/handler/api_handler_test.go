package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"coursehub/internal/model"
)

func TestAPIHandler_Courses(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	mockCatalog.On("Courses", mock.Anything).Return([]model.Course{
		{ID: 1, Title: "Digital Marketing", Price: 250000},
	}, nil)

	h := NewAPIHandler(new(MockAuthService), mockCatalog)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	rec := httptest.NewRecorder()

	err := h.Courses(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Digital Marketing")
	assert.Contains(t, rec.Body.String(), "250000")
}

func TestAPIHandler_Me(t *testing.T) {
	mockAuth := new(MockAuthService)
	mockAuth.On("CurrentUser", mock.Anything, uint(7)).Return(&model.User{ID: 7, FirstName: "Ada", Email: "ada@x.com"}, nil)

	h := NewAPIHandler(mockAuth, new(MockCatalogService))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", uint(7)) // set by the session middleware in production

	err := h.Me(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ada@x.com")
	// The password hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAPIHandler_Me_NoSession(t *testing.T) {
	h := NewAPIHandler(new(MockAuthService), new(MockCatalogService))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()

	err := h.Me(e.NewContext(req, rec))

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
