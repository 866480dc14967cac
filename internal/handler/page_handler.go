package handler

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"coursehub/internal/auth"
	"coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/service"
)

// PageHandler serves the server-rendered pages.
type PageHandler struct {
	authService    service.AuthService
	catalogService service.CatalogService
	sessions       *auth.SessionService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(authService service.AuthService, catalogService service.CatalogService, sessions *auth.SessionService) *PageHandler {
	return &PageHandler{
		authService:    authService,
		catalogService: catalogService,
		sessions:       sessions,
	}
}

// RegisterForm represents a registration form submission.
type RegisterForm struct {
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone" validate:"required"`
	Password  string `form:"password" validate:"required"`
}

// LoginForm represents a login form submission.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Home renders the catalog together with the current identity. It is safe
// for anonymous visitors; a missing or invalid session cookie just renders
// the logged-out view.
func (h *PageHandler) Home(c echo.Context) error {
	courses, err := h.catalogService.Courses(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load courses")
	}

	kind, notice := popFlash(c)
	return c.Render(http.StatusOK, "home.html", pageData{
		User:       h.currentUser(c),
		Courses:    courses,
		Notice:     notice,
		NoticeKind: kind,
	})
}

// ShowRegister renders the registration form.
func (h *PageHandler) ShowRegister(c echo.Context) error {
	kind, notice := popFlash(c)
	return c.Render(http.StatusOK, "register.html", pageData{Notice: notice, NoticeKind: kind, Form: map[string]string{}})
}

// Register handles a registration submission. On success the visitor is sent
// to the login form; there is no auto-login.
func (h *PageHandler) Register(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return h.renderRegister(c, http.StatusBadRequest, "Invalid form submission", form)
	}
	if err := c.Validate(&form); err != nil {
		return h.renderRegister(c, http.StatusBadRequest, "All fields are required", form)
	}

	user, err := h.authService.Register(c.Request().Context(),
		form.FirstName, form.LastName, form.Email, form.Phone, form.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrEmailTaken) {
			return h.renderRegister(c, http.StatusConflict, "Email already registered!", form)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to register")
	}

	setFlash(c, "success", fmt.Sprintf("Welcome, %s! Account created successfully.", user.FirstName))
	return c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin renders the login form.
func (h *PageHandler) ShowLogin(c echo.Context) error {
	kind, notice := popFlash(c)
	return c.Render(http.StatusOK, "login.html", pageData{Notice: notice, NoticeKind: kind, Form: map[string]string{}})
}

// Login handles a login submission and establishes the session cookie.
func (h *PageHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, "Invalid form submission", form)
	}
	if err := c.Validate(&form); err != nil {
		return h.renderLogin(c, http.StatusBadRequest, "All fields are required", form)
	}

	user, err := h.authService.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			return h.renderLogin(c, http.StatusUnauthorized, "Invalid email or password", form)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to login")
	}

	token, err := h.sessions.Establish(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to establish session")
	}
	c.SetCookie(auth.Cookie(token))

	setFlash(c, "success", fmt.Sprintf("Welcome back, %s!", user.FirstName))
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie. It always succeeds.
func (h *PageHandler) Logout(c echo.Context) error {
	c.SetCookie(auth.ClearCookie())
	setFlash(c, "success", "You have been logged out")
	return c.Redirect(http.StatusSeeOther, "/")
}

// currentUser resolves the session cookie into a user, or nil for anonymous.
// A cookie referencing a since-deleted account also resolves to nil.
func (h *PageHandler) currentUser(c echo.Context) *model.User {
	cookie, err := c.Cookie(auth.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	id, ok := h.sessions.Resolve(cookie.Value)
	if !ok {
		return nil
	}
	user, err := h.authService.CurrentUser(c.Request().Context(), id)
	if err != nil {
		return nil
	}
	return user
}

func (h *PageHandler) renderRegister(c echo.Context, status int, notice string, form RegisterForm) error {
	return c.Render(status, "register.html", pageData{
		Notice:     notice,
		NoticeKind: "error",
		Form: map[string]string{
			"first_name": form.FirstName,
			"last_name":  form.LastName,
			"email":      form.Email,
			"phone":      form.Phone,
		},
	})
}

func (h *PageHandler) renderLogin(c echo.Context, status int, notice string, form LoginForm) error {
	return c.Render(status, "login.html", pageData{
		Notice:     notice,
		NoticeKind: "error",
		Form: map[string]string{
			"email": form.Email,
		},
	})
}
