package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"coursehub/internal/auth"
	"coursehub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *auth.SessionService,
	pageHandler *handler.PageHandler,
	apiHandler *handler.APIHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Renderer = handler.NewRenderer()
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Server-rendered pages. All of them are anonymous-safe; identity is
	// resolved per request from the session cookie.
	e.GET("/", pageHandler.Home)
	e.GET("/register", pageHandler.ShowRegister)
	e.POST("/register", pageHandler.Register)
	e.GET("/login", pageHandler.ShowLogin)
	e.POST("/login", pageHandler.Login)
	e.GET("/logout", pageHandler.Logout)

	api := e.Group("/api")
	api.GET("/courses", apiHandler.Courses)

	// Secured routes (require a valid session cookie)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.SessionCookieName,
		ParseTokenFunc: func(c echo.Context, value string) (interface{}, error) {
			id, ok := sessions.Resolve(value)
			if !ok {
				return nil, errors.New("invalid session token")
			}
			return id, nil
		},
	}))
	secured.GET("/me", apiHandler.Me)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
