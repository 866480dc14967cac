package handler

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"coursehub/internal/model"
	"coursehub/web"
)

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded template set.
func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(web.Templates, "templates/*.html")),
	}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// pageData is the plain structure every page template consumes.
type pageData struct {
	User       *model.User
	Courses    []model.Course
	Notice     string
	NoticeKind string
	Form       map[string]string
}
