package render

import (
	"html/template"
	"io"

	"blogly/web"

	"github.com/labstack/echo/v4"
)

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// New parses every embedded template. Template names are the file base
// names, e.g. "users_show.html".
func New() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(web.Templates, "templates/*.html")),
	}
}

// Render executes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
