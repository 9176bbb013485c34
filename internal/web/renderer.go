// Package web holds the HTTP surface of the board client: router, template
// renderer, and the central error handler.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/freeboard/board-client/internal/metrics"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageNames lists every page template. Each page is parsed together with the
// base layout so blocks resolve per page.
var pageNames = []string{
	"home",
	"login",
	"register",
	"post",
	"write",
	"admin",
	"forbidden",
	"error",
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses all embedded page templates. It fails fast on any parse
// error so a broken template never reaches request time.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcMap()).ParseFS(templatesFS,
			"templates/base.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %q: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	metrics.PageRendersTotal.WithLabelValues(name).Inc()
	return t.ExecuteTemplate(w, "base", data)
}
