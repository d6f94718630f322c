// Package web holds the embedded design page and its static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// IndexTemplate is the name of the design form page
const IndexTemplate = "index.html"

// PageData is passed to every page template
type PageData struct {
	Title   string
	Version string
}

// Renderer renders the embedded page templates
type Renderer struct {
	templates *template.Template
	data      PageData
}

// NewRenderer parses the embedded templates
func NewRenderer(version string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		templates: tmpl,
		data: PageData{
			Title:   "Active Filter Designer",
			Version: version,
		},
	}, nil
}

// Render executes the named template into w. The page is buffered first so a
// template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, r.data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded static assets relative to the static/ directory
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded at build time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
