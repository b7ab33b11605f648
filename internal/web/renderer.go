// Package web renders dashboard pages with html/template and serves the
// embedded stylesheet and script.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/MUA122/IOT-Project/internal/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

var icons = map[string]string{
	"menu":      "☰",
	"bell":      "🔔",
	"dashboard": "▦",
	"timeline":  "📈",
	"info":      "ℹ",
	"sensors":   "📡",
	"shield":    "🛡",
	"flame":     "🔥",
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"chartJSON": func(spec dashboard.ChartSpec) (template.JS, error) {
			b, err := spec.ConfigJSON()
			if err != nil {
				return "", err
			}
			return template.JS(b), nil
		},
		// FontFamily is operator config and carries quotes
		"trustedCSS": func(s string) template.CSS {
			return template.CSS(s)
		},
		"icon": func(name string) string {
			if g, ok := icons[name]; ok {
				return g
			}
			return "•"
		},
	}
}

// Renderer executes the dashboard templates
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("dashboard").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page. Output is buffered so a template failure
// never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page dashboard.Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Assets serves dashboard.css and dashboard.js; mount under /assets/
func Assets() http.Handler {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/assets/", http.FileServer(http.FS(sub)))
}
