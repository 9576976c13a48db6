// Package web holds the server-rendered pages of the dashboard.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"time"

	"github.com/SscSPs/hr_dashboard/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs returns the helpers available to every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"tone": func(s domain.Status) string { return s.Tone() },
		"toJSON": func(v any) (template.JS, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return template.JS(b), nil
		},
		"year":  func() int { return time.Now().Year() },
		"title": domain.ModalTitle,
		"draft": func(m domain.Modal) domain.Record {
			d, _ := domain.DraftOf(m)
			return d
		},
	}
}

// Templates parses the embedded pages. Page names are their file names.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}
