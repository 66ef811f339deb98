// Package views holds the server-rendered HTML pages.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

// Template names.
const (
	PlotList   = "plots/list"
	PlotCreate = "plots/create"
)

//go:embed templates
var files embed.FS

// Views renders named templates.
type Views struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Views, error) {
	tmpl, err := template.ParseFS(files, "templates/*.html", "templates/*/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Views{tmpl: tmpl}, nil
}

// Render executes the named template into a buffer first so that a template
// error never leaves a half-written page.
func (v *Views) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
