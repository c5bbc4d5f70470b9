// Package web embeds the HTML templates so the binary ships as a
// single file.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var fs embed.FS

func Templates() *template.Template {
	return template.Must(template.ParseFS(fs, "templates/*.html"))
}
