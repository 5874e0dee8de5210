// Package web embeds the HTML templates and static assets served by the
// starter template. Embedding keeps the binary self-contained: no template
// directory needs to ship next to the executable.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded template set. Templates are addressed by
// base filename (e.g. "index.html", "item_list.html").
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS,
		"templates/*.html", "templates/partials/*.html"))
}

// StaticFS returns the embedded static assets rooted at the static directory,
// suitable for mounting at /static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
