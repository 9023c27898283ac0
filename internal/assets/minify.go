// Package assets minifies the servable files written under pkg/.
package assets

import (
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

// Minifier minifies html, css and js by file extension.
type Minifier struct {
	m *minify.M
}

// NewMinifier returns a Minifier for html, css and js.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)
	return &Minifier{m: m}
}

// Supports reports whether path has a minifiable extension.
func (mn *Minifier) Supports(path string) bool {
	_, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Minify returns the minified content of the file at path. Unsupported
// extensions are returned unchanged.
func (mn *Minifier) Minify(path string, content []byte) ([]byte, error) {
	mediaType, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return content, nil
	}
	return mn.m.Bytes(mediaType, content)
}
