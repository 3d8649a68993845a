package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

// FS embeds the dashboard page templates and its static assets
//
//go:embed static templates
var FS embed.FS

// GetHTTPFS returns the embedded static assets for HTTP serving
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		return nil, err
	}

	if !isFrontendBuilt(sub) {
		return nil, &fs.PathError{Op: "stat", Path: "app.js", Err: fs.ErrNotExist}
	}

	return http.FS(sub), nil
}

// Templates returns the embedded html/template sources
func Templates() (fs.FS, error) {
	return fs.Sub(FS, "templates")
}

// isFrontendBuilt checks that the dashboard script is present
func isFrontendBuilt(fsys fs.FS) bool {
	if _, err := fs.Stat(fsys, "app.js"); err != nil {
		return false
	}
	return true
}
