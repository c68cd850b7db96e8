// Package web ships the browser form for the travel request register as a
// single embedded page. The page talks to the JSON API only; it holds no
// state of its own.
package web

import (
	"embed"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// Register mounts the form UI on the root path.
func Register(e *echo.Echo) {
	fsys := echo.MustSubFS(staticFS, "static")
	e.FileFS("/", "index.html", fsys)
}
