// Package web serves the embedded customer browsing UI. The assets are
// compiled into the binary so the server ships as a single artifact.
package web

import (
	"embed"

	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// RegisterRoutes mounts the UI at / and its assets under /static.
func RegisterRoutes(e *echo.Echo) {
	e.FileFS("/", "static/index.html", staticFS)
	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))
}
