package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"titanic-dash/internal/ui/assets"
)

// MountRoutes registers the dashboard under the router it is mounted on (/ui).
func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/ui/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", h.Dashboard)
	r.Get("/chart.svg", h.ChartSVG)
	r.Get("/chart.png", h.ChartPNG)
}
