// Package ui serves the server-rendered survival dashboard.
package ui

import (
	"errors"
	"log/slog"
	"net/http"

	gomponents "maragu.dev/gomponents"

	"titanic-dash/internal/api"
	"titanic-dash/internal/chart"
	"titanic-dash/internal/service/survival"
)

// Handler renders the dashboard page and its chart.
type Handler struct {
	Survival *survival.Service
	Logger   *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(svc *survival.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Survival: svc, Logger: logger.With("component", "ui")}
}

// Dashboard renders the full page for the query's control state.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sel, err := api.SelectionFromQuery(r.URL.Query())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	sum, err := h.Survival.Summarize(r.Context(), sel.Criteria)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, dashboardPage(sel, *sum))
}

// ChartSVG serves the donut as SVG.
func (h *Handler) ChartSVG(w http.ResponseWriter, r *http.Request) {
	h.serveChart(w, r, chart.FormatSVG)
}

// ChartPNG serves the donut as PNG.
func (h *Handler) ChartPNG(w http.ResponseWriter, r *http.Request) {
	h.serveChart(w, r, chart.FormatPNG)
}

func (h *Handler) serveChart(w http.ResponseWriter, r *http.Request, format chart.Format) {
	sel, err := api.SelectionFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), api.HTTPStatus(err))
		return
	}
	sum, err := h.Survival.Summarize(r.Context(), sel.Criteria)
	if err != nil {
		http.Error(w, err.Error(), api.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "public, max-age=300")
	if err := chart.Render(w, chart.FromSummary(*sum), format); err != nil {
		if errors.Is(err, chart.ErrEmptyChart) {
			w.Header().Del("Cache-Control")
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.Logger.ErrorContext(r.Context(), "render chart", "format", format, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := api.HTTPStatus(err)
	title := "Unexpected Error"
	message := "An unexpected error occurred while charting this course."

	switch status {
	case http.StatusBadRequest:
		title = "Invalid Request"
		message = err.Error()
	case http.StatusServiceUnavailable:
		title = "Manifest Unavailable"
		message = "The passenger manifest could not be read."
	}
	if status >= http.StatusInternalServerError {
		h.Logger.ErrorContext(r.Context(), "dashboard request failed", "path", r.URL.Path, "error", err)
	}
	renderHTML(w, status, errorPage(title, message))
}
