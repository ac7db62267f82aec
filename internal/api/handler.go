// Package api provides the JSON endpoints of the survival dashboard.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"titanic-dash/internal/chart"
	"titanic-dash/internal/domain"
	"titanic-dash/internal/service/survival"
)

// SummaryResponse is the body of GET /api/v1/summary.
type SummaryResponse struct {
	Criteria      domain.FilterCriteria `json:"criteria"`
	Survived      int                   `json:"survived"`
	Perished      int                   `json:"perished"`
	Total         int                   `json:"total"`
	SurvivalRate  float64               `json:"survival_rate"`
	Title         string                `json:"title"`
	Subtitle      string                `json:"subtitle"`
	Centre        string                `json:"centre"`
	Souls         string                `json:"souls"`
	Deck          string                `json:"deck"`
	SoulsUnmapped bool                  `json:"souls_unmapped"`
}

// PassengerList is the body of GET /api/v1/passengers.
type PassengerList struct {
	Passengers    []domain.PassengerRecord `json:"passengers"`
	Total         int64                    `json:"total"`
	NextPageToken string                   `json:"next_page_token,omitempty"`
}

// Controls is the body of GET /api/v1/controls.
type Controls struct {
	SoulsOptions []string        `json:"souls_options"`
	DeckOptions  []string        `json:"deck_options"`
	AgeMin       int             `json:"age_min"`
	AgeMax       int             `json:"age_max"`
	AgeStep      int             `json:"age_step"`
	Default      domain.AgeRange `json:"default_age_range"`
}

// Health is the body of GET /healthz.
type Health struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

// Handler serves the JSON API over the loaded passenger table.
type Handler struct {
	survival *survival.Service
	logger   *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(svc *survival.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{survival: svc, logger: logger.With("component", "api")}
}

// Routes returns the /api/v1 sub-router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/summary", h.GetSummary)
	r.Get("/passengers", h.ListPassengers)
	r.Get("/controls", h.GetControls)
	return r
}

// GetSummary returns survived/perished counts for the query's filters.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sel, err := SelectionFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	sum, err := h.survival.Summarize(r.Context(), sel.Criteria)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, NewSummaryResponse(sel, *sum))
}

// ListPassengers returns one page of the records matching the query's filters.
func (h *Handler) ListPassengers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel, err := SelectionFromQuery(q)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	page, err := pageFromQuery(q)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	records, total, err := h.survival.Passengers(r.Context(), sel.Criteria, page)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, PassengerList{
		Passengers:    records,
		Total:         total,
		NextPageToken: domain.NextPageToken(page.Offset(), page.Limit(), total),
	})
}

// GetControls describes the dashboard widgets.
func (h *Handler) GetControls(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Controls{
		SoulsOptions: domain.SoulsOptions,
		DeckOptions:  domain.DeckOptions,
		AgeMin:       domain.MinAge,
		AgeMax:       domain.MaxAge,
		AgeStep:      1,
		Default:      domain.FullAgeRange(),
	})
}

// Healthz reports liveness and the size of the loaded table.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: "ok", Records: h.survival.Table().Len()})
}

// NewSummaryResponse flattens a selection and its summary into the API shape.
func NewSummaryResponse(sel domain.Selection, sum domain.Summary) SummaryResponse {
	d := chart.FromSummary(sum)
	return SummaryResponse{
		Criteria:      sum.Criteria,
		Survived:      sum.Survived,
		Perished:      sum.Perished,
		Total:         sum.Total,
		SurvivalRate:  sum.SurvivalRate(),
		Title:         d.Title,
		Subtitle:      d.Subtitle,
		Centre:        d.Centre,
		Souls:         sel.Souls,
		Deck:          sel.Deck,
		SoulsUnmapped: sel.SoulsUnmapped,
	}
}
