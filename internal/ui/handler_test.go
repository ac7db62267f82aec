package ui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titanic-dash/internal/domain"
	"titanic-dash/internal/service/survival"
)

func setupUIServer(t *testing.T) *httptest.Server {
	t.Helper()
	table := domain.NewTable([]domain.PassengerRecord{
		{Survived: true, Age: 30, Sex: domain.SexFemale, Class: domain.FirstClass},
		{Survived: false, Age: 45, Sex: domain.SexMale, Class: domain.ThirdClass},
		{Survived: true, Age: 4, Sex: domain.SexMale, Class: domain.SecondClass},
	})
	h := NewHandler(survival.NewService(table, nil), nil)
	r := chi.NewRouter()
	r.Route("/ui", func(r chi.Router) { MountRoutes(r, h) })
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, http.Header, string) {
	t.Helper()
	resp, err := http.Get(url) //nolint:noctx
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, string(body)
}

func TestDashboard_Default(t *testing.T) {
	srv := setupUIServer(t)

	status, header, body := get(t, srv.URL+"/ui/")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "text/html; charset=utf-8", header.Get("Content-Type"))
	assert.Contains(t, body, "R.M.S. Titanic")
	assert.Contains(t, body, "3 souls")
	assert.Contains(t, body, `src="/ui/chart.svg"`)
	assert.Contains(t, body, "The sea keeps her own counsel.")
	assert.Contains(t, body, `<option value="All Hands" selected>`)
	assert.Contains(t, body, `<option value="All Decks" selected>`)
	assert.Contains(t, body, `name="age_min"`)
	assert.Contains(t, body, `data-bind`)
	assert.NotContains(t, body, "souls mapping")
}

func TestDashboard_Filtered(t *testing.T) {
	srv := setupUIServer(t)

	status, _, body := get(t, srv.URL+"/ui/?souls=Gentlemen&deck=2nd+Class&age_min=1&age_max=10")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "1 souls")
	assert.Contains(t, body, `<option value="Gentlemen" selected>`)
	assert.Contains(t, body, `<option value="2nd Class" selected>`)
	assert.Contains(t, body, "/ui/chart.svg?")
	assert.Contains(t, body, "souls=Gentlemen")
}

func TestDashboard_LadiesNotice(t *testing.T) {
	srv := setupUIServer(t)

	status, _, body := get(t, srv.URL+"/ui/?souls=Ladies")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "souls mapping")
	assert.Contains(t, body, "3 souls")
}

func TestDashboard_EmptyState(t *testing.T) {
	srv := setupUIServer(t)

	status, _, body := get(t, srv.URL+"/ui/?age_min=70")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "No souls match these filters.")
	assert.NotContains(t, body, "/ui/chart.svg")
}

func TestDashboard_InvalidQuery(t *testing.T) {
	srv := setupUIServer(t)

	status, _, body := get(t, srv.URL+"/ui/?age_min=60&age_max=20")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Invalid Request")
	assert.Contains(t, body, "exceeds upper bound")
}

func TestChartEndpoints(t *testing.T) {
	srv := setupUIServer(t)

	status, header, body := get(t, srv.URL+"/ui/chart.svg?sex=male")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "image/svg+xml", header.Get("Content-Type"))
	assert.Contains(t, body, "2 souls")

	status, header, body = get(t, srv.URL+"/ui/chart.png")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "image/png", header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "\x89PNG"))

	status, _, _ = get(t, srv.URL+"/ui/chart.svg?age_min=70")
	assert.Equal(t, http.StatusNotFound, status)

	status, _, _ = get(t, srv.URL+"/ui/chart.svg?class=9")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStaticStylesheet(t *testing.T) {
	srv := setupUIServer(t)

	href := uiStylesheetHref()
	assert.True(t, strings.HasPrefix(href, "/ui/static/css/app.css?v="), href)

	status, header, body := get(t, srv.URL+href)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, header.Get("Content-Type"), "text/css")
	assert.Contains(t, body, "--gold")
}

func TestPNGHref(t *testing.T) {
	assert.Equal(t, "/ui/chart.png", pngHref("/ui/chart.svg"))
	assert.Equal(t, "/ui/chart.png?sex=male", pngHref("/ui/chart.svg?sex=male"))
}
