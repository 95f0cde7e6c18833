package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/mauv0809/movie-dashboard/internal/analytics"
	"github.com/mauv0809/movie-dashboard/internal/dashboard"
	"github.com/mauv0809/movie-dashboard/internal/views"
)

type Handler struct {
	dashboard *dashboard.Dashboard
	page      views.Page
}

// New builds the handler and renders the initial page state once.
func New(d *dashboard.Dashboard) *Handler {
	return &Handler{
		dashboard: d,
		page:      views.NewPage(d),
	}
}

// Register mounts every dashboard route on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/", h.Index)

	api := e.Group("/api/figures")
	api.GET("/"+views.ChartBudgetByYear, h.BudgetByYear)
	api.GET("/"+views.ChartCountryMap, h.CountryMap)
	api.GET("/"+views.ChartScatter, h.Scatter)
	api.GET("/"+views.ChartCertifications, h.Certifications)
}

// Render writes a templ component as the HTML response body.
func Render(c echo.Context, status int, t templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return t.Render(c.Request().Context(), c.Response().Writer)
}

// Health returns application health status
// @Summary Health check
// @Description Returns the health status of the application
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *Handler) Index(c echo.Context) error {
	return Render(c, http.StatusOK, views.Index(h.page))
}

// BudgetByYear handles GET /api/figures/budget-by-year
func (h *Handler) BudgetByYear(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.BudgetLine())
}

// CountryMap handles GET /api/figures/country-map
func (h *Handler) CountryMap(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.CountryMap())
}

// Scatter handles GET /api/figures/scatter
// Query params:
// - genre: genre to plot (default: all_values)
func (h *Handler) Scatter(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Scatter(genreParam(c)))
}

// Certifications handles GET /api/figures/certifications
// Query params:
// - genre: genre to count (default: all_values)
func (h *Handler) Certifications(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Certifications(genreParam(c)))
}

// genreParam reads the genre filter. Values are not validated; an unknown
// genre produces an empty chart.
func genreParam(c echo.Context) string {
	if genre := c.QueryParam("genre"); genre != "" {
		return genre
	}
	return analytics.AllGenres
}
