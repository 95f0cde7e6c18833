package views

import (
	"github.com/mauv0809/movie-dashboard/internal/analytics"
	"github.com/mauv0809/movie-dashboard/internal/charts"
	"github.com/mauv0809/movie-dashboard/internal/dashboard"
)

// Chart ids double as the figure endpoint names under /api/figures/.
const (
	ChartBudgetByYear   = "budget-by-year"
	ChartCountryMap     = "country-map"
	ChartScatter        = "scatter"
	ChartCertifications = "certifications"
)

// Page carries everything the dashboard page renders.
type Page struct {
	Title                string
	BudgetLine           charts.Figure
	CountryMap           charts.Figure
	Scatter              charts.Figure
	Certifications       charts.Figure
	ScatterOptions       []dashboard.Option
	CertificationOptions []dashboard.Option
}

// NewPage builds the initial page with both genre filters set to all genres.
func NewPage(d *dashboard.Dashboard) Page {
	return Page{
		Title:                "Movie dashboard",
		BudgetLine:           d.BudgetLine(),
		CountryMap:           d.CountryMap(),
		Scatter:              d.Scatter(analytics.AllGenres),
		Certifications:       d.Certifications(analytics.AllGenres),
		ScatterOptions:       d.ScatterOptions(),
		CertificationOptions: d.CertificationOptions(),
	}
}
