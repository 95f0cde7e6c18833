// Package dashboard assembles the four charts. The budget line and country
// map are built once; the scatter and certification charts are rebuilt for
// every genre selection.
package dashboard

import (
	"github.com/mauv0809/movie-dashboard/internal/analytics"
	"github.com/mauv0809/movie-dashboard/internal/charts"
	"github.com/mauv0809/movie-dashboard/internal/dataset"
)

// AllGenresLabel is the dropdown label for analytics.AllGenres.
const AllGenresLabel = "All genres"

// Option is one dropdown entry.
type Option struct {
	Label string
	Value string
}

// Dashboard serves chart figures over a read-only dataset. It holds no
// mutable state and is safe for concurrent use.
type Dashboard struct {
	ds *dataset.Dataset

	budgetLine charts.Figure
	countryMap charts.Figure

	scatterOptions       []Option
	certificationOptions []Option
}

// New precomputes the static figures and dropdown options for ds.
func New(ds *dataset.Dataset) *Dashboard {
	mapper := analytics.NewCountryMapper(ds.CountryCodes)
	return &Dashboard{
		ds:                   ds,
		budgetLine:           charts.BudgetLine(analytics.BudgetByYear(ds.Movies)),
		countryMap:           charts.CountryMap(analytics.CountByCountry(ds.Movies, mapper)),
		scatterOptions:       options(analytics.Genres(ds.Financed)),
		certificationOptions: options(analytics.Genres(ds.Movies)),
	}
}

func options(genres []string) []Option {
	opts := make([]Option, 0, len(genres)+1)
	for _, g := range genres {
		opts = append(opts, Option{Label: g, Value: g})
	}
	return append(opts, Option{Label: AllGenresLabel, Value: analytics.AllGenres})
}

// BudgetLine returns the median budget per year figure.
func (d *Dashboard) BudgetLine() charts.Figure { return d.budgetLine }

// CountryMap returns the movies per country figure.
func (d *Dashboard) CountryMap() charts.Figure { return d.countryMap }

// Scatter renders the budget vs. revenue ratio figure for genre.
func (d *Dashboard) Scatter(genre string) charts.Figure {
	return charts.BudgetScatter(analytics.Scatter(d.ds.Financed, genre))
}

// Certifications renders the certification counts figure for genre.
func (d *Dashboard) Certifications(genre string) charts.Figure {
	return charts.CertificationBar(analytics.CertificationCounts(d.ds.Movies, genre))
}

// ScatterOptions lists the genres of the financed subset plus "All genres".
func (d *Dashboard) ScatterOptions() []Option { return d.scatterOptions }

// CertificationOptions lists every genre plus "All genres".
func (d *Dashboard) CertificationOptions() []Option { return d.certificationOptions }
