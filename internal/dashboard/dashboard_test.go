package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/movie-dashboard/internal/analytics"
	"github.com/mauv0809/movie-dashboard/internal/dataset"
	"github.com/mauv0809/movie-dashboard/internal/models"
)

func testDataset() *dataset.Dataset {
	m := func(title, genre, country string, budget, gross int64, cert string) models.Movie {
		return models.Movie{
			Title: title, Genre: genre, Country: country, Year: 2000,
			Budget: decimal.NewFromInt(budget), Gross: decimal.NewFromInt(gross), AgeRestriction: cert,
		}
	}
	return dataset.New(
		[]models.Movie{
			m("A", "Action", "France", 1000, 4000, "A"),
			m("B", "Drama", "France", 0, 500, "PG"),
			m("C", "Action", "Iran", 2000, 1000, "X"),
		},
		[]models.CountryCode{{Label: "France", ISO3: "FRA"}},
	)
}

func TestNew_StaticFigures(t *testing.T) {
	d := New(testDataset())

	require.Len(t, d.BudgetLine().Data, 1)
	assert.Equal(t, []any{2000}, d.BudgetLine().Data[0].X)

	countries := d.CountryMap().Data[0]
	assert.Equal(t, []string{"FRA", "IRN"}, countries.Locations)
	assert.Equal(t, []any{"Iran", 1}, countries.CustomData[1])
}

func TestOptions(t *testing.T) {
	d := New(testDataset())

	assert.Equal(t, []Option{
		{Label: "Action", Value: "Action"},
		{Label: AllGenresLabel, Value: analytics.AllGenres},
	}, d.ScatterOptions())

	assert.Equal(t, []Option{
		{Label: "Action", Value: "Action"},
		{Label: "Drama", Value: "Drama"},
		{Label: AllGenresLabel, Value: analytics.AllGenres},
	}, d.CertificationOptions())
}

func TestScatter(t *testing.T) {
	d := New(testDataset())

	all := d.Scatter(analytics.AllGenres)
	require.Len(t, all.Data, 1)
	assert.Len(t, all.Data[0].X, 2)

	assert.Empty(t, d.Scatter("Drama").Data)
	assert.Empty(t, d.Scatter("Western").Data)
}

func TestCertifications(t *testing.T) {
	d := New(testDataset())

	action := d.Certifications("Action").Data[0]
	assert.Equal(t, []any{0, 1, 0, 0, 1}, action.Y)

	all := d.Certifications(analytics.AllGenres).Data[0]
	assert.Equal(t, []any{0, 2, 0, 0, 1}, all.Y)

	unknown := d.Certifications("Western").Data[0]
	assert.Equal(t, []any{0, 0, 0, 0, 0}, unknown.Y)
}
