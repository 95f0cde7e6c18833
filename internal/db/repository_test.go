package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/movie-dashboard/internal/dataset"
	"github.com/mauv0809/movie-dashboard/internal/models"
)

func year(y int) *int { return &y }

func TestLoadMovies(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT title, genre, country, year, budget, gross, age_restriction").
		WillReturnRows(pgxmock.NewRows(movieColumns).
			AddRow("A", "Action", "France", year(1986), "1000", "4000", "A").
			AddRow("B", "Drama", "Iran", year(1990), "0", "500", "PG"))

	movies, err := NewRepository(mock).LoadMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, "A", movies[0].Title)
	assert.Equal(t, 1986, movies[0].Year)
	assert.True(t, decimal.NewFromInt(4000).Equal(movies[0].Gross))
	assert.True(t, movies[1].Budget.IsZero())
	assert.False(t, movies[1].BudgetMissing)
	assert.Equal(t, "PG", movies[1].AgeRestriction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadMovies_NullYearAndBudget(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT title").
		WillReturnRows(pgxmock.NewRows(movieColumns).
			AddRow("C", "Drama", "Italy", (*int)(nil), nil, nil, "15"))

	movies, err := NewRepository(mock).LoadMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)

	assert.True(t, movies[0].YearMissing)
	assert.True(t, movies[0].BudgetMissing)
	assert.True(t, movies[0].Gross.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadMovies_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT title").WillReturnError(fmt.Errorf("relation \"movies\" does not exist"))

	_, err = NewRepository(mock).LoadMovies(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query movies")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCountryCodes_InsertionOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT label, iso3_code FROM country_codes ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(countryCodeColumns).
			AddRow("United Kingdom", "GBR").
			AddRow("France", "FRA"))

	codes, err := NewRepository(mock).LoadCountryCodes(context.Background())
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, "GBR", codes[0].ISO3)
	assert.Equal(t, "FRA", codes[1].ISO3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT title").
		WillReturnRows(pgxmock.NewRows(movieColumns).
			AddRow("A", "Action", "France", year(1986), "1000", "4000", "A").
			AddRow("B", "Drama", "France", year(1990), "0", "500", "PG"))
	mock.ExpectQuery("SELECT label, iso3_code").
		WillReturnRows(pgxmock.NewRows(countryCodeColumns).AddRow("France", "FRA"))

	ds, err := NewRepository(mock).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Movies, 2)
	assert.Len(t, ds.Financed, 1)
	assert.Len(t, ds.CountryCodes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_CountryCodesError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT title").WillReturnRows(pgxmock.NewRows(movieColumns))
	mock.ExpectQuery("SELECT label").WillReturnError(fmt.Errorf("connection reset"))

	_, err = NewRepository(mock).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query country codes")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func seedDataset() *dataset.Dataset {
	missing := models.Movie{Title: "B", Genre: "Drama", Country: "Iran", YearMissing: true, BudgetMissing: true}
	return dataset.New(
		[]models.Movie{
			{Title: "A", Genre: "Action", Country: "France", Year: 1986,
				Budget: decimal.NewFromInt(1000), Gross: decimal.NewFromInt(4000), AgeRestriction: "A"},
			missing,
		},
		[]models.CountryCode{{Label: "France", ISO3: "FRA"}, {Label: "French Republic", ISO3: "FRA"}},
	)
}

func TestReplace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE movies, country_codes").WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"movies"}, movieColumns).WillReturnResult(2)
	mock.ExpectCopyFrom(pgx.Identifier{"country_codes"}, countryCodeColumns).WillReturnResult(2)
	mock.ExpectCommit()

	require.NoError(t, NewRepository(mock).Replace(context.Background(), seedDataset()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_RollsBackOnCopyError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("TRUNCATE").WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"movies"}, movieColumns).WillReturnError(fmt.Errorf("disk full"))
	mock.ExpectRollback()

	err = NewRepository(mock).Replace(context.Background(), seedDataset())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy movies")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNumeric(t *testing.T) {
	n := numeric(decimal.RequireFromString("2500.50"))
	require.True(t, n.Valid)
	assert.Equal(t, "250050", n.Int.String())
	assert.Equal(t, int32(-2), n.Exp)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		raw, err := migrations.ReadFile("migrations/" + e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(raw), "-- +goose Up", e.Name())
		assert.Contains(t, string(raw), "-- +goose Down", e.Name())
	}
}
