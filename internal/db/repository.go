package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"

	"github.com/mauv0809/movie-dashboard/internal/dataset"
	"github.com/mauv0809/movie-dashboard/internal/models"
)

// Querier is the subset of a pgx pool the repository uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository reads the movie tables and, for the seed command, replaces them.
// The dashboard itself only reads.
type Repository struct {
	pool Querier
}

// NewRepository creates a new repository.
func NewRepository(pool Querier) *Repository {
	return &Repository{pool: pool}
}

var (
	movieColumns       = []string{"title", "genre", "country", "year", "budget", "gross", "age_restriction"}
	countryCodeColumns = []string{"label", "iso3_code"}
)

// LoadMovies returns every movie row in insertion order. NULL year or budget
// sets the matching Missing flag; NULL gross reads as zero.
func (r *Repository) LoadMovies(ctx context.Context) ([]models.Movie, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT title, genre, country, year, budget, gross, age_restriction
		FROM movies
		ORDER BY id
	`)
	if err != nil {
		return nil, eris.Wrap(err, "db: query movies")
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		var year *int
		var budget, gross decimal.NullDecimal
		if err := rows.Scan(&m.Title, &m.Genre, &m.Country, &year, &budget, &gross, &m.AgeRestriction); err != nil {
			return nil, eris.Wrap(err, "db: scan movie")
		}
		if year != nil {
			m.Year = *year
		}
		m.YearMissing = year == nil
		m.Budget, m.BudgetMissing = budget.Decimal, !budget.Valid
		m.Gross = gross.Decimal
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "db: read movies")
	}
	return movies, nil
}

// LoadCountryCodes returns the country code table in insertion order.
func (r *Repository) LoadCountryCodes(ctx context.Context) ([]models.CountryCode, error) {
	rows, err := r.pool.Query(ctx, `SELECT label, iso3_code FROM country_codes ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "db: query country codes")
	}
	defer rows.Close()

	var codes []models.CountryCode
	for rows.Next() {
		var c models.CountryCode
		if err := rows.Scan(&c.Label, &c.ISO3); err != nil {
			return nil, eris.Wrap(err, "db: scan country code")
		}
		codes = append(codes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "db: read country codes")
	}
	return codes, nil
}

// Load reads both tables into a Dataset.
func (r *Repository) Load(ctx context.Context) (*dataset.Dataset, error) {
	movies, err := r.LoadMovies(ctx)
	if err != nil {
		return nil, err
	}
	codes, err := r.LoadCountryCodes(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.New(movies, codes), nil
}

// Replace empties both tables and copies ds into them in one transaction,
// preserving row order.
func (r *Repository) Replace(ctx context.Context, ds *dataset.Dataset) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "db: begin")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `TRUNCATE movies, country_codes RESTART IDENTITY`); err != nil {
		return eris.Wrap(err, "db: truncate")
	}

	if _, err = tx.CopyFrom(ctx, pgx.Identifier{"movies"}, movieColumns, pgx.CopyFromSlice(len(ds.Movies), func(i int) ([]any, error) {
		m := ds.Movies[i]
		var year, budget any
		if !m.YearMissing {
			year = m.Year
		}
		if !m.BudgetMissing {
			budget = numeric(m.Budget)
		}
		return []any{m.Title, m.Genre, m.Country, year, budget, numeric(m.Gross), m.AgeRestriction}, nil
	})); err != nil {
		return eris.Wrap(err, "db: copy movies")
	}

	if _, err = tx.CopyFrom(ctx, pgx.Identifier{"country_codes"}, countryCodeColumns, pgx.CopyFromSlice(len(ds.CountryCodes), func(i int) ([]any, error) {
		c := ds.CountryCodes[i]
		return []any{c.Label, c.ISO3}, nil
	})); err != nil {
		return eris.Wrap(err, "db: copy country codes")
	}

	if err = tx.Commit(ctx); err != nil {
		return eris.Wrap(err, "db: commit")
	}
	return nil
}

func numeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}
