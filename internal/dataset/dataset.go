// Package dataset loads the movie and country-code tables and derives the
// financed-movie subset used by the scatterplot.
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"io/fs"
	"os"

	"github.com/rotisserie/eris"

	"github.com/mauv0809/movie-dashboard/internal/models"
)

var (
	// ErrFileNotFound is returned when an input file does not exist.
	ErrFileNotFound = eris.New("dataset: file not found")
	// ErrParse is returned when an input file's column structure cannot be read.
	ErrParse = eris.New("dataset: parse error")
)

// MovieColumns lists the columns the movie file must provide.
var MovieColumns = []string{"title", "genre", "country", "year", "budget", "gross", "age_restriction"}

// CountryCodeColumns lists the columns the country code file must provide.
var CountryCodeColumns = []string{"label", "iso3_code"}

// Dataset holds the tables loaded at startup. It is never mutated afterwards.
type Dataset struct {
	Movies       []models.Movie
	Financed     []models.FinancedMovie
	CountryCodes []models.CountryCode
	// Columns is the movie source's column count, extra columns included.
	Columns int
}

// New builds a Dataset from already-loaded tables, computing the financed
// subset. Columns defaults to the required movie columns.
func New(movies []models.Movie, codes []models.CountryCode) *Dataset {
	return &Dataset{
		Movies:       movies,
		Financed:     Derive(movies),
		CountryCodes: codes,
		Columns:      len(MovieColumns),
	}
}

// Shape returns the movie table's row and column counts.
func (d *Dataset) Shape() (rows, cols int) {
	return len(d.Movies), d.Columns
}

// OpenFunc returns a reader for a table location. Errors wrapping
// fs.ErrNotExist are reported as ErrFileNotFound.
type OpenFunc func(ctx context.Context, location string) (io.ReadCloser, error)

// OpenFile opens a local path.
func OpenFile(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// LoadCSV reads the movie file and the country code file from disk.
func LoadCSV(moviesPath, codesPath string) (*Dataset, error) {
	return Load(context.Background(), OpenFile, moviesPath, codesPath)
}

// Load reads both tables through open.
func Load(ctx context.Context, open OpenFunc, moviesLocation, codesLocation string) (*Dataset, error) {
	var columns int
	movies, err := readFile(ctx, open, moviesLocation, func(r io.Reader) ([]models.Movie, error) {
		movies, width, err := readMovies(r)
		columns = width
		return movies, err
	})
	if err != nil {
		return nil, err
	}
	codes, err := readFile(ctx, open, codesLocation, ReadCountryCodes)
	if err != nil {
		return nil, err
	}

	ds := New(movies, codes)
	ds.Columns = columns
	return ds, nil
}

func readFile[T any](ctx context.Context, open OpenFunc, location string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := open(ctx, location)
	if err != nil {
		if eris.Is(err, fs.ErrNotExist) {
			return nil, eris.Wrapf(ErrFileNotFound, "open %s", location)
		}
		return nil, eris.Wrapf(err, "dataset: open %s", location)
	}
	defer f.Close()

	rows, err := read(f)
	if err != nil {
		return nil, eris.Wrapf(err, "read %s", location)
	}
	return rows, nil
}

// readTable reads a header row plus records and checks the required columns.
// width is the number of header cells.
func readTable(r io.Reader, required []string) (idx map[string]int, records [][]string, width int, err error) {
	reader := csv.NewReader(r)
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, 0, eris.Wrapf(ErrParse, "csv: %v", err)
	}
	if len(all) == 0 {
		return nil, nil, 0, eris.Wrap(ErrParse, "csv: no header row")
	}

	idx = buildColumnIndex(all[0])
	if err := requireColumns(idx, required); err != nil {
		return nil, nil, 0, err
	}
	return idx, all[1:], len(all[0]), nil
}

// ReadMovies parses a movie table.
func ReadMovies(r io.Reader) ([]models.Movie, error) {
	movies, _, err := readMovies(r)
	return movies, err
}

func readMovies(r io.Reader) ([]models.Movie, int, error) {
	idx, records, width, err := readTable(r, MovieColumns)
	if err != nil {
		return nil, 0, err
	}

	movies := make([]models.Movie, 0, len(records))
	for i, row := range records {
		m := models.Movie{
			Title:          getString(row, idx, "title"),
			Genre:          getString(row, idx, "genre"),
			Country:        getString(row, idx, "country"),
			AgeRestriction: getString(row, idx, "age_restriction"),
		}
		year, hasYear, err := getInt(row, idx, "year")
		if err != nil {
			return nil, 0, eris.Wrapf(err, "row %d", i+2)
		}
		budget, err := getDecimal(row, idx, "budget")
		if err != nil {
			return nil, 0, eris.Wrapf(err, "row %d", i+2)
		}
		gross, err := getDecimal(row, idx, "gross")
		if err != nil {
			return nil, 0, eris.Wrapf(err, "row %d", i+2)
		}
		m.Year, m.YearMissing = year, !hasYear
		m.Budget, m.BudgetMissing = budget.Decimal, !budget.Valid
		m.Gross = gross.Decimal
		movies = append(movies, m)
	}

	return movies, width, nil
}

// ReadCountryCodes parses a country label to ISO3 code table.
func ReadCountryCodes(r io.Reader) ([]models.CountryCode, error) {
	idx, records, _, err := readTable(r, CountryCodeColumns)
	if err != nil {
		return nil, err
	}

	codes := make([]models.CountryCode, 0, len(records))
	for _, row := range records {
		codes = append(codes, models.CountryCode{
			Label: getString(row, idx, "label"),
			ISO3:  getString(row, idx, "iso3_code"),
		})
	}
	return codes, nil
}

// Derive returns the movies with nonzero budget and gross, each carrying
// Ratio = Gross / Budget. Missing values read as zero and are excluded.
// The input slice is not modified.
func Derive(movies []models.Movie) []models.FinancedMovie {
	financed := make([]models.FinancedMovie, 0, len(movies))
	for _, m := range movies {
		if m.Budget.IsZero() || m.Gross.IsZero() {
			continue
		}
		financed = append(financed, models.FinancedMovie{
			Movie: m,
			Ratio: m.Gross.Div(m.Budget),
		})
	}
	return financed
}
