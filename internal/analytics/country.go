package analytics

import (
	"sort"

	"github.com/mauv0809/movie-dashboard/internal/models"
)

// CountryOverride patches a country label the code file spells differently.
type CountryOverride struct {
	Label string
	Code  string
}

// CountryOverrides covers historical and alternate names found in the movie data.
var CountryOverrides = []CountryOverride{
	{"South Korea", "KOR"},
	{"Soviet Union", "RUS"},
	{"Russia", "RUS"},
	{"West Germany", "DEU"},
	{"Iran", "IRN"},
	{"Hong Kong", "HKG"},
	{"Taiwan", "TWN"},
}

// CountryMapper translates country labels to ISO3 codes and back.
type CountryMapper struct {
	codes  map[string]string // label -> code
	labels map[string]string // code -> label
}

// NewCountryMapper builds the forward map from the code table plus
// CountryOverrides. The reverse map comes from the code table (last label wins
// for a repeated code); an override label replaces it when that override is
// the only one pointing at its code. Codes known only through overrides take
// the first override label.
func NewCountryMapper(table []models.CountryCode) *CountryMapper {
	m := &CountryMapper{
		codes:  make(map[string]string, len(table)+len(CountryOverrides)),
		labels: make(map[string]string, len(table)),
	}
	for _, c := range table {
		if c.Label == "" || c.ISO3 == "" {
			continue
		}
		m.codes[c.Label] = c.ISO3
		m.labels[c.ISO3] = c.Label
	}

	targets := make(map[string]int, len(CountryOverrides))
	for _, o := range CountryOverrides {
		m.codes[o.Label] = o.Code
		targets[o.Code]++
	}
	for _, o := range CountryOverrides {
		_, known := m.labels[o.Code]
		if targets[o.Code] == 1 || !known {
			m.labels[o.Code] = o.Label
		}
	}
	return m
}

// Code returns the ISO3 code for label.
func (m *CountryMapper) Code(label string) (string, bool) {
	code, ok := m.codes[label]
	return code, ok
}

// Label returns the display label for an ISO3 code.
func (m *CountryMapper) Label(code string) (string, bool) {
	label, ok := m.labels[code]
	return label, ok
}

// CountByCountry counts movies per ISO3 code, ordered by code. Movies whose
// country has no code are left out.
func CountByCountry(movies []models.Movie, mapper *CountryMapper) []models.CountryCount {
	counts := make(map[string]int)
	for _, mv := range movies {
		code, ok := mapper.Code(mv.Country)
		if !ok {
			continue
		}
		counts[code]++
	}

	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make([]models.CountryCount, 0, len(codes))
	for _, code := range codes {
		label, _ := mapper.Label(code)
		rows = append(rows, models.CountryCount{Code: code, Label: label, Count: counts[code]})
	}
	return rows
}
