package models

import (
	"github.com/shopspring/decimal"
)

// Movie is one row of the movie metadata file. Rows are not unique-keyed.
// An empty year or budget cell reads as zero with the matching Missing flag set.
type Movie struct {
	Title          string          `json:"title"`
	Genre          string          `json:"genre"`
	Country        string          `json:"country"`
	Year           int             `json:"year"`
	Budget         decimal.Decimal `json:"budget"`
	Gross          decimal.Decimal `json:"gross"`
	AgeRestriction string          `json:"age_restriction"`
	YearMissing    bool            `json:"-"`
	BudgetMissing  bool            `json:"-"`
}

// FinancedMovie is a movie with both budget and gross reported.
type FinancedMovie struct {
	Movie
	Ratio decimal.Decimal `json:"ratio"` // Gross / Budget
}

// CountryCode associates a country's display label with its ISO 3166 alpha-3 code.
type CountryCode struct {
	Label string `json:"label"`
	ISO3  string `json:"iso3_code"`
}

type YearBudget struct {
	Year   int             `json:"year"`
	Median decimal.Decimal `json:"median_budget"`
}

type CountryCount struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type CertificationCount struct {
	Certification string `json:"certification"`
	Count         int    `json:"count"`
}

// GenreName lets aggregation helpers filter movies and financed movies alike.
func (m Movie) GenreName() string {
	return m.Genre
}
