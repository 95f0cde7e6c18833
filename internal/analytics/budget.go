package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mauv0809/movie-dashboard/internal/models"
)

var two = decimal.NewFromInt(2)

// BudgetByYear groups movies by year and returns the median budget of each
// year in ascending year order. Rows without a year or budget are skipped;
// reported zero budgets take part in the median. A year whose budgets are
// all missing is left out.
func BudgetByYear(movies []models.Movie) []models.YearBudget {
	byYear := make(map[int][]decimal.Decimal)
	for _, m := range movies {
		if m.YearMissing || m.BudgetMissing {
			continue
		}
		byYear[m.Year] = append(byYear[m.Year], m.Budget)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	rows := make([]models.YearBudget, 0, len(years))
	for _, y := range years {
		rows = append(rows, models.YearBudget{Year: y, Median: Median(byYear[y])})
	}
	return rows
}

// Median returns the middle value of values, or the mean of the two middle
// values when there is an even number of them. It does not reorder values.
func Median(values []decimal.Decimal) decimal.Decimal {
	n := len(values)
	if n == 0 {
		return decimal.Zero
	}

	sorted := make([]decimal.Decimal, n)
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1].Add(sorted[n/2]).Div(two)
}
