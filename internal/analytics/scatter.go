package analytics

import (
	"github.com/mauv0809/movie-dashboard/internal/models"
)

// Scatter returns one point per financed movie of genre. No aggregation.
func Scatter(financed []models.FinancedMovie, genre string) []models.FinancedMovie {
	return FilterByGenre(financed, genre)
}
