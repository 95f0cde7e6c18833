// Package analytics holds the pure aggregation functions behind each chart.
// None of them modify the tables they are given.
package analytics

// AllGenres is the filter value that passes every row.
const AllGenres = "all_values"

type genred interface {
	GenreName() string
}

// FilterByGenre returns the movies matching genre, or a copy of all of them
// when genre is AllGenres. Unknown genres yield an empty slice.
func FilterByGenre[T genred](rows []T, genre string) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if genre == AllGenres || r.GenreName() == genre {
			out = append(out, r)
		}
	}
	return out
}

// Genres returns the distinct non-empty genres in order of first appearance.
func Genres[T genred](rows []T) []string {
	seen := make(map[string]bool)
	var genres []string
	for _, r := range rows {
		g := r.GenreName()
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		genres = append(genres, g)
	}
	return genres
}
