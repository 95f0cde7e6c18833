package analytics

import (
	"github.com/mauv0809/movie-dashboard/internal/models"
)

// OfficialCertifications is the fixed, ordered set of age ratings charted.
var OfficialCertifications = []string{"U", "PG", "12A", "15", "18"}

// LegacyCertifications remaps deprecated ratings onto the official set.
var LegacyCertifications = map[string]string{
	"A":  "PG",
	"X":  "18",
	"AA": "15",
	"12": "12A",
}

// NormalizeCertification remaps a legacy rating and reports whether the
// result is one of OfficialCertifications.
func NormalizeCertification(cert string) (string, bool) {
	if updated, ok := LegacyCertifications[cert]; ok {
		cert = updated
	}
	for _, official := range OfficialCertifications {
		if cert == official {
			return cert, true
		}
	}
	return "", false
}

// CertificationCounts counts the movies of genre per official certification.
// It always returns one row per official certification, in their fixed
// order; unrecognised ratings are not counted.
func CertificationCounts(movies []models.Movie, genre string) []models.CertificationCount {
	counts := make(map[string]int, len(OfficialCertifications))
	for _, m := range FilterByGenre(movies, genre) {
		if cert, ok := NormalizeCertification(m.AgeRestriction); ok {
			counts[cert]++
		}
	}

	rows := make([]models.CertificationCount, 0, len(OfficialCertifications))
	for _, cert := range OfficialCertifications {
		rows = append(rows, models.CertificationCount{Certification: cert, Count: counts[cert]})
	}
	return rows
}
