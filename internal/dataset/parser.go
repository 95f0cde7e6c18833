package dataset

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

// headerAliases maps alternate header spellings onto the canonical column name.
var headerAliases = map[string]string{
	"label_en": "label",
	"iso3":     "iso3_code",
}

// normalizeHeader lowercases a header cell and resolves known aliases.
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "_", "-", "_").Replace(h)
	if canonical, ok := headerAliases[h]; ok {
		return canonical
	}
	return h
}

// buildColumnIndex creates a map from column name to field index.
func buildColumnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

// requireColumns fails with ErrParse naming every column the header lacks.
func requireColumns(idx map[string]int, required []string) error {
	var missing []string
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return eris.Wrapf(ErrParse, "missing columns %s", strings.Join(missing, ", "))
	}
	return nil
}

// getString safely extracts a trimmed string from row data.
func getString(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// getDecimal extracts a decimal from row data. Empty and "nan" cells are
// reported as not valid.
func getDecimal(row []string, idx map[string]int, col string) (decimal.NullDecimal, error) {
	s := getString(row, idx, col)
	if s == "" || strings.EqualFold(s, "nan") {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, eris.Wrapf(ErrParse, "column %s: %q is not a number", col, s)
	}
	return decimal.NewNullDecimal(d), nil
}

// getInt extracts an integer, accepting float spellings such as "1986.0".
// ok is false for an empty cell.
func getInt(row []string, idx map[string]int, col string) (n int, ok bool, err error) {
	d, err := getDecimal(row, idx, col)
	if err != nil || !d.Valid {
		return 0, false, err
	}
	return int(d.Decimal.IntPart()), true, nil
}
