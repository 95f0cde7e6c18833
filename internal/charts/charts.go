package charts

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mauv0809/movie-dashboard/internal/models"
)

const (
	titleFontSize = 30
	gridColor     = "#EBF0F8"
	barColor      = "purple"
)

// palette is Plotly's default qualitative colour sequence, one colour per genre.
var palette = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

var printer = message.NewPrinter(language.English)

func boolPtr(b bool) *bool { return &b }

// baseLayout applies the title placement, margins and white template shared
// by every chart.
func baseLayout(title string, top int) Layout {
	return Layout{
		Title: Title{
			Text:       title,
			Font:       Font{Size: titleFontSize},
			YRef:       "paper",
			Y:          1,
			YAnchor:    "bottom",
			AutoMargin: true,
		},
		Margin:       Margin{L: 10, R: 10, T: top, B: 10},
		PaperBGColor: "white",
		PlotBGColor:  "white",
	}
}

func axis(title, kind string) *Axis {
	return &Axis{Title: AxisTitle{Text: title}, Type: kind, GridColor: gridColor}
}

// FormatAmount renders a whole-dollar amount with thousands separators.
func FormatAmount(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// BudgetLine draws median budget against year.
func BudgetLine(rows []models.YearBudget) Figure {
	x := make([]any, 0, len(rows))
	y := make([]any, 0, len(rows))
	for _, r := range rows {
		x = append(x, r.Year)
		y = append(y, r.Median.InexactFloat64())
	}

	layout := baseLayout("Typical movie budget over time", 90)
	layout.XAxis = axis("Year", "linear")
	layout.YAxis = axis("Median budget ($)", "linear")

	return Figure{
		Data: []Trace{{
			Type:          "scatter",
			Mode:          "lines",
			X:             x,
			Y:             y,
			Line:          &Line{Color: palette[0]},
			HoverTemplate: "Year=%{x}<br>Median budget ($)=%{y}<extra></extra>",
		}},
		Layout: layout,
	}
}

// CountryMap draws a choropleth coloured by log10 of the movie count.
func CountryMap(rows []models.CountryCount) Figure {
	locations := make([]string, 0, len(rows))
	z := make([]float64, 0, len(rows))
	custom := make([][]any, 0, len(rows))
	for _, r := range rows {
		locations = append(locations, r.Code)
		z = append(z, math.Log10(float64(r.Count)))
		custom = append(custom, []any{r.Label, r.Count})
	}

	layout := baseLayout("Number of movies by country of origin", 80)
	layout.Geo = &Geo{
		FitBounds:  "locations",
		Projection: Projection{Type: "natural earth"},
	}

	return Figure{
		Data: []Trace{{
			Type:          "choropleth",
			Locations:     locations,
			Z:             z,
			CustomData:    custom,
			HoverTemplate: "%{customdata[0]}<br>Count: %{customdata[1]}<extra></extra>",
			ColorScale:    "Plasma",
			ShowScale:     boolPtr(false),
		}},
		Layout: layout,
	}
}

// BudgetScatter plots budget against revenue ratio on log axes, one trace
// per genre in order of first appearance.
func BudgetScatter(points []models.FinancedMovie) Figure {
	traces := make([]Trace, 0)
	byGenre := make(map[string]int)
	for _, p := range points {
		i, ok := byGenre[p.Genre]
		if !ok {
			i = len(traces)
			byGenre[p.Genre] = i
			traces = append(traces, Trace{
				Type:          "scatter",
				Mode:          "markers",
				Name:          p.Genre,
				Opacity:       0.5,
				Marker:        &Marker{Color: palette[i%len(palette)], Size: 10},
				HoverTemplate: "%{customdata[0]}<br>Budget: %{customdata[1]}<br>Gross: %{customdata[2]:.2f} times budget<extra></extra>",
				ShowLegend:    boolPtr(true),
			})
		}
		ratio := p.Ratio.InexactFloat64()
		traces[i].X = append(traces[i].X, p.Budget.InexactFloat64())
		traces[i].Y = append(traces[i].Y, ratio)
		traces[i].CustomData = append(traces[i].CustomData, []any{p.Title, FormatAmount(p.Budget.IntPart()), ratio})
	}

	layout := baseLayout("Budget compared to gross world wide revenue", 90)
	layout.XAxis = axis("Budget ($)", "log")
	layout.YAxis = axis("Gross revenue (factor of budget)", "log")
	layout.Legend = &Legend{Title: AxisTitle{Text: "Genre"}}

	return Figure{Data: traces, Layout: layout}
}

// CertificationBar draws the count of movies per certification.
func CertificationBar(rows []models.CertificationCount) Figure {
	x := make([]any, 0, len(rows))
	y := make([]any, 0, len(rows))
	for _, r := range rows {
		x = append(x, r.Certification)
		y = append(y, r.Count)
	}

	layout := baseLayout("Number of movies per certification type", 90)
	layout.XAxis = axis("Age restriction", "category")
	layout.YAxis = axis("Number of movies", "linear")

	return Figure{
		Data: []Trace{{
			Type:          "bar",
			X:             x,
			Y:             y,
			Marker:        &Marker{Color: barColor},
			HoverTemplate: "Age restriction=%{x}<br>Number of movies=%{y}<extra></extra>",
		}},
		Layout: layout,
	}
}
