// Package charts maps summary tables onto Plotly.js figure descriptions.
// Renderers are pure: same rows in, same figure out.
package charts

// Figure is a Plotly.js figure: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is the subset of Plotly trace attributes the dashboard uses.
type Trace struct {
	Type          string    `json:"type"`
	Mode          string    `json:"mode,omitempty"`
	Name          string    `json:"name,omitempty"`
	X             []any     `json:"x,omitempty"`
	Y             []any     `json:"y,omitempty"`
	Locations     []string  `json:"locations,omitempty"`
	Z             []float64 `json:"z,omitempty"`
	CustomData    [][]any   `json:"customdata,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	Line          *Line     `json:"line,omitempty"`
	Opacity       float64   `json:"opacity,omitempty"`
	ShowScale     *bool     `json:"showscale,omitempty"`
	ShowLegend    *bool     `json:"showlegend,omitempty"`
	ColorScale    string    `json:"colorscale,omitempty"`
}

type Marker struct {
	Color string  `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

type Line struct {
	Color string `json:"color,omitempty"`
}

// Layout is the subset of Plotly layout attributes the dashboard uses.
type Layout struct {
	Title        Title   `json:"title"`
	Margin       Margin  `json:"margin"`
	XAxis        *Axis   `json:"xaxis,omitempty"`
	YAxis        *Axis   `json:"yaxis,omitempty"`
	Geo          *Geo    `json:"geo,omitempty"`
	Legend       *Legend `json:"legend,omitempty"`
	PaperBGColor string  `json:"paper_bgcolor"`
	PlotBGColor  string  `json:"plot_bgcolor"`
	Font         *Font   `json:"font,omitempty"`
}

type Title struct {
	Text       string  `json:"text"`
	Font       Font    `json:"font"`
	YRef       string  `json:"yref"`
	Y          float64 `json:"y"`
	YAnchor    string  `json:"yanchor"`
	AutoMargin bool    `json:"automargin"`
}

type Font struct {
	Size   int    `json:"size,omitempty"`
	Family string `json:"family,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Axis struct {
	Title     AxisTitle `json:"title"`
	Type      string    `json:"type,omitempty"` // "linear", "log", "category"
	GridColor string    `json:"gridcolor,omitempty"`
}

type AxisTitle struct {
	Text string `json:"text"`
}

type Geo struct {
	FitBounds  string     `json:"fitbounds,omitempty"`
	Projection Projection `json:"projection"`
	ShowFrame  bool       `json:"showframe"`
}

type Projection struct {
	Type string `json:"type"`
}

type Legend struct {
	Title AxisTitle `json:"title"`
}
