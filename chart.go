package godeck

// ChartKind tags the chart type.
type ChartKind int

const (
	ChartBar ChartKind = iota
	ChartBarHorizontal
	ChartBarStacked
	ChartBarStacked100
	ChartLine
	ChartLineMarkers
	ChartLineStacked
	ChartPie
	ChartDoughnut
	ChartArea
	ChartAreaStacked
	ChartAreaStacked100
	ChartScatter
	ChartScatterLines
	ChartScatterSmooth
	ChartBubble
	ChartRadar
	ChartRadarFilled
	ChartStockHLC
	ChartStockOHLC
	ChartCombo
)

// isScatterLike reports whether series carry paired X/Y data instead of
// category-aligned values.
func (k ChartKind) isScatterLike() bool {
	switch k {
	case ChartScatter, ChartScatterLines, ChartScatterSmooth, ChartBubble:
		return true
	}
	return false
}

func (k ChartKind) isBar() bool {
	switch k {
	case ChartBar, ChartBarHorizontal, ChartBarStacked, ChartBarStacked100:
		return true
	}
	return false
}

// barDir returns the c:barDir value for bar charts.
func (k ChartKind) barDir() string {
	if k == ChartBarHorizontal {
		return "bar"
	}
	return "col"
}

// grouping returns the c:grouping value for bar, line and area charts.
func (k ChartKind) grouping() string {
	switch k {
	case ChartBarStacked, ChartLineStacked, ChartAreaStacked:
		return "stacked"
	case ChartBarStacked100, ChartAreaStacked100:
		return "percentStacked"
	case ChartBar, ChartBarHorizontal:
		return "clustered"
	default:
		return "standard"
	}
}

// scatterStyle returns the c:scatterStyle value.
func (k ChartKind) scatterStyle() string {
	switch k {
	case ChartScatterLines:
		return "lineMarker"
	case ChartScatterSmooth:
		return "smoothMarker"
	default:
		return "marker"
	}
}

// radarStyle returns the c:radarStyle value.
func (k ChartKind) radarStyle() string {
	if k == ChartRadarFilled {
		return "filled"
	}
	return "marker"
}

// SeriesKind overrides the plotting of one series inside a combo chart.
type SeriesKind int

const (
	SeriesDefault SeriesKind = iota
	SeriesAsBar
	SeriesAsLine
)

// Series is one data series.
type Series struct {
	name   string
	values []float64 // category-aligned values, or Y values for scatter
	xvals  []float64 // X values for scatter/bubble
	sizes  []float64 // bubble sizes
	kind   SeriesKind
	color  Color
}

// NewSeries builds a category-aligned series.
func NewSeries(name string, values []float64) *Series {
	return &Series{name: name, values: values}
}

// NewXYSeries builds a scatter series of (x, y) pairs.
func NewXYSeries(name string, xs, ys []float64) *Series {
	return &Series{name: name, xvals: xs, values: ys}
}

// NewBubbleSeries builds a bubble series of (x, y, size) triples.
func NewBubbleSeries(name string, xs, ys, sizes []float64) *Series {
	return &Series{name: name, xvals: xs, values: ys, sizes: sizes}
}

// SetKind overrides how the series plots inside a combo chart.
func (s *Series) SetKind(k SeriesKind) *Series {
	s.kind = k
	return s
}

// SetColor sets an explicit series color.
func (s *Series) SetColor(c Color) *Series {
	s.color = c
	return s
}

// GetName returns the series name.
func (s *Series) GetName() string { return s.name }

// GetValues returns the category-aligned values (Y values for scatter).
func (s *Series) GetValues() []float64 { return s.values }

// Chart is a chart frame placed on a slide. The numeric data is cached
// inline in the chart XML and mirrored into an embedded workbook.
type Chart struct {
	BaseElement
	kind       ChartKind
	title      string
	categories []string
	series     []*Series
	legend     bool
	xAxisTitle string
	yAxisTitle string
}

func (*Chart) element() {}

// NewChart builds an empty chart of the given kind.
func NewChart(kind ChartKind, t Transform) *Chart {
	c := &Chart{kind: kind, legend: true}
	c.transform = t
	return c
}

// SetTitle sets the chart title.
func (c *Chart) SetTitle(title string) *Chart {
	c.title = title
	return c
}

// SetCategories sets the category labels shared by all series.
func (c *Chart) SetCategories(cats []string) *Chart {
	c.categories = cats
	return c
}

// AddSeries appends a series.
func (c *Chart) AddSeries(s *Series) *Chart {
	c.series = append(c.series, s)
	return c
}

// SetLegend toggles the legend.
func (c *Chart) SetLegend(on bool) *Chart {
	c.legend = on
	return c
}

// SetAxisTitles labels the category and value axes.
func (c *Chart) SetAxisTitles(x, y string) *Chart {
	c.xAxisTitle = x
	c.yAxisTitle = y
	return c
}

// GetKind returns the chart kind.
func (c *Chart) GetKind() ChartKind { return c.kind }

// GetSeries returns the ordered series list.
func (c *Chart) GetSeries() []*Series { return c.series }

// validate enforces the series shape constraints. Aggregate charts need
// every series length to equal the category count; scatter charts need
// equal-length X/Y vectors; bubble charts additionally need a size vector
// of the same length.
func (c *Chart) validate() error {
	if len(c.series) == 0 {
		return newError(ErrInvalidInput, "chart has no series")
	}
	if c.kind.isScatterLike() {
		for i, s := range c.series {
			if len(s.xvals) != len(s.values) {
				return newError(ErrInvalidInput,
					"scatter series %d: %d X values vs %d Y values",
					i, len(s.xvals), len(s.values))
			}
			if c.kind == ChartBubble && len(s.sizes) != len(s.values) {
				return newError(ErrInvalidInput,
					"bubble series %d: %d sizes vs %d points",
					i, len(s.sizes), len(s.values))
			}
		}
		return nil
	}
	if len(c.categories) == 0 {
		return newError(ErrInvalidInput, "chart has no categories")
	}
	stock := c.kind == ChartStockHLC || c.kind == ChartStockOHLC
	if stock {
		want := 3
		if c.kind == ChartStockOHLC {
			want = 4
		}
		if len(c.series) != want {
			return newError(ErrInvalidInput, "stock chart needs %d series, got %d", want, len(c.series))
		}
	}
	for i, s := range c.series {
		if len(s.values) != len(c.categories) {
			return newError(ErrInvalidInput,
				"series %d (%q) has %d values for %d categories",
				i, s.name, len(s.values), len(c.categories))
		}
		if !s.color.IsZero() {
			if err := s.color.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
