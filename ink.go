package godeck

// InkPoint is one sample of a pen trace, in EMU slide coordinates.
type InkPoint struct {
	X int64
	Y int64
}

// InkStroke is a freehand pen annotation. Strokes serialize as InkML traces
// inside a markup-compatibility wrapper so readers without ink support
// fall back gracefully.
type InkStroke struct {
	Points []InkPoint
	Color  Color
	Width  Dimension // pen width
}

// NewInkStroke builds a stroke through the given points.
func NewInkStroke(points []InkPoint, color Color, width Dimension) *InkStroke {
	return &InkStroke{Points: points, Color: color, Width: width}
}

func (s *InkStroke) validate() error {
	if len(s.Points) < 2 {
		return newError(ErrInvalidInput, "ink stroke needs at least 2 points, got %d", len(s.Points))
	}
	return s.Color.validate()
}
