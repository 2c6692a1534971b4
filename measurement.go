package godeck

import "math"

// EMU (English Metric Units) conversion helpers.
// 1 inch = 914400 EMU, 1 point = 12700 EMU, 1 cm = 360000 EMU.

const (
	emuPerInch       = 914400
	emuPerPoint      = 12700
	emuPerCentimeter = 360000
	emuPerMillimeter = 36000
	// maxEMU is the maximum safe EMU value to prevent overflow.
	maxEMU = math.MaxInt64 / 2
)

// Standard slide extents in EMU.
const (
	SlideWidth4x3   int64 = 9144000
	SlideHeight4x3  int64 = 6858000
	SlideWidth16x9  int64 = 12192000
	SlideHeight16x9 int64 = 6858000
)

// Inch converts inches to EMU. Clamps to safe range.
func Inch(n float64) int64 {
	return clampEMU(n * emuPerInch)
}

// Point converts points to EMU.
func Point(n float64) int64 {
	return clampEMU(n * emuPerPoint)
}

// Centimeter converts centimeters to EMU.
func Centimeter(n float64) int64 {
	return clampEMU(n * emuPerCentimeter)
}

// Millimeter converts millimeters to EMU.
func Millimeter(n float64) int64 {
	return clampEMU(n * emuPerMillimeter)
}

// EMUToInch converts EMU to inches.
func EMUToInch(emu int64) float64 {
	return float64(emu) / emuPerInch
}

// EMUToPoint converts EMU to points.
func EMUToPoint(emu int64) float64 {
	return float64(emu) / emuPerPoint
}

// EMUToCentimeter converts EMU to centimeters.
func EMUToCentimeter(emu int64) float64 {
	return float64(emu) / emuPerCentimeter
}

// EMUToMillimeter converts EMU to millimeters.
func EMUToMillimeter(emu int64) float64 {
	return float64(emu) / emuPerMillimeter
}

// clampEMU converts a float64 to int64, clamping to prevent overflow.
// Fractional values truncate toward zero.
func clampEMU(v float64) int64 {
	if v > float64(maxEMU) {
		return maxEMU
	}
	if v < -float64(maxEMU) {
		return -maxEMU
	}
	return int64(v)
}

// dimKind tags the unit a Dimension was constructed with.
type dimKind int

const (
	dimEMU dimKind = iota
	dimInches
	dimCentimeters
	dimPoints
	dimRatio
)

// Dimension is a length in one of the supported units. A Dimension resolves
// to EMU against a reference extent: absolute units ignore the reference,
// ratios multiply it. The zero value resolves to 0 EMU.
type Dimension struct {
	kind  dimKind
	value float64
	emu   int64
}

// EMU builds a Dimension from a raw EMU count.
func EMU(v int64) Dimension {
	return Dimension{kind: dimEMU, emu: v}
}

// Inches builds a Dimension in inches.
func Inches(v float64) Dimension {
	return Dimension{kind: dimInches, value: v}
}

// Centimeters builds a Dimension in centimeters.
func Centimeters(v float64) Dimension {
	return Dimension{kind: dimCentimeters, value: v}
}

// Points builds a Dimension in typographic points.
func Points(v float64) Dimension {
	return Dimension{kind: dimPoints, value: v}
}

// Ratio builds a Dimension as a fraction of the reference extent.
// The fraction is clamped to [0, 1] at resolution time.
func Ratio(v float64) Dimension {
	return Dimension{kind: dimRatio, value: v}
}

// Resolve converts d to EMU against the given reference extent (slide width
// for horizontal values, slide height for vertical ones).
func (d Dimension) Resolve(reference int64) (int64, error) {
	var emu int64
	switch d.kind {
	case dimEMU:
		emu = d.emu
	case dimInches:
		emu = Inch(d.value)
	case dimCentimeters:
		emu = Centimeter(d.value)
	case dimPoints:
		emu = Point(d.value)
	case dimRatio:
		r := d.value
		if r < 0 {
			r = 0
		}
		if r > 1 {
			r = 1
		}
		emu = clampEMU(r * float64(reference))
	default:
		return 0, newError(ErrInternal, "unknown dimension kind %d", d.kind)
	}
	if emu < 0 {
		return 0, newError(ErrInvalidInput, "dimension resolves to negative EMU %d", emu)
	}
	return emu, nil
}

// Position is a point on the slide canvas.
type Position struct {
	X Dimension
	Y Dimension
}

// Size is an extent on the slide canvas.
type Size struct {
	Width  Dimension
	Height Dimension
}

// Transform places an element: offset, extent and rotation.
// Rotation is in degrees; it is serialized in 1/60000 degree units and the
// attribute is omitted entirely when zero.
type Transform struct {
	Position Position
	Size     Size
	Rotation float64
}

// NewTransform places an element at (x, y) with the given extent.
func NewTransform(x, y, w, h Dimension) Transform {
	return Transform{
		Position: Position{X: x, Y: y},
		Size:     Size{Width: w, Height: h},
	}
}

// WithRotation returns a copy of t rotated by deg degrees clockwise.
func (t Transform) WithRotation(deg float64) Transform {
	t.Rotation = deg
	return t
}

// resolvedTransform is a Transform with all dimensions converted to EMU.
type resolvedTransform struct {
	x, y, cx, cy int64
	rot          int64
}

// resolve converts the transform against a slide extent.
func (t Transform) resolve(slideW, slideH int64) (resolvedTransform, error) {
	var rt resolvedTransform
	var err error
	if rt.x, err = t.Position.X.Resolve(slideW); err != nil {
		return rt, err
	}
	if rt.y, err = t.Position.Y.Resolve(slideH); err != nil {
		return rt, err
	}
	if rt.cx, err = t.Size.Width.Resolve(slideW); err != nil {
		return rt, err
	}
	if rt.cy, err = t.Size.Height.Resolve(slideH); err != nil {
		return rt, err
	}
	rt.rot = int64(t.Rotation * 60000)
	return rt, nil
}
