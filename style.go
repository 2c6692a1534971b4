package godeck

import (
	"sort"
	"strconv"
	"strings"
)

// --- Color ---

// ThemeColor is a color-scheme token resolved by the theme at render time.
type ThemeColor string

const (
	ThemeAccent1  ThemeColor = "accent1"
	ThemeAccent2  ThemeColor = "accent2"
	ThemeAccent3  ThemeColor = "accent3"
	ThemeAccent4  ThemeColor = "accent4"
	ThemeAccent5  ThemeColor = "accent5"
	ThemeAccent6  ThemeColor = "accent6"
	ThemeDark1    ThemeColor = "dk1"
	ThemeDark2    ThemeColor = "dk2"
	ThemeLight1   ThemeColor = "lt1"
	ThemeLight2   ThemeColor = "lt2"
	ThemeBg1      ThemeColor = "bg1"
	ThemeBg2      ThemeColor = "bg2"
	ThemeText1    ThemeColor = "tx1"
	ThemeText2    ThemeColor = "tx2"
	ThemeHlink    ThemeColor = "hlink"
	ThemeFolHlink ThemeColor = "folHlink"
)

var themeColorNames = map[ThemeColor]bool{
	ThemeAccent1: true, ThemeAccent2: true, ThemeAccent3: true,
	ThemeAccent4: true, ThemeAccent5: true, ThemeAccent6: true,
	ThemeDark1: true, ThemeDark2: true, ThemeLight1: true, ThemeLight2: true,
	ThemeBg1: true, ThemeBg2: true, ThemeText1: true, ThemeText2: true,
	ThemeHlink: true, ThemeFolHlink: true,
}

// Color is either an sRGB triple or a theme-scheme token.
type Color struct {
	rgb   string // six uppercase hex digits when set
	theme ThemeColor
}

// RGB builds a color from a hex string such as "FF8800" or "#ff8800".
// The value is normalized to uppercase with the "#" prefix stripped.
// Malformed input is kept verbatim and rejected at write time; use
// ParseColor to check eagerly.
func RGB(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		return Color{rgb: hex}
	}
	return c
}

// ParseColor validates and normalizes a hex color string.
func ParseColor(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return Color{}, newError(ErrInvalidInput, "color %q: want 6 hex digits", hex)
	}
	s = strings.ToUpper(s)
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return Color{}, newError(ErrInvalidInput, "color %q: invalid hex digit %q", hex, r)
		}
	}
	return Color{rgb: s}, nil
}

// Scheme builds a color from a theme token.
func Scheme(t ThemeColor) Color {
	return Color{theme: t}
}

// IsZero reports whether c carries no color.
func (c Color) IsZero() bool {
	return c.rgb == "" && c.theme == ""
}

// IsTheme reports whether c is a scheme token.
func (c Color) IsTheme() bool {
	return c.theme != ""
}

// Hex returns the six-digit uppercase RGB value; "000000" for theme colors.
func (c Color) Hex() string {
	if c.rgb != "" {
		return c.rgb
	}
	return "000000"
}

func (c Color) validate() error {
	if c.theme != "" {
		if !themeColorNames[c.theme] {
			return newError(ErrInvalidInput, "unknown theme color %q", c.theme)
		}
		return nil
	}
	_, err := ParseColor(c.rgb)
	return err
}

// clrXML renders c as a DrawingML color child, either srgbClr or schemeClr.
// alpha runs 0..100000; 0 means opaque.
func (c Color) clrXML(alpha int) string {
	inner := ""
	if alpha > 0 && alpha < 100000 {
		inner = `<a:alpha val="` + strconv.Itoa(alpha) + `"/>`
	}
	if c.theme != "" {
		if inner == "" {
			return `<a:schemeClr val="` + string(c.theme) + `"/>`
		}
		return `<a:schemeClr val="` + string(c.theme) + `">` + inner + `</a:schemeClr>`
	}
	if inner == "" {
		return `<a:srgbClr val="` + c.Hex() + `"/>`
	}
	return `<a:srgbClr val="` + c.Hex() + `">` + inner + `</a:srgbClr>`
}

// --- Font ---

// UnderlineStyle selects run underlining.
type UnderlineStyle string

const (
	UnderlineNone   UnderlineStyle = "none"
	UnderlineSingle UnderlineStyle = "sng"
)

// Baseline marks a run as subscript or superscript. The two are mutually
// exclusive.
type Baseline int

const (
	BaselineNormal Baseline = iota
	BaselineSubscript
	BaselineSuperscript
)

// Font is the character formatting of a text run.
type Font struct {
	Name          string
	Size          float64 // points; 0 means inherit
	Bold          bool
	Italic        bool
	Underline     UnderlineStyle
	Strikethrough bool
	Baseline      Baseline
	Color         Color
	Highlight     Color
}

// --- Alignment ---

// Align is a paragraph's horizontal alignment.
type Align string

const (
	AlignLeft    Align = "l"
	AlignCenter  Align = "ctr"
	AlignRight   Align = "r"
	AlignJustify Align = "just"
)

// --- Fill ---

// FillType discriminates the fill variants.
type FillType int

const (
	FillNone FillType = iota
	FillSolid
	FillGradient
)

// Fill paints a shape interior or slide background.
type Fill struct {
	Type     FillType
	Color    Color
	Gradient *Gradient
}

// SolidFill builds a solid fill.
func SolidFill(c Color) *Fill {
	return &Fill{Type: FillSolid, Color: c}
}

// GradientFill builds a gradient fill.
func GradientFill(g *Gradient) *Fill {
	return &Fill{Type: FillGradient, Gradient: g}
}

func (f *Fill) validate() error {
	if f == nil || f.Type == FillNone {
		return nil
	}
	switch f.Type {
	case FillSolid:
		return f.Color.validate()
	case FillGradient:
		if f.Gradient == nil {
			return newError(ErrInvalidInput, "gradient fill without gradient")
		}
		return f.Gradient.validate()
	}
	return newError(ErrInvalidInput, "unknown fill type %d", f.Type)
}

// --- Gradient ---

// GradientKind selects the gradient geometry.
type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientRadial
	GradientRectangular
	GradientPath
)

// GradientDirection presets the angle of a linear gradient.
type GradientDirection int

const (
	GradientHorizontal GradientDirection = iota
	GradientVertical
	GradientDiagonalDown
	GradientDiagonalUp
)

// angle returns the DrawingML angle in 1/60000 degree units.
func (d GradientDirection) angle() int64 {
	switch d {
	case GradientVertical:
		return 5400000
	case GradientDiagonalDown:
		return 2700000
	case GradientDiagonalUp:
		return 18900000
	default:
		return 0
	}
}

// GradientStop is one color stop. Position runs 0..100000; Alpha, when
// non-zero, is opacity on the same scale.
type GradientStop struct {
	Position int
	Color    Color
	Alpha    int
}

// Gradient is an ordered multi-stop color ramp.
type Gradient struct {
	Kind      GradientKind
	Direction GradientDirection
	Angle     int64 // 1/60000 degree; overrides Direction when non-zero
	Stops     []GradientStop
}

// LinearGradient builds a two-stop linear gradient in the given direction.
func LinearGradient(dir GradientDirection, from, to Color) *Gradient {
	return &Gradient{
		Kind:      GradientLinear,
		Direction: dir,
		Stops: []GradientStop{
			{Position: 0, Color: from},
			{Position: 100000, Color: to},
		},
	}
}

// AddStop appends a color stop and returns the gradient for chaining.
func (g *Gradient) AddStop(pos int, c Color) *Gradient {
	g.Stops = append(g.Stops, GradientStop{Position: pos, Color: c})
	return g
}

func (g *Gradient) validate() error {
	if len(g.Stops) < 2 {
		return newError(ErrInvalidInput, "gradient needs at least 2 stops, got %d", len(g.Stops))
	}
	for _, s := range g.Stops {
		if err := s.Color.validate(); err != nil {
			return err
		}
	}
	return nil
}

// sortedStops returns the stops clamped to [0, 100000] in non-decreasing
// position order. The sort is stable so equal positions keep caller order.
func (g *Gradient) sortedStops() []GradientStop {
	out := make([]GradientStop, len(g.Stops))
	copy(out, g.Stops)
	for i := range out {
		if out[i].Position < 0 {
			out[i].Position = 0
		}
		if out[i].Position > 100000 {
			out[i].Position = 100000
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// resolvedAngle returns the linear angle in 1/60000 degree units.
func (g *Gradient) resolvedAngle() int64 {
	if g.Angle != 0 {
		return g.Angle
	}
	return g.Direction.angle()
}

// --- Border ---

// BorderStyle selects the stroke dash pattern.
type BorderStyle string

const (
	BorderSolid BorderStyle = "solid"
	BorderDash  BorderStyle = "dash"
	BorderDot   BorderStyle = "dot"
)

// Border is a shape outline.
type Border struct {
	Color Color
	Width Dimension // stroke width; points are the usual unit
	Style BorderStyle
}

// NewBorder builds a solid border.
func NewBorder(c Color, width Dimension) *Border {
	return &Border{Color: c, Width: width, Style: BorderSolid}
}
