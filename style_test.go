package godeck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorNormalizes(t *testing.T) {
	c, err := ParseColor("#ff8800")
	require.NoError(t, err)
	assert.Equal(t, "FF8800", c.Hex())

	c, err = ParseColor("00ff00")
	require.NoError(t, err)
	assert.Equal(t, "00FF00", c.Hex())
}

func TestParseColorRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"", "fff", "GGGGGG", "#12345", "1234567"} {
		_, err := ParseColor(bad)
		require.Error(t, err, "input %q", bad)
		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, ErrInvalidInput, kind)
	}
}

func TestSchemeColorXML(t *testing.T) {
	assert.Equal(t, `<a:schemeClr val="accent1"/>`, Scheme(ThemeAccent1).clrXML(0))
	assert.Equal(t, `<a:srgbClr val="FF0000"/>`, RGB("FF0000").clrXML(0))
	assert.Equal(t, `<a:srgbClr val="FF0000"><a:alpha val="50000"/></a:srgbClr>`, RGB("FF0000").clrXML(50000))
}

func TestGradientDirectionAngles(t *testing.T) {
	assert.Equal(t, int64(0), GradientHorizontal.angle())
	assert.Equal(t, int64(5400000), GradientVertical.angle())
	assert.Equal(t, int64(2700000), GradientDiagonalDown.angle())
	assert.Equal(t, int64(18900000), GradientDiagonalUp.angle())
}

func TestLinearGradientXML(t *testing.T) {
	g := LinearGradient(GradientDiagonalDown, RGB("FF0000"), RGB("0000FF"))
	xml, err := gradientXML(g)
	require.NoError(t, err)
	assert.Contains(t, xml, `<a:gradFill rotWithShape="1">`)
	assert.Contains(t, xml, `<a:lin ang="2700000" scaled="1"/>`)
	assert.Contains(t, xml, `<a:gs pos="0"><a:srgbClr val="FF0000"/></a:gs>`)
	assert.Contains(t, xml, `<a:gs pos="100000"><a:srgbClr val="0000FF"/></a:gs>`)
}

func TestGradientNeedsTwoStops(t *testing.T) {
	g := &Gradient{Kind: GradientLinear, Stops: []GradientStop{{Position: 0, Color: RGB("FF0000")}}}
	err := g.validate()
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, ErrInvalidInput, kind)
}

func TestGradientStopsSortedAndClamped(t *testing.T) {
	g := &Gradient{
		Kind: GradientLinear,
		Stops: []GradientStop{
			{Position: 120000, Color: RGB("0000FF")},
			{Position: -5, Color: RGB("FF0000")},
			{Position: 50000, Color: RGB("00FF00")},
		},
	}
	stops := g.sortedStops()
	require.Len(t, stops, 3)
	assert.Equal(t, 0, stops[0].Position)
	assert.Equal(t, "FF0000", stops[0].Color.Hex())
	assert.Equal(t, 50000, stops[1].Position)
	assert.Equal(t, 100000, stops[2].Position)
	// Caller order untouched.
	assert.Equal(t, 120000, g.Stops[0].Position)
}

func TestExplicitAngleOverridesDirection(t *testing.T) {
	g := LinearGradient(GradientVertical, RGB("FF0000"), RGB("0000FF"))
	g.Angle = 1800000
	assert.Equal(t, int64(1800000), g.resolvedAngle())
}
