package godeck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitConversions(t *testing.T) {
	assert.Equal(t, int64(914400), Inch(1))
	assert.Equal(t, int64(12700), Point(1))
	assert.Equal(t, int64(360000), Centimeter(1))
	assert.Equal(t, int64(36000), Millimeter(1))
	assert.Equal(t, int64(457200), Inch(0.5))

	assert.InDelta(t, 1.0, EMUToInch(914400), 1e-9)
	assert.InDelta(t, 2.54, EMUToCentimeter(Inch(1)), 1e-9)
	assert.InDelta(t, 72.0, EMUToPoint(Inch(1)), 1e-9)
}

func TestConversionTruncates(t *testing.T) {
	// 1/3 inch is not an integral EMU count; the fraction truncates.
	assert.Equal(t, int64(304800), Inch(1.0/3.0))
}

func TestDimensionResolve(t *testing.T) {
	got, err := Inches(2).Resolve(SlideWidth4x3)
	require.NoError(t, err)
	assert.Equal(t, int64(1828800), got)

	got, err = EMU(12345).Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), got)

	got, err = Ratio(0.5).Resolve(SlideWidth4x3)
	require.NoError(t, err)
	assert.Equal(t, SlideWidth4x3/2, got)
}

func TestRatioClamps(t *testing.T) {
	got, err := Ratio(1.5).Resolve(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got)

	got, err = Ratio(-0.5).Resolve(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestNegativeDimensionRejected(t *testing.T) {
	_, err := Inches(-1).Resolve(SlideWidth4x3)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidInput, kind)
}

func TestTransformResolve(t *testing.T) {
	tr := NewTransform(Inches(1), Inches(2), Ratio(0.5), Points(100)).WithRotation(45)
	rt, err := tr.resolve(SlideWidth4x3, SlideHeight4x3)
	require.NoError(t, err)
	assert.Equal(t, int64(914400), rt.x)
	assert.Equal(t, int64(1828800), rt.y)
	assert.Equal(t, SlideWidth4x3/2, rt.cx)
	assert.Equal(t, int64(1270000), rt.cy)
	assert.Equal(t, int64(2700000), rt.rot)
}
