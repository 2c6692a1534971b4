package godeck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransform() Transform {
	return NewTransform(Inches(1), Inches(1), Inches(6), Inches(3))
}

func TestMergeRegions(t *testing.T) {
	tbl := NewTable(4, 4, testTransform())

	require.NoError(t, tbl.Merge(0, 0, 2, 3))
	require.NoError(t, tbl.Merge(2, 2, 2, 2))

	anchor := tbl.GetCell(0, 0)
	assert.Equal(t, MergeAnchor, anchor.merge)
	assert.Equal(t, 2, anchor.rowSpan)
	assert.Equal(t, 3, anchor.colSpan)

	assert.Equal(t, MergeH, tbl.GetCell(0, 1).merge)
	assert.Equal(t, MergeH, tbl.GetCell(0, 2).merge)
	assert.Equal(t, MergeV, tbl.GetCell(1, 0).merge)
	assert.Equal(t, MergeV, tbl.GetCell(1, 2).merge)

	assert.Equal(t, MergeAnchor, tbl.GetCell(2, 2).merge)
	assert.Equal(t, MergeH, tbl.GetCell(2, 3).merge)
	assert.Equal(t, MergeV, tbl.GetCell(3, 2).merge)
	assert.Equal(t, MergeV, tbl.GetCell(3, 3).merge)

	// Untouched cells stay plain.
	assert.Equal(t, MergeNone, tbl.GetCell(0, 3).merge)
	assert.Equal(t, MergeNone, tbl.GetCell(2, 0).merge)
	assert.Equal(t, MergeNone, tbl.GetCell(3, 1).merge)

	require.NoError(t, tbl.validate())
}

func TestMergeOverlapRejected(t *testing.T) {
	tbl := NewTable(4, 4, testTransform())
	require.NoError(t, tbl.Merge(0, 0, 2, 3))

	err := tbl.Merge(1, 2, 2, 2)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrOverlap, kind)

	// The failed merge left the grid untouched.
	assert.Equal(t, MergeNone, tbl.GetCell(2, 2).merge)
	require.NoError(t, tbl.validate())
}

func TestMergeOutOfGridRejected(t *testing.T) {
	tbl := NewTable(3, 3, testTransform())
	err := tbl.Merge(2, 2, 2, 2)
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, ErrInvalidInput, kind)
}

func TestMergeBadSpansRejected(t *testing.T) {
	tbl := NewTable(3, 3, testTransform())
	err := tbl.Merge(0, 0, 0, 2)
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, ErrInvalidInput, kind)
}

func TestMergeSingleCellIsNoop(t *testing.T) {
	tbl := NewTable(3, 3, testTransform())
	require.NoError(t, tbl.Merge(1, 1, 1, 1))
	assert.Equal(t, MergeNone, tbl.GetCell(1, 1).merge)
}

func TestTableCellText(t *testing.T) {
	tbl := NewTable(2, 2, testTransform())
	tbl.GetCell(0, 0).SetText("Header")
	tbl.GetCell(1, 1).SetFill(SolidFill(RGB("EEEEEE")))
	require.NoError(t, tbl.validate())
	assert.Nil(t, tbl.GetCell(5, 5))
}
