package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	godeck "github.com/VantageDataChat/GoDeck"
)

func TestConvertHeadingsAndBullets(t *testing.T) {
	src := []byte(`# First Slide

Intro paragraph.

- point one
- point two
  - nested point

## Second Slide

More text.
`)
	pres, err := Convert(src)
	require.NoError(t, err)
	slides := pres.GetSlides()
	require.Len(t, slides, 2)

	assert.Equal(t, "First Slide", slides[0].GetTitle())
	assert.Equal(t, "Second Slide", slides[1].GetTitle())

	data, err := pres.Bytes()
	require.NoError(t, err)
	slide1, err := godeck.ReadPart(data, "ppt/slides/slide1.xml")
	require.NoError(t, err)
	s := string(slide1)
	assert.Contains(t, s, "<a:t>Intro paragraph.</a:t>")
	assert.Contains(t, s, "<a:t>point one</a:t>")
	assert.Contains(t, s, "<a:t>  nested point</a:t>")
}

func TestConvertCodeBlock(t *testing.T) {
	src := []byte("# Code\n\n```go\nfmt.Println(\"hi\")\n```\n")
	pres, err := Convert(src)
	require.NoError(t, err)
	require.Len(t, pres.GetSlides(), 1)
	require.Len(t, pres.GetSlides()[0].GetElements(), 1)

	cb, ok := pres.GetSlides()[0].GetElements()[0].(*godeck.CodeBlock)
	require.True(t, ok)
	assert.Equal(t, `fmt.Println("hi")`, cb.GetCode())
}

func TestConvertTable(t *testing.T) {
	src := []byte(`# Table

| Name | Score |
|------|-------|
| A    | 10    |
| B    | 20    |
`)
	pres, err := Convert(src)
	require.NoError(t, err)
	elements := pres.GetSlides()[0].GetElements()
	require.Len(t, elements, 1)

	tbl, ok := elements[0].(*godeck.Table)
	require.True(t, ok)
	assert.Equal(t, 3, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())

	data, err := pres.Bytes()
	require.NoError(t, err)
	slide1, err := godeck.ReadPart(data, "ppt/slides/slide1.xml")
	require.NoError(t, err)
	assert.Contains(t, string(slide1), "<a:t>Score</a:t>")
	assert.Contains(t, string(slide1), "<a:t>20</a:t>")
}

func TestThematicBreakSplitsSlides(t *testing.T) {
	src := []byte("# One\n\ntext\n\n---\n\nafter the break\n")
	pres, err := Convert(src)
	require.NoError(t, err)
	assert.Len(t, pres.GetSlides(), 2)
}

func TestContentBeforeFirstHeading(t *testing.T) {
	pres, err := Convert([]byte("orphan line\n"))
	require.NoError(t, err)
	require.Len(t, pres.GetSlides(), 1)
	assert.Equal(t, "", pres.GetSlides()[0].GetTitle())
}
