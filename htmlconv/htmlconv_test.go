package htmlconv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	godeck "github.com/VantageDataChat/GoDeck"
)

func TestConvertDocument(t *testing.T) {
	html := `<html><body>
<h1>Welcome</h1>
<p>Opening   remarks.</p>
<ul><li>alpha</li><li>beta</li></ul>
<h2>Numbers</h2>
<table>
  <tr><th>Name</th><th>Score</th></tr>
  <tr><td>A</td><td>10</td></tr>
</table>
</body></html>`

	pres, err := Convert(strings.NewReader(html))
	require.NoError(t, err)
	slides := pres.GetSlides()
	require.Len(t, slides, 2)
	assert.Equal(t, "Welcome", slides[0].GetTitle())
	assert.Equal(t, "Numbers", slides[1].GetTitle())

	data, err := pres.Bytes()
	require.NoError(t, err)
	slide1, err := godeck.ReadPart(data, "ppt/slides/slide1.xml")
	require.NoError(t, err)
	s := string(slide1)
	assert.Contains(t, s, "<a:t>Opening remarks.</a:t>")
	assert.Contains(t, s, "<a:t>alpha</a:t>")

	slide2, err := godeck.ReadPart(data, "ppt/slides/slide2.xml")
	require.NoError(t, err)
	assert.Contains(t, string(slide2), "<a:t>Score</a:t>")
}

func TestConvertPreBlock(t *testing.T) {
	pres, err := Convert(strings.NewReader("<body><h1>C</h1><pre>x := 1\ny := 2</pre></body>"))
	require.NoError(t, err)
	elements := pres.GetSlides()[0].GetElements()
	require.Len(t, elements, 1)
	cb, ok := elements[0].(*godeck.CodeBlock)
	require.True(t, ok)
	assert.Equal(t, "x := 1\ny := 2", cb.GetCode())
}

func TestNestedContainersFlattened(t *testing.T) {
	html := `<body><div><h1>Inside</h1><section><p>deep text</p></section></div></body>`
	pres, err := Convert(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, pres.GetSlides(), 1)
	assert.Equal(t, "Inside", pres.GetSlides()[0].GetTitle())
}

func TestNonDataImagesSkipped(t *testing.T) {
	html := `<body><h1>Pics</h1><img src="https://example.com/x.png"></body>`
	pres, err := Convert(strings.NewReader(html))
	require.NoError(t, err)
	assert.Empty(t, pres.GetSlides()[0].GetElements())
}
