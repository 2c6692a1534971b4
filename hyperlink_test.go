package godeck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHyperlinkTargets(t *testing.T) {
	assert.Equal(t, "https://example.com", LinkURL("https://example.com").target())
	assert.Equal(t, "slide3.xml", LinkSlide(3).target())
	assert.Equal(t, "ppaction://hlinkshowjump?jump=firstslide", LinkFirstSlide().target())
	assert.Equal(t, "ppaction://hlinkshowjump?jump=lastslide", LinkLastSlide().target())
	assert.Equal(t, "ppaction://hlinkshowjump?jump=nextslide", LinkNextSlide().target())
	assert.Equal(t, "ppaction://hlinkshowjump?jump=previousslide", LinkPreviousSlide().target())
	assert.Equal(t, "ppaction://hlinkshowjump?jump=endshow", LinkEndShow().target())
	assert.Equal(t, "mailto:a@b.c?subject=Hi", LinkEmail("a@b.c", "Hi").target())
	assert.Equal(t, "file:///C:/docs/report.pdf", LinkFile(`C:\docs\report.pdf`).target())
}

func TestHyperlinkExternal(t *testing.T) {
	assert.True(t, LinkURL("https://example.com").isExternal())
	assert.True(t, LinkEmail("a@b.c", "").isExternal())
	assert.True(t, LinkFile("/tmp/x").isExternal())
	assert.False(t, LinkSlide(1).isExternal())
	assert.False(t, LinkFirstSlide().isExternal())
}

func TestHyperlinkClickXML(t *testing.T) {
	h := LinkURL("https://example.com").SetTooltip(`Q&A <"session">`)
	xml := h.hlinkClickXML("rId7")
	assert.Contains(t, xml, `r:id="rId7"`)
	assert.Contains(t, xml, `tooltip="Q&amp;A &lt;&#34;session&#34;&gt;"`)
	assert.NotContains(t, xml, "action=")

	jump := LinkEndShow().hlinkClickXML("")
	assert.Contains(t, jump, `r:id=""`)
	assert.Contains(t, jump, `action="ppaction://hlinkshowjump?jump=endshow"`)

	slide := LinkSlide(2).SetHighlightClick(true).hlinkClickXML("rId3")
	assert.Contains(t, slide, `action="ppaction://hlinksldjump"`)
	assert.Contains(t, slide, `highlightClick="1"`)
}

func TestHyperlinkSlideRange(t *testing.T) {
	err := LinkSlide(5).validate(3)
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, ErrInvalidInput, kind)
	require.NoError(t, LinkSlide(3).validate(3))
}
