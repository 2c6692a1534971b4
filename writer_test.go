package godeck

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func buildTestDeck(t *testing.T) *Presentation {
	t.Helper()
	pres := New()

	s1 := pres.AddSlide(LayoutTitleAndContent)
	s1.SetTitle("Overview")
	s1.AddBullet("First point")
	s1.AddBullet("Second point")
	s1.SetNotes("Speaker notes here")
	s1.SetTransition(NewTransition(TransitionFade))

	s2 := pres.AddSlide(LayoutTitleAndContent)
	s2.SetTitle("Details")
	tb := s2.AddTextBox(NewTransform(Inches(1), Inches(2), Inches(5), Inches(1)))
	para := tb.AddParagraph()
	para.AddText("Visit the site").SetHyperlink(
		LinkURL("https://example.com").SetTooltip(`Q&A <"session">`))
	sh := s2.AddShape(GeometryEllipse, NewTransform(Inches(2), Inches(4), Inches(2), Inches(1)))
	sh.SetFill(GradientFill(LinearGradient(GradientDiagonalDown, RGB("FF0000"), RGB("0000FF"))))
	sh.SetText("Go")

	s3 := pres.AddSlide(LayoutTitleOnly)
	s3.SetTitle("Data")
	tbl := s3.AddTable(4, 4, NewTransform(Inches(1), Inches(2), Inches(6), Inches(3)))
	require.NoError(t, tbl.Merge(0, 0, 2, 3))
	require.NoError(t, tbl.Merge(2, 2, 2, 2))
	tbl.GetCell(0, 0).SetText("Merged")
	chart := s3.AddChart(ChartBar, NewTransform(Inches(1), Inches(1), Inches(4), Inches(3)))
	chart.SetTitle("Quarterly Sales")
	chart.SetCategories([]string{"Q1", "Q2", "Q3", "Q4"})
	chart.AddSeries(NewSeries("2023", []float64{10, 20, 30, 40}))
	chart.AddSeries(NewSeries("2024", []float64{15, 25, 35, 45}))

	_, err := s3.AddPicture(testPNG(t), NewTransform(Inches(6), Inches(1), Inches(2), Inches(2)))
	require.NoError(t, err)

	s3.AddConnector(ConnectorStraight,
		Position{X: Inches(1), Y: Inches(1)},
		Position{X: Inches(3), Y: Inches(2)},
	).SetArrows(ArrowNone, ArrowTriangle)

	s3.AddComment(NewComment(
		CommentAuthor{Name: "Reviewer", Initials: "RV"},
		"Check these figures",
		Position{X: Inches(1), Y: Inches(1)},
	))

	return pres
}

func TestBytesIsDeterministic(t *testing.T) {
	pres := buildTestDeck(t)
	a, err := pres.Bytes()
	require.NoError(t, err)
	b, err := pres.Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b), "two serializations of the same deck must be identical")
}

func TestContentTypesIsFirstEntry(t *testing.T) {
	data, err := buildTestDeck(t).Bytes()
	require.NoError(t, err)
	parts, err := ListParts(data)
	require.NoError(t, err)
	require.NotEmpty(t, parts)
	assert.Equal(t, "[Content_Types].xml", parts[0])

	// Marshaled parts carry the same declaration as the templated ones.
	ct, err := ReadPart(data, "[Content_Types].xml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(ct), `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`))
	rels, err := ReadPart(data, "_rels/.rels")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(rels), `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`))
}

func TestRoundTripPartListing(t *testing.T) {
	data, err := buildTestDeck(t).Bytes()
	require.NoError(t, err)
	parts, err := ListParts(data)
	require.NoError(t, err)

	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/app.xml",
		"docProps/core.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/presProps.xml",
		"ppt/viewProps.xml",
		"ppt/tableStyles.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/slideLayout2.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide3.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/notesSlides/notesSlide1.xml",
		"ppt/media/image1.png",
		"ppt/charts/chart1.xml",
		"ppt/charts/style1.xml",
		"ppt/charts/colors1.xml",
		"ppt/embeddings/Workbook1.xlsx",
		"ppt/commentAuthors.xml",
		"ppt/comments/comment3.xml",
	} {
		assert.Contains(t, parts, want)
	}
}

func TestTableCellHyperlinks(t *testing.T) {
	pres := New()
	s := pres.AddSlide(LayoutBlank)
	tbl := s.AddTable(2, 2, NewTransform(Inches(1), Inches(1), Inches(4), Inches(2)))
	tbl.GetCell(0, 0).AddParagraph().AddText("docs").SetHyperlink(LinkURL("https://example.com/docs"))

	data, err := pres.Bytes()
	require.NoError(t, err)

	rels, err := ReadPart(data, "ppt/slides/_rels/slide1.xml.rels")
	require.NoError(t, err)
	assert.Contains(t, string(rels), `Target="https://example.com/docs" TargetMode="External"`)

	slide1, err := ReadPart(data, "ppt/slides/slide1.xml")
	require.NoError(t, err)
	assert.Contains(t, string(slide1), `<a:hlinkClick r:id="rId2"/>`)
	assert.NotContains(t, string(slide1), `r:id=""`)
}

func TestTableCellSlideLinkValidated(t *testing.T) {
	pres := New()
	s := pres.AddSlide(LayoutBlank)
	tbl := s.AddTable(1, 1, NewTransform(Inches(1), Inches(1), Inches(2), Inches(1)))
	tbl.GetCell(0, 0).AddParagraph().AddText("jump").SetHyperlink(LinkSlide(99))

	_, err := pres.Bytes()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidInput, kind)
}

func TestNotesMasterEmitted(t *testing.T) {
	data, err := buildTestDeck(t).Bytes()
	require.NoError(t, err)
	parts, err := ListParts(data)
	require.NoError(t, err)
	assert.Contains(t, parts, "ppt/notesMasters/notesMaster1.xml")
	assert.Contains(t, parts, "ppt/notesMasters/_rels/notesMaster1.xml.rels")

	presXML, err := ReadPart(data, "ppt/presentation.xml")
	require.NoError(t, err)
	assert.Contains(t, string(presXML), "<p:notesMasterIdLst>")

	presRels, err := ReadPart(data, "ppt/_rels/presentation.xml.rels")
	require.NoError(t, err)
	assert.Contains(t, string(presRels), "notesMasters/notesMaster1.xml")

	nsRels, err := ReadPart(data, "ppt/notesSlides/_rels/notesSlide1.xml.rels")
	require.NoError(t, err)
	assert.Contains(t, string(nsRels), "../notesMasters/notesMaster1.xml")

	// A deck without notes carries no notes master.
	plain := New()
	plain.AddSlide(LayoutBlank)
	data, err = plain.Bytes()
	require.NoError(t, err)
	parts, err = ListParts(data)
	require.NoError(t, err)
	assert.NotContains(t, parts, "ppt/notesMasters/notesMaster1.xml")
}

func TestSlideIDsStartAt256(t *testing.T) {
	data, err := buildTestDeck(t).Bytes()
	require.NoError(t, err)
	presXML, err := ReadPart(data, "ppt/presentation.xml")
	require.NoError(t, err)
	s := string(presXML)
	assert.Contains(t, s, `<p:sldId id="256" r:id="rId2"/>`)
	assert.Contains(t, s, `<p:sldId id="257" r:id="rId3"/>`)
	assert.Contains(t, s, `<p:sldId id="258" r:id="rId4"/>`)
	assert.Contains(t, s, `<p:sldSz cx="9144000" cy="6858000" type="screen4x3"/>`)
}

func TestSlideContent(t *testing.T) {
	data, err := buildTestDeck(t).Bytes()
	require.NoError(t, err)

	slide1, err := ReadPart(data, "ppt/slides/slide1.xml")
	require.NoError(t, err)
	s1 := string(slide1)
	assert.Contains(t, s1, "<a:t>Overview</a:t>")
	assert.Contains(t, s1, "<a:t>First point</a:t>")
	assert.Contains(t, s1, `<p:ph type="body" idx="1"/>`)
	assert.Contains(t, s1, "<p:transition><p:fade/></p:transition>")
	// Transition sits after the color map override.
	assert.Less(t, strings.Index(s1, "<p:clrMapOvr>"), strings.Index(s1, "<p:transition"))

	slide2, err := ReadPart(data, "ppt/slides/slide2.xml")
	require.NoError(t, err)
	s2 := string(slide2)
	assert.Contains(t, s2, `tooltip="Q&amp;A &lt;&#34;session&#34;&gt;"`)
	assert.Contains(t, s2, `<a:lin ang="2700000" scaled="1"/>`)
	assert.Contains(t, s2, `<a:prstGeom prst="ellipse">`)

	rels2, err := ReadPart(data, "ppt/slides/_rels/slide2.xml.rels")
	require.NoError(t, err)
	assert.Contains(t, string(rels2), `Target="https://example.com" TargetMode="External"`)
}

func TestTableMergeAttributes(t *testing.T) {
	data, err := buildTestDeck(t).Bytes()
	require.NoError(t, err)
	slide3, err := ReadPart(data, "ppt/slides/slide3.xml")
	require.NoError(t, err)
	s := string(slide3)

	assert.Contains(t, s, `<a:tc gridSpan="3" rowSpan="2">`)
	assert.Contains(t, s, `<a:tc gridSpan="2" rowSpan="2">`)
	assert.Contains(t, s, `<a:tc hMerge="1">`)
	assert.Contains(t, s, `<a:tc vMerge="1">`)
	assert.Contains(t, s, "<a:t>Merged</a:t>")
	// Cell text body precedes cell properties.
	assert.Less(t, strings.Index(s, "<a:txBody>"), strings.Index(s, "<a:tcPr>"))
}

func TestConnectorAndCommentOutput(t *testing.T) {
	data, err := buildTestDeck(t).Bytes()
	require.NoError(t, err)

	slide3, err := ReadPart(data, "ppt/slides/slide3.xml")
	require.NoError(t, err)
	s := string(slide3)
	assert.Contains(t, s, `<a:prstGeom prst="straightConnector1">`)
	assert.Contains(t, s, `<a:tailEnd type="triangle"/>`)

	authors, err := ReadPart(data, "ppt/commentAuthors.xml")
	require.NoError(t, err)
	assert.Contains(t, string(authors), `name="Reviewer" initials="RV"`)

	comments, err := ReadPart(data, "ppt/comments/comment3.xml")
	require.NoError(t, err)
	assert.Contains(t, string(comments), `authorId="0"`)
	assert.Contains(t, string(comments), "<p:text>Check these figures</p:text>")
}

func TestEmptyPresentationRejected(t *testing.T) {
	_, err := New().Bytes()
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidInput, kind)
}

func TestSectionsInPresentationXML(t *testing.T) {
	pres := New()
	for i := 0; i < 5; i++ {
		pres.AddSlide(LayoutBlank)
	}
	require.NoError(t, pres.AddSection("Intro", 0, 1))
	require.NoError(t, pres.AddSection("Body", 2, 4))

	err := pres.AddSection("Overlap", 1, 2)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrOverlap, kind)
	assert.Len(t, pres.GetSections(), 2, "failed AddSection must not mutate")

	data, err := pres.Bytes()
	require.NoError(t, err)
	presXML, err := ReadPart(data, "ppt/presentation.xml")
	require.NoError(t, err)
	s := string(presXML)
	assert.Contains(t, s, `<p:ext uri="{521415D9-36F7-43E2-AB2F-B90AF26B5E84}">`)
	assert.Contains(t, s, `<p14:section name="Intro"`)
	assert.Contains(t, s, `<p14:sldId id="256"/>`)
	assert.Contains(t, s, `<p14:sldId id="260"/>`)
}

func TestSectionGUIDStable(t *testing.T) {
	a := Section{Name: "Intro"}.guid()
	b := Section{Name: "Intro"}.guid()
	c := Section{Name: "Body"}.guid()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "{"))
	assert.True(t, strings.HasSuffix(a, "}"))
	assert.Equal(t, strings.ToUpper(a), a)
}

func TestWidescreenSlideSize(t *testing.T) {
	pres := New().SetWidescreen()
	pres.AddSlide(LayoutBlank)
	data, err := pres.Bytes()
	require.NoError(t, err)
	presXML, err := ReadPart(data, "ppt/presentation.xml")
	require.NoError(t, err)
	assert.Contains(t, string(presXML), `<p:sldSz cx="12192000" cy="6858000" type="screen16x9"/>`)
}

func TestMediaAndInkOutput(t *testing.T) {
	pres := New()
	s := pres.AddSlide(LayoutBlank)
	clip, err := NewVideo([]byte("not really mp4"), MediaMP4,
		NewTransform(Inches(1), Inches(1), Inches(4), Inches(3)))
	require.NoError(t, err)
	s.AddElement(clip)
	s.AddInkStroke(NewInkStroke([]InkPoint{{X: 100, Y: 100}, {X: 200, Y: 300}}, RGB("FF0000"), Points(2)))

	data, err := pres.Bytes()
	require.NoError(t, err)
	parts, err := ListParts(data)
	require.NoError(t, err)
	assert.Contains(t, parts, "ppt/media/media1.mp4")

	slide1, err := ReadPart(data, "ppt/slides/slide1.xml")
	require.NoError(t, err)
	sx := string(slide1)
	assert.Contains(t, sx, `<a:videoFile r:link="rId2"/>`)
	assert.Contains(t, sx, `<p14:media xmlns:p14=`)
	assert.Contains(t, sx, `action="ppaction://media"`)
	assert.Contains(t, sx, `<mc:AlternateContent`)
	assert.Contains(t, sx, `>100 100 200 300</ink:trace>`)

	rels, err := ReadPart(data, "ppt/slides/_rels/slide1.xml.rels")
	require.NoError(t, err)
	// One shared relationship serves the link, the p14 embed and the blip.
	assert.Equal(t, 1, strings.Count(string(rels), "media1.mp4"))
}

func TestEmbeddedFontParts(t *testing.T) {
	pres := New()
	pres.AddSlide(LayoutBlank)
	pres.AddEmbeddedFont(NewEmbeddedFont("Inter", []byte("fontbytes")).SetBold([]byte("boldbytes")))

	data, err := pres.Bytes()
	require.NoError(t, err)
	parts, err := ListParts(data)
	require.NoError(t, err)
	assert.Contains(t, parts, "ppt/fonts/font1.fntdata")
	assert.Contains(t, parts, "ppt/fonts/font1-bold.fntdata")

	presXML, err := ReadPart(data, "ppt/presentation.xml")
	require.NoError(t, err)
	s := string(presXML)
	assert.Contains(t, s, `embedTrueTypeFonts="1"`)
	assert.Contains(t, s, `<p:font typeface="Inter"/>`)
	assert.Contains(t, s, "<p:regular r:id=")
	assert.Contains(t, s, "<p:bold r:id=")
}

func TestSignatureParts(t *testing.T) {
	pres := New()
	pres.AddSlide(LayoutBlank)
	pres.SetSignature(&SignatureInfo{SignerName: "A. Signer", Purpose: "Approval"})

	data, err := pres.Bytes()
	require.NoError(t, err)
	parts, err := ListParts(data)
	require.NoError(t, err)
	assert.Contains(t, parts, "_xmlsignatures/origin.sigs")
	assert.Contains(t, parts, "_xmlsignatures/sig1.xml")

	rootRels, err := ReadPart(data, "_rels/.rels")
	require.NoError(t, err)
	assert.Contains(t, string(rootRels), "_xmlsignatures/origin.sigs")

	sig, err := ReadPart(data, "_xmlsignatures/sig1.xml")
	require.NoError(t, err)
	assert.Contains(t, string(sig), "<SignerName>A. Signer</SignerName>")
}

func TestLayoutNumberingFollowsUsage(t *testing.T) {
	pres := New()
	pres.AddSlide(LayoutTwoColumn)
	pres.AddSlide(LayoutBlank)

	data, err := pres.Bytes()
	require.NoError(t, err)

	// Blank precedes TwoColumn in the fixed enumeration order, so it gets
	// layout number 1 regardless of slide order.
	layout1, err := ReadPart(data, "ppt/slideLayouts/slideLayout1.xml")
	require.NoError(t, err)
	assert.Contains(t, string(layout1), `type="blank"`)

	rels, err := ReadPart(data, "ppt/slides/_rels/slide1.xml.rels")
	require.NoError(t, err)
	assert.Contains(t, string(rels), "slideLayout2.xml")
}

func TestShowAndPrintSettings(t *testing.T) {
	pres := New()
	pres.AddSlide(LayoutBlank)
	pres.AddSlide(LayoutBlank)
	pres.SetSlideShowSettings(&SlideShowSettings{Loop: true, StartSlide: 1, EndSlide: 2, PenColor: RGB("FF0000")})
	pres.SetPrintSettings(&PrintSettings{What: PrintHandouts6, ColorMode: PrintGrayscale, FrameSlides: true})

	data, err := pres.Bytes()
	require.NoError(t, err)
	props, err := ReadPart(data, "ppt/presProps.xml")
	require.NoError(t, err)
	s := string(props)
	assert.Contains(t, s, `loop="1"`)
	assert.Contains(t, s, `<p:sldRg st="1" end="2"/>`)
	assert.Contains(t, s, `prnWhat="handouts6"`)
	assert.Contains(t, s, `clrMode="gray"`)

	pres.SetSlideShowSettings(&SlideShowSettings{StartSlide: 2, EndSlide: 9})
	_, err = pres.Bytes()
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, ErrInvalidInput, kind)
}

func TestSaveRoundTrip(t *testing.T) {
	path := t.TempDir() + "/deck.pptx"
	require.NoError(t, buildTestDeck(t).Save(path))

	mem, err := buildTestDeck(t).Bytes()
	require.NoError(t, err)
	parts, err := ListParts(mem)
	require.NoError(t, err)
	assert.NotEmpty(t, parts)
}
