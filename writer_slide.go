package godeck

import (
	"fmt"
	"strings"
)

// shapeIDBase is the first shape ID on a slide; ID 1 is reserved for the
// root group shape.
const shapeIDBase = 2

func (w *pptxWriter) writeSlide(slide *Slide, slideNum int) error {
	var shapesXML strings.Builder
	shapeID := shapeIDBase

	if slide.title != "" {
		shapesXML.WriteString(w.titlePlaceholderXML(slide, &shapeID))
	}
	if len(slide.bullets) > 0 {
		shapesXML.WriteString(w.bodyPlaceholderXML(slide, &shapeID))
	}

	for _, el := range slide.elements {
		var frag string
		var err error
		switch e := el.(type) {
		case *TextBox:
			frag, err = w.textBoxXML(e, &shapeID)
		case *AutoShape:
			frag, err = w.autoShapeXML(e, &shapeID)
		case *CodeBlock:
			frag, err = w.codeBlockXML(e, &shapeID)
		case *Picture:
			frag, err = w.pictureXML(e, &shapeID)
		case *Table:
			frag, err = w.tableXML(e, &shapeID)
		case *Chart:
			frag, err = w.chartFrameXML(e, &shapeID)
		case *Connector:
			frag, err = w.connectorXML(e, &shapeID)
		case *Media:
			frag, err = w.mediaXML(e, &shapeID)
		default:
			err = newError(ErrInternal, "unknown element type %T", el)
		}
		if err != nil {
			return err
		}
		shapesXML.WriteString(frag)
	}

	if len(slide.ink) > 0 {
		shapesXML.WriteString(inkXML(slide.ink))
	}

	bgXML := ""
	if slide.background != nil && slide.background.Type != FillNone {
		fill, err := fillXML(slide.background)
		if err != nil {
			return err
		}
		bgXML = "    <p:bg>\n      <p:bgPr>\n" + fill + "        <a:effectLst/>\n      </p:bgPr>\n    </p:bg>\n"
	}

	transitionXML := ""
	if slide.transition != nil {
		transitionXML = "\n  " + slide.transition.xml()
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld>
%s    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr>
        <a:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="0" cy="0"/>
          <a:chOff x="0" y="0"/>
          <a:chExt cx="0" cy="0"/>
        </a:xfrm>
      </p:grpSpPr>
%s    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>%s
</p:sld>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, bgXML, shapesXML.String(), transitionXML)

	return w.addPart(fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), []byte(content))
}

// --- Placeholders ---

func (w *pptxWriter) titlePlaceholderXML(slide *Slide, shapeID *int) string {
	id := *shapeID
	*shapeID++

	phType := "title"
	if slide.layout == LayoutCenteredTitle {
		phType = "ctrTitle"
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="Title %d"/>
          <p:cNvSpPr>
            <a:spLocks noGrp="1"/>
          </p:cNvSpPr>
          <p:nvPr>
            <p:ph type="%s"/>
          </p:nvPr>
        </p:nvSpPr>
        <p:spPr/>
        <p:txBody>
          <a:bodyPr/>
          <a:lstStyle/>
          <a:p>
            <a:r>
              <a:rPr lang="en-US" dirty="0"/>
              <a:t>%s</a:t>
            </a:r>
          </a:p>
        </p:txBody>
      </p:sp>
`, id, id, phType, xmlEscape(slide.title))
}

func (w *pptxWriter) bodyPlaceholderXML(slide *Slide, shapeID *int) string {
	id := *shapeID
	*shapeID++

	var paras strings.Builder
	for _, line := range slide.bullets {
		fmt.Fprintf(&paras, `          <a:p>
            <a:r>
              <a:rPr lang="en-US" dirty="0"/>
              <a:t>%s</a:t>
            </a:r>
          </a:p>
`, xmlEscape(line))
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="Content Placeholder %d"/>
          <p:cNvSpPr>
            <a:spLocks noGrp="1"/>
          </p:cNvSpPr>
          <p:nvPr>
            <p:ph type="body" idx="1"/>
          </p:nvPr>
        </p:nvSpPr>
        <p:spPr/>
        <p:txBody>
          <a:bodyPr/>
          <a:lstStyle/>
%s        </p:txBody>
      </p:sp>
`, id, id, paras.String())
}

// --- Transform helpers ---

// xfrmXML renders the offset/extent pair with optional rotation and flips.
func xfrmXML(rt resolvedTransform, flipH, flipV bool) string {
	attrs := ""
	if rt.rot != 0 {
		attrs += fmt.Sprintf(` rot="%d"`, rt.rot)
	}
	if flipH {
		attrs += ` flipH="1"`
	}
	if flipV {
		attrs += ` flipV="1"`
	}
	return fmt.Sprintf(`<a:xfrm%s>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>`, attrs, rt.x, rt.y, rt.cx, rt.cy)
}

func (w *pptxWriter) resolveTransform(t Transform) (resolvedTransform, error) {
	return t.resolve(w.presentation.width, w.presentation.height)
}

// --- Fill and border ---

func fillXML(f *Fill) (string, error) {
	if f == nil || f.Type == FillNone {
		return "", nil
	}
	switch f.Type {
	case FillSolid:
		return "          <a:solidFill>" + f.Color.clrXML(0) + "</a:solidFill>\n", nil
	case FillGradient:
		return gradientXML(f.Gradient)
	}
	return "", newError(ErrInvalidInput, "unknown fill type %d", f.Type)
}

func gradientXML(g *Gradient) (string, error) {
	if err := g.validate(); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("          <a:gradFill rotWithShape=\"1\">\n            <a:gsLst>\n")
	for _, stop := range g.sortedStops() {
		sb.WriteString(fmt.Sprintf("              <a:gs pos=\"%d\">%s</a:gs>\n",
			stop.Position, stop.Color.clrXML(stop.Alpha)))
	}
	sb.WriteString("            </a:gsLst>\n")
	switch g.Kind {
	case GradientLinear:
		sb.WriteString(fmt.Sprintf("            <a:lin ang=\"%d\" scaled=\"1\"/>\n", g.resolvedAngle()))
	case GradientRadial:
		sb.WriteString("            <a:path path=\"circle\"><a:fillToRect l=\"50000\" t=\"50000\" r=\"50000\" b=\"50000\"/></a:path>\n")
	case GradientRectangular:
		sb.WriteString("            <a:path path=\"rect\"><a:fillToRect l=\"50000\" t=\"50000\" r=\"50000\" b=\"50000\"/></a:path>\n")
	case GradientPath:
		sb.WriteString("            <a:path path=\"shape\"><a:fillToRect l=\"50000\" t=\"50000\" r=\"50000\" b=\"50000\"/></a:path>\n")
	}
	sb.WriteString("          </a:gradFill>\n")
	return sb.String(), nil
}

func borderXML(b *Border, slideW int64) (string, error) {
	if b == nil {
		return "", nil
	}
	width, err := b.Width.Resolve(slideW)
	if err != nil {
		return "", err
	}
	dash := ""
	switch b.Style {
	case BorderDash:
		dash = `<a:prstDash val="dash"/>`
	case BorderDot:
		dash = `<a:prstDash val="dot"/>`
	}
	return fmt.Sprintf("          <a:ln w=\"%d\"><a:solidFill>%s</a:solidFill>%s</a:ln>\n",
		width, b.Color.clrXML(0), dash), nil
}

// --- Text ---

func (w *pptxWriter) paragraphXML(para *Paragraph) string {
	attrs := ""
	if para.rtl {
		attrs += ` rtl="1"`
	}
	if para.alignment != "" {
		attrs += fmt.Sprintf(` algn="%s"`, para.alignment)
	}
	if para.level > 0 {
		attrs += fmt.Sprintf(` lvl="%d"`, para.level)
	}

	var props strings.Builder
	if para.lineSpacing > 0 {
		fmt.Fprintf(&props, "\n              <a:lnSpc><a:spcPts val=\"%d\"/></a:lnSpc>", int(para.lineSpacing*100))
	}
	if para.spaceBefore > 0 {
		fmt.Fprintf(&props, "\n              <a:spcBef><a:spcPts val=\"%d\"/></a:spcBef>", int(para.spaceBefore*100))
	}
	if para.spaceAfter > 0 {
		fmt.Fprintf(&props, "\n              <a:spcAft><a:spcPts val=\"%d\"/></a:spcAft>", int(para.spaceAfter*100))
	}
	if para.bullet != nil {
		props.WriteString(bulletXML(para.bullet))
	}

	var runs strings.Builder
	for _, tr := range para.runs {
		runs.WriteString(w.textRunXML(tr, para))
	}

	return fmt.Sprintf(`          <a:p>
            <a:pPr%s>%s
            </a:pPr>
%s          </a:p>
`, attrs, props.String(), runs.String())
}

func bulletXML(b *Bullet) string {
	var sb strings.Builder
	if b.Numbered {
		start := b.StartAt
		if start < 1 {
			start = 1
		}
		fmt.Fprintf(&sb, "\n              <a:buAutoNum type=\"arabicPeriod\" startAt=\"%d\"/>", start)
		return sb.String()
	}
	if b.Font != "" {
		fmt.Fprintf(&sb, "\n              <a:buFont typeface=\"%s\"/>", xmlEscape(b.Font))
	}
	char := b.Char
	if char == "" {
		char = "•"
	}
	fmt.Fprintf(&sb, "\n              <a:buChar char=\"%s\"/>", xmlEscape(char))
	return sb.String()
}

// textRunXML emits one run. Run-property attributes keep a fixed order:
// lang, sz, b, i, u, strike, baseline.
func (w *pptxWriter) textRunXML(tr *TextRun, para *Paragraph) string {
	font := tr.font

	lang := para.lang
	if lang == "" {
		lang = "en-US"
	}
	attrs := fmt.Sprintf(` lang="%s"`, lang)
	if font.Size > 0 {
		attrs += fmt.Sprintf(` sz="%d"`, int(font.Size*100))
	}
	if font.Bold {
		attrs += ` b="1"`
	}
	if font.Italic {
		attrs += ` i="1"`
	}
	if font.Underline != "" && font.Underline != UnderlineNone {
		attrs += fmt.Sprintf(` u="%s"`, font.Underline)
	}
	if font.Strikethrough {
		attrs += ` strike="sngStrike"`
	}
	switch font.Baseline {
	case BaselineSuperscript:
		attrs += ` baseline="30000"`
	case BaselineSubscript:
		attrs += ` baseline="-25000"`
	}
	attrs += ` dirty="0"`

	var children strings.Builder
	if !font.Color.IsZero() {
		children.WriteString("\n              <a:solidFill>" + font.Color.clrXML(0) + "</a:solidFill>")
	}
	if !font.Highlight.IsZero() {
		children.WriteString("\n              <a:highlight>" + font.Highlight.clrXML(0) + "</a:highlight>")
	}
	if font.Name != "" {
		children.WriteString(fmt.Sprintf("\n              <a:latin typeface=\"%s\"/>", xmlEscape(font.Name)))
	}
	if para.csFont != "" {
		children.WriteString(fmt.Sprintf("\n              <a:cs typeface=\"%s\"/>", xmlEscape(para.csFont)))
	}
	if tr.hyperlink != nil {
		children.WriteString("\n              " + tr.hyperlink.hlinkClickXML(w.plan.linkRel[tr.hyperlink]))
	}

	return fmt.Sprintf(`            <a:r>
              <a:rPr%s>%s
              </a:rPr>
              <a:t>%s</a:t>
            </a:r>
`, attrs, children.String(), xmlEscape(tr.text))
}

// --- TextBox ---

func (w *pptxWriter) textBoxXML(s *TextBox, shapeID *int) (string, error) {
	id := *shapeID
	*shapeID++

	name := s.name
	if name == "" {
		name = fmt.Sprintf("TextBox %d", id)
	}

	rt, err := w.resolveTransform(s.transform)
	if err != nil {
		return "", err
	}
	fill, err := fillXML(s.fill)
	if err != nil {
		return "", err
	}
	border, err := borderXML(s.border, w.presentation.width)
	if err != nil {
		return "", err
	}

	var paras strings.Builder
	for _, para := range s.paragraphs {
		paras.WriteString(w.paragraphXML(para))
	}

	descr := ""
	if s.description != "" {
		descr = fmt.Sprintf(` descr="%s"`, xmlEscape(s.description))
	}

	wrap := "square"
	if !s.wordWrap {
		wrap = "none"
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"%s/>
          <p:cNvSpPr txBox="1"/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          %s
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
%s%s        </p:spPr>
        <p:txBody>
          <a:bodyPr wrap="%s"/>
          <a:lstStyle/>
%s        </p:txBody>
      </p:sp>
`, id, xmlEscape(name), descr, xfrmXML(rt, false, false), fill, border, wrap, paras.String()), nil
}

// --- AutoShape ---

func (w *pptxWriter) autoShapeXML(s *AutoShape, shapeID *int) (string, error) {
	id := *shapeID
	*shapeID++

	name := s.name
	if name == "" {
		name = fmt.Sprintf("Shape %d", id)
	}

	rt, err := w.resolveTransform(s.transform)
	if err != nil {
		return "", err
	}
	fill, err := fillXML(s.fill)
	if err != nil {
		return "", err
	}
	border, err := borderXML(s.border, w.presentation.width)
	if err != nil {
		return "", err
	}

	hlink := ""
	if s.hyperlink != nil {
		hlink = "\n            " + s.hyperlink.hlinkClickXML(w.plan.linkRel[s.hyperlink])
	}

	textXML := ""
	if len(s.paragraphs) > 0 {
		var paras strings.Builder
		for _, para := range s.paragraphs {
			paras.WriteString(w.paragraphXML(para))
		}
		textXML = fmt.Sprintf(`
        <p:txBody>
          <a:bodyPr anchor="ctr"/>
          <a:lstStyle/>
%s        </p:txBody>`, paras.String())
	}

	descr := ""
	if s.description != "" {
		descr = fmt.Sprintf(` descr="%s"`, xmlEscape(s.description))
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"%s>%s
          </p:cNvPr>
          <p:cNvSpPr/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          %s
          <a:prstGeom prst="%s">
            <a:avLst/>
          </a:prstGeom>
%s%s        </p:spPr>%s
      </p:sp>
`, id, xmlEscape(name), descr, hlink, xfrmXML(rt, false, false), s.geometry, fill, border, textXML), nil
}

// --- CodeBlock ---

func (w *pptxWriter) codeBlockXML(cb *CodeBlock, shapeID *int) (string, error) {
	id := *shapeID
	*shapeID++

	rt, err := w.resolveTransform(cb.transform)
	if err != nil {
		return "", err
	}

	sz := int(cb.fontSize * 100)
	var paras strings.Builder
	for _, line := range strings.Split(cb.code, "\n") {
		fmt.Fprintf(&paras, `          <a:p>
            <a:r>
              <a:rPr lang="en-US" sz="%d" dirty="0">
                <a:solidFill><a:srgbClr val="D4D4D4"/></a:solidFill>
                <a:latin typeface="Consolas"/>
              </a:rPr>
              <a:t>%s</a:t>
            </a:r>
          </a:p>
`, sz, xmlEscape(line))
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="Code %d"/>
          <p:cNvSpPr txBox="1"/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          %s
          <a:prstGeom prst="roundRect">
            <a:avLst/>
          </a:prstGeom>
          <a:solidFill><a:srgbClr val="1E1E1E"/></a:solidFill>
        </p:spPr>
        <p:txBody>
          <a:bodyPr wrap="none"/>
          <a:lstStyle/>
%s        </p:txBody>
      </p:sp>
`, id, id, xfrmXML(rt, false, false), paras.String()), nil
}

// --- Picture ---

func (w *pptxWriter) pictureXML(p *Picture, shapeID *int) (string, error) {
	id := *shapeID
	*shapeID++

	name := p.name
	if name == "" {
		name = fmt.Sprintf("Picture %d", id)
	}

	rt, err := w.resolveTransform(p.transform)
	if err != nil {
		return "", err
	}
	relID := w.plan.elemRel[p]
	if relID == "" {
		return "", newError(ErrInternal, "picture has no planned relationship")
	}

	hlink := ""
	if p.hyperlink != nil {
		hlink = "\n            " + p.hyperlink.hlinkClickXML(w.plan.linkRel[p.hyperlink])
	}

	grayscale := ""
	var effects []string
	for _, e := range p.effects {
		switch e {
		case EffectShadow:
			effects = append(effects, `<a:outerShdw blurRad="40000" dist="20000" dir="5400000" rotWithShape="0"><a:srgbClr val="000000"><a:alpha val="40000"/></a:srgbClr></a:outerShdw>`)
		case EffectReflection:
			effects = append(effects, `<a:reflection blurRad="6350" stA="50000" endA="300" endPos="35000" dist="0" dir="5400000" sy="-100000" algn="bl" rotWithShape="0"/>`)
		case EffectGlow:
			effects = append(effects, `<a:glow rad="63500"><a:srgbClr val="00B0F0"><a:alpha val="40000"/></a:srgbClr></a:glow>`)
		case EffectSoftEdges:
			effects = append(effects, `<a:softEdge rad="63500"/>`)
		case EffectBlur:
			effects = append(effects, `<a:blur rad="63500"/>`)
		case EffectGrayscale:
			grayscale = "<a:grayscl/>"
		}
	}
	effectLst := ""
	if len(effects) > 0 {
		effectLst = "\n          <a:effectLst>" + strings.Join(effects, "") + "</a:effectLst>"
	}

	crop := ""
	if p.crop != nil {
		crop = fmt.Sprintf("\n          <a:srcRect l=\"%d\" t=\"%d\" r=\"%d\" b=\"%d\"/>",
			p.crop.Left, p.crop.Top, p.crop.Right, p.crop.Bottom)
	}
	blip := fmt.Sprintf(`<a:blip r:embed="%s">%s</a:blip>`, relID, grayscale)
	if grayscale == "" {
		blip = fmt.Sprintf(`<a:blip r:embed="%s"/>`, relID)
	}

	return fmt.Sprintf(`      <p:pic>
        <p:nvPicPr>
          <p:cNvPr id="%d" name="%s" descr="%s">%s
          </p:cNvPr>
          <p:cNvPicPr>
            <a:picLocks noChangeAspect="1"/>
          </p:cNvPicPr>
          <p:nvPr/>
        </p:nvPicPr>
        <p:blipFill>
          %s%s
          <a:stretch>
            <a:fillRect/>
          </a:stretch>
        </p:blipFill>
        <p:spPr>
          %s
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>%s
        </p:spPr>
      </p:pic>
`, id, xmlEscape(name), xmlEscape(p.description), hlink, blip, crop,
		xfrmXML(rt, false, false), effectLst), nil
}

// --- Table ---

func (w *pptxWriter) tableXML(t *Table, shapeID *int) (string, error) {
	id := *shapeID
	*shapeID++

	name := t.name
	if name == "" {
		name = fmt.Sprintf("Table %d", id)
	}

	rt, err := w.resolveTransform(t.transform)
	if err != nil {
		return "", err
	}

	evenWidth := int64(0)
	if t.NumCols() > 0 {
		evenWidth = rt.cx / int64(t.NumCols())
	}
	var gridCols strings.Builder
	for _, cw := range t.colWidths {
		width := evenWidth
		if cw != (Dimension{}) {
			if width, err = cw.Resolve(w.presentation.width); err != nil {
				return "", err
			}
		}
		fmt.Fprintf(&gridCols, "            <a:gridCol w=\"%d\"/>\n", width)
	}

	evenHeight := int64(0)
	if t.NumRows() > 0 {
		evenHeight = rt.cy / int64(t.NumRows())
	}
	var rowsXML strings.Builder
	for _, row := range t.rows {
		height := evenHeight
		if row.height != (Dimension{}) {
			if height, err = row.height.Resolve(w.presentation.height); err != nil {
				return "", err
			}
		}
		fmt.Fprintf(&rowsXML, "            <a:tr h=\"%d\">\n", height)
		for _, cell := range row.cells {
			cellXML, err := w.tableCellXML(cell)
			if err != nil {
				return "", err
			}
			rowsXML.WriteString(cellXML)
		}
		rowsXML.WriteString("            </a:tr>\n")
	}

	flags := ""
	if t.firstRow {
		flags += ` firstRow="1"`
	}
	if t.bandRows {
		flags += ` bandRow="1"`
	}

	return fmt.Sprintf(`      <p:graphicFrame>
        <p:nvGraphicFramePr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvGraphicFramePr>
            <a:graphicFrameLocks noGrp="1"/>
          </p:cNvGraphicFramePr>
          <p:nvPr/>
        </p:nvGraphicFramePr>
        <p:xfrm>
          <a:off x="%d" y="%d"/>
          <a:ext cx="%d" cy="%d"/>
        </p:xfrm>
        <a:graphic>
          <a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table">
            <a:tbl>
              <a:tblPr%s/>
              <a:tblGrid>
%s              </a:tblGrid>
%s            </a:tbl>
          </a:graphicData>
        </a:graphic>
      </p:graphicFrame>
`, id, xmlEscape(name), rt.x, rt.y, rt.cx, rt.cy, flags, gridCols.String(), rowsXML.String()), nil
}

// tableCellXML emits one a:tc. Text body precedes cell properties; merge
// state becomes gridSpan/rowSpan on the anchor and hMerge/vMerge markers on
// covered cells, which still emit a minimal element so the grid stays
// rectangular.
func (w *pptxWriter) tableCellXML(cell *TableCell) (string, error) {
	attrs := ""
	switch cell.merge {
	case MergeAnchor:
		if cell.colSpan > 1 {
			attrs += fmt.Sprintf(` gridSpan="%d"`, cell.colSpan)
		}
		if cell.rowSpan > 1 {
			attrs += fmt.Sprintf(` rowSpan="%d"`, cell.rowSpan)
		}
	case MergeH:
		attrs = ` hMerge="1"`
	case MergeV:
		attrs = ` vMerge="1"`
	}

	var body strings.Builder
	if len(cell.paragraphs) == 0 {
		body.WriteString("                  <a:p/>\n")
	}
	for _, para := range cell.paragraphs {
		body.WriteString(w.paragraphXML(para))
	}

	cellFill := ""
	if cell.fill != nil && cell.fill.Type != FillNone {
		fill, err := fillXML(cell.fill)
		if err != nil {
			return "", err
		}
		cellFill = "\n" + strings.TrimRight(fill, "\n")
	}

	return fmt.Sprintf(`              <a:tc%s>
                <a:txBody>
                  <a:bodyPr/>
                  <a:lstStyle/>
%s                </a:txBody>
                <a:tcPr>%s
                </a:tcPr>
              </a:tc>
`, attrs, body.String(), cellFill), nil
}

// --- Chart frame ---

func (w *pptxWriter) chartFrameXML(c *Chart, shapeID *int) (string, error) {
	id := *shapeID
	*shapeID++

	name := c.name
	if name == "" {
		name = fmt.Sprintf("Chart %d", id)
	}

	rt, err := w.resolveTransform(c.transform)
	if err != nil {
		return "", err
	}
	relID := w.plan.elemRel[c]
	if relID == "" {
		return "", newError(ErrInternal, "chart has no planned relationship")
	}

	return fmt.Sprintf(`      <p:graphicFrame>
        <p:nvGraphicFramePr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvGraphicFramePr>
            <a:graphicFrameLocks noGrp="1"/>
          </p:cNvGraphicFramePr>
          <p:nvPr/>
        </p:nvGraphicFramePr>
        <p:xfrm>
          <a:off x="%d" y="%d"/>
          <a:ext cx="%d" cy="%d"/>
        </p:xfrm>
        <a:graphic>
          <a:graphicData uri="%s">
            <c:chart xmlns:c="%s" r:id="%s"/>
          </a:graphicData>
        </a:graphic>
      </p:graphicFrame>
`, id, xmlEscape(name), rt.x, rt.y, rt.cx, rt.cy, nsChart, nsChart, relID), nil
}

// --- Connector ---

func (w *pptxWriter) connectorXML(c *Connector, shapeID *int) (string, error) {
	id := *shapeID
	*shapeID++

	name := c.name
	if name == "" {
		name = fmt.Sprintf("Connector %d", id)
	}

	x, y, cx, cy, flipH, flipV, err := c.bounds(w.presentation.width, w.presentation.height)
	if err != nil {
		return "", err
	}
	width, err := c.width.Resolve(w.presentation.width)
	if err != nil {
		return "", err
	}

	anchors := ""
	if c.startAnchor != nil {
		anchors += fmt.Sprintf("\n            <a:stCxn id=\"%d\" idx=\"%d\"/>", c.startAnchor.ShapeID, c.startAnchor.Site)
	}
	if c.endAnchor != nil {
		anchors += fmt.Sprintf("\n            <a:endCxn id=\"%d\" idx=\"%d\"/>", c.endAnchor.ShapeID, c.endAnchor.Site)
	}

	ends := ""
	if c.startArrow != "" && c.startArrow != ArrowNone {
		ends += fmt.Sprintf("\n            <a:headEnd type=\"%s\"/>", c.startArrow)
	}
	if c.endArrow != "" && c.endArrow != ArrowNone {
		ends += fmt.Sprintf("\n            <a:tailEnd type=\"%s\"/>", c.endArrow)
	}

	attrs := ""
	if flipH {
		attrs += ` flipH="1"`
	}
	if flipV {
		attrs += ` flipV="1"`
	}

	return fmt.Sprintf(`      <p:cxnSp>
        <p:nvCxnSpPr>
          <p:cNvPr id="%d" name="%s"/>
          <p:cNvCxnSpPr>%s
          </p:cNvCxnSpPr>
          <p:nvPr/>
        </p:nvCxnSpPr>
        <p:spPr>
          <a:xfrm%s>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="%s">
            <a:avLst/>
          </a:prstGeom>
          <a:ln w="%d">
            <a:solidFill>%s</a:solidFill>%s
          </a:ln>
        </p:spPr>
      </p:cxnSp>
`, id, xmlEscape(name), anchors, attrs, x, y, cx, cy, c.kind.preset(), width, c.color.clrXML(0), ends), nil
}

// --- Media ---

// mediaXML emits the picture frame a clip lives in. One relationship is
// shared by the legacy videoFile/audioFile link, the p14 media extension
// and the poster blip.
func (w *pptxWriter) mediaXML(m *Media, shapeID *int) (string, error) {
	id := *shapeID
	*shapeID++

	name := m.name
	if name == "" {
		if m.IsVideo() {
			name = fmt.Sprintf("Video %d", id)
		} else {
			name = fmt.Sprintf("Audio %d", id)
		}
	}

	rt, err := w.resolveTransform(m.transform)
	if err != nil {
		return "", err
	}
	relID := w.plan.elemRel[m]
	if relID == "" {
		return "", newError(ErrInternal, "media has no planned relationship")
	}

	fileElem := fmt.Sprintf(`<a:videoFile r:link="%s"/>`, relID)
	if !m.IsVideo() {
		fileElem = fmt.Sprintf(`<a:audioFile r:link="%s"/>`, relID)
	}

	return fmt.Sprintf(`      <p:pic>
        <p:nvPicPr>
          <p:cNvPr id="%d" name="%s" descr="%s">
            <a:hlinkClick r:id="" action="ppaction://media"/>
          </p:cNvPr>
          <p:cNvPicPr>
            <a:picLocks noChangeAspect="1"/>
          </p:cNvPicPr>
          <p:nvPr>
            %s
            <p:extLst>
              <p:ext uri="{DAA4B4D4-6D71-4841-9C94-3DE7FCFB9230}">
                <p14:media xmlns:p14="%s" r:embed="%s"/>
              </p:ext>
            </p:extLst>
          </p:nvPr>
        </p:nvPicPr>
        <p:blipFill>
          <a:blip r:embed="%s"/>
          <a:stretch>
            <a:fillRect/>
          </a:stretch>
        </p:blipFill>
        <p:spPr>
          %s
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
        </p:spPr>
      </p:pic>
`, id, xmlEscape(name), xmlEscape(m.description), fileElem, nsP14, relID, relID,
		xfrmXML(rt, false, false)), nil
}

// --- Ink ---

// inkXML renders pen strokes as InkML inside a markup-compatibility
// wrapper; readers without ink support skip the block.
func inkXML(strokes []*InkStroke) string {
	var sb strings.Builder
	sb.WriteString(`      <mc:AlternateContent xmlns:mc="` + nsMC + `">
        <mc:Choice Requires="p14">
          <p:contentPart xmlns:p14="` + nsP14 + `">
            <ink:ink xmlns:ink="` + nsInkML + `">
`)
	for i, stroke := range strokes {
		widthEMU, err := stroke.Width.Resolve(0)
		if err != nil {
			widthEMU = emuPerPoint
		}
		fmt.Fprintf(&sb, "              <ink:brush id=\"br%d\" color=\"#%s\" width=\"%d\" tip=\"ellipse\"/>\n",
			i, stroke.Color.Hex(), widthEMU)
	}
	for i, stroke := range strokes {
		points := make([]string, len(stroke.Points))
		for j, pt := range stroke.Points {
			points[j] = fmt.Sprintf("%d %d", pt.X, pt.Y)
		}
		fmt.Fprintf(&sb, "              <ink:trace contextRef=\"#%d\" brushRef=\"#br%d\" id=\"%d\">%s</ink:trace>\n",
			i, i, i, strings.Join(points, " "))
	}
	sb.WriteString(`            </ink:ink>
          </p:contentPart>
        </mc:Choice>
      </mc:AlternateContent>
`)
	return sb.String()
}

// --- Transition ---

func (t *Transition) xml() string {
	attrs := ""
	if t.DurationMS > 0 {
		switch {
		case t.DurationMS <= 500:
			attrs += ` spd="fast"`
		case t.DurationMS <= 1000:
			attrs += ` spd="med"`
		default:
			attrs += ` spd="slow"`
		}
	}
	if t.AdvanceAfterMS > 0 {
		attrs += fmt.Sprintf(` advTm="%d"`, t.AdvanceAfterMS)
	}
	var inner string
	switch t.Kind {
	case TransitionPush:
		inner = `<p:push dir="r"/>`
	case TransitionWipe:
		inner = `<p:wipe dir="r"/>`
	case TransitionSplit:
		inner = `<p:split dir="out" orient="horz"/>`
	case TransitionReveal:
		inner = `<p:reveal dir="r"/>`
	case TransitionCover:
		inner = `<p:cover dir="r"/>`
	case TransitionZoom:
		inner = `<p:zoom dir="in"/>`
	default:
		inner = `<p:fade/>`
	}
	return fmt.Sprintf("<p:transition%s>%s</p:transition>", attrs, inner)
}

// --- Media parts ---

// writeMediaParts emits the binary payloads under ppt/media in planning
// order: images first, then clips.
func (w *pptxWriter) writeMediaParts() error {
	for _, slide := range w.presentation.slides {
		for _, el := range slide.elements {
			if p, ok := el.(*Picture); ok {
				path := fmt.Sprintf("ppt/media/image%d.%s", w.plan.imageNum[p], p.format.extension())
				if err := w.addPart(path, p.data); err != nil {
					return err
				}
			}
		}
	}
	for _, slide := range w.presentation.slides {
		for _, el := range slide.elements {
			if m, ok := el.(*Media); ok {
				path := fmt.Sprintf("ppt/media/media%d.%s", w.plan.mediaNum[m], m.format.extension())
				if err := w.addPart(path, m.data); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// --- Notes slides ---

func (w *pptxWriter) writeNotesSlide(slide *Slide, slideNum int) error {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:notes xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld>
    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr>
        <a:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="0" cy="0"/>
          <a:chOff x="0" y="0"/>
          <a:chExt cx="0" cy="0"/>
        </a:xfrm>
      </p:grpSpPr>
      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="2" name="Notes Placeholder"/>
          <p:cNvSpPr>
            <a:spLocks noGrp="1"/>
          </p:cNvSpPr>
          <p:nvPr>
            <p:ph type="body" idx="1"/>
          </p:nvPr>
        </p:nvSpPr>
        <p:spPr/>
        <p:txBody>
          <a:bodyPr/>
          <a:lstStyle/>
          <a:p>
            <a:r>
              <a:rPr lang="en-US" dirty="0"/>
              <a:t>%s</a:t>
            </a:r>
          </a:p>
        </p:txBody>
      </p:sp>
    </p:spTree>
  </p:cSld>
</p:notes>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, xmlEscape(slide.notes))

	if err := w.addPart(fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", slideNum), []byte(content)); err != nil {
		return err
	}

	return w.writeRelsPart(
		fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", slideNum),
		[]relEntry{
			{id: "rId1", typ: relTypeSlide, target: fmt.Sprintf("../slides/slide%d.xml", slideNum)},
			{id: "rId2", typ: relTypeNotesMaster, target: "../notesMasters/notesMaster1.xml"},
		},
	)
}
