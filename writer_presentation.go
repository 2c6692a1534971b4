package godeck

import (
	"fmt"
	"strings"
)

// presentationRels builds the relationship list of presentation.xml. The
// same ordering feeds both the .rels part and the r:id references inside
// the presentation part, so the two can never drift apart.
func (w *pptxWriter) presentationRels() []relEntry {
	pres := w.presentation
	rels := []relEntry{{id: "rId1", typ: relTypeSlideMaster, target: "slideMasters/slideMaster1.xml"}}
	next := 2
	add := func(typ, target string) string {
		id := fmt.Sprintf("rId%d", next)
		next++
		rels = append(rels, relEntry{id: id, typ: typ, target: target})
		return id
	}
	for i := range pres.slides {
		add(relTypeSlide, fmt.Sprintf("slides/slide%d.xml", i+1))
	}
	add(relTypePresProps, "presProps.xml")
	add(relTypeViewProps, "viewProps.xml")
	add(relTypeTableStyles, "tableStyles.xml")
	add(relTypeTheme, "theme/theme1.xml")
	if pres.hasNotes() {
		add(relTypeNotesMaster, "notesMasters/notesMaster1.xml")
	}
	if len(w.plan.authors) > 0 {
		add(relTypeCommentAuth, "commentAuthors.xml")
	}
	for i, f := range pres.embeddedFonts {
		for _, face := range f.faces() {
			add(relTypeFont, fmt.Sprintf("fonts/font%d%s.fntdata", i+1, fontFaceSuffix(face.elem)))
		}
	}
	return rels
}

func (w *pptxWriter) writePresentationRels() error {
	return w.writeRelsPart("ppt/_rels/presentation.xml.rels", w.presentationRels())
}

func (w *pptxWriter) writePresentation() error {
	pres := w.presentation
	rels := w.presentationRels()

	// Slide r:ids sit right after the master rel.
	slideRelID := func(i int) string { return rels[1+i].id }
	relIDByTarget := func(target string) string {
		for _, r := range rels {
			if r.target == target {
				return r.id
			}
		}
		return ""
	}

	var slideIDs strings.Builder
	for i := range pres.slides {
		fmt.Fprintf(&slideIDs, "    <p:sldId id=\"%d\" r:id=\"%s\"/>\n", 256+i, slideRelID(i))
	}

	fontLst := ""
	if len(pres.embeddedFonts) > 0 {
		var sb strings.Builder
		sb.WriteString("\n  <p:embeddedFontLst>\n")
		for i, f := range pres.embeddedFonts {
			fmt.Fprintf(&sb, "    <p:embeddedFont>\n      <p:font typeface=\"%s\"/>\n", xmlEscape(f.Typeface))
			for _, face := range f.faces() {
				target := fmt.Sprintf("fonts/font%d%s.fntdata", i+1, fontFaceSuffix(face.elem))
				fmt.Fprintf(&sb, "      <%s r:id=\"%s\"/>\n", face.elem, relIDByTarget(target))
			}
			sb.WriteString("    </p:embeddedFont>\n")
		}
		sb.WriteString("  </p:embeddedFontLst>")
		fontLst = sb.String()
	}

	sectionLst := ""
	if len(pres.sections) > 0 {
		var sb strings.Builder
		sb.WriteString("\n  <p:extLst>\n    <p:ext uri=\"{521415D9-36F7-43E2-AB2F-B90AF26B5E84}\">\n")
		sb.WriteString("      <p14:sectionLst xmlns:p14=\"" + nsP14 + "\">\n")
		for _, sec := range pres.sections {
			fmt.Fprintf(&sb, "        <p14:section name=\"%s\" id=\"%s\">\n          <p14:sldIdLst>\n",
				xmlEscape(sec.Name), sec.guid())
			for i := sec.FirstSlide; i <= sec.LastSlide; i++ {
				fmt.Fprintf(&sb, "            <p14:sldId id=\"%d\"/>\n", 256+i)
			}
			sb.WriteString("          </p14:sldIdLst>\n        </p14:section>\n")
		}
		sb.WriteString("      </p14:sectionLst>\n    </p:ext>\n  </p:extLst>")
		sectionLst = sb.String()
	}

	fontAttr := ""
	if len(pres.embeddedFonts) > 0 {
		fontAttr = ` embedTrueTypeFonts="1"`
	}

	notesMasterLst := ""
	if pres.hasNotes() {
		notesMasterLst = fmt.Sprintf(`
  <p:notesMasterIdLst>
    <p:notesMasterId r:id="%s"/>
  </p:notesMasterIdLst>`, relIDByTarget("notesMasters/notesMaster1.xml"))
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"%s>
  <p:sldMasterIdLst>
    <p:sldMasterId id="2147483648" r:id="rId1"/>
  </p:sldMasterIdLst>%s
  <p:sldIdLst>
%s  </p:sldIdLst>
  <p:sldSz cx="%d" cy="%d" type="%s"/>
  <p:notesSz cx="6858000" cy="9144000"/>%s
  <p:defaultTextStyle>
    <a:defPPr>
      <a:defRPr lang="en-US"/>
    </a:defPPr>
  </p:defaultTextStyle>%s
</p:presentation>`,
		nsDrawingML, nsOfficeDocRels, nsPresentationML, fontAttr, notesMasterLst,
		slideIDs.String(), pres.width, pres.height, pres.sizeType,
		fontLst, sectionLst)

	return w.addPart("ppt/presentation.xml", []byte(content))
}

// --- Comments ---

func (w *pptxWriter) writeCommentAuthors() error {
	var authors strings.Builder
	for i, a := range w.plan.authors {
		fmt.Fprintf(&authors, "  <p:cmAuthor id=\"%d\" name=\"%s\" initials=\"%s\" lastIdx=\"1\" clrIdx=\"%d\"/>\n",
			i, xmlEscape(a.Name), xmlEscape(a.Initials), i)
	}
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:cmAuthorLst xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
%s</p:cmAuthorLst>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, authors.String())
	return w.addPart("ppt/commentAuthors.xml", []byte(content))
}

func (w *pptxWriter) writeSlideComments(slide *Slide, slideNum int) error {
	var cms strings.Builder
	for idx, c := range slide.comments {
		x, err := c.Position.X.Resolve(w.presentation.width)
		if err != nil {
			return err
		}
		y, err := c.Position.Y.Resolve(w.presentation.height)
		if err != nil {
			return err
		}
		dt := c.Date
		if dt.IsZero() {
			dt = sentinelTime
		}
		fmt.Fprintf(&cms, `  <p:cm authorId="%d" dt="%s" idx="%d">
    <p:pos x="%d" y="%d"/>
    <p:text>%s</p:text>
  </p:cm>
`, w.plan.authorID[c.Author], dt.UTC().Format("2006-01-02T15:04:05Z"), idx+1, x, y, xmlEscape(c.Text))
	}
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:cmLst xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
%s</p:cmLst>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, cms.String())
	return w.addPart(fmt.Sprintf("ppt/comments/comment%d.xml", slideNum), []byte(content))
}

// --- Embedded fonts ---

// fontFaceSuffix maps a p:font child element to its part-name suffix.
func fontFaceSuffix(elem string) string {
	switch elem {
	case "p:bold":
		return "-bold"
	case "p:italic":
		return "-italic"
	case "p:boldItalic":
		return "-boldItalic"
	default:
		return ""
	}
}

func (w *pptxWriter) writeFontParts(f *EmbeddedFont, num int) error {
	for _, face := range f.faces() {
		path := fmt.Sprintf("ppt/fonts/font%d%s.fntdata", num, fontFaceSuffix(face.elem))
		if err := w.addPart(path, face.data); err != nil {
			return err
		}
	}
	return nil
}

// --- Signature ---

func (w *pptxWriter) writeSignatureParts() error {
	sig := w.presentation.signature
	signedAt := sig.SignedAt
	if signedAt.IsZero() {
		signedAt = sentinelTime
	}

	// origin.sigs is an empty binary marker part; its rels point at the
	// signature XML.
	if err := w.addPart("_xmlsignatures/origin.sigs", []byte{}); err != nil {
		return err
	}
	if err := w.writeRelsPart("_xmlsignatures/_rels/origin.sigs.rels", []relEntry{
		{id: "rId1", typ: relTypeSignature, target: "sig1.xml"},
	}); err != nil {
		return err
	}

	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Signature xmlns="http://www.w3.org/2000/09/xmldsig#" Id="idPackageSignature">
  <Object Id="idOfficeObject">
    <SignatureProperties>
      <SignatureProperty Id="idOfficeV1Details" Target="#idPackageSignature">
        <SignatureInfoV1 xmlns="http://schemas.microsoft.com/office/2006/digsig">
          <SignatureComments>%s</SignatureComments>
          <ManifestHashAlgorithm>http://www.w3.org/2001/04/xmlenc#sha256</ManifestHashAlgorithm>
          <SignatureProviderDetails>
            <SignerName>%s</SignerName>
            <SignTime>%s</SignTime>
          </SignatureProviderDetails>
        </SignatureInfoV1>
      </SignatureProperty>
    </SignatureProperties>
  </Object>
</Signature>`, xmlEscape(sig.Purpose), xmlEscape(sig.SignerName),
		signedAt.UTC().Format("2006-01-02T15:04:05Z"))
	return w.addPart("_xmlsignatures/sig1.xml", []byte(content))
}
