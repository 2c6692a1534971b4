package godeck

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// XML namespace constants
const (
	nsRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsChart          = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDCTerms        = "http://purl.org/dc/terms/"
	nsDC             = "http://purl.org/dc/elements/1.1/"
	nsCoreProperties = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtProperties  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"
	nsMC             = "http://schemas.openxmlformats.org/markup-compatibility/2006"
	nsP14            = "http://schemas.microsoft.com/office/powerpoint/2010/main"
	nsInkML          = "http://www.w3.org/2003/InkML"

	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeTheme       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypePresProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relTypeViewProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTypeTableStyles = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
	relTypeOfficeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps   = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtProps    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeImage       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeHyperlink   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	relTypeChart       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"
	relTypeComment     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	relTypeCommentAuth = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/commentAuthors"
	relTypeNotesSlide  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	relTypeNotesMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster"
	relTypeMedia       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/media"
	relTypeFont        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/font"
	relTypePackage     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/package"
	relTypeChartStyle  = "http://schemas.microsoft.com/office/2011/relationships/chartStyle"
	relTypeChartColors = "http://schemas.microsoft.com/office/2011/relationships/chartColorStyle"
	relTypeSigOrigin   = "http://schemas.openxmlformats.org/package/2006/relationships/digital-signature/origin"
	relTypeSignature   = "http://schemas.openxmlformats.org/package/2006/relationships/digital-signature/signature"

	ctPresentation   = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide          = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster    = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout    = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme          = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps      = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps      = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles    = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps      = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps       = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels           = "application/vnd.openxmlformats-package.relationships+xml"
	ctChart          = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
	ctChartStyle     = "application/vnd.ms-office.chartstyle+xml"
	ctChartColors    = "application/vnd.ms-office.chartcolorstyle+xml"
	ctWorkbook       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ctComments       = "application/vnd.openxmlformats-officedocument.presentationml.comments+xml"
	ctCommentAuthors = "application/vnd.openxmlformats-officedocument.presentationml.commentAuthors+xml"
	ctNotesSlide     = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"
	ctNotesMaster    = "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"
	ctFontData       = "application/x-fontdata"
	ctSigOrigin      = "application/vnd.openxmlformats-package.digital-signature-origin"
	ctSignature      = "application/vnd.openxmlformats-package.digital-signature-xmlsignature+xml"
)

// xmlDecl is the canonical declaration every XML part begins with.
const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// xmlEscape escapes special XML characters using the standard library.
func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		// EscapeText writing to strings.Builder never fails, but handle gracefully.
		return s
	}
	return b.String()
}

// --- Content Types ---

type xmlContentTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func (w *pptxWriter) writeContentTypes() error {
	ct := xmlContentTypes{
		Xmlns:     nsContentTypes,
		Defaults:  w.plan.defaults,
		Overrides: w.plan.overrides,
	}
	data, err := marshalXMLPart(ct)
	if err != nil {
		return err
	}
	return w.addPart("[Content_Types].xml", data)
}

// marshalXMLPart renders an encoding/xml value with the canonical header.
func marshalXMLPart(v interface{}) ([]byte, error) {
	var buf strings.Builder
	buf.WriteString(xmlDecl)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, wrapError(ErrInternal, err, "encode xml part")
	}
	return []byte(buf.String()), nil
}

// --- Relationships ---

type xmlRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// writeRelsPart serializes a relationship list to its .rels companion.
func (w *pptxWriter) writeRelsPart(path string, entries []relEntry) error {
	rels := xmlRelationships{Xmlns: nsRelationships}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.id] {
			return newError(ErrInternal, "duplicate relationship id %s in %s", e.id, path)
		}
		seen[e.id] = true
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID: e.id, Type: e.typ, Target: e.target, TargetMode: e.mode,
		})
	}
	data, err := marshalXMLPart(rels)
	if err != nil {
		return err
	}
	return w.addPart(path, data)
}

func (w *pptxWriter) writeRootRels() error {
	entries := []relEntry{
		{id: "rId1", typ: relTypeOfficeDoc, target: "ppt/presentation.xml"},
		{id: "rId2", typ: relTypeCoreProps, target: "docProps/core.xml"},
		{id: "rId3", typ: relTypeExtProps, target: "docProps/app.xml"},
	}
	if w.presentation.signature != nil {
		entries = append(entries, relEntry{
			id: "rId4", typ: relTypeSigOrigin, target: "_xmlsignatures/origin.sigs",
		})
	}
	return w.writeRelsPart("_rels/.rels", entries)
}

// --- App Properties ---

func (w *pptxWriter) writeAppProperties() error {
	props := w.presentation.properties
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="%s" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
  <Application>GoDeck v%s</Application>
  <Company>%s</Company>
  <AppVersion>%s</AppVersion>
  <Slides>%d</Slides>
</Properties>`, nsExtProperties, Version, xmlEscape(props.Company), Version, len(w.presentation.slides))
	return w.addPart("docProps/app.xml", []byte(content))
}

// --- Core Properties ---

func (w *pptxWriter) writeCoreProperties() error {
	props := w.presentation.properties
	created := props.Created
	if created.IsZero() {
		created = sentinelTime
	}
	modified := props.Modified
	if modified.IsZero() {
		modified = sentinelTime
	}
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="%s" xmlns:dc="%s" xmlns:dcterms="%s" xmlns:xsi="%s">
  <dc:creator>%s</dc:creator>
  <cp:lastModifiedBy>%s</cp:lastModifiedBy>
  <dc:title>%s</dc:title>
  <dc:description>%s</dc:description>
  <dc:subject>%s</dc:subject>
  <cp:keywords>%s</cp:keywords>
  <cp:category>%s</cp:category>
  <cp:revision>%s</cp:revision>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`,
		nsCoreProperties, nsDC, nsDCTerms, nsXSI,
		xmlEscape(props.Creator),
		xmlEscape(props.LastModifiedBy),
		xmlEscape(props.Title),
		xmlEscape(props.Description),
		xmlEscape(props.Subject),
		xmlEscape(props.Keywords),
		xmlEscape(props.Category),
		xmlEscape(props.Revision),
		created.UTC().Format("2006-01-02T15:04:05Z"),
		modified.UTC().Format("2006-01-02T15:04:05Z"),
	)
	return w.addPart("docProps/core.xml", []byte(content))
}
