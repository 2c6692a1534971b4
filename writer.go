package godeck

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// deflateThreshold is the part size above which entries are DEFLATE
// compressed; smaller parts are stored uncompressed.
const deflateThreshold = 1024

// pptxWriter serializes one Presentation into a PPTX package. A writer is
// built per call; it owns the relationship plan and the open archive.
type pptxWriter struct {
	presentation *Presentation
	plan         *packagePlan
	zw           *zip.Writer
	written      []string
	writtenSet   map[string]bool
}

// relEntry is one planned relationship within a part.
type relEntry struct {
	id     string
	typ    string
	target string
	mode   string // "External" or empty
}

// packagePlan fixes every part path, relationship ID and content-type entry
// before any XML is generated, so part bodies and rels files always agree
// and output is reproducible.
type packagePlan struct {
	layouts   []LayoutKind
	layoutNum map[LayoutKind]int

	slideRels [][]relEntry
	elemRel   map[Element]string    // primary rel of a picture/chart/media within its slide
	linkRel   map[*Hyperlink]string // hyperlink rels within their slide

	imageNum map[*Picture]int
	mediaNum map[*Media]int
	chartNum map[*Chart]int

	authors  []CommentAuthor
	authorID map[CommentAuthor]int

	defaults    []xmlDefault
	overrides   []xmlOverride
	defaultSet  map[string]string // extension -> content type
	overrideSet map[string]bool
}

func newPackagePlan() *packagePlan {
	return &packagePlan{
		layoutNum:   make(map[LayoutKind]int),
		elemRel:     make(map[Element]string),
		linkRel:     make(map[*Hyperlink]string),
		imageNum:    make(map[*Picture]int),
		mediaNum:    make(map[*Media]int),
		chartNum:    make(map[*Chart]int),
		authorID:    make(map[CommentAuthor]int),
		defaultSet:  make(map[string]string),
		overrideSet: make(map[string]bool),
	}
}

func (pl *packagePlan) addDefault(ext, contentType string) {
	if _, ok := pl.defaultSet[ext]; ok {
		return
	}
	pl.defaultSet[ext] = contentType
	pl.defaults = append(pl.defaults, xmlDefault{Extension: ext, ContentType: contentType})
}

func (pl *packagePlan) addOverride(partName, contentType string) error {
	if pl.overrideSet[partName] {
		return newError(ErrInternal, "part %s declared twice in content types", partName)
	}
	pl.overrideSet[partName] = true
	pl.overrides = append(pl.overrides, xmlOverride{PartName: partName, ContentType: contentType})
	return nil
}

// save writes the package to a file.
func (w *pptxWriter) save(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return wrapError(ErrIo, err, "create directory %s", dir)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return wrapError(ErrIo, err, "create %s", path)
	}

	writeErr := w.writeTo(f)
	closeErr := f.Close()

	if writeErr != nil {
		os.Remove(path)
		return writeErr
	}
	if closeErr != nil {
		return wrapError(ErrIo, closeErr, "close %s", path)
	}
	return nil
}

// writeTo validates the deck, plans the package and emits every part.
// [Content_Types].xml is always the first archive entry.
func (w *pptxWriter) writeTo(out io.Writer) error {
	if w.presentation == nil {
		return newError(ErrInvalidInput, "presentation is nil")
	}
	if err := w.presentation.validate(); err != nil {
		return err
	}
	if err := w.buildPlan(); err != nil {
		return err
	}

	w.zw = zip.NewWriter(out)
	w.writtenSet = make(map[string]bool)

	if err := w.writeContentTypes(); err != nil {
		return err
	}
	if err := w.writeRootRels(); err != nil {
		return err
	}
	if err := w.writeAppProperties(); err != nil {
		return err
	}
	if err := w.writeCoreProperties(); err != nil {
		return err
	}
	if err := w.writePresentation(); err != nil {
		return err
	}
	if err := w.writePresentationRels(); err != nil {
		return err
	}
	if err := w.writePresProps(); err != nil {
		return err
	}
	if err := w.writeViewProps(); err != nil {
		return err
	}
	if err := w.writeTableStyles(); err != nil {
		return err
	}
	if err := w.writeSlideMaster(); err != nil {
		return err
	}
	for i, kind := range w.plan.layouts {
		if err := w.writeSlideLayout(kind, i+1); err != nil {
			return err
		}
	}
	if err := w.writeTheme(); err != nil {
		return err
	}

	for i, slide := range w.presentation.slides {
		if err := w.writeSlide(slide, i+1); err != nil {
			return err
		}
		if err := w.writeRelsPart(
			fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1),
			w.plan.slideRels[i],
		); err != nil {
			return err
		}
	}

	if w.presentation.hasNotes() {
		if err := w.writeNotesMaster(); err != nil {
			return err
		}
		for i, slide := range w.presentation.slides {
			if slide.notes != "" {
				if err := w.writeNotesSlide(slide, i+1); err != nil {
					return err
				}
			}
		}
	}

	if err := w.writeMediaParts(); err != nil {
		return err
	}

	for _, slide := range w.presentation.slides {
		for _, el := range slide.elements {
			if c, ok := el.(*Chart); ok {
				if err := w.writeChartParts(c, w.plan.chartNum[c]); err != nil {
					return err
				}
			}
		}
	}

	if len(w.plan.authors) > 0 {
		if err := w.writeCommentAuthors(); err != nil {
			return err
		}
		for i, slide := range w.presentation.slides {
			if len(slide.comments) > 0 {
				if err := w.writeSlideComments(slide, i+1); err != nil {
					return err
				}
			}
		}
	}

	for i, f := range w.presentation.embeddedFonts {
		if err := w.writeFontParts(f, i+1); err != nil {
			return err
		}
	}

	if w.presentation.signature != nil {
		if err := w.writeSignatureParts(); err != nil {
			return err
		}
	}

	if err := w.verifyManifest(); err != nil {
		return err
	}

	if err := w.zw.Close(); err != nil {
		return wrapError(ErrIo, err, "close archive")
	}
	return nil
}

// addPart writes one archive entry. Entry metadata is pinned so the same
// deck always produces the same bytes: fixed timestamp, no extra fields,
// store below the deflate threshold.
func (w *pptxWriter) addPart(path string, data []byte) error {
	if w.writtenSet[path] {
		return newError(ErrInternal, "part %s written twice", path)
	}
	method := zip.Store
	if len(data) >= deflateThreshold {
		method = zip.Deflate
	}
	fw, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:     path,
		Method:   method,
		Modified: sentinelTime,
	})
	if err != nil {
		return wrapError(ErrIo, err, "create %s in archive", path)
	}
	if _, err := fw.Write(data); err != nil {
		return wrapError(ErrIo, err, "write %s", path)
	}
	w.written = append(w.written, path)
	w.writtenSet[path] = true
	return nil
}

// verifyManifest checks the content-types post-condition: every written
// part is declared exactly once, and every declared override was written.
func (w *pptxWriter) verifyManifest() error {
	for _, path := range w.written {
		if path == "[Content_Types].xml" {
			continue
		}
		partName := "/" + path
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		_, byDefault := w.plan.defaultSet[ext]
		byOverride := w.plan.overrideSet[partName]
		if !byDefault && !byOverride {
			return newError(ErrInternal, "part %s missing from content types", path)
		}
		if byDefault && byOverride {
			return newError(ErrInternal, "part %s declared twice in content types", path)
		}
	}
	for _, o := range w.plan.overrides {
		if !w.writtenSet[strings.TrimPrefix(o.PartName, "/")] {
			return newError(ErrInternal, "content types declares %s but part was not written", o.PartName)
		}
	}
	return nil
}

// --- Planning ---

// buildPlan assigns part numbers, relationship IDs and content-type
// entries for the whole package in one deterministic pass.
func (w *pptxWriter) buildPlan() error {
	pres := w.presentation
	pl := newPackagePlan()
	w.plan = pl

	// Layouts: the used kinds, in the fixed enumeration order.
	used := make(map[LayoutKind]bool)
	for _, slide := range pres.slides {
		used[slide.layout] = true
	}
	for _, kind := range allLayoutKinds {
		if used[kind] {
			pl.layoutNum[kind] = len(pl.layouts) + 1
			pl.layouts = append(pl.layouts, kind)
		}
	}

	// Only non-XML extensions get Default entries; every XML part carries
	// its own Override so the manifest check stays an exclusive-or.
	pl.addDefault("rels", ctRels)

	if err := pl.addOverride("/ppt/presentation.xml", ctPresentation); err != nil {
		return err
	}
	for _, path := range []struct{ name, ct string }{
		{"/ppt/presProps.xml", ctPresProps},
		{"/ppt/viewProps.xml", ctViewProps},
		{"/ppt/tableStyles.xml", ctTableStyles},
		{"/ppt/slideMasters/slideMaster1.xml", ctSlideMaster},
		{"/ppt/theme/theme1.xml", ctTheme},
		{"/docProps/core.xml", ctCoreProps},
		{"/docProps/app.xml", ctExtProps},
	} {
		if err := pl.addOverride(path.name, path.ct); err != nil {
			return err
		}
	}
	for i := range pl.layouts {
		if err := pl.addOverride(fmt.Sprintf("/ppt/slideLayouts/slideLayout%d.xml", i+1), ctSlideLayout); err != nil {
			return err
		}
	}

	imageIdx, mediaIdx, chartIdx := 0, 0, 0
	for slideIdx, slide := range pres.slides {
		if err := pl.addOverride(fmt.Sprintf("/ppt/slides/slide%d.xml", slideIdx+1), ctSlide); err != nil {
			return err
		}

		rels := []relEntry{{
			id:     "rId1",
			typ:    relTypeSlideLayout,
			target: fmt.Sprintf("../slideLayouts/slideLayout%d.xml", pl.layoutNum[slide.layout]),
		}}
		nextID := 2
		addRel := func(typ, target, mode string) string {
			id := fmt.Sprintf("rId%d", nextID)
			nextID++
			rels = append(rels, relEntry{id: id, typ: typ, target: target, mode: mode})
			return id
		}
		planLink := func(h *Hyperlink) {
			if h == nil {
				return
			}
			switch {
			case h.isExternal():
				pl.linkRel[h] = addRel(relTypeHyperlink, h.target(), "External")
			case h.action == hlinkSlide:
				pl.linkRel[h] = addRel(relTypeSlide, h.target(), "")
			}
		}
		planParas := func(paras []*Paragraph) {
			for _, para := range paras {
				for _, tr := range para.runs {
					planLink(tr.hyperlink)
				}
			}
		}

		for _, el := range slide.elements {
			switch e := el.(type) {
			case *Picture:
				imageIdx++
				pl.imageNum[e] = imageIdx
				pl.elemRel[e] = addRel(relTypeImage,
					fmt.Sprintf("../media/image%d.%s", imageIdx, e.format.extension()), "")
				pl.addDefault(e.format.extension(), e.format.contentType())
				planLink(e.hyperlink)
			case *Chart:
				chartIdx++
				pl.chartNum[e] = chartIdx
				pl.elemRel[e] = addRel(relTypeChart,
					fmt.Sprintf("../charts/chart%d.xml", chartIdx), "")
				for _, entry := range []struct{ name, ct string }{
					{fmt.Sprintf("/ppt/charts/chart%d.xml", chartIdx), ctChart},
					{fmt.Sprintf("/ppt/charts/style%d.xml", chartIdx), ctChartStyle},
					{fmt.Sprintf("/ppt/charts/colors%d.xml", chartIdx), ctChartColors},
					{fmt.Sprintf("/ppt/embeddings/Workbook%d.xlsx", chartIdx), ctWorkbook},
				} {
					if err := pl.addOverride(entry.name, entry.ct); err != nil {
						return err
					}
				}
			case *Media:
				mediaIdx++
				pl.mediaNum[e] = mediaIdx
				pl.elemRel[e] = addRel(relTypeMedia,
					fmt.Sprintf("../media/media%d.%s", mediaIdx, e.format.extension()), "")
				pl.addDefault(e.format.extension(), e.format.contentType())
			case *AutoShape:
				planLink(e.hyperlink)
				planParas(e.paragraphs)
			case *TextBox:
				planParas(e.paragraphs)
			case *Table:
				for _, row := range e.rows {
					for _, cell := range row.cells {
						planParas(cell.paragraphs)
					}
				}
			}
		}

		if len(slide.comments) > 0 {
			addRel(relTypeComment, fmt.Sprintf("../comments/comment%d.xml", slideIdx+1), "")
			if err := pl.addOverride(fmt.Sprintf("/ppt/comments/comment%d.xml", slideIdx+1), ctComments); err != nil {
				return err
			}
			for _, c := range slide.comments {
				if _, ok := pl.authorID[c.Author]; !ok {
					pl.authorID[c.Author] = len(pl.authors)
					pl.authors = append(pl.authors, c.Author)
				}
			}
		}
		if slide.notes != "" {
			addRel(relTypeNotesSlide, fmt.Sprintf("../notesSlides/notesSlide%d.xml", slideIdx+1), "")
			if err := pl.addOverride(fmt.Sprintf("/ppt/notesSlides/notesSlide%d.xml", slideIdx+1), ctNotesSlide); err != nil {
				return err
			}
		}

		pl.slideRels = append(pl.slideRels, rels)
	}

	if pres.hasNotes() {
		if err := pl.addOverride("/ppt/notesMasters/notesMaster1.xml", ctNotesMaster); err != nil {
			return err
		}
	}
	if len(pl.authors) > 0 {
		if err := pl.addOverride("/ppt/commentAuthors.xml", ctCommentAuthors); err != nil {
			return err
		}
	}
	if len(pres.embeddedFonts) > 0 {
		pl.addDefault("fntdata", ctFontData)
	}
	if pres.signature != nil {
		pl.addDefault("sigs", ctSigOrigin)
		if err := pl.addOverride("/_xmlsignatures/sig1.xml", ctSignature); err != nil {
			return err
		}
	}
	return nil
}
