// Package godeck builds PowerPoint presentation files (.pptx) following the
// Office Open XML (OOXML) standard.
//
// A Presentation is assembled in memory from slides and their elements, then
// serialized in one step with Bytes, WriteTo or Save. The writer emits a
// deterministic package: building the same deck twice yields identical
// archive bytes.
package godeck

import (
	"bytes"
	"io"
	"time"
)

// Presentation is an in-memory deck. Build it up, then serialize it; the
// model is not mutated by serialization and can be written again.
type Presentation struct {
	properties *DocumentProperties
	slides     []*Slide
	width      int64 // slide width in EMU
	height     int64 // slide height in EMU
	sizeType   string

	sections      []Section
	embeddedFonts []*EmbeddedFont
	signature     *SignatureInfo
	showSettings  *SlideShowSettings
	printSettings *PrintSettings
}

// New creates an empty presentation with the standard 4:3 slide size.
func New() *Presentation {
	return &Presentation{
		properties: NewDocumentProperties(),
		width:      SlideWidth4x3,
		height:     SlideHeight4x3,
		sizeType:   "screen4x3",
	}
}

// SetWidescreen switches the deck to the 16:9 slide size.
func (p *Presentation) SetWidescreen() *Presentation {
	p.width = SlideWidth16x9
	p.height = SlideHeight16x9
	p.sizeType = "screen16x9"
	return p
}

// SlideSize returns the slide extent in EMU.
func (p *Presentation) SlideSize() (w, h int64) {
	return p.width, p.height
}

// GetDocumentProperties returns the document properties.
func (p *Presentation) GetDocumentProperties() *DocumentProperties {
	return p.properties
}

// AddSlide appends a new slide on the given layout and returns it.
func (p *Presentation) AddSlide(layout LayoutKind) *Slide {
	s := NewSlide(layout)
	p.slides = append(p.slides, s)
	return s
}

// AppendSlide appends an existing slide.
func (p *Presentation) AppendSlide(s *Slide) *Presentation {
	p.slides = append(p.slides, s)
	return p
}

// GetSlides returns the slides in order.
func (p *Presentation) GetSlides() []*Slide { return p.slides }

// SlideCount returns the number of slides.
func (p *Presentation) SlideCount() int { return len(p.slides) }

// hasNotes reports whether any slide carries speaker notes.
func (p *Presentation) hasNotes() bool {
	for _, s := range p.slides {
		if s.notes != "" {
			return true
		}
	}
	return false
}

// AddSection groups slides [first..last] (0-based, inclusive) under a named
// section. Overlapping an existing section returns ErrOverlap and leaves
// the section list unchanged.
func (p *Presentation) AddSection(name string, first, last int) error {
	if first < 0 || last < first {
		return newError(ErrInvalidInput, "section %q range %d..%d invalid", name, first, last)
	}
	sec := Section{Name: name, FirstSlide: first, LastSlide: last}
	for _, existing := range p.sections {
		if existing.overlaps(sec) {
			return newError(ErrOverlap, "section %q slides %d..%d overlaps section %q",
				name, first, last, existing.Name)
		}
	}
	p.sections = append(p.sections, sec)
	return nil
}

// GetSections returns the defined sections.
func (p *Presentation) GetSections() []Section { return p.sections }

// AddEmbeddedFont bundles a font into the package.
func (p *Presentation) AddEmbeddedFont(f *EmbeddedFont) *Presentation {
	p.embeddedFonts = append(p.embeddedFonts, f)
	return p
}

// SetSignature attaches signature metadata parts to the package.
func (p *Presentation) SetSignature(s *SignatureInfo) *Presentation {
	p.signature = s
	return p
}

// SetSlideShowSettings configures the slide-show block.
func (p *Presentation) SetSlideShowSettings(s *SlideShowSettings) *Presentation {
	p.showSettings = s
	return p
}

// SetPrintSettings configures the print block.
func (p *Presentation) SetPrintSettings(s *PrintSettings) *Presentation {
	p.printSettings = s
	return p
}

// Bytes validates the deck and serializes it to PPTX archive bytes.
func (p *Presentation) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo validates the deck and streams the PPTX archive to w.
func (p *Presentation) WriteTo(w io.Writer) error {
	pw := &pptxWriter{presentation: p}
	return pw.writeTo(w)
}

// Save writes the deck to a file.
func (p *Presentation) Save(path string) error {
	pw := &pptxWriter{presentation: p}
	return pw.save(path)
}

// DocumentProperties holds the docProps metadata.
//
// Created and Modified default to a fixed sentinel so output stays
// byte-reproducible; set them explicitly to stamp real times.
type DocumentProperties struct {
	Creator        string
	LastModifiedBy string
	Created        time.Time
	Modified       time.Time
	Title          string
	Description    string
	Subject        string
	Keywords       string
	Category       string
	Company        string
	Revision       string
}

// sentinelTime is the fixed timestamp used wherever a time is required but
// none was supplied, keeping output deterministic.
var sentinelTime = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// NewDocumentProperties creates document properties with defaults.
func NewDocumentProperties() *DocumentProperties {
	return &DocumentProperties{
		Creator:        "GoDeck",
		LastModifiedBy: "GoDeck",
		Created:        sentinelTime,
		Modified:       sentinelTime,
	}
}
