package godeck

import "golang.org/x/text/language"

// Element is a renderable slide entity. The concrete types are TextBox,
// AutoShape, Picture, Table, Chart, Connector, Video, Audio and CodeBlock.
type Element interface {
	element()
}

// BaseElement carries the fields shared by every placed element.
type BaseElement struct {
	name        string
	description string
	transform   Transform
}

// GetName returns the element name shown in selection panes.
func (b *BaseElement) GetName() string { return b.name }

// SetName sets the element name.
func (b *BaseElement) SetName(name string) { b.name = name }

// GetDescription returns the alt text.
func (b *BaseElement) GetDescription() string { return b.description }

// SetDescription sets the alt text.
func (b *BaseElement) SetDescription(d string) { b.description = d }

// GetTransform returns the placement.
func (b *BaseElement) GetTransform() Transform { return b.transform }

// SetTransform sets the placement.
func (b *BaseElement) SetTransform(t Transform) { b.transform = t }

// --- Geometry presets ---

// Geometry is a DrawingML preset geometry tag.
type Geometry string

const (
	GeometryRectangle        Geometry = "rect"
	GeometryRoundedRectangle Geometry = "roundRect"
	GeometryEllipse          Geometry = "ellipse"
	GeometryTriangle         Geometry = "triangle"
	GeometryDiamond          Geometry = "diamond"
	GeometryPentagon         Geometry = "pentagon"
	GeometryHexagon          Geometry = "hexagon"
	GeometryStar5            Geometry = "star5"
	GeometryRightArrow       Geometry = "rightArrow"
	GeometryLeftArrow        Geometry = "leftArrow"
	GeometryUpArrow          Geometry = "upArrow"
	GeometryDownArrow        Geometry = "downArrow"
)

// --- Text model ---

// TextRun is a string with uniform character formatting.
type TextRun struct {
	text      string
	font      Font
	hyperlink *Hyperlink
}

// NewTextRun builds a run with default formatting.
func NewTextRun(text string) *TextRun {
	return &TextRun{text: text}
}

// GetText returns the run text.
func (tr *TextRun) GetText() string { return tr.text }

// SetText sets the run text.
func (tr *TextRun) SetText(text string) *TextRun {
	tr.text = text
	return tr
}

// GetFont returns the run font.
func (tr *TextRun) GetFont() Font { return tr.font }

// SetFont sets the run font and returns the run for chaining.
func (tr *TextRun) SetFont(f Font) *TextRun {
	tr.font = f
	return tr
}

// SetHyperlink attaches a hyperlink to this run.
func (tr *TextRun) SetHyperlink(h *Hyperlink) *TextRun {
	tr.hyperlink = h
	return tr
}

// GetHyperlink returns the attached hyperlink, nil when absent.
func (tr *TextRun) GetHyperlink() *Hyperlink { return tr.hyperlink }

// Bullet turns a paragraph into a list item.
type Bullet struct {
	Char     string // bullet character; default "•"
	Font     string
	Numbered bool
	StartAt  int
}

// Paragraph is an ordered list of runs with block-level formatting.
type Paragraph struct {
	runs        []*TextRun
	alignment   Align
	level       int // indent level 0..8
	bullet      *Bullet
	spaceBefore float64 // points
	spaceAfter  float64 // points
	lineSpacing float64 // points; 0 means default
	rtl         bool
	lang        string // BCP-47 tag; empty means en-US
	csFont      string // complex-script typeface for RTL text
}

// NewParagraph builds an empty left-aligned paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// AddRun appends a run and returns the paragraph for chaining.
func (p *Paragraph) AddRun(tr *TextRun) *Paragraph {
	p.runs = append(p.runs, tr)
	return p
}

// AddText appends a plain run and returns it for styling.
func (p *Paragraph) AddText(text string) *TextRun {
	tr := NewTextRun(text)
	p.runs = append(p.runs, tr)
	return tr
}

// GetRuns returns the ordered runs.
func (p *Paragraph) GetRuns() []*TextRun { return p.runs }

// SetAlignment sets the horizontal alignment.
func (p *Paragraph) SetAlignment(a Align) *Paragraph {
	p.alignment = a
	return p
}

// SetLevel sets the indent level, clamped to 0..8.
func (p *Paragraph) SetLevel(lvl int) *Paragraph {
	if lvl < 0 {
		lvl = 0
	}
	if lvl > 8 {
		lvl = 8
	}
	p.level = lvl
	return p
}

// SetBullet makes the paragraph a bulleted list item.
func (p *Paragraph) SetBullet(b *Bullet) *Paragraph {
	p.bullet = b
	return p
}

// SetSpacing sets space before, after and line spacing, all in points.
// Zero leaves the reader default in place.
func (p *Paragraph) SetSpacing(before, after, line float64) *Paragraph {
	p.spaceBefore = before
	p.spaceAfter = after
	p.lineSpacing = line
	return p
}

// SetRTL marks the paragraph right-to-left with the given BCP-47 language
// tag ("he-IL", "ar-SA", ...) and an optional complex-script typeface.
func (p *Paragraph) SetRTL(lang, csFont string) *Paragraph {
	p.rtl = true
	p.lang = lang
	p.csFont = csFont
	return p
}

func (p *Paragraph) validate() error {
	if p.lang != "" {
		if _, err := language.Parse(p.lang); err != nil {
			return wrapError(ErrInvalidInput, err, "paragraph language %q", p.lang)
		}
	}
	for _, tr := range p.runs {
		f := tr.font
		if !f.Color.IsZero() {
			if err := f.Color.validate(); err != nil {
				return err
			}
		}
		if !f.Highlight.IsZero() {
			if err := f.Highlight.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- TextBox ---

// TextBox is a free-form text frame.
type TextBox struct {
	BaseElement
	paragraphs []*Paragraph
	fill       *Fill
	border     *Border
	wordWrap   bool
}

func (*TextBox) element() {}

// NewTextBox builds an empty text box at the given placement.
func NewTextBox(t Transform) *TextBox {
	tb := &TextBox{wordWrap: true}
	tb.transform = t
	return tb
}

// AddParagraph appends a paragraph and returns it.
func (tb *TextBox) AddParagraph() *Paragraph {
	p := NewParagraph()
	tb.paragraphs = append(tb.paragraphs, p)
	return p
}

// GetParagraphs returns the ordered paragraphs.
func (tb *TextBox) GetParagraphs() []*Paragraph { return tb.paragraphs }

// SetFill sets the frame background.
func (tb *TextBox) SetFill(f *Fill) *TextBox {
	tb.fill = f
	return tb
}

// SetBorder sets the frame outline.
func (tb *TextBox) SetBorder(b *Border) *TextBox {
	tb.border = b
	return tb
}

// SetWordWrap toggles text wrapping.
func (tb *TextBox) SetWordWrap(wrap bool) *TextBox {
	tb.wordWrap = wrap
	return tb
}

// --- AutoShape ---

// AutoShape is a preset geometry with fill, stroke and optional text.
type AutoShape struct {
	BaseElement
	geometry   Geometry
	fill       *Fill
	border     *Border
	paragraphs []*Paragraph
	hyperlink  *Hyperlink
}

func (*AutoShape) element() {}

// NewAutoShape builds a shape with the given preset geometry.
func NewAutoShape(g Geometry, t Transform) *AutoShape {
	s := &AutoShape{geometry: g}
	s.transform = t
	return s
}

// GetGeometry returns the preset geometry tag.
func (s *AutoShape) GetGeometry() Geometry { return s.geometry }

// SetFill sets the interior fill.
func (s *AutoShape) SetFill(f *Fill) *AutoShape {
	s.fill = f
	return s
}

// GetFill returns the interior fill, nil when unset.
func (s *AutoShape) GetFill() *Fill { return s.fill }

// SetBorder sets the outline.
func (s *AutoShape) SetBorder(b *Border) *AutoShape {
	s.border = b
	return s
}

// SetText replaces the shape text with a single plain paragraph.
func (s *AutoShape) SetText(text string) *AutoShape {
	p := NewParagraph()
	p.AddText(text)
	s.paragraphs = []*Paragraph{p}
	return s
}

// AddParagraph appends a paragraph and returns it.
func (s *AutoShape) AddParagraph() *Paragraph {
	p := NewParagraph()
	s.paragraphs = append(s.paragraphs, p)
	return p
}

// GetParagraphs returns the ordered paragraphs.
func (s *AutoShape) GetParagraphs() []*Paragraph { return s.paragraphs }

// SetHyperlink makes the whole shape clickable.
func (s *AutoShape) SetHyperlink(h *Hyperlink) *AutoShape {
	s.hyperlink = h
	return s
}

// GetHyperlink returns the shape hyperlink, nil when absent.
func (s *AutoShape) GetHyperlink() *Hyperlink { return s.hyperlink }

// --- CodeBlock ---

// CodeBlock is a monospace text frame with a dark background, used for
// source listings.
type CodeBlock struct {
	BaseElement
	code     string
	language string
	fontSize float64
}

func (*CodeBlock) element() {}

// NewCodeBlock builds a code listing at the given placement.
func NewCodeBlock(code string, t Transform) *CodeBlock {
	cb := &CodeBlock{code: code, fontSize: 14}
	cb.transform = t
	return cb
}

// SetLanguage records the source language tag (informational).
func (cb *CodeBlock) SetLanguage(lang string) *CodeBlock {
	cb.language = lang
	return cb
}

// SetFontSize sets the listing font size in points.
func (cb *CodeBlock) SetFontSize(pts float64) *CodeBlock {
	cb.fontSize = pts
	return cb
}

// GetCode returns the listing text.
func (cb *CodeBlock) GetCode() string { return cb.code }
