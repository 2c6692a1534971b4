package godeck

// LayoutKind selects which slide layout a slide references.
type LayoutKind int

const (
	LayoutTitleAndContent LayoutKind = iota
	LayoutTitleOnly
	LayoutTitleAndBigContent
	LayoutBlank
	LayoutCenteredTitle
	LayoutTwoColumn
)

// allLayoutKinds lists every layout in its deterministic emission order.
var allLayoutKinds = []LayoutKind{
	LayoutTitleAndContent,
	LayoutTitleOnly,
	LayoutTitleAndBigContent,
	LayoutBlank,
	LayoutCenteredTitle,
	LayoutTwoColumn,
}

// layoutName returns the display name written into the layout part.
func (k LayoutKind) layoutName() string {
	switch k {
	case LayoutTitleOnly:
		return "Title Only"
	case LayoutTitleAndBigContent:
		return "Title and Big Content"
	case LayoutBlank:
		return "Blank"
	case LayoutCenteredTitle:
		return "Title Slide"
	case LayoutTwoColumn:
		return "Two Content"
	default:
		return "Title and Content"
	}
}

// layoutType returns the p:sldLayout type attribute.
func (k LayoutKind) layoutType() string {
	switch k {
	case LayoutTitleOnly:
		return "titleOnly"
	case LayoutBlank:
		return "blank"
	case LayoutCenteredTitle:
		return "title"
	case LayoutTwoColumn:
		return "twoObj"
	default:
		return "obj"
	}
}

// TransitionKind selects the slide transition animation.
type TransitionKind int

const (
	TransitionFade TransitionKind = iota
	TransitionPush
	TransitionWipe
	TransitionSplit
	TransitionReveal
	TransitionCover
	TransitionZoom
)

// Transition animates the entry of a slide.
type Transition struct {
	Kind TransitionKind
	// DurationMS is the animation length in milliseconds; 0 leaves the
	// reader default.
	DurationMS int
	// AdvanceAfterMS auto-advances the slide after the given delay.
	AdvanceAfterMS int
}

// NewTransition builds a transition of the given kind.
func NewTransition(kind TransitionKind) *Transition {
	return &Transition{Kind: kind}
}

// Slide is one slide: an ordered element collection plus slide-scoped
// metadata. Elements render in insertion order.
type Slide struct {
	layout     LayoutKind
	title      string
	bullets    []string
	notes      string
	elements   []Element
	comments   []*Comment
	ink        []*InkStroke
	transition *Transition
	background *Fill
}

// NewSlide builds an empty slide on the given layout.
func NewSlide(layout LayoutKind) *Slide {
	return &Slide{layout: layout}
}

// GetLayout returns the layout kind.
func (s *Slide) GetLayout() LayoutKind { return s.layout }

// SetTitle sets the title placeholder text.
func (s *Slide) SetTitle(title string) *Slide {
	s.title = title
	return s
}

// GetTitle returns the title text.
func (s *Slide) GetTitle() string { return s.title }

// AddBullet appends one line to the body placeholder.
func (s *Slide) AddBullet(text string) *Slide {
	s.bullets = append(s.bullets, text)
	return s
}

// SetBullets replaces the body placeholder lines.
func (s *Slide) SetBullets(lines []string) *Slide {
	s.bullets = lines
	return s
}

// SetNotes sets the speaker notes. A non-empty value produces a notes
// slide part.
func (s *Slide) SetNotes(notes string) *Slide {
	s.notes = notes
	return s
}

// GetNotes returns the speaker notes.
func (s *Slide) GetNotes() string { return s.notes }

// AddElement appends any element. The typed Add helpers below are the
// usual entry points.
func (s *Slide) AddElement(e Element) *Slide {
	s.elements = append(s.elements, e)
	return s
}

// AddTextBox appends a text box and returns it.
func (s *Slide) AddTextBox(t Transform) *TextBox {
	tb := NewTextBox(t)
	s.elements = append(s.elements, tb)
	return tb
}

// AddShape appends an auto shape and returns it.
func (s *Slide) AddShape(g Geometry, t Transform) *AutoShape {
	sh := NewAutoShape(g, t)
	s.elements = append(s.elements, sh)
	return sh
}

// AddPicture appends an embedded image.
func (s *Slide) AddPicture(data []byte, t Transform) (*Picture, error) {
	p, err := NewPicture(data, t)
	if err != nil {
		return nil, err
	}
	s.elements = append(s.elements, p)
	return p, nil
}

// AddTable appends a rows x cols table and returns it.
func (s *Slide) AddTable(rows, cols int, t Transform) *Table {
	tbl := NewTable(rows, cols, t)
	s.elements = append(s.elements, tbl)
	return tbl
}

// AddChart appends a chart and returns it.
func (s *Slide) AddChart(kind ChartKind, t Transform) *Chart {
	c := NewChart(kind, t)
	s.elements = append(s.elements, c)
	return c
}

// AddConnector appends a connector and returns it.
func (s *Slide) AddConnector(kind ConnectorKind, start, end Position) *Connector {
	c := NewConnector(kind, start, end)
	s.elements = append(s.elements, c)
	return c
}

// AddComment pins a review note to the slide.
func (s *Slide) AddComment(c *Comment) *Slide {
	s.comments = append(s.comments, c)
	return s
}

// AddInkStroke adds a pen annotation.
func (s *Slide) AddInkStroke(stroke *InkStroke) *Slide {
	s.ink = append(s.ink, stroke)
	return s
}

// SetTransition sets the entry animation.
func (s *Slide) SetTransition(t *Transition) *Slide {
	s.transition = t
	return s
}

// SetBackground fills the slide background.
func (s *Slide) SetBackground(f *Fill) *Slide {
	s.background = f
	return s
}

// GetElements returns the ordered elements.
func (s *Slide) GetElements() []Element { return s.elements }
