package godeck

import "fmt"

// validate walks the whole deck before any part is generated, so the writer
// never emits a partial package. All reported errors carry the taxonomy
// kind the caller matches on.
func (p *Presentation) validate() error {
	if len(p.slides) == 0 {
		return newError(ErrInvalidInput, "presentation has no slides")
	}
	for i, slide := range p.slides {
		if err := p.validateSlide(slide); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	for _, sec := range p.sections {
		if sec.LastSlide >= len(p.slides) {
			return newError(ErrInvalidInput,
				"section %q ends at slide %d but presentation has %d slides",
				sec.Name, sec.LastSlide, len(p.slides))
		}
	}
	if p.showSettings != nil {
		if err := p.showSettings.validate(len(p.slides)); err != nil {
			return err
		}
	}
	for _, f := range p.embeddedFonts {
		if err := f.validate(); err != nil {
			return err
		}
	}
	if p.signature != nil {
		if err := p.signature.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Presentation) validateSlide(slide *Slide) error {
	for _, el := range slide.elements {
		switch e := el.(type) {
		case *TextBox:
			if e.fill != nil {
				if err := e.fill.validate(); err != nil {
					return err
				}
			}
			for _, para := range e.paragraphs {
				if err := para.validate(); err != nil {
					return err
				}
				if err := validateRunLinks(para, len(p.slides)); err != nil {
					return err
				}
			}
		case *AutoShape:
			if e.fill != nil {
				if err := e.fill.validate(); err != nil {
					return err
				}
			}
			if e.border != nil {
				if err := e.border.Color.validate(); err != nil {
					return err
				}
			}
			if e.hyperlink != nil {
				if err := e.hyperlink.validate(len(p.slides)); err != nil {
					return err
				}
			}
			for _, para := range e.paragraphs {
				if err := para.validate(); err != nil {
					return err
				}
				if err := validateRunLinks(para, len(p.slides)); err != nil {
					return err
				}
			}
		case *Picture:
			if len(e.data) == 0 {
				return newError(ErrInvalidInput, "picture has no data")
			}
			if e.hyperlink != nil {
				if err := e.hyperlink.validate(len(p.slides)); err != nil {
					return err
				}
			}
		case *Table:
			if err := e.validate(); err != nil {
				return err
			}
			for _, row := range e.rows {
				for _, cell := range row.cells {
					for _, para := range cell.paragraphs {
						if err := validateRunLinks(para, len(p.slides)); err != nil {
							return err
						}
					}
				}
			}
		case *Chart:
			if err := e.validate(); err != nil {
				return err
			}
		case *Connector:
			if err := e.validate(); err != nil {
				return err
			}
		case *Media:
			if err := e.validate(); err != nil {
				return err
			}
		case *CodeBlock:
			// nothing to check
		default:
			return newError(ErrInternal, "unknown element type %T", el)
		}
	}
	for _, stroke := range slide.ink {
		if err := stroke.validate(); err != nil {
			return err
		}
	}
	if slide.background != nil {
		if err := slide.background.validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateRunLinks(para *Paragraph, slideCount int) error {
	for _, tr := range para.runs {
		if tr.hyperlink != nil {
			if err := tr.hyperlink.validate(slideCount); err != nil {
				return err
			}
		}
	}
	return nil
}
