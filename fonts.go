package godeck

import "os"

// EmbeddedFont carries font faces bundled into the package so the deck
// renders with the intended typeface on machines without it installed.
// Only the faces that are set are embedded.
type EmbeddedFont struct {
	Typeface   string
	Regular    []byte
	Bold       []byte
	Italic     []byte
	BoldItalic []byte
}

// NewEmbeddedFont embeds a regular face for the given typeface name.
func NewEmbeddedFont(typeface string, regular []byte) *EmbeddedFont {
	return &EmbeddedFont{Typeface: typeface, Regular: regular}
}

// NewEmbeddedFontFromFile reads the regular face from disk.
func NewEmbeddedFontFromFile(typeface, path string) (*EmbeddedFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(ErrMissingAsset, err, "font %s", path)
	}
	return NewEmbeddedFont(typeface, data), nil
}

// SetBold adds a bold face.
func (f *EmbeddedFont) SetBold(data []byte) *EmbeddedFont {
	f.Bold = data
	return f
}

// SetItalic adds an italic face.
func (f *EmbeddedFont) SetItalic(data []byte) *EmbeddedFont {
	f.Italic = data
	return f
}

// SetBoldItalic adds a bold-italic face.
func (f *EmbeddedFont) SetBoldItalic(data []byte) *EmbeddedFont {
	f.BoldItalic = data
	return f
}

// faces returns the present faces in a fixed order with their p:font child
// element names.
func (f *EmbeddedFont) faces() []fontFace {
	var out []fontFace
	if len(f.Regular) > 0 {
		out = append(out, fontFace{elem: "p:regular", data: f.Regular})
	}
	if len(f.Bold) > 0 {
		out = append(out, fontFace{elem: "p:bold", data: f.Bold})
	}
	if len(f.Italic) > 0 {
		out = append(out, fontFace{elem: "p:italic", data: f.Italic})
	}
	if len(f.BoldItalic) > 0 {
		out = append(out, fontFace{elem: "p:boldItalic", data: f.BoldItalic})
	}
	return out
}

type fontFace struct {
	elem string
	data []byte
}

func (f *EmbeddedFont) validate() error {
	if f.Typeface == "" {
		return newError(ErrInvalidInput, "embedded font needs a typeface name")
	}
	if len(f.faces()) == 0 {
		return newError(ErrInvalidInput, "embedded font %q has no face data", f.Typeface)
	}
	return nil
}
