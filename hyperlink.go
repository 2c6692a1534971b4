package godeck

import (
	"fmt"
	"strings"
)

// hlinkAction discriminates the hyperlink action variants.
type hlinkAction int

const (
	hlinkURL hlinkAction = iota
	hlinkSlide
	hlinkFirstSlide
	hlinkLastSlide
	hlinkNextSlide
	hlinkPreviousSlide
	hlinkEndShow
	hlinkEmail
	hlinkFile
)

// Hyperlink attaches a click action to a shape, image or text run.
type Hyperlink struct {
	action         hlinkAction
	url            string // URL, mailto target, file path, or slideN.xml
	slide          int    // 1-based, for slide links
	tooltip        string
	highlightClick bool
}

// LinkURL links to an external URL.
func LinkURL(url string) *Hyperlink {
	return &Hyperlink{action: hlinkURL, url: url}
}

// LinkSlide links to another slide by 1-based index.
func LinkSlide(index int) *Hyperlink {
	return &Hyperlink{action: hlinkSlide, slide: index}
}

// LinkFirstSlide jumps to the first slide.
func LinkFirstSlide() *Hyperlink { return &Hyperlink{action: hlinkFirstSlide} }

// LinkLastSlide jumps to the last slide.
func LinkLastSlide() *Hyperlink { return &Hyperlink{action: hlinkLastSlide} }

// LinkNextSlide jumps to the next slide.
func LinkNextSlide() *Hyperlink { return &Hyperlink{action: hlinkNextSlide} }

// LinkPreviousSlide jumps to the previous slide.
func LinkPreviousSlide() *Hyperlink { return &Hyperlink{action: hlinkPreviousSlide} }

// LinkEndShow ends the slide show.
func LinkEndShow() *Hyperlink { return &Hyperlink{action: hlinkEndShow} }

// LinkEmail links to a mailto address with an optional subject.
func LinkEmail(address, subject string) *Hyperlink {
	target := "mailto:" + address
	if subject != "" {
		target += "?subject=" + subject
	}
	return &Hyperlink{action: hlinkEmail, url: target}
}

// LinkFile links to a file path.
func LinkFile(path string) *Hyperlink {
	return &Hyperlink{action: hlinkFile, url: "file:///" + strings.ReplaceAll(path, `\`, "/")}
}

// SetTooltip sets the hover text and returns the hyperlink for chaining.
func (h *Hyperlink) SetTooltip(tip string) *Hyperlink {
	h.tooltip = tip
	return h
}

// SetHighlightClick enables the click highlight and returns the hyperlink.
func (h *Hyperlink) SetHighlightClick(on bool) *Hyperlink {
	h.highlightClick = on
	return h
}

// GetTooltip returns the hover text.
func (h *Hyperlink) GetTooltip() string { return h.tooltip }

// isExternal reports whether the target lives outside the package. External
// targets get TargetMode="External" in the rels file.
func (h *Hyperlink) isExternal() bool {
	switch h.action {
	case hlinkURL, hlinkEmail, hlinkFile:
		return true
	}
	return false
}

// target returns the relationship target for this action.
func (h *Hyperlink) target() string {
	switch h.action {
	case hlinkSlide:
		return fmt.Sprintf("slide%d.xml", h.slide)
	case hlinkFirstSlide:
		return "ppaction://hlinkshowjump?jump=firstslide"
	case hlinkLastSlide:
		return "ppaction://hlinkshowjump?jump=lastslide"
	case hlinkNextSlide:
		return "ppaction://hlinkshowjump?jump=nextslide"
	case hlinkPreviousSlide:
		return "ppaction://hlinkshowjump?jump=previousslide"
	case hlinkEndShow:
		return "ppaction://hlinkshowjump?jump=endshow"
	default:
		return h.url
	}
}

// actionAttr returns the ppaction attribute value for show-jump links,
// empty for link targets resolved through relationships alone.
func (h *Hyperlink) actionAttr() string {
	switch h.action {
	case hlinkFirstSlide, hlinkLastSlide, hlinkNextSlide, hlinkPreviousSlide, hlinkEndShow:
		return h.target()
	case hlinkSlide:
		return "ppaction://hlinksldjump"
	}
	return ""
}

func (h *Hyperlink) validate(slideCount int) error {
	if h.action == hlinkSlide && (h.slide < 1 || h.slide > slideCount) {
		return newError(ErrInvalidInput, "hyperlink to slide %d: presentation has %d slides", h.slide, slideCount)
	}
	return nil
}

// hlinkClickXML renders the a:hlinkClick element. relID may be empty for
// pure show-jump actions.
func (h *Hyperlink) hlinkClickXML(relID string) string {
	var sb strings.Builder
	sb.WriteString(`<a:hlinkClick r:id="`)
	sb.WriteString(relID)
	sb.WriteString(`"`)
	if a := h.actionAttr(); a != "" && !h.isExternal() {
		sb.WriteString(` action="` + a + `"`)
	}
	if h.tooltip != "" {
		sb.WriteString(` tooltip="` + xmlEscape(h.tooltip) + `"`)
	}
	if h.highlightClick {
		sb.WriteString(` highlightClick="1"`)
	}
	sb.WriteString("/>")
	return sb.String()
}
