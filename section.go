package godeck

import (
	"strings"

	"github.com/google/uuid"
)

// sectionNamespace seeds the name-based UUIDs for sections, so a section
// keeps the same GUID across builds.
var sectionNamespace = uuid.MustParse("9A1B7E1C-5C34-4F66-9D5B-0E1A2B3C4D5E")

// Section groups a contiguous run of slides under a name.
type Section struct {
	Name       string
	FirstSlide int // 0-based index of the first slide
	LastSlide  int // 0-based index of the last slide, inclusive
}

// guid returns the deterministic GUID serialized into the section list,
// derived from the section name.
func (s Section) guid() string {
	return "{" + strings.ToUpper(uuid.NewSHA1(sectionNamespace, []byte(s.Name)).String()) + "}"
}

// overlaps reports whether two slide ranges intersect.
func (s Section) overlaps(o Section) bool {
	return s.FirstSlide <= o.LastSlide && o.FirstSlide <= s.LastSlide
}
