package tabler

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Section is one rendered table section: its wrapping tag (thead, tbody or
// tfoot) and inner markup.
type Section struct {
	Tag     string
	Content string
}

// HTML returns the section wrapped in its tag.
func (s Section) HTML() string {
	return "<" + s.Tag + ">" + s.Content + "</" + s.Tag + ">"
}

// Mount is the root table node owned by a [Table]. Its content is replaced
// wholesale on every render.
type Mount struct {
	sections []Section
}

// Sections returns a copy of the mounted sections in document order.
func (m *Mount) Sections() []Section {
	out := make([]Section, len(m.sections))
	copy(out, m.sections)
	return out
}

// Section returns the mounted section with the given tag.
func (m *Mount) Section(tag string) (Section, bool) {
	for _, s := range m.sections {
		if s.Tag == tag {
			return s, true
		}
	}
	return Section{}, false
}

// Len returns the number of mounted sections.
func (m *Mount) Len() int { return len(m.sections) }

// Inner returns the markup inside the table element.
func (m *Mount) Inner() string {
	var sb strings.Builder
	for _, s := range m.sections {
		sb.WriteString(s.HTML())
	}
	return sb.String()
}

// HTML returns the whole table element.
func (m *Mount) HTML() string {
	return "<table>" + m.Inner() + "</table>"
}

// Empty removes all content.
func (m *Mount) Empty() {
	m.sections = nil
}

// Find parses the mounted markup and returns the elements inside the table
// matching selector.
func (m *Mount) Find(selector string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(m.HTML()))
	if err != nil {
		return &goquery.Selection{}
	}
	return doc.Find("table").First().Find(selector)
}

func (m *Mount) replace(sections []Section) {
	m.sections = sections
}
