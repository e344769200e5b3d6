package scroller

import "strconv"

// SectionIndexer supplies the labels shown on the strip and maps them to
// positions in the host list.
type SectionIndexer interface {
	Sections() []string
	PositionForSection(section int) int
	SectionForPosition(position int) int
}

// StaticSections is a fixed label list. Positions are supplied by the caller;
// when Positions is shorter than Labels the section index is used.
type StaticSections struct {
	Labels    []string
	Positions []int
}

func NewStaticSections(labels ...string) *StaticSections {
	return &StaticSections{Labels: labels}
}

func (s *StaticSections) Sections() []string {
	if s == nil {
		return nil
	}
	return s.Labels
}

func (s *StaticSections) PositionForSection(section int) int {
	if s == nil || section < 0 {
		return 0
	}
	if section < len(s.Positions) {
		return s.Positions[section]
	}
	return section
}

func (s *StaticSections) SectionForPosition(position int) int {
	if s == nil || len(s.Labels) == 0 {
		return 0
	}
	if len(s.Positions) == 0 {
		return clampInt(position, 0, len(s.Labels)-1)
	}
	section := 0
	for i, p := range s.Positions {
		if p > position {
			break
		}
		section = i
	}
	return section
}

// PreviewSections returns the 0..9 indexer used for design-time previews.
func PreviewSections() *StaticSections {
	labels := make([]string, 10)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return &StaticSections{Labels: labels}
}

// sectionSet is the immutable snapshot taken on SetSections.
type sectionSet struct {
	labels []string
}

func newSectionSet(ix SectionIndexer) sectionSet {
	if ix == nil {
		return sectionSet{}
	}
	src := ix.Sections()
	if len(src) == 0 {
		return sectionSet{}
	}
	labels := make([]string, len(src))
	copy(labels, src)
	return sectionSet{labels: labels}
}

func (s sectionSet) count() int { return len(s.labels) }

func (s sectionSet) label(i int) string {
	if i < 0 || i >= len(s.labels) {
		return ""
	}
	return s.labels[i]
}
