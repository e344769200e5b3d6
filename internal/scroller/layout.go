package scroller

import "math"

// Auto lets the layout derive a section dimension from the labels.
const Auto = -1.0

// Mode is how a measure constraint binds.
type Mode int

const (
	// Unbounded places no limit on the size.
	Unbounded Mode = iota
	// AtMost caps the size at MeasureSpec.Size.
	AtMost
	// Exact forces the size to MeasureSpec.Size.
	Exact
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case AtMost:
		return "at-most"
	default:
		return "unbounded"
	}
}

type MeasureSpec struct {
	Mode Mode
	Size float64
}

func ExactSize(size float64) MeasureSpec { return MeasureSpec{Mode: Exact, Size: size} }

func AtMostSize(size float64) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: size} }

func UnboundedSize() MeasureSpec { return MeasureSpec{Mode: Unbounded} }

func (m MeasureSpec) resolve(desired float64) float64 {
	switch m.Mode {
	case Exact:
		return math.Max(0, m.Size)
	case AtMost:
		return math.Min(desired, math.Max(0, m.Size))
	default:
		return desired
	}
}

type Padding struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func UniformPadding(v float64) Padding {
	return Padding{Left: v, Top: v, Right: v, Bottom: v}
}

func (p Padding) Horizontal() float64 { return p.Left + p.Right }

func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

// Geometry is the measured layout. Width and Height include padding;
// the section fields describe the content area.
type Geometry struct {
	Width         float64
	Height        float64
	SectionWidth  float64
	SectionHeight float64
	Spacing       float64
	TextHeight    float64
}

// GroupHeight is one section plus its spacing, the unit of pointer mapping.
func (g Geometry) GroupHeight() float64 { return g.SectionHeight + g.Spacing }

// ContentHeight is the height occupied by count sections.
func (g Geometry) ContentHeight(count int) float64 {
	return g.GroupHeight() * float64(count)
}

type layoutInput struct {
	count         int
	labelWidth    float64
	textHeight    float64
	sectionWidth  float64
	sectionHeight float64
	spacing       float64
	padding       Padding
}

func measureLabels(labels []string, metrics TextMetrics, p Paint) (width, textHeight float64) {
	if metrics == nil {
		return 0, 0
	}
	textHeight = math.Max(0, metrics.Descent(p)-metrics.Ascent(p))
	for _, l := range labels {
		width = math.Max(width, metrics.MeasureText(l, p))
	}
	return width, textHeight
}

func computeLayout(in layoutInput, widthSpec, heightSpec MeasureSpec) Geometry {
	g := Geometry{TextHeight: in.textHeight}

	sectionWidth := in.labelWidth
	if in.sectionWidth >= 0 {
		sectionWidth = in.sectionWidth
	}
	g.Width = widthSpec.resolve(sectionWidth + in.padding.Horizontal())

	if in.count <= 0 {
		g.Height = heightSpec.resolve(in.padding.Vertical())
		return g
	}
	g.SectionWidth = sectionWidth

	autoHeight := in.sectionHeight < 0
	sectionHeight := in.sectionHeight
	if autoHeight {
		sectionHeight = in.textHeight
	}
	spacing := math.Max(0, in.spacing)
	n := float64(in.count)

	desired := (sectionHeight+spacing)*n + in.padding.Vertical()
	refit := false
	switch heightSpec.Mode {
	case Exact:
		g.Height = math.Max(0, heightSpec.Size)
		refit = true
	case AtMost:
		limit := math.Max(0, heightSpec.Size)
		if desired > limit {
			g.Height = limit
			refit = true
		} else {
			g.Height = desired
		}
	default:
		g.Height = desired
	}

	if refit {
		content := math.Max(0, g.Height-in.padding.Vertical())
		sectionHeight, spacing = fitSections(content, in.count, autoHeight, sectionHeight, spacing)
	}
	g.SectionHeight = math.Max(0, sectionHeight)
	g.Spacing = math.Max(0, spacing)
	return g
}

// fitSections spreads count sections over content exactly.
func fitSections(content float64, count int, autoHeight bool, sectionHeight, spacing float64) (float64, float64) {
	n := float64(count)
	if autoHeight {
		sectionHeight = math.Max(0, content-n*spacing) / n
		if (sectionHeight+spacing)*n > content {
			spacing = math.Max(0, content-sectionHeight*n) / n
		}
		return sectionHeight, spacing
	}

	desired := sectionHeight * n
	switch {
	case desired < content:
		spacing = (content - desired) / n
	case desired > content:
		sectionHeight = content / n
		spacing = 0
	default:
		spacing = 0
	}
	return sectionHeight, spacing
}
