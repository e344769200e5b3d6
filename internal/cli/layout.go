package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/fast-scroller/internal/cellmetrics"
	"github.com/baaaaaaaka/fast-scroller/internal/scroller"
)

type layoutFlags struct {
	preset     string
	presetFile string
	width      float64
	height     float64
	widthMode  string
	heightMode string
	metrics    string
	jsonOut    bool
}

type layoutReport struct {
	Preset        string          `json:"preset"`
	Sections      int             `json:"sections"`
	WidthSpec     string          `json:"widthSpec"`
	HeightSpec    string          `json:"heightSpec"`
	Width         float64         `json:"width"`
	Height        float64         `json:"height"`
	SectionWidth  float64         `json:"sectionWidth"`
	SectionHeight float64         `json:"sectionHeight"`
	Spacing       float64         `json:"spacing"`
	TextHeight    float64         `json:"textHeight"`
	Labels        []labelPosition `json:"labels"`
}

type labelPosition struct {
	Label    string  `json:"label"`
	CenterX  float64 `json:"centerX"`
	Baseline float64 `json:"baseline"`
	Top      float64 `json:"top"`
	Bottom   float64 `json:"bottom"`
}

func newLayoutCmd(root *rootOptions) *cobra.Command {
	flags := &layoutFlags{}
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Measure a preset and print the strip geometry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := buildLayoutReport(root, flags)
			if err != nil {
				return err
			}
			if flags.jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printLayoutReport(cmd.OutOrStdout(), newPalette(root), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.preset, "preset", "", "Section preset name (default: config or \"demo\")")
	cmd.Flags().StringVar(&flags.presetFile, "preset-file", "", "TOML or YAML file with extra presets")
	cmd.Flags().Float64Var(&flags.width, "width", 0, "Width constraint")
	cmd.Flags().Float64Var(&flags.height, "height", 24, "Height constraint")
	cmd.Flags().StringVar(&flags.widthMode, "width-mode", "unbounded", "Width mode: exact, at-most or unbounded")
	cmd.Flags().StringVar(&flags.heightMode, "height-mode", "exact", "Height mode: exact, at-most or unbounded")
	cmd.Flags().StringVar(&flags.metrics, "metrics", "cell", "Text metrics: cell (one row per label) or fixed")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "Print the report as JSON")
	return cmd
}

func buildLayoutReport(root *rootOptions, flags *layoutFlags) (layoutReport, error) {
	s, err := loadSettings(root)
	if err != nil {
		return layoutReport{}, err
	}
	p, err := s.resolvePreset(flags.preset, flags.presetFile)
	if err != nil {
		return layoutReport{}, err
	}
	cfg, err := s.cfg.Scroller()
	if err != nil {
		return layoutReport{}, err
	}
	widthSpec, err := parseMeasureSpec(flags.widthMode, flags.width)
	if err != nil {
		return layoutReport{}, fmt.Errorf("width: %w", err)
	}
	heightSpec, err := parseMeasureSpec(flags.heightMode, flags.height)
	if err != nil {
		return layoutReport{}, fmt.Errorf("height: %w", err)
	}

	var metrics scroller.TextMetrics
	switch strings.ToLower(flags.metrics) {
	case "", "cell":
		metrics = cellmetrics.New(false)
	case "fixed":
		metrics = scroller.FixedMetrics{CharWidth: 0.6, AscentRatio: 0.8, DescentRatio: 0.2}
	default:
		return layoutReport{}, fmt.Errorf("unknown metrics %q (want cell or fixed)", flags.metrics)
	}

	sc := scroller.New(cfg, scroller.Options{Metrics: metrics})
	sc.SetSections(p.Indexer())
	measured := sc.Measure(widthSpec, heightSpec)
	sc.OnSizeChanged(measured.Width, measured.Height)

	// Report the geometry Draw uses, which is refit to the final size.
	g := sc.Geometry()
	rec := &positionRecorder{geom: g}
	sc.Draw(rec)

	return layoutReport{
		Preset:        p.Name,
		Sections:      sc.SectionCount(),
		WidthSpec:     formatSpec(widthSpec),
		HeightSpec:    formatSpec(heightSpec),
		Width:         g.Width,
		Height:        g.Height,
		SectionWidth:  g.SectionWidth,
		SectionHeight: g.SectionHeight,
		Spacing:       g.Spacing,
		TextHeight:    g.TextHeight,
		Labels:        rec.labels,
	}, nil
}

// positionRecorder collects where Draw places each label.
type positionRecorder struct {
	geom   scroller.Geometry
	labels []labelPosition
}

func (r *positionRecorder) DrawText(text string, centerX, baseline float64, _ scroller.Paint) {
	top := baseline - (r.geom.SectionHeight+r.geom.TextHeight)/2
	r.labels = append(r.labels, labelPosition{
		Label:    text,
		CenterX:  centerX,
		Baseline: baseline,
		Top:      top,
		Bottom:   top + r.geom.SectionHeight,
	})
}

func (r *positionRecorder) DrawRect(_, _, _, _ float64) {}

func parseMeasureSpec(mode string, size float64) (scroller.MeasureSpec, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "exact":
		return scroller.ExactSize(size), nil
	case "at-most", "atmost", "at_most":
		return scroller.AtMostSize(size), nil
	case "", "unbounded":
		return scroller.UnboundedSize(), nil
	default:
		return scroller.MeasureSpec{}, fmt.Errorf("unknown mode %q (want exact, at-most or unbounded)", mode)
	}
}

func formatSpec(spec scroller.MeasureSpec) string {
	if spec.Mode == scroller.Unbounded {
		return spec.Mode.String()
	}
	return spec.Mode.String() + " " + formatNumber(spec.Size)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printLayoutReport(out io.Writer, pal palette, r layoutReport) {
	row := func(key, value string) {
		_, _ = fmt.Fprintf(out, "%s %s\n", pal.key.Sprintf("%-14s", key), value)
	}
	row("preset", pal.value.Sprint(r.Preset)+pal.dim.Sprintf(" (%d sections)", r.Sections))
	row("width", pal.value.Sprint(formatNumber(r.Width))+pal.dim.Sprintf(" (%s)", r.WidthSpec))
	row("height", pal.value.Sprint(formatNumber(r.Height))+pal.dim.Sprintf(" (%s)", r.HeightSpec))
	row("section", pal.value.Sprintf("%s x %s", formatNumber(r.SectionWidth), formatNumber(r.SectionHeight)))
	row("spacing", pal.value.Sprint(formatNumber(r.Spacing)))
	row("text height", pal.value.Sprint(formatNumber(r.TextHeight)))
	for _, l := range r.Labels {
		_, _ = fmt.Fprintf(out, "  %s %s\n",
			pal.key.Sprintf("%-4s", l.Label),
			pal.dim.Sprintf("top=%s bottom=%s baseline=%s",
				formatNumber(l.Top), formatNumber(l.Bottom), formatNumber(l.Baseline)))
	}
}
