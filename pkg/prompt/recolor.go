package prompt

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dkoosis/promptfade/pkg/gradient"
	"github.com/dkoosis/promptfade/pkg/segment"
)

// Recolor fades one segment through the curve, emitting one output segment
// per grapheme cluster of the input. The curve is sampled at totalSamples
// positions covering the whole component; offset says how many grapheme
// positions earlier segments of the same render already consumed. Each
// output segment keeps the input's variant and style, with only the
// foreground color replaced by the sampled color for its position.
//
// Returns the new segments and the offset for the next segment. An empty
// segment yields nil and an unchanged offset.
//
// Sampling is pure in (curve, totalSamples); callers recoloring several
// segments should precompute curve.Colors(totalSamples) once and use
// RecolorSampled.
func Recolor(seg segment.Segment, curve gradient.Curve, totalSamples, offset int) ([]segment.Segment, int) {
	return RecolorSampled(seg, curve.Colors(totalSamples), offset)
}

// RecolorSampled is Recolor over an already-sampled color sequence.
//
// When graphemes outrun the remaining samples, trailing graphemes reuse the
// final sampled color: every input character appears in the output exactly
// once, recolored, rather than being dropped.
func RecolorSampled(seg segment.Segment, colors []colorful.Color, offset int) ([]segment.Segment, int) {
	graphemes := segment.Graphemes(seg.Value)
	if len(graphemes) == 0 {
		return nil, offset
	}
	if len(colors) == 0 {
		// Nothing sampled; pass the text through unrecolored, one segment
		// per grapheme so downstream layout stays uniform.
		out := make([]segment.Segment, len(graphemes))
		for i, g := range graphemes {
			piece := seg
			piece.Value = g
			out[i] = piece
		}
		return out, offset + len(graphemes)
	}

	out := make([]segment.Segment, len(graphemes))
	for i, g := range graphemes {
		idx := offset + i
		if idx >= len(colors) {
			idx = len(colors) - 1
		}
		if idx < 0 {
			idx = 0
		}
		piece := seg.WithForeground(lipgloss.Color(colors[idx].Hex()))
		piece.Value = g
		out[i] = piece
	}
	return out, offset + len(graphemes)
}

// RecolorAll drives Recolor across a whole segment list with a single
// shared running offset, sampling the curve once.
func RecolorAll(segs []segment.Segment, curve gradient.Curve, totalSamples int) []segment.Segment {
	colors := curve.Colors(totalSamples)
	var out []segment.Segment
	offset := 0
	for _, s := range segs {
		var pieces []segment.Segment
		pieces, offset = RecolorSampled(s, colors, offset)
		out = append(out, pieces...)
	}
	return out
}
