// Package segment models the styled text fragments that make up a rendered
// prompt component. A component render produces an ordered list of segments;
// later passes (such as gradient recoloring) consume that list and emit a
// replacement list, never mutating segments in place.
package segment

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Kind discriminates the segment variants a formatter can emit.
type Kind int

const (
	// KindText is a plain run of display text.
	KindText Kind = iota

	// KindFill is a run that expands to pad the prompt line. Fill segments
	// carry text like any other segment; only the layout layer treats them
	// specially.
	KindFill
)

// Segment is one styled, contiguous run of display text. A nil Style means
// the segment renders unstyled; consumers that need a style start from
// lipgloss.NewStyle().
type Segment struct {
	Kind  Kind
	Value string
	Style *lipgloss.Style
}

// Text returns a text segment with the given style. The style may be nil.
func Text(value string, style *lipgloss.Style) Segment {
	return Segment{Kind: KindText, Value: value, Style: style}
}

// Fill returns a fill segment with the given style. The style may be nil.
func Fill(value string, style *lipgloss.Style) Segment {
	return Segment{Kind: KindFill, Value: value, Style: style}
}

// EffectiveStyle returns the segment's style, or a fresh default style when
// the segment carries none.
func (s Segment) EffectiveStyle() lipgloss.Style {
	if s.Style == nil {
		return lipgloss.NewStyle()
	}
	return *s.Style
}

// WithForeground returns a copy of the segment whose style is the original
// style with only the foreground color replaced. All other attributes
// (background, bold, italic, ...) carry over unchanged.
func (s Segment) WithForeground(c lipgloss.TerminalColor) Segment {
	st := s.EffectiveStyle().Foreground(c)
	out := s
	out.Style = &st
	return out
}

// Render returns the segment's value with its style applied as an ANSI
// escape sequence string.
func (s Segment) Render() string {
	if s.Style == nil {
		return s.Value
	}
	return s.Style.Render(s.Value)
}

// Join renders a segment list into a single string in order.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Render())
	}
	return b.String()
}

// PlainJoin concatenates the raw values of a segment list, ignoring styles.
func PlainJoin(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Value)
	}
	return b.String()
}
