package segment

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphemes_When_ASCII(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "s", "t", "r", "o"}, Graphemes("astro"))
	assert.Nil(t, Graphemes(""))
}

func TestGraphemes_When_CombiningMarks(t *testing.T) {
	t.Parallel()

	// "a" followed by a combining acute accent is one perceived character.
	got := Graphemes("ábc")
	require.Len(t, got, 3)
	assert.Equal(t, "á", got[0])
}

func TestGraphemes_When_EmojiZWJSequence(t *testing.T) {
	t.Parallel()

	// Woman-astronaut is woman + ZWJ + rocket: a single cluster.
	got := Graphemes("x\U0001F469‍\U0001F680y")
	require.Len(t, got, 3)
	assert.Equal(t, "\U0001F469‍\U0001F680", got[1])
}

func TestGraphemeCountAll_SumsSegments(t *testing.T) {
	t.Parallel()

	segs := []Segment{
		Text("abc", nil),
		Fill("--", nil),
		Text("", nil),
		Text("á", nil),
	}
	assert.Equal(t, 6, GraphemeCountAll(segs))
}

func TestWidth_When_WideRunes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Width("ab"))
	assert.Equal(t, 2, Width("世"))
}

func TestWithForeground_PreservesOtherAttributes(t *testing.T) {
	t.Parallel()

	st := lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("4"))
	seg := Text("hi", &st)

	got := seg.WithForeground(lipgloss.Color("#ff0000"))

	require.NotNil(t, got.Style)
	assert.True(t, got.Style.GetBold())
	assert.Equal(t, lipgloss.Color("4"), got.Style.GetBackground())
	assert.Equal(t, lipgloss.Color("#ff0000"), got.Style.GetForeground())

	// The input segment is untouched.
	assert.Equal(t, lipgloss.NoColor{}, seg.Style.GetForeground())
}

func TestWithForeground_When_NoStyle(t *testing.T) {
	t.Parallel()

	got := Text("hi", nil).WithForeground(lipgloss.Color("#00ff00"))
	require.NotNil(t, got.Style)
	assert.Equal(t, lipgloss.Color("#00ff00"), got.Style.GetForeground())
	assert.False(t, got.Style.GetBold())
}

func TestJoin_RendersInOrder(t *testing.T) {
	t.Parallel()

	segs := []Segment{Text("a", nil), Fill("-", nil), Text("b", nil)}
	assert.Equal(t, "a-b", Join(segs))
	assert.Equal(t, "a-b", PlainJoin(segs))
}

func TestEffectiveStyle_When_Nil(t *testing.T) {
	t.Parallel()

	st := Text("x", nil).EffectiveStyle()
	assert.False(t, st.GetBold())
}
