package segment

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Graphemes splits s into user-perceived characters (grapheme clusters) in
// display order. Combining marks, ZWJ emoji sequences and regional
// indicator pairs each count as one cluster.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// GraphemeCount returns the number of grapheme clusters in s without
// allocating the cluster slice.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeCountAll sums the grapheme clusters across a segment list. This is
// the sample resolution a gradient needs to color the whole component.
func GraphemeCountAll(segs []Segment) int {
	total := 0
	for _, s := range segs {
		total += uniseg.GraphemeClusterCount(s.Value)
	}
	return total
}

// Width returns the display width of s in terminal cells, accounting for
// wide characters.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
