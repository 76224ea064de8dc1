package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI palette indexes for the named colors a style string may use.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"purple":  "5",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",

	"bright-black":   "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-purple":  "13",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}

// ParseStyle converts a whitespace-separated style string such as
// "bold yellow" or "fg:#AB4563 bg:blue underline" into a lipgloss style.
// Color words may be ANSI names, #rrggbb hex values, or 0-255 palette
// indexes; a bare color word sets the foreground. "none" resets the style.
func ParseStyle(spec string) (lipgloss.Style, error) {
	st := lipgloss.NewStyle()
	for _, word := range strings.Fields(spec) {
		lower := strings.ToLower(word)
		switch lower {
		case "bold":
			st = st.Bold(true)
		case "italic":
			st = st.Italic(true)
		case "underline":
			st = st.Underline(true)
		case "dimmed":
			st = st.Faint(true)
		case "inverted":
			st = st.Reverse(true)
		case "blink":
			st = st.Blink(true)
		case "strikethrough":
			st = st.Strikethrough(true)
		case "hidden":
			// Render nothing visible but keep the cells occupied.
			st = st.Foreground(lipgloss.NoColor{}).Faint(true)
		case "none":
			st = lipgloss.NewStyle()
		default:
			switch {
			case strings.HasPrefix(lower, "fg:"):
				c, err := parseColor(lower[3:])
				if err != nil {
					return st, err
				}
				st = st.Foreground(c)
			case strings.HasPrefix(lower, "bg:"):
				c, err := parseColor(lower[3:])
				if err != nil {
					return st, err
				}
				st = st.Background(c)
			default:
				c, err := parseColor(lower)
				if err != nil {
					return st, err
				}
				st = st.Foreground(c)
			}
		}
	}
	return st, nil
}

func parseColor(word string) (lipgloss.TerminalColor, error) {
	if word == "" {
		return nil, fmt.Errorf("empty color")
	}
	if code, ok := namedColors[word]; ok {
		return lipgloss.Color(code), nil
	}
	if word[0] == '#' {
		if len(word) != 7 && len(word) != 4 {
			return nil, fmt.Errorf("bad hex color %q", word)
		}
		for _, c := range word[1:] {
			if !isHexDigit(c) {
				return nil, fmt.Errorf("bad hex color %q", word)
			}
		}
		return lipgloss.Color(word), nil
	}
	if isPaletteIndex(word) {
		return lipgloss.Color(word), nil
	}
	return nil, fmt.Errorf("unknown color %q", word)
}

func isHexDigit(c rune) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isPaletteIndex(word string) bool {
	if len(word) == 0 || len(word) > 3 {
		return false
	}
	n := 0
	for i := 0; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
		n = n*10 + int(word[i]-'0')
	}
	return n <= 255
}
