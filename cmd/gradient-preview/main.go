// gradient-preview is an interactive playground for gradient prompt
// styling. Type sample text, hex color stops, and domain breakpoints and
// watch the recolored output update live. Invalid stops preview the magma
// fallback curve, exactly as a real render would.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/promptfade/pkg/gradient"
	"github.com/dkoosis/promptfade/pkg/prompt"
	"github.com/dkoosis/promptfade/pkg/segment"
)

const defaultSample = "cosmonaut in low earth orbit"

var (
	titleCaser = cases.Title(language.English)
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

type model struct {
	inputs  []textinput.Model
	focused int
}

const (
	fieldText = iota
	fieldStops
	fieldDomain
	fieldCount
)

func newModel() model {
	mk := func(placeholder, value string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.SetValue(value)
		ti.CharLimit = 120
		return ti
	}
	m := model{inputs: make([]textinput.Model, fieldCount)}
	m.inputs[fieldText] = mk("sample text", defaultSample)
	m.inputs[fieldStops] = mk("hex stops", "#C7D2FE, #FECACA, #FEF9C3")
	m.inputs[fieldDomain] = mk("domain breakpoints", "0, 50, 100")
	m.inputs[fieldText].Focus()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "enter":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + 1) % len(m.inputs)
			m.inputs[m.focused].Focus()
			return m, nil
		case "shift+tab":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + len(m.inputs) - 1) % len(m.inputs)
			m.inputs[m.focused].Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(titleCaser.String("gradient preview")))
	b.WriteString("\n\n")
	labels := []string{"text", "stops", "domain"}
	for i, ti := range m.inputs {
		b.WriteString(labelStyle.Render(titleCaser.String(labels[i]) + ": "))
		b.WriteString(ti.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	curve, warning := m.curve()
	text := m.inputs[fieldText].Value()
	segs := prompt.RecolorAll(
		[]segment.Segment{segment.Text(text, nil)},
		curve,
		prompt.DefaultSampleCount,
	)
	b.WriteString(segment.Join(segs))
	b.WriteString("\n")
	if warning != "" {
		b.WriteString(warnStyle.Render(warning))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("\ntab: next field · esc: quit\n"))
	return b.String()
}

// curve builds the curve from the current inputs, falling back like a real
// render does and reporting why.
func (m model) curve() (gradient.Curve, string) {
	stops := splitList(m.inputs[fieldStops].Value())
	domain, err := parseDomain(splitList(m.inputs[fieldDomain].Value()))
	if err != nil {
		return gradient.Fallback(), "fallback: " + err.Error()
	}
	curve, err := gradient.Build(stops, domain)
	if err != nil {
		return gradient.Fallback(), "fallback: " + err.Error()
	}
	return curve, ""
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDomain(parts []string) ([]float64, error) {
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad breakpoint %q", p)
		}
		out[i] = v
	}
	return out, nil
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "gradient-preview: %v\n", err)
		os.Exit(1)
	}
}
