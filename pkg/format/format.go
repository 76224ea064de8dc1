// Package format implements the prompt template formatter. A template is a
// string containing literal text, $variable references, and [text]($style)
// groups; formatting expands it into an ordered list of styled segments.
//
// Variable values and styles are supplied by resolver callbacks so the
// formatter stays independent of any particular prompt component. A
// variable no resolver recognizes expands to the empty string.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/promptfade/pkg/segment"
)

var (
	// ErrUnclosedGroup reports a '[' with no matching ']'.
	ErrUnclosedGroup = errors.New("format: unclosed style group")

	// ErrMissingStyle reports a ']' not followed by a (style) part.
	ErrMissingStyle = errors.New("format: style group missing (style)")

	// ErrUnclosedStyle reports a '(' with no matching ')'.
	ErrUnclosedStyle = errors.New("format: unclosed style part")
)

// ValueResolver maps a variable name to its text value. Returning false
// leaves the variable unresolved, which expands to nothing.
type ValueResolver func(name string) (string, bool)

// StyleResolver maps a style variable name to a style. Returning false
// leaves the group unstyled.
type StyleResolver func(name string) (lipgloss.Style, bool)

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenVariable
	tokenGroup
)

type token struct {
	kind  tokenKind
	text  string  // literal text or variable name
	inner []token // group content
	style string  // group style: "$name" or a literal style string
}

// Formatter is a parsed template, reusable across renders.
type Formatter struct {
	tokens []token
}

// New parses a template string. Structural problems (unclosed groups or
// style parts) are returned as errors; variable names are not validated
// until Format.
func New(template string) (*Formatter, error) {
	tokens, rest, err := parseTokens(template, false)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		// Only reachable on a stray ']' at top level; treat as literal.
		tokens = append(tokens, token{kind: tokenLiteral, text: rest})
	}
	return &Formatter{tokens: tokens}, nil
}

// parseTokens scans s until the end (or an unescaped ']' when inGroup),
// returning the tokens and the unconsumed remainder.
func parseTokens(s string, inGroup bool) ([]token, string, error) {
	var tokens []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{kind: tokenLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	for len(s) > 0 {
		switch s[0] {
		case '\\':
			if len(s) > 1 {
				lit.WriteByte(s[1])
				s = s[2:]
			} else {
				lit.WriteByte('\\')
				s = s[1:]
			}
		case '$':
			name, rest := scanIdent(s[1:])
			if name == "" {
				lit.WriteByte('$')
				s = s[1:]
				break
			}
			flush()
			tokens = append(tokens, token{kind: tokenVariable, text: name})
			s = rest
		case '[':
			flush()
			inner, rest, err := parseTokens(s[1:], true)
			if err != nil {
				return nil, "", err
			}
			if !strings.HasPrefix(rest, "]") {
				return nil, "", ErrUnclosedGroup
			}
			rest = rest[1:]
			if !strings.HasPrefix(rest, "(") {
				return nil, "", ErrMissingStyle
			}
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				return nil, "", ErrUnclosedStyle
			}
			tokens = append(tokens, token{kind: tokenGroup, inner: inner, style: rest[1:end]})
			s = rest[end+1:]
		case ']':
			if inGroup {
				flush()
				return tokens, s, nil
			}
			lit.WriteByte(']')
			s = s[1:]
		default:
			lit.WriteByte(s[0])
			s = s[1:]
		}
	}
	if inGroup {
		return nil, "", ErrUnclosedGroup
	}
	flush()
	return tokens, "", nil
}

// scanIdent reads a variable name ([A-Za-z0-9_]+ or {name}) from the start
// of s, returning the name and the remainder.
func scanIdent(s string) (string, string) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", s
		}
		return s[1:end], s[end+1:]
	}
	i := 0
	for i < len(s) {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' {
			i++
			continue
		}
		break
	}
	return s[:i], s[i:]
}

// Format expands the template into segments. Top-level text becomes
// unstyled segments; each [text]($style) group becomes one segment carrying
// the resolved style. Unresolved value variables expand to nothing; a group
// whose literal style string fails to parse is a format error.
func (f *Formatter) Format(styles StyleResolver, values ValueResolver) ([]segment.Segment, error) {
	var segs []segment.Segment
	for _, t := range f.tokens {
		switch t.kind {
		case tokenLiteral:
			segs = append(segs, segment.Text(t.text, nil))
		case tokenVariable:
			if v, ok := resolveValue(values, t.text); ok && v != "" {
				segs = append(segs, segment.Text(v, nil))
			}
		case tokenGroup:
			text := expandInner(t.inner, values)
			if text == "" {
				continue
			}
			st, err := f.groupStyle(t.style, styles)
			if err != nil {
				return nil, err
			}
			segs = append(segs, segment.Text(text, st))
		}
	}
	return segs, nil
}

func (f *Formatter) groupStyle(spec string, styles StyleResolver) (*lipgloss.Style, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	if strings.HasPrefix(spec, "$") {
		if styles == nil {
			return nil, nil
		}
		st, ok := styles(spec[1:])
		if !ok {
			return nil, nil
		}
		return &st, nil
	}
	st, err := ParseStyle(spec)
	if err != nil {
		return nil, fmt.Errorf("format: style %q: %w", spec, err)
	}
	return &st, nil
}

func expandInner(tokens []token, values ValueResolver) string {
	var b strings.Builder
	for _, t := range tokens {
		switch t.kind {
		case tokenLiteral:
			b.WriteString(t.text)
		case tokenVariable:
			if v, ok := resolveValue(values, t.text); ok {
				b.WriteString(v)
			}
		}
	}
	return b.String()
}

func resolveValue(values ValueResolver, name string) (string, bool) {
	if values == nil {
		return "", false
	}
	return values(name)
}
