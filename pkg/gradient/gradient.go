// Package gradient builds continuous color curves from discrete color stops
// and samples them at arbitrary resolution. A curve maps a position in a
// bounded numeric domain to an RGB color by piecewise-linear blending
// between neighboring stops; sampling outside the domain clamps to the
// nearest stop.
package gradient

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrStopCountMismatch reports color stop and domain breakpoint lists of
	// different lengths.
	ErrStopCountMismatch = errors.New("gradient: color stop and domain breakpoint counts differ")

	// ErrTooFewStops reports a curve with fewer than two stops.
	ErrTooFewStops = errors.New("gradient: need at least two color stops")

	// ErrDomainNotSorted reports domain breakpoints that decrease.
	ErrDomainNotSorted = errors.New("gradient: domain breakpoints must be non-decreasing")
)

// Curve is an immutable piecewise-linear color gradient. Construct one with
// Build or use a preset; the zero value is not usable.
type Curve struct {
	stops  []colorful.Color
	domain []float64
}

// Build constructs a curve from parallel lists of hex color stops and domain
// breakpoints. The lists must have equal length, at least two entries, and
// non-decreasing breakpoints. Any violation or hex parse failure returns an
// error; callers are expected to substitute Fallback() rather than abort the
// render.
func Build(hexStops []string, domain []float64) (Curve, error) {
	if len(hexStops) != len(domain) {
		return Curve{}, fmt.Errorf("%w: %d stops, %d breakpoints", ErrStopCountMismatch, len(hexStops), len(domain))
	}
	if len(hexStops) < 2 {
		return Curve{}, ErrTooFewStops
	}
	stops := make([]colorful.Color, len(hexStops))
	for i, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			return Curve{}, fmt.Errorf("gradient: stop %d: %w", i, err)
		}
		stops[i] = c
	}
	for i := 1; i < len(domain); i++ {
		if domain[i] < domain[i-1] {
			return Curve{}, fmt.Errorf("%w: %v after %v", ErrDomainNotSorted, domain[i], domain[i-1])
		}
	}
	ds := make([]float64, len(domain))
	copy(ds, domain)
	return Curve{stops: stops, domain: ds}, nil
}

// Domain returns the curve's lowest and highest breakpoint.
func (c Curve) Domain() (min, max float64) {
	return c.domain[0], c.domain[len(c.domain)-1]
}

// At returns the color at position t. Positions outside the domain clamp to
// the first or last stop. At is a pure function: the same t always yields
// the same color.
func (c Curve) At(t float64) colorful.Color {
	if t <= c.domain[0] {
		return c.stops[0]
	}
	last := len(c.domain) - 1
	if t >= c.domain[last] {
		return c.stops[last]
	}
	for i := 1; i <= last; i++ {
		if t > c.domain[i] {
			continue
		}
		span := c.domain[i] - c.domain[i-1]
		if span == 0 {
			return c.stops[i]
		}
		u := (t - c.domain[i-1]) / span
		return c.stops[i-1].BlendRgb(c.stops[i], u)
	}
	return c.stops[last]
}

// Colors samples the curve at n evenly spaced positions spanning the whole
// domain, first stop through last. n <= 0 yields nil.
func (c Curve) Colors(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	min, max := c.Domain()
	if n == 1 {
		return []colorful.Color{c.At(min)}
	}
	out := make([]colorful.Color, n)
	den := float64(n - 1)
	for i := range out {
		// Ratio form lands exactly on max at the final sample.
		out[i] = c.At(min + (max-min)*(float64(i)/den))
	}
	return out
}
