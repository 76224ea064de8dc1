package prompt

// DefaultSampleCount is the gradient sample resolution for one component
// render. It bounds how many characters receive distinct colors; longer
// output clamps to the final sample.
const DefaultSampleCount = 144

// UsernameOptions configures the gradient username component.
type UsernameOptions struct {
	// Format is the component template. Recognized variables: $user and
	// $style.
	Format string

	// StyleRoot styles the username for elevated accounts, StyleUser for
	// everyone else. Both are prompt style strings ("bold yellow",
	// "fg:#ff0000 bg:blue").
	StyleRoot string
	StyleUser string

	// ShowAlways forces the component to display even for the ordinary
	// logged-in local user.
	ShowAlways bool

	// Disabled suppresses the component entirely.
	Disabled bool
}

// DefaultUsernameOptions mirrors the stock username prompt configuration.
func DefaultUsernameOptions() UsernameOptions {
	return UsernameOptions{
		Format:    "[$user]($style) in ",
		StyleRoot: "red bold",
		StyleUser: "yellow bold",
	}
}

// GradientOptions selects the color curve for a render. With no preset and
// no stops, the built-in sunset curve is used.
type GradientOptions struct {
	// Preset names a built-in curve: "sunset", "gold" or "magma". Custom
	// Stops take precedence over a preset.
	Preset string

	// Stops are hex colors, parallel to Domain breakpoints.
	Stops []string

	// Domain positions each stop on the 0..100 curve domain. Must be
	// non-decreasing and the same length as Stops.
	Domain []float64

	// SampleCount overrides DefaultSampleCount when positive.
	SampleCount int
}

// DefaultGradientOptions returns the sunset preset at the standard sample
// resolution.
func DefaultGradientOptions() GradientOptions {
	return GradientOptions{SampleCount: DefaultSampleCount}
}

func (o GradientOptions) sampleCount() int {
	if o.SampleCount > 0 {
		return o.SampleCount
	}
	return DefaultSampleCount
}
