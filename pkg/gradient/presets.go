package gradient

// Preset stop sets. Each preset pairs hex stops with domain breakpoints on
// the standard 0..100 domain.
var (
	sunsetStops  = []string{"#C7D2FE", "#FECACA", "#FEF9C3"}
	sunsetDomain = []float64{0, 50, 100}

	goldStops  = []string{"#D2AC47", "#F7EF8A", "#EDC967"}
	goldDomain = []float64{0, 5, 100}

	// Anchor colors of the magma colormap, evenly spaced.
	magmaStops = []string{
		"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9567", "#fcfdbf",
	}
)

// Sunset is the default username gradient: indigo through rose to pale
// yellow.
func Sunset() Curve {
	return mustPreset(sunsetStops, sunsetDomain)
}

// Gold is a warm alternative preset.
func Gold() Curve {
	return mustPreset(goldStops, goldDomain)
}

// Fallback is the curve substituted when user-supplied stops fail to build:
// the perceptually-uniform magma colormap.
func Fallback() Curve {
	domain := make([]float64, len(magmaStops))
	step := 100.0 / float64(len(magmaStops)-1)
	for i := range domain {
		domain[i] = step * float64(i)
	}
	return mustPreset(magmaStops, domain)
}

func mustPreset(stops []string, domain []float64) Curve {
	c, err := Build(stops, domain)
	if err != nil {
		panic("gradient: invalid preset: " + err.Error())
	}
	return c
}
