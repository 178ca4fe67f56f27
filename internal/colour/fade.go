package colour

import "fmt"

// Fade is the gamut fidelity filter: it round-trips a candidate colour
// through the document's native model so out-of-gamut results are never
// reported as achievable. For RGB documents it is the identity; otherwise
// the colour passes RGB -> CMYK -> RGB through the device converter.
//
// The adjuster applies this before every contrast recomputation; skipping
// it for a non-RGB document converges the loop to a ratio unattainable once
// the colour is actually rendered in that gamut.
func Fade(c Canonical, documentIsRGB bool, conv Converter) (Canonical, error) {
	if documentIsRGB {
		return c, nil
	}

	cmyk, err := conv.Convert(ModelRGB, []float64{c.R, c.G, c.B}, ModelCMYK)
	if err != nil {
		return Canonical{}, fmt.Errorf("fade to cmyk: %w", err)
	}
	rgb, err := conv.Convert(ModelCMYK, cmyk, ModelRGB)
	if err != nil {
		return Canonical{}, fmt.Errorf("fade to rgb: %w", err)
	}
	return canonicalFromSlice(rgb)
}
