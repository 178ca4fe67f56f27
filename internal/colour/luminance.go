package colour

import "math"

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.2. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG22/#dfn-relative-luminance
func Luminance(c Canonical) float64 {
	r := gammaCorrect(c.R / 255.0)
	g := gammaCorrect(c.G / 255.0)
	b := gammaCorrect(c.B / 255.0)

	// The channel weights are a compliance contract, not tunable parameters.
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies the WCAG gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG contrast ratio between two colours.
// Returns a value between 1 and 21 at full precision; symmetric in its
// arguments. Use DisplayRatio for the 2-decimal presentation form.
// https://www.w3.org/TR/WCAG22/#dfn-contrast-ratio
func ContrastRatio(c1, c2 Canonical) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// DisplayRatio rounds a contrast ratio to the 2-decimal precision used for
// presentation and for the adjuster's target comparison.
func DisplayRatio(ratio float64) float64 {
	return math.Round(ratio*100) / 100
}

// Threshold names for the five WCAG 2.2 success criteria the engine
// evaluates.
const (
	ThresholdNormalAA   = "Normal-AA"
	ThresholdNormalAAA  = "Normal-AAA"
	ThresholdLargeAA    = "Large-AA"
	ThresholdLargeAAA   = "Large-AAA"
	ThresholdGraphicsAA = "Graphics-AA"
)

// Threshold is a named WCAG minimum contrast ratio.
type Threshold struct {
	Name     string  `json:"name"`
	MinRatio float64 `json:"min_ratio"`
}

// Thresholds lists the evaluated WCAG 2.2 criteria in presentation order.
var Thresholds = []Threshold{
	{ThresholdNormalAA, 4.5},
	{ThresholdNormalAAA, 7.0},
	{ThresholdLargeAA, 3.0},
	{ThresholdLargeAAA, 4.5},
	{ThresholdGraphicsAA, 3.0},
}

// Evaluation is the result of checking a contrast ratio against the WCAG
// thresholds.
type Evaluation struct {
	Ratio  float64         `json:"ratio"`
	Passes map[string]bool `json:"passes"`
}

// Evaluate checks ratio against every threshold. A criterion passes iff
// ratio >= its minimum; the comparison uses the full-precision ratio, so
// 4.49 does not pass Normal-AA.
func Evaluate(ratio float64) Evaluation {
	passes := make(map[string]bool, len(Thresholds))
	for _, t := range Thresholds {
		passes[t.Name] = ratio >= t.MinRatio
	}
	return Evaluation{Ratio: ratio, Passes: passes}
}
