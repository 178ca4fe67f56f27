package colour

import "fmt"

// maxAdjustIterations hard-caps the adjustment loop. It is a termination
// guarantee for targets unreachable within the document gamut, not a
// tunable knob.
const maxAdjustIterations = 1000

// Request describes one contrast adjustment. Adjustment always starts from
// the caller's original pair, never from a previously adjusted pair, so
// repeated previews cannot drift.
type Request struct {
	Background    Value   `json:"background"`
	Foreground    Value   `json:"foreground"`
	TargetRatio   float64 `json:"target_ratio"`    // in [1, 21]
	DocumentIsRGB bool    `json:"document_is_rgb"` // selects the gamut fidelity filter
}

// Adjustment is the outcome of an adjustment run: the last computed pair
// regardless of exact convergence. Callers must compare AchievedRatio to
// the requested target and surface any residual gap; an unreachable target
// is a defined terminal state, not an error.
type Adjustment struct {
	Background    Canonical
	Foreground    Canonical
	AchievedRatio float64
	Iterations    int
	// Converged reports whether the achieved ratio equals the target at
	// display precision (2 decimals). False means the iteration cap or the
	// step granularity stopped the walk short.
	Converged bool
}

// Adjuster walks a colour pair along a brightness/saturation trajectory
// until a target contrast ratio is reached or the iteration budget runs
// out. It holds no per-call state and is safe for concurrent use.
type Adjuster struct {
	conv Converter
	norm Normalizer
}

// NewAdjuster returns an adjuster backed by the given device converter.
func NewAdjuster(conv Converter) Adjuster {
	return Adjuster{conv: conv, norm: NewNormalizer(conv)}
}

// Adjust normalizes both colours and steps them toward (or away from) each
// other in HSB space until the contrast ratio meets req.TargetRatio.
//
// The colour that starts brighter always moves toward white and the one
// that starts darker toward black; this direction is fixed for the entire
// call. Hue is never modified. Every candidate passes through the gamut
// fidelity filter before its ratio is measured.
func (a Adjuster) Adjust(req Request) (Adjustment, error) {
	if req.TargetRatio < 1 || req.TargetRatio > 21 {
		return Adjustment{}, fmt.Errorf("target ratio %g: %w", req.TargetRatio, ErrOutOfRange)
	}

	bg, err := a.norm.Normalize(req.Background)
	if err != nil {
		return Adjustment{}, fmt.Errorf("background: %w", err)
	}
	fg, err := a.norm.Normalize(req.Foreground)
	if err != nil {
		return Adjustment{}, fmt.Errorf("foreground: %w", err)
	}

	// Fixed for the whole call: the side that starts darker darkens.
	bgDarkens := Luminance(bg) < Luminance(fg)

	hsbBG := RGBToHSB(bg)
	hsbFG := RGBToHSB(fg)

	fadedBG, err := Fade(bg, req.DocumentIsRGB, a.conv)
	if err != nil {
		return Adjustment{}, err
	}
	fadedFG, err := Fade(fg, req.DocumentIsRGB, a.conv)
	if err != nil {
		return Adjustment{}, err
	}
	ratio := ContrastRatio(fadedBG, fadedFG)

	target := DisplayRatio(req.TargetRatio)
	iterations := 0
	var wasBelow, stepped bool

	for i := 0; i < maxAdjustIterations; i++ {
		if DisplayRatio(ratio) == target {
			break
		}
		below := ratio < req.TargetRatio
		if stepped && below != wasBelow {
			// The last whole-unit step carried the ratio across the target;
			// no closer state exists at this quantization.
			break
		}
		wasBelow, stepped = below, true

		if below {
			hsbBG, hsbFG = widen(hsbBG, hsbFG, bgDarkens)
		} else {
			hsbBG, hsbFG = narrow(hsbBG, hsbFG, bgDarkens)
		}

		fadedBG, err = Fade(HSBToRGB(hsbBG), req.DocumentIsRGB, a.conv)
		if err != nil {
			return Adjustment{}, err
		}
		fadedFG, err = Fade(HSBToRGB(hsbFG), req.DocumentIsRGB, a.conv)
		if err != nil {
			return Adjustment{}, err
		}
		ratio = ContrastRatio(fadedBG, fadedFG)
		iterations = i + 1
	}

	return Adjustment{
		Background:    fadedBG,
		Foreground:    fadedFG,
		AchievedRatio: ratio,
		Iterations:    iterations,
		Converged:     DisplayRatio(ratio) == target,
	}, nil
}

// widen moves the pair apart: the darkening side steps toward black, the
// lightening side toward white. Both sides also desaturate one step per
// iteration; a hue that cannot reach the target through brightness alone
// would otherwise stall the walk.
func widen(bg, fg HSB, bgDarkens bool) (HSB, HSB) {
	if bgDarkens {
		bg.B = stepToward(bg.B, 0)
		fg.B = stepToward(fg.B, 100)
	} else {
		bg.B = stepToward(bg.B, 100)
		fg.B = stepToward(fg.B, 0)
	}
	bg.S = stepToward(bg.S, 0)
	fg.S = stepToward(fg.S, 0)
	return bg, fg
}

// narrow is the mirrored rule: brightnesses move toward each other and
// saturations step back up.
func narrow(bg, fg HSB, bgDarkens bool) (HSB, HSB) {
	if bgDarkens {
		bg.B = stepToward(bg.B, 100)
		fg.B = stepToward(fg.B, 0)
	} else {
		bg.B = stepToward(bg.B, 0)
		fg.B = stepToward(fg.B, 100)
	}
	bg.S = stepToward(bg.S, 100)
	fg.S = stepToward(fg.S, 100)
	return bg, fg
}

// stepToward moves v one whole unit toward limit. A side that has reached
// its extreme jumps straight to it on subsequent iterations rather than
// no-opping; this branch shape matters near gamut boundaries.
func stepToward(v, limit int) int {
	switch {
	case v > limit:
		if v-1 > limit {
			return v - 1
		}
		return limit
	case v < limit:
		if v+1 < limit {
			return v + 1
		}
		return limit
	default:
		return limit
	}
}
