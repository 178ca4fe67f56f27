package colour

import "fmt"

// Converter is the device conversion primitive supplied by the host. It is
// treated as an opaque, deterministic pure function over component slices:
//
//	CMYK -> RGB: values are {c, m, y, k} in [0, 100], result {r, g, b} in [0, 255]
//	Gray -> RGB: values are {y} in [0, 255], result {r, g, b} in [0, 255]
//	Lab  -> RGB: values are {l, a, b}, result {r, g, b} in [0, 255]
//	RGB  -> CMYK: values are {r, g, b} in [0, 255], result {c, m, y, k} in [0, 100]
//
// The engine performs no colour management of its own beyond the
// self-contained WCAG transform in luminance.go.
type Converter interface {
	Convert(from Model, values []float64, to Model) ([]float64, error)
}

// Normalizer reduces any supported colour value to a canonical RGB triple
// using a host-supplied device converter.
type Normalizer struct {
	conv Converter
}

// NewNormalizer returns a normalizer backed by the given device converter.
func NewNormalizer(conv Converter) Normalizer {
	return Normalizer{conv: conv}
}

// Normalize reduces v to a single canonical RGB colour.
//
// RGB passes through; Gray, CMYK and Lab convert through the device
// converter; Spot normalizes its base recursively and interpolates toward
// white by (1 - tint/100). Gradients do not reduce to a single
// contrast-checkable colour and yield ErrNoSolidColour; callers that want
// the individual stops should use NormalizeStops.
//
// Component ranges are validated here so invalid values never propagate
// into the luminance math or the adjustment loop.
func (n Normalizer) Normalize(v Value) (Canonical, error) {
	if v == nil {
		return Canonical{}, ErrNoSolidColour
	}
	if err := Validate(v); err != nil {
		return Canonical{}, err
	}
	return n.normalize(v)
}

// normalize performs the per-model reduction after validation has passed.
func (n Normalizer) normalize(v Value) (Canonical, error) {
	switch c := v.(type) {
	case RGB:
		return FromRGB(c), nil

	case Gray:
		rgb, err := n.conv.Convert(ModelGray, []float64{float64(c.Y)}, ModelRGB)
		if err != nil {
			return Canonical{}, fmt.Errorf("gray conversion: %w", err)
		}
		return canonicalFromSlice(rgb)

	case CMYK:
		rgb, err := n.conv.Convert(ModelCMYK, []float64{c.C, c.M, c.Y, c.K}, ModelRGB)
		if err != nil {
			return Canonical{}, fmt.Errorf("cmyk conversion: %w", err)
		}
		return canonicalFromSlice(rgb)

	case Lab:
		rgb, err := n.conv.Convert(ModelLab, []float64{c.L, c.A, c.B}, ModelRGB)
		if err != nil {
			return Canonical{}, fmt.Errorf("lab conversion: %w", err)
		}
		return canonicalFromSlice(rgb)

	case Spot:
		base, err := n.normalize(c.Base)
		if err != nil {
			return Canonical{}, err
		}
		return applyTint(base, c.Tint), nil

	case Gradient:
		return Canonical{}, ErrNoSolidColour

	default:
		return Canonical{}, fmt.Errorf("unsupported colour model %q", v.Model())
	}
}

// NormalizeStops reduces v to the canonical colours it is made of. Solid
// values yield a single element; gradients yield every stop in order, with
// nested gradients flattened and spot tints applied to each stop.
func (n Normalizer) NormalizeStops(v Value) ([]Canonical, error) {
	if v == nil {
		return nil, ErrNoSolidColour
	}
	if err := Validate(v); err != nil {
		return nil, err
	}
	stops, err := n.normalizeStops(v)
	if err != nil {
		return nil, err
	}
	if len(stops) == 0 {
		return nil, ErrNoSolidColour
	}
	return stops, nil
}

func (n Normalizer) normalizeStops(v Value) ([]Canonical, error) {
	switch c := v.(type) {
	case Gradient:
		var out []Canonical
		for i, stop := range c.Stops {
			nested, err := n.normalizeStops(stop.Colour)
			if err != nil {
				return nil, fmt.Errorf("gradient stop %d: %w", i, err)
			}
			out = append(out, nested...)
		}
		return out, nil

	case Spot:
		nested, err := n.normalizeStops(c.Base)
		if err != nil {
			return nil, err
		}
		for i := range nested {
			nested[i] = applyTint(nested[i], c.Tint)
		}
		return nested, nil

	default:
		single, err := n.normalize(v)
		if err != nil {
			return nil, err
		}
		return []Canonical{single}, nil
	}
}

// applyTint interpolates each channel toward white by (1 - tint/100).
func applyTint(c Canonical, tint float64) Canonical {
	if tint >= 100 {
		return c
	}
	fade := 1 - tint/100
	return NewCanonical(
		c.R+(255-c.R)*fade,
		c.G+(255-c.G)*fade,
		c.B+(255-c.B)*fade,
	)
}

func canonicalFromSlice(rgb []float64) (Canonical, error) {
	if len(rgb) != 3 {
		return Canonical{}, fmt.Errorf("device converter returned %d components, want 3", len(rgb))
	}
	return NewCanonical(rgb[0], rgb[1], rgb[2]), nil
}
