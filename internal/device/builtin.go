// Package device implements the device conversion primitive consumed by
// the colour engine: a built-in converter for hosts that supply nothing,
// and a go-plugin client for hosts that ship their own colour management.
package device

import (
	"fmt"
	"math"

	"github.com/mvickers/kontrast/internal/colour"
)

// D65 reference white point.
var whitePointD65 = [3]float64{0.95047, 1.0, 1.08883}

// Builtin is a self-contained, deterministic device converter. It uses the
// naive ink formula for CMYK and CIE L*a*b* with a D65 white point; it is
// not a substitute for ICC colour management, only a dependable default.
type Builtin struct{}

// Convert implements colour.Converter for the four supported pairs:
// cmyk->rgb, gray->rgb, lab->rgb and rgb->cmyk.
func (Builtin) Convert(from colour.Model, values []float64, to colour.Model) ([]float64, error) {
	switch {
	case from == colour.ModelCMYK && to == colour.ModelRGB:
		if len(values) != 4 {
			return nil, fmt.Errorf("cmyk conversion: got %d components, want 4", len(values))
		}
		r, g, b := cmykToRGB(values[0], values[1], values[2], values[3])
		return []float64{r, g, b}, nil

	case from == colour.ModelGray && to == colour.ModelRGB:
		if len(values) != 1 {
			return nil, fmt.Errorf("gray conversion: got %d components, want 1", len(values))
		}
		y := values[0]
		return []float64{y, y, y}, nil

	case from == colour.ModelLab && to == colour.ModelRGB:
		if len(values) != 3 {
			return nil, fmt.Errorf("lab conversion: got %d components, want 3", len(values))
		}
		r, g, b := labToRGB(values[0], values[1], values[2])
		return []float64{r, g, b}, nil

	case from == colour.ModelRGB && to == colour.ModelCMYK:
		if len(values) != 3 {
			return nil, fmt.Errorf("rgb conversion: got %d components, want 3", len(values))
		}
		c, m, y, k := rgbToCMYK(values[0], values[1], values[2])
		return []float64{c, m, y, k}, nil

	default:
		return nil, fmt.Errorf("unsupported conversion %s -> %s", from, to)
	}
}

// cmykToRGB applies the naive device ink formula. Inputs in [0, 100],
// outputs in [0, 255].
func cmykToRGB(c, m, y, k float64) (r, g, b float64) {
	kf := 1 - k/100
	r = 255 * (1 - c/100) * kf
	g = 255 * (1 - m/100) * kf
	b = 255 * (1 - y/100) * kf
	return r, g, b
}

// rgbToCMYK inverts the naive ink formula. Inputs in [0, 255], outputs in
// [0, 100]. Pure black has no chromatic component.
func rgbToCMYK(r, g, b float64) (c, m, y, k float64) {
	rf := r / 255
	gf := g / 255
	bf := b / 255

	kf := 1 - math.Max(rf, math.Max(gf, bf))
	if kf >= 1 {
		return 0, 0, 0, 100
	}

	c = (1 - rf - kf) / (1 - kf) * 100
	m = (1 - gf - kf) / (1 - kf) * 100
	y = (1 - bf - kf) / (1 - kf) * 100
	return c, m, y, kf * 100
}

// labToRGB converts CIE L*a*b* (D65) to sRGB with values in [0, 255].
func labToRGB(l, a, b float64) (float64, float64, float64) {
	// Lab to XYZ.
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	x := labFInv(fx) * whitePointD65[0]
	y := labFInv(fy) * whitePointD65[1]
	z := labFInv(fz) * whitePointD65[2]

	// XYZ to linear sRGB.
	rl := 3.2404542*x - 1.5371385*y - 0.4985314*z
	gl := -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return linearToSRGB(rl) * 255, linearToSRGB(gl) * 255, linearToSRGB(bl) * 255
}

// labFInv is the inverse of the CIE L*a*b* companding function.
func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// linearToSRGB applies the sRGB transfer function and clamps to [0, 1].
func linearToSRGB(v float64) float64 {
	v = math.Min(1, math.Max(0, v))
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}
