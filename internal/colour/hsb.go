package colour

import "math"

// RGBToHSB converts a canonical colour to hue/saturation/brightness using
// the standard max-channel sector transform. Hue is 0 for achromatic
// colours (delta == 0). Outputs are quantized to whole degrees and whole
// percents; the adjuster relies on exactly this granularity.
func RGBToHSB(c Canonical) HSB {
	r, g, b := clampChannel(c.R), clampChannel(c.G), clampChannel(c.B)

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	brightness := max / 255 * 100

	var saturation float64
	if max > 0 {
		saturation = delta / max * 100
	}

	var hue float64
	if delta > 0 {
		switch max {
		case r:
			hue = (g - b) / delta
			if g < b {
				hue += 6
			}
		case g:
			hue = (b-r)/delta + 2
		default:
			hue = (r-g)/delta + 4
		}
		hue *= 60
	}

	h := int(math.Round(hue)) % 360
	if h < 0 {
		h += 360
	}

	return HSB{
		H: h,
		S: int(math.Round(saturation)),
		B: int(math.Round(brightness)),
	}
}

// HSBToRGB converts a hue/saturation/brightness colour back to canonical
// RGB. The result round-trips RGBToHSB within integer-rounding tolerance.
func HSBToRGB(c HSB) Canonical {
	h := float64(((c.H % 360) + 360) % 360)
	s := math.Min(100, math.Max(0, float64(c.S))) / 100
	v := math.Min(100, math.Max(0, float64(c.B))) / 100 * 255

	if s == 0 {
		// Achromatic.
		return NewCanonical(v, v, v)
	}

	sector := h / 60
	i := math.Floor(sector)
	f := sector - i

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return NewCanonical(r, g, b)
}
