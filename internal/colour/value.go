// Package colour implements the WCAG 2.2 colour-contrast engine: colour
// model normalization, relative luminance, contrast evaluation, HSB
// conversion and the iterative contrast adjuster.
package colour

import (
	"errors"
	"fmt"
	"math"
)

// Model identifies a device colour model understood by the engine.
type Model string

const (
	ModelRGB      Model = "rgb"
	ModelCMYK     Model = "cmyk"
	ModelGray     Model = "gray"
	ModelLab      Model = "lab"
	ModelSpot     Model = "spot"
	ModelGradient Model = "gradient"
)

// ErrNoSolidColour is returned when a value does not reduce to a single
// contrast-checkable colour (gradients, missing spot bases, nil values).
// Hosts must reject such values before asking for contrast or adjustment.
var ErrNoSolidColour = errors.New("no solid colour")

// ErrOutOfRange is returned when a component of a colour value lies outside
// the representable range of its model. Range checks happen at the
// normalization boundary so invalid values never reach the adjustment loop.
var ErrOutOfRange = errors.New("colour component out of range")

// Value is a colour expressed in one of the supported device models.
// The concrete types are RGB, CMYK, Gray, Lab, Spot and Gradient.
type Value interface {
	// Model reports which device colour model the value belongs to.
	Model() Model
}

// RGB is a device RGB colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Model implements Value.
func (RGB) Model() Model { return ModelRGB }

// String returns the colour in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as a hex string (e.g., "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CMYK is a process colour with ink percentages in [0, 100].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// Model implements Value.
func (CMYK) Model() Model { return ModelCMYK }

// String returns the colour in the format "cmyk(c, m, y, k)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%g, %g, %g, %g)", c.C, c.M, c.Y, c.K)
}

// Gray is a grayscale colour with an 8-bit level (0 = black, 255 = white).
type Gray struct {
	Y uint8 `json:"y"`
}

// Model implements Value.
func (Gray) Model() Model { return ModelGray }

// String returns the colour in the format "gray(y)".
func (c Gray) String() string {
	return fmt.Sprintf("gray(%d)", c.Y)
}

// Lab is a CIE L*a*b* colour; L in [0, 100], a and b in [-128, 127].
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Model implements Value.
func (Lab) Model() Model { return ModelLab }

// String returns the colour in the format "lab(l, a, b)".
func (c Lab) String() string {
	return fmt.Sprintf("lab(%g, %g, %g)", c.L, c.A, c.B)
}

// Spot is a named-ink colour: an underlying value printed at a tint
// percentage in [0, 100]. Tint 100 is the full colour, tint 0 is white.
type Spot struct {
	Base Value   `json:"base"`
	Tint float64 `json:"tint"`
}

// Model implements Value.
func (Spot) Model() Model { return ModelSpot }

// Stop is a single gradient stop: a colour and its position along the ramp.
type Stop struct {
	Colour   Value   `json:"colour"`
	Position float64 `json:"position"`
}

// Gradient is an ordered list of colour stops. A gradient's rendered
// contrast depends on sample position, so it never normalizes to a single
// canonical colour; use Normalizer.NormalizeStops to inspect its stops.
type Gradient struct {
	Stops []Stop `json:"stops"`
}

// Model implements Value.
func (Gradient) Model() Model { return ModelGradient }

// Canonical is the RGB form every other colour model is normalized into
// before luminance and contrast math. Channels are real-valued during
// intermediate computation and stay within [0, 255]; integer rounding
// happens only at the read boundary via RGB().
type Canonical struct {
	R float64
	G float64
	B float64
}

// NewCanonical returns a canonical colour with each channel clamped to
// [0, 255].
func NewCanonical(r, g, b float64) Canonical {
	return Canonical{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// FromRGB converts an 8-bit RGB value into canonical form.
func FromRGB(c RGB) Canonical {
	return Canonical{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// RGB rounds the canonical colour to 8-bit channels.
func (c Canonical) RGB() RGB {
	return RGB{
		R: uint8(math.Round(clampChannel(c.R))),
		G: uint8(math.Round(clampChannel(c.G))),
		B: uint8(math.Round(clampChannel(c.B))),
	}
}

// Hex returns the rounded canonical colour as a hex string.
func (c Canonical) Hex() string {
	return c.RGB().Hex()
}

func clampChannel(v float64) float64 {
	return math.Min(255, math.Max(0, v))
}

// HSB is a hue/saturation/brightness colour. Hue is a whole degree in
// [0, 360); saturation and brightness are whole percents in [0, 100].
// The contrast adjuster steps by whole units, so its termination behaviour
// depends on this granularity.
type HSB struct {
	H int `json:"h"`
	S int `json:"s"`
	B int `json:"b"`
}

// String returns the colour in the format "hsb(h, s, b)".
func (c HSB) String() string {
	return fmt.Sprintf("hsb(%d, %d, %d)", c.H, c.S, c.B)
}

// Validate checks that every component of v lies within the representable
// range of its model. Spot and gradient values are validated recursively.
func Validate(v Value) error {
	switch c := v.(type) {
	case nil:
		return ErrNoSolidColour
	case RGB, Gray:
		return nil // uint8 channels cannot leave their range
	case CMYK:
		for _, ch := range [...]struct {
			name  string
			value float64
		}{{"c", c.C}, {"m", c.M}, {"y", c.Y}, {"k", c.K}} {
			if ch.value < 0 || ch.value > 100 {
				return fmt.Errorf("cmyk %s=%g: %w", ch.name, ch.value, ErrOutOfRange)
			}
		}
		return nil
	case Lab:
		if c.L < 0 || c.L > 100 {
			return fmt.Errorf("lab l=%g: %w", c.L, ErrOutOfRange)
		}
		if c.A < -128 || c.A > 127 {
			return fmt.Errorf("lab a=%g: %w", c.A, ErrOutOfRange)
		}
		if c.B < -128 || c.B > 127 {
			return fmt.Errorf("lab b=%g: %w", c.B, ErrOutOfRange)
		}
		return nil
	case Spot:
		if c.Tint < 0 || c.Tint > 100 {
			return fmt.Errorf("spot tint=%g: %w", c.Tint, ErrOutOfRange)
		}
		if c.Base == nil {
			return fmt.Errorf("spot base: %w", ErrNoSolidColour)
		}
		return Validate(c.Base)
	case Gradient:
		for i, stop := range c.Stops {
			if err := Validate(stop.Colour); err != nil {
				return fmt.Errorf("gradient stop %d: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported colour model %q", v.Model())
	}
}
