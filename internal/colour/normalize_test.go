package colour

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// naiveConverter is a self-contained device converter for tests: the plain
// ink formula for CMYK, gray passthrough and a neutral-axis Lab mapping.
type naiveConverter struct{}

func (naiveConverter) Convert(from Model, values []float64, to Model) ([]float64, error) {
	switch {
	case from == ModelCMYK && to == ModelRGB:
		kf := 1 - values[3]/100
		return []float64{
			255 * (1 - values[0]/100) * kf,
			255 * (1 - values[1]/100) * kf,
			255 * (1 - values[2]/100) * kf,
		}, nil
	case from == ModelGray && to == ModelRGB:
		return []float64{values[0], values[0], values[0]}, nil
	case from == ModelLab && to == ModelRGB:
		l := values[0] / 100 * 255
		return []float64{l, l, l}, nil
	case from == ModelRGB && to == ModelCMYK:
		rf, gf, bf := values[0]/255, values[1]/255, values[2]/255
		kf := 1 - math.Max(rf, math.Max(gf, bf))
		if kf >= 1 {
			return []float64{0, 0, 0, 100}, nil
		}
		return []float64{
			(1 - rf - kf) / (1 - kf) * 100,
			(1 - gf - kf) / (1 - kf) * 100,
			(1 - bf - kf) / (1 - kf) * 100,
			kf * 100,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported conversion %s -> %s", from, to)
	}
}

func TestNormalizeSolidColours(t *testing.T) {
	norm := NewNormalizer(naiveConverter{})

	tests := []struct {
		name string
		in   Value
		want RGB
	}{
		{"rgb passthrough", RGB{70, 130, 180}, RGB{70, 130, 180}},
		{"gray", Gray{128}, RGB{128, 128, 128}},
		{"cmyk white", CMYK{0, 0, 0, 0}, RGB{255, 255, 255}},
		{"cmyk black", CMYK{0, 0, 0, 100}, RGB{0, 0, 0}},
		{"cmyk cyan", CMYK{100, 0, 0, 0}, RGB{0, 255, 255}},
		{"lab white", Lab{100, 0, 0}, RGB{255, 255, 255}},
		{"spot full tint", Spot{Base: RGB{200, 0, 0}, Tint: 100}, RGB{200, 0, 0}},
		{"spot zero tint is white", Spot{Base: RGB{200, 0, 0}, Tint: 0}, RGB{255, 255, 255}},
		{"spot half tint", Spot{Base: RGB{100, 0, 0}, Tint: 50}, RGB{178, 128, 128}},
		{"nested spot", Spot{Base: Spot{Base: RGB{0, 0, 0}, Tint: 50}, Tint: 50}, RGB{191, 191, 191}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := norm.Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%v) error = %v", tt.in, err)
			}
			if got.RGB() != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got.RGB(), tt.want)
			}
		})
	}
}

func TestNormalizeRejectsNonSolid(t *testing.T) {
	norm := NewNormalizer(naiveConverter{})

	gradient := Gradient{Stops: []Stop{
		{Colour: RGB{0, 0, 0}, Position: 0},
		{Colour: RGB{255, 255, 255}, Position: 100},
	}}

	tests := []struct {
		name string
		in   Value
	}{
		{"gradient", gradient},
		{"spot over gradient", Spot{Base: gradient, Tint: 80}},
		{"nil value", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := norm.Normalize(tt.in); !errors.Is(err, ErrNoSolidColour) {
				t.Errorf("Normalize(%v) error = %v, want ErrNoSolidColour", tt.in, err)
			}
		})
	}
}

func TestNormalizeFailsFastOnRange(t *testing.T) {
	norm := NewNormalizer(naiveConverter{})

	tests := []struct {
		name string
		in   Value
	}{
		{"cmyk over 100", CMYK{120, 0, 0, 0}},
		{"cmyk negative", CMYK{0, -3, 0, 0}},
		{"lab l over 100", Lab{101, 0, 0}},
		{"lab a under -128", Lab{50, -129, 0}},
		{"spot tint over 100", Spot{Base: RGB{0, 0, 0}, Tint: 101}},
		{"bad stop inside gradient", Gradient{Stops: []Stop{{Colour: CMYK{0, 0, 0, 200}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := norm.Normalize(tt.in); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Normalize(%v) error = %v, want ErrOutOfRange", tt.in, err)
			}
		})
	}
}

func TestNormalizeStops(t *testing.T) {
	norm := NewNormalizer(naiveConverter{})

	t.Run("solid yields one stop", func(t *testing.T) {
		stops, err := norm.NormalizeStops(RGB{10, 20, 30})
		if err != nil {
			t.Fatalf("NormalizeStops error = %v", err)
		}
		if len(stops) != 1 || stops[0].RGB() != (RGB{10, 20, 30}) {
			t.Errorf("NormalizeStops = %v, want single stop rgb(10, 20, 30)", stops)
		}
	})

	t.Run("gradient concatenates stops in order", func(t *testing.T) {
		nested := Gradient{Stops: []Stop{
			{Colour: Gray{0}, Position: 0},
			{Colour: Gradient{Stops: []Stop{
				{Colour: RGB{255, 0, 0}, Position: 0},
				{Colour: RGB{0, 0, 255}, Position: 100},
			}}, Position: 50},
			{Colour: Gray{255}, Position: 100},
		}}

		stops, err := norm.NormalizeStops(nested)
		if err != nil {
			t.Fatalf("NormalizeStops error = %v", err)
		}
		want := []RGB{{0, 0, 0}, {255, 0, 0}, {0, 0, 255}, {255, 255, 255}}
		if len(stops) != len(want) {
			t.Fatalf("NormalizeStops returned %d stops, want %d", len(stops), len(want))
		}
		for i, w := range want {
			if stops[i].RGB() != w {
				t.Errorf("stop %d = %v, want %v", i, stops[i].RGB(), w)
			}
		}
	})

	t.Run("spot tint applies to every stop", func(t *testing.T) {
		g := Gradient{Stops: []Stop{
			{Colour: RGB{0, 0, 0}, Position: 0},
			{Colour: RGB{100, 0, 0}, Position: 100},
		}}
		stops, err := norm.NormalizeStops(Spot{Base: g, Tint: 50})
		if err != nil {
			t.Fatalf("NormalizeStops error = %v", err)
		}
		want := []RGB{{128, 128, 128}, {178, 128, 128}}
		for i, w := range want {
			if stops[i].RGB() != w {
				t.Errorf("stop %d = %v, want %v", i, stops[i].RGB(), w)
			}
		}
	})

	t.Run("empty gradient is not a colour", func(t *testing.T) {
		if _, err := norm.NormalizeStops(Gradient{}); !errors.Is(err, ErrNoSolidColour) {
			t.Errorf("NormalizeStops(empty gradient) error = %v, want ErrNoSolidColour", err)
		}
	})
}
