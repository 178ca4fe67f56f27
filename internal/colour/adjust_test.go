package colour

import (
	"errors"
	"testing"
)

// squeezeConverter compresses the round-tripped RGB channels into [15, 240],
// simulating a printing condition that cannot reproduce full black or full
// white. Targets near 21:1 become unreachable through it.
type squeezeConverter struct {
	naiveConverter
}

func (s squeezeConverter) Convert(from Model, values []float64, to Model) ([]float64, error) {
	out, err := s.naiveConverter.Convert(from, values, to)
	if err != nil {
		return nil, err
	}
	if from == ModelCMYK && to == ModelRGB {
		for i, v := range out {
			out[i] = 15 + v/255*(240-15)
		}
	}
	return out, nil
}

func TestAdjustRaisesLowContrastPair(t *testing.T) {
	adj := NewAdjuster(naiveConverter{})

	req := Request{
		Background:    RGB{200, 200, 200},
		Foreground:    RGB{210, 210, 210},
		TargetRatio:   4.5,
		DocumentIsRGB: true,
	}
	got, err := adj.Adjust(req)
	if err != nil {
		t.Fatalf("Adjust error = %v", err)
	}

	if got.Iterations == 0 || got.Iterations >= maxAdjustIterations {
		t.Errorf("Iterations = %d, want a terminating walk within the budget", got.Iterations)
	}
	if got.AchievedRatio < 4.49 {
		t.Errorf("AchievedRatio = %.4f, want >= 4.49", got.AchievedRatio)
	}

	// The brighter side must only brighten and the darker side only darken.
	if Luminance(got.Foreground) < Luminance(FromRGB(RGB{210, 210, 210})) {
		t.Errorf("foreground got darker: luminance %.4f", Luminance(got.Foreground))
	}
	if Luminance(got.Background) > Luminance(FromRGB(RGB{200, 200, 200})) {
		t.Errorf("background got brighter: luminance %.4f", Luminance(got.Background))
	}
	t.Logf("achieved %.4f in %d iterations (converged=%v)", got.AchievedRatio, got.Iterations, got.Converged)
}

func TestAdjustLowersHighContrastPair(t *testing.T) {
	adj := NewAdjuster(naiveConverter{})

	got, err := adj.Adjust(Request{
		Background:    RGB{0, 0, 0},
		Foreground:    RGB{255, 255, 255},
		TargetRatio:   4.5,
		DocumentIsRGB: true,
	})
	if err != nil {
		t.Fatalf("Adjust error = %v", err)
	}

	if got.Iterations == 0 || got.Iterations >= maxAdjustIterations {
		t.Errorf("Iterations = %d, want a terminating walk within the budget", got.Iterations)
	}
	// Whole-unit steps overshoot a little when walking down from 21:1; the
	// walk stops at the first state past the target.
	if got.AchievedRatio > 4.51 || got.AchievedRatio < 4.0 {
		t.Errorf("AchievedRatio = %.4f, want just at or below 4.5", got.AchievedRatio)
	}
	t.Logf("achieved %.4f in %d iterations (converged=%v)", got.AchievedRatio, got.Iterations, got.Converged)
}

func TestAdjustExactStartDoesNotIterate(t *testing.T) {
	adj := NewAdjuster(naiveConverter{})

	got, err := adj.Adjust(Request{
		Background:    RGB{0, 0, 0},
		Foreground:    RGB{255, 255, 255},
		TargetRatio:   21,
		DocumentIsRGB: true,
	})
	if err != nil {
		t.Fatalf("Adjust error = %v", err)
	}
	if got.Iterations != 0 {
		t.Errorf("Iterations = %d, want 0 for a pair already at target", got.Iterations)
	}
	if !got.Converged {
		t.Error("Converged = false, want true")
	}
	if got.AchievedRatio != 21 {
		t.Errorf("AchievedRatio = %v, want 21", got.AchievedRatio)
	}
}

func TestAdjustUnreachableTargetHitsCap(t *testing.T) {
	adj := NewAdjuster(squeezeConverter{})

	got, err := adj.Adjust(Request{
		Background:    RGB{200, 200, 200},
		Foreground:    RGB{210, 210, 210},
		TargetRatio:   21,
		DocumentIsRGB: false,
	})
	if err != nil {
		t.Fatalf("Adjust error = %v", err)
	}
	if got.Iterations != maxAdjustIterations {
		t.Errorf("Iterations = %d, want the full budget of %d", got.Iterations, maxAdjustIterations)
	}
	if got.Converged {
		t.Error("Converged = true for an unreachable target")
	}
	// The result is still a defined terminal state: a valid pair with the
	// best ratio the squeezed gamut allows.
	if got.AchievedRatio < 1 || got.AchievedRatio >= 21 {
		t.Errorf("AchievedRatio = %.4f, want a valid ratio below 21", got.AchievedRatio)
	}
	for _, ch := range []float64{got.Background.R, got.Foreground.R} {
		if ch < 15 || ch > 240 {
			t.Errorf("channel %.2f escaped the squeezed gamut [15, 240]", ch)
		}
	}
}

func TestAdjustInputErrors(t *testing.T) {
	adj := NewAdjuster(naiveConverter{})

	t.Run("target below 1", func(t *testing.T) {
		_, err := adj.Adjust(Request{Background: RGB{}, Foreground: RGB{}, TargetRatio: 0.5})
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("error = %v, want ErrOutOfRange", err)
		}
	})
	t.Run("target above 21", func(t *testing.T) {
		_, err := adj.Adjust(Request{Background: RGB{}, Foreground: RGB{}, TargetRatio: 22})
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("error = %v, want ErrOutOfRange", err)
		}
	})
	t.Run("gradient foreground", func(t *testing.T) {
		g := Gradient{Stops: []Stop{{Colour: RGB{0, 0, 0}}, {Colour: RGB{255, 255, 255}}}}
		_, err := adj.Adjust(Request{Background: RGB{}, Foreground: g, TargetRatio: 4.5})
		if !errors.Is(err, ErrNoSolidColour) {
			t.Errorf("error = %v, want ErrNoSolidColour", err)
		}
	})
}

func TestStepToward(t *testing.T) {
	tests := []struct {
		v, limit, want int
	}{
		{50, 0, 49},
		{50, 100, 51},
		{1, 0, 0},
		{99, 100, 100},
		{0, 0, 0},
		{100, 100, 100},
		{0, 100, 1},
	}
	for _, tt := range tests {
		if got := stepToward(tt.v, tt.limit); got != tt.want {
			t.Errorf("stepToward(%d, %d) = %d, want %d", tt.v, tt.limit, got, tt.want)
		}
	}
}

func TestFade(t *testing.T) {
	c := NewCanonical(200, 100, 50)

	t.Run("rgb document is identity", func(t *testing.T) {
		got, err := Fade(c, true, squeezeConverter{})
		if err != nil {
			t.Fatalf("Fade error = %v", err)
		}
		if got != c {
			t.Errorf("Fade = %v, want the input unchanged", got)
		}
	})

	t.Run("non-rgb document round-trips through the converter", func(t *testing.T) {
		got, err := Fade(c, false, squeezeConverter{})
		if err != nil {
			t.Fatalf("Fade error = %v", err)
		}
		if got.R < 15 || got.R > 240 || got.B < 15 || got.B > 240 {
			t.Errorf("Fade = %v, want channels inside the squeezed gamut", got)
		}
		if got == c {
			t.Error("Fade returned the input unchanged for a non-rgb document")
		}
	})
}
