package cli

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/mvickers/kontrast/internal/colour"
)

// ParseColour parses a colour argument into an engine value.
//
// Accepted forms:
//
//	#rgb / #rrggbb          hex RGB
//	rgb(r, g, b)            8-bit channels
//	cmyk(c, m, y, k)        ink percentages 0-100
//	gray(y)                 grayscale level 0-255
//	lab(l, a, b)            CIE L*a*b*
//	slategray, red, ...     CSS named colours
//
// Any form may carry a "@tint" suffix (e.g. "red@40") to express a spot
// tint percentage.
func ParseColour(arg string) (colour.Value, error) {
	s := strings.TrimSpace(arg)
	if s == "" {
		return nil, fmt.Errorf("empty colour argument")
	}

	// Spot tint suffix.
	if at := strings.LastIndex(s, "@"); at >= 0 {
		tint, err := strconv.ParseFloat(strings.TrimSpace(s[at+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tint in %q: %w", arg, err)
		}
		base, err := ParseColour(s[:at])
		if err != nil {
			return nil, err
		}
		return colour.Spot{Base: base, Tint: tint}, nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	if open := strings.Index(s, "("); open > 0 && strings.HasSuffix(s, ")") {
		model := strings.ToLower(strings.TrimSpace(s[:open]))
		comps, err := parseComponents(s[open+1 : len(s)-1])
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q: %w", arg, err)
		}
		return buildFunctional(model, comps, arg)
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return colour.RGB{R: c.R, G: c.G, B: c.B}, nil
	}

	return nil, fmt.Errorf("unrecognised colour %q", arg)
}

func parseHex(s string) (colour.Value, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		// Expand #rgb to #rrggbb.
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return nil, fmt.Errorf("invalid hex colour %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return colour.RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

func parseComponents(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	comps := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		comps = append(comps, f)
	}
	return comps, nil
}

func buildFunctional(model string, comps []float64, arg string) (colour.Value, error) {
	switch model {
	case "rgb":
		if len(comps) != 3 {
			return nil, fmt.Errorf("rgb colour %q needs 3 components", arg)
		}
		for _, c := range comps {
			if c < 0 || c > 255 {
				return nil, fmt.Errorf("rgb component %g out of range in %q", c, arg)
			}
		}
		return colour.RGB{R: uint8(comps[0]), G: uint8(comps[1]), B: uint8(comps[2])}, nil

	case "cmyk":
		if len(comps) != 4 {
			return nil, fmt.Errorf("cmyk colour %q needs 4 components", arg)
		}
		return colour.CMYK{C: comps[0], M: comps[1], Y: comps[2], K: comps[3]}, nil

	case "gray", "grey":
		if len(comps) != 1 {
			return nil, fmt.Errorf("gray colour %q needs 1 component", arg)
		}
		if comps[0] < 0 || comps[0] > 255 {
			return nil, fmt.Errorf("gray level %g out of range in %q", comps[0], arg)
		}
		return colour.Gray{Y: uint8(comps[0])}, nil

	case "lab":
		if len(comps) != 3 {
			return nil, fmt.Errorf("lab colour %q needs 3 components", arg)
		}
		return colour.Lab{L: comps[0], A: comps[1], B: comps[2]}, nil

	default:
		return nil, fmt.Errorf("unrecognised colour model %q in %q", model, arg)
	}
}
