// inklimit - Ink-Limited Device Converter (Kontrast Converter Plugin)
//
// A device-converter plugin that emulates a coated-stock print condition:
// naive CMYK separation with a total ink limit and a lifted black point.
// Colours pushed to the extremes of the RGB cube come back slightly
// compressed, the way a real press renders them, which makes it a useful
// companion to `kontrast adjust --document cmyk`.
//
// Build:
//   go build -o inklimit
//
// Usage:
//   kontrast check --converter ./inklimit --document cmyk "#111" "#eee"
//
// Author: Kontrast Contributors
// License: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	kplugin "github.com/mvickers/kontrast/pkg/plugin"
)

const (
	// totalInkLimit caps the summed ink coverage, as a coated-stock
	// profile would.
	totalInkLimit = 300.0

	// blackPoint is the lightest RGB level a full-ink black renders at.
	blackPoint = 18.0
)

// InkLimitConverter implements the kplugin.Converter interface.
type InkLimitConverter struct{}

// Convert performs the ink-limited device conversion.
func (InkLimitConverter) Convert(_ context.Context, req kplugin.ConvertRequest) ([]float64, error) {
	switch {
	case req.From == kplugin.ModelCMYK && req.To == kplugin.ModelRGB:
		if len(req.Values) != 4 {
			return nil, fmt.Errorf("cmyk conversion: got %d components, want 4", len(req.Values))
		}
		c, m, y, k := limitInk(req.Values[0], req.Values[1], req.Values[2], req.Values[3])
		scale := (255 - blackPoint) / 255
		r := (255*(1-c/100)*(1-k/100))*scale + blackPoint
		g := (255*(1-m/100)*(1-k/100))*scale + blackPoint
		b := (255*(1-y/100)*(1-k/100))*scale + blackPoint
		return []float64{r, g, b}, nil

	case req.From == kplugin.ModelGray && req.To == kplugin.ModelRGB:
		if len(req.Values) != 1 {
			return nil, fmt.Errorf("gray conversion: got %d components, want 1", len(req.Values))
		}
		y := req.Values[0]
		return []float64{y, y, y}, nil

	case req.From == kplugin.ModelLab && req.To == kplugin.ModelRGB:
		if len(req.Values) != 3 {
			return nil, fmt.Errorf("lab conversion: got %d components, want 3", len(req.Values))
		}
		// Approximate: treat L* as a neutral axis; a/b handled as small
		// chroma offsets. Good enough for a demonstration plugin.
		l := req.Values[0] / 100 * 255
		a := req.Values[1]
		b := req.Values[2]
		return []float64{
			clamp255(l + a*1.02),
			clamp255(l - a*0.36 - b*0.20),
			clamp255(l - b*1.05),
		}, nil

	case req.From == kplugin.ModelRGB && req.To == kplugin.ModelCMYK:
		if len(req.Values) != 3 {
			return nil, fmt.Errorf("rgb conversion: got %d components, want 3", len(req.Values))
		}
		rf := req.Values[0] / 255
		gf := req.Values[1] / 255
		bf := req.Values[2] / 255
		kf := 1 - math.Max(rf, math.Max(gf, bf))
		if kf >= 1 {
			return []float64{0, 0, 0, 100}, nil
		}
		c := (1 - rf - kf) / (1 - kf) * 100
		m := (1 - gf - kf) / (1 - kf) * 100
		y := (1 - bf - kf) / (1 - kf) * 100
		c, m, y, k := limitInk(c, m, y, kf*100)
		return []float64{c, m, y, k}, nil

	default:
		return nil, fmt.Errorf("unsupported conversion %s -> %s", req.From, req.To)
	}
}

// GetMetadata returns plugin metadata.
func (InkLimitConverter) GetMetadata() kplugin.PluginInfo {
	return kplugin.PluginInfo{
		Name:            "inklimit",
		Version:         "1.0.0",
		ProtocolVersion: kplugin.ProtocolVersion,
		Description:     "Ink-limited CMYK device converter emulating a coated print stock",
	}
}

// limitInk scales ink coverage down proportionally when the total exceeds
// the stock's limit.
func limitInk(c, m, y, k float64) (float64, float64, float64, float64) {
	total := c + m + y + k
	if total <= totalInkLimit {
		return c, m, y, k
	}
	scale := totalInkLimit / total
	return c * scale, m * scale, y * scale, k * scale
}

func clamp255(v float64) float64 {
	return math.Min(255, math.Max(0, v))
}

func main() {
	// Handle --plugin-info flag
	if len(os.Args) > 1 && os.Args[1] == "--plugin-info" {
		info := InkLimitConverter{}.GetMetadata()

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(info); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Serve the converter using go-plugin
	kplugin.Serve(InkLimitConverter{})
}
