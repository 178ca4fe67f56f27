// Package plugin provides the public API for kontrast device-converter
// plugins. External converters should import this package instead of
// internal packages.
package plugin

// Colour model names used on the wire. They mirror the engine's models but
// are plain strings so plugin binaries stay decoupled from internal types.
const (
	ModelRGB  = "rgb"
	ModelCMYK = "cmyk"
	ModelGray = "gray"
	ModelLab  = "lab"
)

// PluginInfo contains metadata about a converter plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}

// ConvertRequest is the wire form of one device conversion call.
//
// Component conventions match the engine's converter contract:
// RGB components are in [0, 255], CMYK in [0, 100], Gray in [0, 255],
// Lab is {l in [0,100], a/b in [-128,127]}.
type ConvertRequest struct {
	From   string
	Values []float64
	To     string
}
