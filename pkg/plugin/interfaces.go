// Package plugin provides the public API for kontrast device-converter
// plugins.
package plugin

import "context"

// Converter is the interface a device-converter plugin must implement for
// go-plugin RPC. Implementations must be deterministic pure functions: the
// engine recomputes conversions freely inside its adjustment loop and
// assumes identical inputs produce identical outputs.
type Converter interface {
	// Convert translates values from one colour model to another. The
	// supported pairs are {cmyk,rgb}, {gray,rgb}, {lab,rgb} and {rgb,cmyk}.
	Convert(ctx context.Context, req ConvertRequest) ([]float64, error)

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}
