// Package plugin provides the public API for kontrast device-converter
// plugins.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current converter API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.1.0"

	// MinCompatibleVersion is the oldest protocol version this kontrast
	// version can work with.
	MinCompatibleVersion = "0.1.0"
)

// Handshake is the handshake configuration for the go-plugin protocol.
// It ensures converter binaries can only connect to compatible hosts.
//
// go-plugin's ProtocolVersion is a single uint that must match exactly; it
// carries the major version from ProtocolVersion. Full semantic version
// checking (including MinCompatibleVersion) happens via GetMetadata and
// IsCompatible.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  0, // major version from ProtocolVersion
	MagicCookieKey:   "KONTRAST_PLUGIN",
	MagicCookieValue: "kontrast_device_converter",
}

// converterPluginName is the dispense key used for converter plugins.
const converterPluginName = "converter"
