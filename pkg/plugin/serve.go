// Package plugin provides the public API for kontrast device-converter
// plugins.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

// Serve starts serving a converter implementation over go-plugin RPC.
// It blocks for the lifetime of the plugin process; converter binaries
// call it from main after handling any local flags.
func Serve(impl Converter) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			converterPluginName: &ConverterRPC{Impl: impl},
		},
	})
}
