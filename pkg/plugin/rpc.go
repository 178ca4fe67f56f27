// Package plugin provides the public API for kontrast device-converter
// plugins.
package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// ConverterRPC implements the go-plugin Plugin interface for converters.
type ConverterRPC struct {
	plugin.Plugin
	Impl Converter
}

// Server returns an RPC server for this plugin.
func (p *ConverterRPC) Server(*plugin.MuxBroker) (any, error) {
	return &ConverterRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *ConverterRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &ConverterRPCClient{client: c}, nil
}

// ConverterRPCServer is the RPC server implementation for converters.
type ConverterRPCServer struct {
	Impl Converter
}

// Convert implements the RPC method for device conversion.
func (s *ConverterRPCServer) Convert(req ConvertRequest, resp *[]float64) error {
	values, err := s.Impl.Convert(context.Background(), req)
	if err != nil {
		return err
	}
	*resp = values
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *ConverterRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// ConverterRPCClient is the RPC client implementation for converters.
type ConverterRPCClient struct {
	client *rpc.Client
}

// Convert calls the remote Convert method.
func (c *ConverterRPCClient) Convert(_ context.Context, req ConvertRequest) ([]float64, error) {
	var values []float64
	if err := c.client.Call("Plugin.Convert", req, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *ConverterRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}
