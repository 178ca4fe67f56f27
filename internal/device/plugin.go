package device

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/mvickers/kontrast/internal/colour"
	kplugin "github.com/mvickers/kontrast/pkg/plugin"
)

// PluginConverter drives an external device-converter binary over
// go-plugin RPC. The child process starts lazily on the first conversion
// and is reused for subsequent calls; Close kills it.
type PluginConverter struct {
	path    string
	verbose bool

	mu     sync.Mutex
	client *plugin.Client
	rpc    *kplugin.ConverterRPCClient
}

// NewPluginConverter returns a converter backed by the binary at path.
func NewPluginConverter(path string, verbose bool) *PluginConverter {
	return &PluginConverter{path: path, verbose: verbose}
}

// Convert implements colour.Converter by delegating to the plugin process.
func (p *PluginConverter) Convert(from colour.Model, values []float64, to colour.Model) ([]float64, error) {
	client, err := p.connect()
	if err != nil {
		return nil, err
	}

	return client.Convert(context.Background(), kplugin.ConvertRequest{
		From:   string(from),
		Values: values,
		To:     string(to),
	})
}

// connect starts the plugin process if needed and verifies protocol
// compatibility before the first conversion goes through.
func (p *PluginConverter) connect() (*kplugin.ConverterRPCClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rpc != nil {
		return p.rpc, nil
	}

	// Configure logger based on verbose flag.
	var logger hclog.Logger
	if p.verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "converter",
			Output: log.Writer(),
			Level:  hclog.Debug,
		})
	} else {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "converter",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	p.client = plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: kplugin.Handshake,
		Plugins: map[string]plugin.Plugin{
			"converter": &kplugin.ConverterRPC{},
		},
		Cmd:              exec.Command(p.path),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           logger,
	})

	rpcClient, err := p.client.Client()
	if err != nil {
		p.reset()
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense("converter")
	if err != nil {
		p.reset()
		return nil, fmt.Errorf("failed to dispense converter: %w", err)
	}

	client, ok := raw.(*kplugin.ConverterRPCClient)
	if !ok {
		p.reset()
		return nil, fmt.Errorf("converter plugin returned unexpected type %T", raw)
	}

	info, err := client.GetMetadata()
	if err != nil {
		p.reset()
		return nil, fmt.Errorf("failed to query converter metadata: %w", err)
	}
	if ok, err := kplugin.IsCompatible(info.ProtocolVersion); !ok {
		p.reset()
		return nil, fmt.Errorf("converter %q: %w", info.Name, err)
	}

	p.rpc = client
	return p.rpc, nil
}

// Close kills the plugin process if one is running.
func (p *PluginConverter) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

func (p *PluginConverter) reset() {
	if p.client != nil {
		p.client.Kill()
		p.client = nil
		p.rpc = nil
	}
}
