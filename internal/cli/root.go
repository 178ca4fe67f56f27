// Package cli provides the command-line interface for Kontrast.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mvickers/kontrast/internal/colour"
	"github.com/mvickers/kontrast/internal/device"
	"github.com/mvickers/kontrast/internal/version"
)

var (
	// Global flags
	flagVerbose   bool
	flagNoColour  bool
	flagConverter string

	// Shared external converter instance, started lazily and killed after
	// the command finishes.
	pluginConverter *device.PluginConverter

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "kontrast",
		Short: "WCAG colour-contrast checking and adjustment",
		Long: `Kontrast is a colour-science engine for document automation workflows.

It computes WCAG 2.2 relative luminance and contrast ratios for colours in
common print/design colour models (RGB, CMYK, grayscale, Lab, spot tints),
and can adjust a colour pair along a lightness/saturation trajectory until
a target contrast ratio is reached - without leaving the gamut of the
document's native colour model.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute runs the root command. It is called by main.main() and makes
// sure any external converter process is cleaned up afterwards.
func Execute() error {
	defer closeConverter()
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColour, "no-colour", false, "disable ANSI colour output")
	rootCmd.PersistentFlags().StringVar(&flagConverter, "converter", "", "path to an external device-converter plugin binary")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(convertCmd)
}

// activeConverter returns the device converter selected by the global
// flags: the built-in converter by default, or an external plugin binary
// when --converter is given.
func activeConverter() colour.Converter {
	if flagConverter == "" {
		return device.Builtin{}
	}
	if pluginConverter == nil {
		pluginConverter = device.NewPluginConverter(flagConverter, flagVerbose)
	}
	return pluginConverter
}

func closeConverter() {
	if pluginConverter != nil {
		pluginConverter.Close()
		pluginConverter = nil
	}
}

// colourOutputEnabled reports whether ANSI swatches should be emitted.
func colourOutputEnabled() bool {
	if flagNoColour {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
