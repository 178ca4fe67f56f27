package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvickers/kontrast/internal/colour"
)

var (
	// Check command flags
	checkFormat   string
	checkDocument string
	checkPreview  bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <foreground> <background>",
	Short: "Check the WCAG contrast ratio of a colour pair",
	Long: `Check computes the WCAG 2.2 contrast ratio between a foreground and a
background colour and evaluates it against the five standard criteria
(Normal-AA, Normal-AAA, Large-AA, Large-AAA, Graphics-AA).

Colours may be given as hex (#1a2b3c), functional notation (rgb(26,43,60),
cmyk(10,0,40,5), gray(128), lab(53,0,0)), CSS colour names, or any of the
above with a spot tint suffix (red@40).

For documents whose native model is CMYK, pass --document cmyk so both
colours are round-tripped through the document gamut before measurement.

Examples:
  # Hex against a named colour
  kontrast check "#1a1a2e" white

  # Process colours in a CMYK document, with terminal swatches
  kontrast check --document cmyk --preview "cmyk(0,60,80,0)" "cmyk(80,60,0,60)"

  # Machine-readable output
  kontrast check --format json gray(100) gray(240)`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "output format (text, json)")
	checkCmd.Flags().StringVar(&checkDocument, "document", "rgb", "document colour model (rgb, cmyk)")
	checkCmd.Flags().BoolVar(&checkPreview, "preview", false, "show colour previews in terminal")
}

// checkReport is the JSON shape of a contrast check.
type checkReport struct {
	Foreground string            `json:"foreground"`
	Background string            `json:"background"`
	Ratio      float64           `json:"ratio"`
	Passes     map[string]bool   `json:"passes"`
	Document   string            `json:"document"`
	Colours    map[string]string `json:"colours,omitempty"`
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	documentIsRGB, err := parseDocumentFlag(checkDocument)
	if err != nil {
		return err
	}

	conv := activeConverter()
	norm := colour.NewNormalizer(conv)

	fg, bg, err := normalizePair(norm, args[0], args[1])
	if err != nil {
		return err
	}

	// Measure what the document can actually render.
	fg, err = colour.Fade(fg, documentIsRGB, conv)
	if err != nil {
		return err
	}
	bg, err = colour.Fade(bg, documentIsRGB, conv)
	if err != nil {
		return err
	}

	ratio := colour.ContrastRatio(fg, bg)
	eval := colour.Evaluate(ratio)

	if checkFormat == "json" {
		report := checkReport{
			Foreground: fg.Hex(),
			Background: bg.Hex(),
			Ratio:      colour.DisplayRatio(ratio),
			Passes:     eval.Passes,
			Document:   checkDocument,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printPair(cmd, "Foreground", fg, checkPreview)
	printPair(cmd, "Background", bg, checkPreview)
	cmd.Printf("\nContrast ratio: %.2f:1\n\n", colour.DisplayRatio(ratio))

	table := NewTable([]string{"Criterion", "Minimum", "Result"})
	for _, t := range colour.Thresholds {
		result := "fail"
		if eval.Passes[t.Name] {
			result = "pass"
		}
		table.AddRow([]string{t.Name, fmt.Sprintf("%.1f:1", t.MinRatio), result})
	}
	cmd.Print(table.Render())

	return nil
}

// normalizePair parses and normalizes two colour arguments.
func normalizePair(norm colour.Normalizer, fgArg, bgArg string) (fg, bg colour.Canonical, err error) {
	fgVal, err := ParseColour(fgArg)
	if err != nil {
		return colour.Canonical{}, colour.Canonical{}, err
	}
	bgVal, err := ParseColour(bgArg)
	if err != nil {
		return colour.Canonical{}, colour.Canonical{}, err
	}

	fg, err = norm.Normalize(fgVal)
	if err != nil {
		return colour.Canonical{}, colour.Canonical{}, fmt.Errorf("foreground: %w", err)
	}
	bg, err = norm.Normalize(bgVal)
	if err != nil {
		return colour.Canonical{}, colour.Canonical{}, fmt.Errorf("background: %w", err)
	}
	return fg, bg, nil
}

func parseDocumentFlag(value string) (documentIsRGB bool, err error) {
	switch value {
	case "rgb":
		return true, nil
	case "cmyk":
		return false, nil
	default:
		return false, fmt.Errorf("invalid document model %q (expected rgb or cmyk)", value)
	}
}

// printPair prints one side of a colour pair, optionally with a swatch.
func printPair(cmd *cobra.Command, label string, c colour.Canonical, preview bool) {
	rgb := c.RGB()
	if preview && colourOutputEnabled() {
		cmd.Printf("%s  %-11s %s %s\n", colour.Preview(rgb, 8), label+":", rgb.Hex(), rgb.String())
		return
	}
	cmd.Printf("%-11s %s %s\n", label+":", rgb.Hex(), rgb.String())
}

// verbosef prints to stderr when --verbose is set.
func verbosef(format string, a ...any) {
	if flagVerbose {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}
