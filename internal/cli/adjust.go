package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvickers/kontrast/internal/colour"
)

var (
	// Adjust command flags
	adjustTarget   float64
	adjustFormat   string
	adjustDocument string
	adjustPreview  bool
)

// adjustCmd represents the adjust command
var adjustCmd = &cobra.Command{
	Use:   "adjust <foreground> <background>",
	Short: "Adjust a colour pair toward a target contrast ratio",
	Long: `Adjust walks a colour pair along a lightness/saturation trajectory until
the requested contrast ratio is reached, the closest representable state is
found, or the iteration budget runs out. Hue is never modified, and the
colour that starts brighter only ever moves toward white while the darker
one moves toward black.

An unreachable target is not an error: the closest achieved pair is printed
together with the residual gap so the caller can decide whether to accept
the near-miss.

Examples:
  # Push two similar grays apart until they meet Normal-AA
  kontrast adjust --target 4.5 "rgb(210,210,210)" "rgb(200,200,200)"

  # The same adjustment constrained to a CMYK document's gamut
  kontrast adjust --target 4.5 --document cmyk "rgb(210,210,210)" "rgb(200,200,200)"`,
	Args: cobra.ExactArgs(2),
	RunE: runAdjust,
}

func init() {
	adjustCmd.Flags().Float64VarP(&adjustTarget, "target", "t", 4.5, "target contrast ratio (1-21)")
	adjustCmd.Flags().StringVarP(&adjustFormat, "format", "f", "text", "output format (text, json)")
	adjustCmd.Flags().StringVar(&adjustDocument, "document", "rgb", "document colour model (rgb, cmyk)")
	adjustCmd.Flags().BoolVar(&adjustPreview, "preview", false, "show colour previews in terminal")
}

// adjustReport is the JSON shape of an adjustment run.
type adjustReport struct {
	Foreground    string  `json:"foreground"`
	Background    string  `json:"background"`
	TargetRatio   float64 `json:"target_ratio"`
	AchievedRatio float64 `json:"achieved_ratio"`
	Iterations    int     `json:"iterations"`
	Converged     bool    `json:"converged"`
	Document      string  `json:"document"`
}

// runAdjust executes the adjust command.
func runAdjust(cmd *cobra.Command, args []string) error {
	documentIsRGB, err := parseDocumentFlag(adjustDocument)
	if err != nil {
		return err
	}

	fgVal, err := ParseColour(args[0])
	if err != nil {
		return err
	}
	bgVal, err := ParseColour(args[1])
	if err != nil {
		return err
	}

	conv := activeConverter()
	adjuster := colour.NewAdjuster(conv)

	verbosef("Adjusting toward %.2f:1 (document: %s)\n", adjustTarget, adjustDocument)

	result, err := adjuster.Adjust(colour.Request{
		Background:    bgVal,
		Foreground:    fgVal,
		TargetRatio:   adjustTarget,
		DocumentIsRGB: documentIsRGB,
	})
	if err != nil {
		return err
	}

	if adjustFormat == "json" {
		report := adjustReport{
			Foreground:    result.Foreground.Hex(),
			Background:    result.Background.Hex(),
			TargetRatio:   adjustTarget,
			AchievedRatio: colour.DisplayRatio(result.AchievedRatio),
			Iterations:    result.Iterations,
			Converged:     result.Converged,
			Document:      adjustDocument,
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printPair(cmd, "Foreground", result.Foreground, adjustPreview)
	printPair(cmd, "Background", result.Background, adjustPreview)
	cmd.Printf("\nAchieved ratio: %.2f:1 (target %.2f:1, %d iterations)\n",
		colour.DisplayRatio(result.AchievedRatio), adjustTarget, result.Iterations)

	if !result.Converged {
		fmt.Fprintf(os.Stderr, "warning: target %.2f:1 not exactly reachable; closest achievable ratio is %.2f:1\n",
			adjustTarget, colour.DisplayRatio(result.AchievedRatio))
	}

	return nil
}
