package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvickers/kontrast/internal/colour"
)

var (
	// Convert command flag
	convertTo string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <colour>",
	Short: "Convert a colour between models",
	Long: `Convert normalizes a colour to canonical RGB and re-expresses it in the
requested model. This exposes the engine's normalizer, HSB converter and
device conversion primitive for scripting.

Examples:
  kontrast convert --to hsb "#cc3366"
  kontrast convert --to cmyk slategray
  kontrast convert --to hex "lab(53, 0, 0)"`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "rgb", "target model (rgb, hex, hsb, cmyk)")
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	val, err := ParseColour(args[0])
	if err != nil {
		return err
	}

	conv := activeConverter()
	norm := colour.NewNormalizer(conv)

	c, err := norm.Normalize(val)
	if err != nil {
		return err
	}

	switch convertTo {
	case "rgb":
		cmd.Println(c.RGB().String())
	case "hex":
		cmd.Println(c.Hex())
	case "hsb":
		cmd.Println(colour.RGBToHSB(c).String())
	case "cmyk":
		values, err := conv.Convert(colour.ModelRGB, []float64{c.R, c.G, c.B}, colour.ModelCMYK)
		if err != nil {
			return err
		}
		if len(values) != 4 {
			return fmt.Errorf("device converter returned %d components, want 4", len(values))
		}
		cmd.Printf("cmyk(%.0f, %.0f, %.0f, %.0f)\n", values[0], values[1], values[2], values[3])
	default:
		return fmt.Errorf("invalid target model %q (expected rgb, hex, hsb or cmyk)", convertTo)
	}

	return nil
}
