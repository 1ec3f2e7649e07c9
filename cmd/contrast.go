package cmd

import (
	"github.com/spf13/cobra"

	"wcagpal/cmd/helpers"
	"wcagpal/internal/color"
	"wcagpal/internal/palette"
	"wcagpal/internal/ui"
)

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "contrast <foreground> <background>",
		Short:       "Check the contrast of a text and background color",
		Long:        `Compute the WCAG contrast ratio of two hex colors and the tier it reaches.`,
		Example:     `  wcagpal contrast "#FFFFFF" "#1A365D"`,
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{skipStoreAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fg, err := color.ParseHex(args[0])
			if err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
				return
			}
			bg, err := color.ParseHex(args[1])
			if err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
				return
			}

			ratio := color.ContrastRatio(fg, bg)
			tier := palette.TierFor(ratio)
			sample := palette.Combination{Background: bg, Foreground: fg, ContrastRatio: ratio, Tier: tier}

			helpers.PrintSection(cmd, "Contrast")
			helpers.PrintKV(cmd, "text", fg.Hex())
			helpers.PrintKV(cmd, "background", bg.Hex())
			helpers.PrintKV(cmd, "sample", ui.Swatch(sample, "Sample text"))
			helpers.PrintKV(cmd, "ratio", ui.Ratio(ratio))
			helpers.PrintKV(cmd, "tier", ui.TierBadge(tier))
			helpers.PrintKV(cmd, "AA normal text", helpers.PrintPass(ratio >= palette.AAThreshold))
			helpers.PrintKV(cmd, "AAA normal text", helpers.PrintPass(ratio >= palette.AAAThreshold))
			cmd.Println("")
		},
	}
}
