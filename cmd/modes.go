package cmd

import (
	"github.com/spf13/cobra"

	"wcagpal/cmd/helpers"
	"wcagpal/internal/palette"
	"wcagpal/internal/ui"
)

var modeSummaries = map[palette.HarmonyMode]string{
	palette.Complementary:      "the base and its opposite, each lighter and darker",
	palette.Analogous:          "hues within 30° of the base plus tints",
	palette.Triadic:            "three hues 120° apart with tints and muted shades",
	palette.SplitComplementary: "the two hues 30° either side of the opposite",
	palette.Mixed:              "one swatch from each harmony",
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "modes",
		Short:       "List the harmony modes",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipStoreAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			helpers.PrintSection(cmd, "Harmony modes")
			for _, m := range palette.Modes() {
				helpers.PrintKV(cmd, string(m), m.DisplayName()+ui.TextMuted.Render(" · "+modeSummaries[m]))
			}
			cmd.Println("")
			cmd.Printf("%s %s %s\n\n", ui.LabelInfo.Render("note:"), ui.TextCommand.Render("wcagpal generate <hex> --mode <mode>"), ui.TextMuted.Render("→ pick one"))
		},
	}
}
