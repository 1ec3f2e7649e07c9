package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wcagpal/cmd/helpers"
	"wcagpal/internal/manager"
	"wcagpal/internal/palette"
	"wcagpal/internal/ui"
)

func newShowCmd(getManager func() manager.PaletteManager) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show a saved palette",
		Long:  `Show a saved palette exactly as it was stored. A warning is printed when it was generated by an older version.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ref := args[0]
			mgr := getManager()

			record, err := mgr.GetPalette(cmd.Context(), ref)
			if errors.Is(err, manager.ErrPaletteNotFound) {
				cmd.PrintErrf("%s %s %s\n\n", ui.LabelError.Render("error"), ui.TextBold.Render(ref), "is not saved")
				cmd.PrintErrf("  %s %s %s\n\n", ui.TextMuted.Render("run:"), ui.TextCommand.Render("wcagpal list"), ui.TextMuted.Render("to see saved palettes"))
				return
			}
			if err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), fmt.Sprintf("getting palette: %v", err))
				return
			}

			mode := palette.HarmonyMode(record.Mode)

			helpers.PrintSection(cmd, "Palette")
			helpers.PrintKV(cmd, "name", record.Name)
			helpers.PrintKV(cmd, "id", record.ID)
			helpers.PrintKV(cmd, "base", record.BaseColor)
			helpers.PrintKV(cmd, "mode", mode.DisplayName())
			helpers.PrintKV(cmd, "saved", fmt.Sprintf("%s (%s)", helpers.DetermineSavedAt(record.CreatedAt), record.CreatedAt.Format(time.DateTime)))
			helpers.PrintKV(cmd, "renamed", helpers.DetermineUpdatedAt(record.UpdatedAt))
			helpers.PrintKV(cmd, "version", helpers.DetermineVersion(record.GeneratorVersion))
			cmd.Println("")

			if mgr.IsStale(record) {
				cmd.Printf("%s %s\n", ui.LabelWarning.Render("warning"), fmt.Sprintf("saved with %s, the generator is now %s", record.GeneratorVersion, mgr.Version()))
				cmd.Printf("  %s %s %s\n\n", ui.TextMuted.Render("run:"), ui.TextCommand.Render(fmt.Sprintf("wcagpal generate %q --mode %s", record.BaseColor, record.Mode)), ui.TextMuted.Render("to see the current result"))
			}

			helpers.PrintPalette(cmd, manager.Combinations(record))
			cmd.Println("")
		},
	}
}
