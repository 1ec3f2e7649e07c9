package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wcagpal/internal/manager"
	"wcagpal/internal/ui"
)

func newRemoveCmd(getManager func() manager.PaletteManager) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id|name>",
		Aliases: []string{"rm"},
		Short:   "Remove a saved palette",
		Long:    `Remove a palette and its swatches from the history.`,
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ref := args[0]

			removed, err := getManager().RemovePalette(cmd.Context(), ref)
			if errors.Is(err, manager.ErrPaletteNotFound) {
				cmd.PrintErrf("%s %s %s\n\n", ui.LabelError.Render("error"), ui.TextBold.Render(ref), "is not saved")
				cmd.PrintErrf("  %s %s %s\n\n", ui.TextMuted.Render("run:"), ui.TextCommand.Render("wcagpal list"), ui.TextMuted.Render("to see saved palettes"))
				return
			}
			if err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), fmt.Sprintf("removing palette: %v", err))
				return
			}

			cmd.Printf("%s %s %s\n\n", ui.LabelSuccess.Render("success"), ui.TextBold.Render(removed.Name), "removed")
			cmd.Printf("%s %s %s\n\n", ui.LabelInfo.Render("note:"), ui.TextCommand.Render("wcagpal list"), ui.TextMuted.Render("→ view saved palettes"))
		},
	}
}
