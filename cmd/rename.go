package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wcagpal/internal/manager"
	"wcagpal/internal/ui"
)

func newRenameCmd(getManager func() manager.PaletteManager) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id|name> <new-name>",
		Short: "Rename a saved palette",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ref, newName := args[0], args[1]

			record, err := getManager().RenamePalette(cmd.Context(), ref, newName)
			if errors.Is(err, manager.ErrPaletteNotFound) {
				cmd.PrintErrf("%s %s %s\n\n", ui.LabelError.Render("error"), ui.TextBold.Render(ref), "is not saved")
				return
			}
			if errors.Is(err, manager.ErrPaletteAlreadySaved) {
				cmd.PrintErrf("%s %s %s\n\n", ui.LabelError.Render("error"), ui.TextBold.Render(newName), "is already used by another palette")
				return
			}
			if errors.Is(err, manager.ErrInvalidName) {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
				return
			}
			if err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), fmt.Sprintf("renaming palette: %v", err))
				return
			}

			cmd.Printf("%s %s %s\n\n", ui.LabelSuccess.Render("success"), "renamed to", ui.TextBold.Render(record.Name))
		},
	}
}
