package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"wcagpal/cmd/helpers"
	"wcagpal/internal/manager"
	"wcagpal/internal/ui"
)

func newListCmd(getManager func() manager.PaletteManager) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved palettes",
		Long:    `List every saved palette, newest first.`,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			mgr := getManager()
			records, err := mgr.GetAllPalettes(cmd.Context())
			if err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
				return
			}

			if len(records) == 0 {
				cmd.Println("No palettes saved")
				cmd.Printf("%s %s %s\n\n", ui.LabelInfo.Render("note:"), ui.TextCommand.Render("wcagpal generate <hex> --save"), ui.TextMuted.Render("→ save one"))
				return
			}

			t := helpers.NewTable(cmd, "Name", "Base", "Mode", "Saved", "Version", "Status")
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, WidthMin: 20},
				{Number: 3, WidthMin: 12},
				{Number: 4, WidthMin: 15},
			})

			for i, record := range records {
				row := ui.TableRowStyle(i)
				t.AppendRow(table.Row{
					row.Render(record.Name),
					row.Render(record.BaseColor),
					row.Render(record.Mode),
					ui.TableMutedStyle.Render(helpers.DetermineSavedAt(record.CreatedAt)),
					row.Render(helpers.DetermineVersion(record.GeneratorVersion)),
					helpers.PrintStale(mgr.IsStale(record)),
				})
			}
			t.Render()
		},
	}
}
