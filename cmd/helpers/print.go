package helpers

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"wcagpal/internal/palette"
	"wcagpal/internal/ui"
)

func PrintStale(stale bool) string {
	if stale {
		return ui.LabelWarning.Render("stale")
	}
	return ui.LabelSuccess.Render("current")
}

func PrintPass(passes bool) string {
	if passes {
		return ui.LabelSuccess.Render("pass")
	}
	return ui.LabelError.Render("fail")
}

func PrintSection(cmd *cobra.Command, title string) {
	cmd.Println("")
	cmd.Println(ui.SectionHeader.Render(title))
	cmd.Println(ui.SectionRule.Render(strings.Repeat("─", 28)))
}

func PrintKV(cmd *cobra.Command, key, value string) {
	cmd.Printf("%s%s\n", ui.KeyStyle.Render(key), ui.ValueStyle.Render(value))
}

// NewTable returns a rounded go-pretty table writing to the command output.
// Header cells keep their case so the lipgloss header color survives.
func NewTable(cmd *cobra.Command, titles ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, 0, len(titles))
	for _, title := range titles {
		header = append(header, ui.TableHeaderStyle.Render(title))
	}
	t.AppendHeader(header)
	return t
}

// PrintPalette renders the combinations as a table with a live swatch column.
func PrintPalette(cmd *cobra.Command, combos []palette.Combination) {
	t := NewTable(cmd, "#", "Swatch", "Background", "Text", "Contrast", "WCAG")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMin: ui.SwatchWidth},
		{Number: 5, WidthMin: 10},
	})

	for i, c := range combos {
		row := ui.TableRowStyle(i)
		t.AppendRow(table.Row{
			ui.TableMutedStyle.Render(strconv.Itoa(i + 1)),
			ui.Swatch(c, c.Label),
			row.Render(c.Background.Hex()),
			row.Render(c.Foreground.Hex()),
			ui.Ratio(c.ContrastRatio),
			ui.TierBadge(c.Tier),
		})
	}
	t.Render()
}
