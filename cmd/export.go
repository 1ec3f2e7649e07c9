package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wcagpal/internal/color"
	"wcagpal/internal/export"
	"wcagpal/internal/manager"
	"wcagpal/internal/palette"
	"wcagpal/internal/types"
	"wcagpal/internal/ui"
)

func newExportCmd(getManager func() manager.PaletteManager, getSettings func() settings) *cobra.Command {
	var (
		formatFlag string
		output     string
	)

	exportCmd := &cobra.Command{
		Use:   "export <id|name>",
		Short: "Export a saved palette",
		Long: `Export a saved palette as text, json, yaml, html or png.
Text formats go to stdout unless --output is given. PNG sheets are written
to the configured output directory when no --output is given.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ref := args[0]
			current := getSettings()

			format := current.Config.ExportFormat()
			if formatFlag != "" {
				parsed, err := export.ParseFormat(formatFlag)
				if err != nil {
					cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
					return
				}
				format = parsed
			}

			record, err := getManager().GetPalette(cmd.Context(), ref)
			if errors.Is(err, manager.ErrPaletteNotFound) {
				cmd.PrintErrf("%s %s %s\n\n", ui.LabelError.Render("error"), ui.TextBold.Render(ref), "is not saved")
				cmd.PrintErrf("  %s %s %s\n\n", ui.TextMuted.Render("run:"), ui.TextCommand.Render("wcagpal list"), ui.TextMuted.Render("to see saved palettes"))
				return
			}
			if err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), fmt.Sprintf("getting palette: %v", err))
				return
			}

			if err := writeExport(cmd, documentFromRecord(record), format, output, current.Config.Export.OutputDir); err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
			}
		},
	}

	exportCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Export format: text, json, yaml, html or png (default from config)")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "Write the export to this file")

	return exportCmd
}

// documentFromRecord exports the stored snapshot rather than regenerating it.
func documentFromRecord(record types.PaletteRecord) export.Document {
	doc := export.NewDocument(
		color.FromHex(record.BaseColor),
		palette.HarmonyMode(record.Mode),
		manager.Combinations(record),
		record.CreatedAt,
	)
	doc.Name = record.Name
	return doc
}

func writeExport(cmd *cobra.Command, doc export.Document, format export.Format, output string, outputDir string) (err error) {
	if output == "" && !format.Binary() {
		return export.Write(cmd.OutOrStdout(), format, doc)
	}
	if output == "" {
		output = filepath.Join(outputDir, export.FileName(doc, format))
	}

	file, err := os.Create(filepath.Clean(output))
	if err != nil {
		return fmt.Errorf("could not create %s: %w", output, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %s: %w", output, closeErr)
		}
	}()

	if err := export.Write(file, format, doc); err != nil {
		return err
	}

	cmd.Printf("%s %s %s\n\n", ui.LabelSuccess.Render("success"), "written to", ui.TextBold.Render(output))
	return nil
}
