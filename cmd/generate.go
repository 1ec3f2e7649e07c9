package cmd

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"wcagpal/cmd/helpers"
	"wcagpal/internal/color"
	"wcagpal/internal/export"
	"wcagpal/internal/manager"
	"wcagpal/internal/palette"
	"wcagpal/internal/ui"
)

const formatTerminal = "terminal"

func newGenerateCmd(getManager func() manager.PaletteManager, getSettings func() settings) *cobra.Command {
	var (
		modeFlag   string
		formatFlag string
		output     string
		name       string
		random     bool
		save       bool
		seed       uint64
	)

	generateCmd := &cobra.Command{
		Use:   "generate [hex]",
		Short: "Generate an accessible palette from a base color",
		Long: `Generate a palette of 6 or 9 background colors around a base color.
Each background gets black or white text, whichever has the higher contrast,
and is graded AAA, AA or Fail. Malformed colors fall back to #000000.`,
		Example: `  wcagpal generate "#1A365D"
  wcagpal generate 3366cc --mode triadic --format json
  wcagpal generate --random --seed 42 --save --name sunrise`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			current := getSettings()

			mode := current.Config.Mode()
			if modeFlag != "" {
				parsed, err := palette.ParseHarmonyMode(modeFlag)
				if err != nil {
					cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
					cmd.PrintErrf("  %s %s %s\n\n", ui.TextMuted.Render("run:"), ui.TextCommand.Render("wcagpal modes"), ui.TextMuted.Render("to see the harmony modes"))
					return
				}
				mode = parsed
			}

			if formatFlag == formatTerminal && output != "" {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), "the terminal format cannot be written to a file")
				cmd.PrintErrf("  %s %s %s\n\n", ui.TextMuted.Render("run:"), ui.TextCommand.Render("wcagpal generate <hex> --format text --output "+output), ui.TextMuted.Render("to save a text export"))
				return
			}

			terminal := formatFlag == formatTerminal || (formatFlag == "" && output == "")
			format := current.Config.ExportFormat()
			if !terminal && formatFlag != "" {
				parsed, err := export.ParseFormat(formatFlag)
				if err != nil {
					cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
					return
				}
				format = parsed
			}

			var (
				base   color.Color
				combos []palette.Combination
			)
			switch {
			case random && len(args) > 0:
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), "pass either a base color or --random, not both")
				return
			case random:
				if !cmd.Flags().Changed("seed") {
					seed = rand.Uint64()
				}
				base, combos = palette.GenerateRandom(palette.SeededRand(seed), mode)
			case len(args) == 1:
				parsed, err := color.ParseHex(args[0])
				if err != nil {
					cmd.PrintErrf("%s %s\n\n", ui.LabelWarning.Render("warning"), fmt.Sprintf("%q is not a hex color, using %s", args[0], color.Black.Hex()))
				}
				base = parsed
				combos = palette.Generate(base, mode)
			default:
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), "a base color is required")
				cmd.PrintErrf("  %s %s %s\n\n", ui.TextMuted.Render("run:"), ui.TextCommand.Render("wcagpal generate <hex>"), ui.TextMuted.Render("or pass --random"))
				return
			}

			doc := export.NewDocument(base, mode, combos, time.Now())

			if save {
				record, err := getManager().SavePalette(cmd.Context(), name, base, mode, combos)
				if errors.Is(err, manager.ErrPaletteAlreadySaved) {
					cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
					cmd.PrintErrf("  %s %s %s\n\n", ui.TextMuted.Render("run:"), ui.TextCommand.Render("wcagpal list"), ui.TextMuted.Render("to see saved palettes"))
					return
				}
				if err != nil {
					cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), fmt.Sprintf("saving palette: %v", err))
					return
				}
				doc.Name = record.Name
				defer func() {
					notify := cmd.Printf
					if !terminal {
						notify = cmd.PrintErrf
					}
					notify("%s %s %s\n\n", ui.LabelSuccess.Render("success"), "saved as", ui.TextBold.Render(record.Name))
					notify("%s %s %s\n\n", ui.LabelInfo.Render("note:"), ui.TextCommand.Render("wcagpal show "+record.Name), ui.TextMuted.Render("→ view it again later"))
				}()
			} else if name != "" {
				doc.Name = name
			}

			if terminal {
				helpers.PrintSection(cmd, fmt.Sprintf("%s  %s", base.Hex(), mode.DisplayName()))
				if random {
					helpers.PrintKV(cmd, "seed", strconv.FormatUint(seed, 10))
				}
				cmd.Println("")
				helpers.PrintPalette(cmd, combos)
				cmd.Println("")
				return
			}

			if err := writeExport(cmd, doc, format, output, current.Config.Export.OutputDir); err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
			}
		},
	}

	generateCmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "Harmony mode (default from config)")
	generateCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: terminal, text, json, yaml, html or png")
	generateCmd.Flags().StringVarP(&output, "output", "o", "", "Write the export to this file")
	generateCmd.Flags().BoolVar(&random, "random", false, "Use a random base color")
	generateCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for --random, makes the palette reproducible")
	generateCmd.Flags().BoolVar(&save, "save", false, "Save the palette to the history")
	generateCmd.Flags().StringVar(&name, "name", "", "Name for the saved palette (default <hex>-<mode>)")

	return generateCmd
}
