package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"wcagpal/cmd/helpers"
	"wcagpal/internal/buildinfo"
	"wcagpal/internal/config"
	"wcagpal/internal/ui"
)

func newSystemCmd(getSettings func() settings) *cobra.Command {
	systemCmd := &cobra.Command{
		Use:         "system",
		Short:       "Manage the wcagpal system settings",
		Annotations: map[string]string{skipStoreAnnotation: "true"},
	}

	var raw bool
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "See active system config",
		Run: func(cmd *cobra.Command, args []string) {
			current := getSettings()
			if raw {
				data, err := config.Marshal(current.Config)
				if err != nil {
					cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
					return
				}
				cmd.Print(string(data))
				return
			}
			configCmd(cmd, current)
		},
	}
	configCmd.Flags().BoolVar(&raw, "yaml", false, "Print the active config as yaml")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Run: func(cmd *cobra.Command, args []string) {
			baseDir := getSettings().BaseDir
			if baseDir == "" {
				dir, err := config.CreateBaseDir()
				if err != nil {
					cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
					return
				}
				baseDir = dir
			}

			path, err := config.WriteDefault(baseDir)
			if errors.Is(err, config.ErrConfigExists) {
				cmd.PrintErrf("%s %s %s\n\n", ui.LabelError.Render("error"), ui.TextBold.Render(path), "already exists")
				return
			}
			if err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
				return
			}
			cmd.Printf("%s %s %s\n\n", ui.LabelSuccess.Render("success"), "config written to", ui.TextBold.Render(path))
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Get version of system",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(buildinfo.Get())
		},
	}

	systemCmd.AddCommand(configCmd)
	systemCmd.AddCommand(initCmd)
	systemCmd.AddCommand(versionCmd)

	return systemCmd
}

func configCmd(cmd *cobra.Command, current settings) {
	cfg := current.Config
	configFile := current.File
	if configFile == "" {
		configFile = "none (defaults)"
	}
	origins := "localhost only"
	if len(cfg.Server.AllowedOrigins) > 0 {
		origins = strings.Join(cfg.Server.AllowedOrigins, ", ")
	}
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "stderr"
	}

	helpers.PrintSection(cmd, "System")
	helpers.PrintKV(cmd, "base directory", current.BaseDir)
	helpers.PrintKV(cmd, "config file", configFile)

	helpers.PrintSection(cmd, "Generator")
	helpers.PrintKV(cmd, "mode", string(cfg.Mode()))

	helpers.PrintSection(cmd, "Export")
	helpers.PrintKV(cmd, "format", string(cfg.ExportFormat()))
	helpers.PrintKV(cmd, "output directory", cfg.Export.OutputDir)

	helpers.PrintSection(cmd, "Server")
	helpers.PrintKV(cmd, "address", cfg.Server.Addr)
	helpers.PrintKV(cmd, "allowed origins", origins)
	helpers.PrintKV(cmd, "read timeout", cfg.Server.ReadTimeout.String())
	helpers.PrintKV(cmd, "write timeout", cfg.Server.WriteTimeout.String())

	helpers.PrintSection(cmd, "Logging")
	helpers.PrintKV(cmd, "level", cfg.Log.Level)
	helpers.PrintKV(cmd, "file", logFile)
	cmd.Println("")
}
