package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wcagpal/internal/buildinfo"
	"wcagpal/internal/config"
	"wcagpal/internal/database"
	"wcagpal/internal/logutil"
	"wcagpal/internal/manager"
	"wcagpal/internal/ui"
)

// skipStoreAnnotation marks commands that never touch saved palettes, so the
// database is not opened for them.
const skipStoreAnnotation = "wcagpal/skip-store"

type settings struct {
	Config  config.SystemConfig
	File    string
	BaseDir string
}

type commandDeps struct {
	getManager  func() manager.PaletteManager
	getSettings func() settings
	getLogger   func() *zap.Logger
}

func addCommands(rootCmd *cobra.Command, deps commandDeps) {
	rootCmd.AddCommand(newGenerateCmd(deps.getManager, deps.getSettings))
	rootCmd.AddCommand(newContrastCmd())
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newListCmd(deps.getManager))
	rootCmd.AddCommand(newShowCmd(deps.getManager))
	rootCmd.AddCommand(newExportCmd(deps.getManager, deps.getSettings))
	rootCmd.AddCommand(newRenameCmd(deps.getManager))
	rootCmd.AddCommand(newRemoveCmd(deps.getManager))
	rootCmd.AddCommand(newServeCmd(deps.getManager, deps.getSettings, deps.getLogger))
	rootCmd.AddCommand(newSystemCmd(deps.getSettings))
}

func newTestRootCmd(mgr manager.PaletteManager, cfg config.SystemConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wcagpal",
		Short: "Generate WCAG accessible color palettes",
		Long: `wcagpal builds color palettes from a single base color.
	Every swatch is paired with the text color that reads best on it
	and graded against the WCAG AA and AAA contrast thresholds.`,

		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("wcagpal - Test version")
			cmd.Println("Use 'wcagpal help' to see available commands")
		},
	}

	current := settings{Config: cfg, BaseDir: os.Getenv(config.EnvPrefix + "_BASE_DIR")}
	addCommands(rootCmd, commandDeps{
		getManager:  func() manager.PaletteManager { return mgr },
		getSettings: func() settings { return current },
		getLogger:   zap.NewNop,
	})

	return rootCmd
}

func newRootCmd() *cobra.Command {
	var (
		mgr      manager.PaletteManager
		current  settings
		logger   = zap.NewNop()
		cleanups []func()
	)

	rootCmd := &cobra.Command{
		Use:   "wcagpal",
		Short: "Generate WCAG accessible color palettes",
		Long: `wcagpal builds color palettes from a single base color.
	Every swatch is paired with the text color that reads best on it
	and graded against the WCAG AA and AAA contrast thresholds.`,
		SilenceErrors: true,
		SilenceUsage:  true,

		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("wcagpal %s\n", buildinfo.GetVersionOnly())
			cmd.Println("Use 'wcagpal help' to see available commands")
		},

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}

			baseDir, err := config.GetBaseDir()
			if err != nil {
				return err
			}
			cfg, used, err := config.Load(configPath, baseDir)
			if err != nil {
				return err
			}
			current = settings{Config: cfg, File: used, BaseDir: baseDir}

			level := cfg.Log.Level
			if verbose {
				level = "debug"
			}
			l, closeLog, err := logutil.Open(level, cfg.Log.File)
			if err != nil {
				return err
			}
			logger = l
			cleanups = append(cleanups, closeLog)
			logger.Debug("config loaded", zap.String("file", used), zap.String("baseDir", baseDir))

			if !needsStore(cmd) {
				return nil
			}

			m, closeStore, err := openManager(cmd.Context(), logger)
			if err != nil {
				return err
			}
			mgr = m
			cleanups = append(cleanups, closeStore)
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			for i := len(cleanups) - 1; i >= 0; i-- {
				cleanups[i]()
			}
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default is $WCAGPAL_BASE_DIR/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")

	addCommands(rootCmd, commandDeps{
		getManager:  func() manager.PaletteManager { return mgr },
		getSettings: func() settings { return current },
		getLogger:   func() *zap.Logger { return logger },
	})

	return rootCmd
}

func needsStore(cmd *cobra.Command) bool {
	if !cmd.HasParent() {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if _, skip := c.Annotations[skipStoreAnnotation]; skip {
			return false
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd:
			return false
		}
	}
	return true
}

func openManager(ctx context.Context, logger *zap.Logger) (manager.PaletteManager, func(), error) {
	baseDir, err := config.CreateBaseDir()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.NewDB(ctx, baseDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	mgr := manager.NewLocalManager(db, buildinfo.GetVersionOnly(), logger)
	cleanup := func() {
		if err := db.CloseDBConnection(); err != nil {
			logger.Warn("closing database connection failed", zap.Error(err))
		}
	}
	return mgr, cleanup, nil
}

func Execute() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.LabelError.Render("error"), err)
		os.Exit(1)
	}
}
