package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wcagpal/internal/api"
	"wcagpal/internal/manager"
	"wcagpal/internal/ui"
)

func newServeCmd(getManager func() manager.PaletteManager, getSettings func() settings, getLogger func() *zap.Logger) *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local palette API",
		Long: `Serve the palette generator and the saved history as a JSON API.
The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := api.ConfigFrom(getSettings().Config)
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := api.NewApplication(cfg, getManager(), getLogger())

			cmd.Printf("%s %s %s\n", ui.LabelInfo.Render("info"), "serving on", ui.TextBold.Render("http://"+cfg.Addr))
			cmd.Printf("  %s\n\n", ui.TextMuted.Render("press ctrl+c to stop"))

			if err := app.Serve(ctx); err != nil {
				cmd.PrintErrf("%s %s\n\n", ui.LabelError.Render("error"), err)
				return
			}
			cmd.Printf("%s %s\n\n", ui.LabelSuccess.Render("success"), "server stopped")
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return serveCmd
}
