package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Serve listens on the configured address until ctx is cancelled.
func (app *Application) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", app.Config.Addr)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", app.Config.Addr, err)
	}
	return app.ServeListener(ctx, ln)
}

// ServeListener serves on ln and shuts down gracefully once ctx is done.
func (app *Application) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      app.BuildRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  app.Config.ReadTimeout,
		WriteTimeout: app.Config.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info("starting server", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Logger.Info("shutting down server", zap.String("addr", ln.Addr().String()))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownGracePeriod)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not shut down server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	app.Logger.Info("stopped server", zap.String("addr", ln.Addr().String()))
	return nil
}
