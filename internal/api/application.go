package api

import (
	"time"

	"go.uber.org/zap"

	"wcagpal/internal/config"
	"wcagpal/internal/manager"
	"wcagpal/internal/palette"
)

const ShutdownGracePeriod = 5 * time.Second

type Config struct {
	Addr           string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	DefaultMode    palette.HarmonyMode
}

func ConfigFrom(cfg config.SystemConfig) Config {
	return Config{
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		DefaultMode:    cfg.Mode(),
	}
}

type Application struct {
	Config   Config
	Palettes manager.PaletteManager
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewApplication(cfg Config, palettes manager.PaletteManager, logger *zap.Logger) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = palette.Mixed
	}
	return &Application{
		Config:   cfg,
		Palettes: palettes,
		Logger:   logger,
		Now:      time.Now,
	}
}
